// Package walletv1 defines the wallet.v1 WalletService wire contract.
// Messages travel as JSON through the "json" codec; amounts are decimal strings.
package walletv1

// LoginRequest carries the email/password pair
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the balance after the first-login seed
type LoginResponse struct {
	Balance string `json:"balance"`
}

type GetBalanceRequest struct{}

type GetBalanceResponse struct {
	Balance string `json:"balance"`
	Display string `json:"display"`
}

type DepositRequest struct {
	Amount string `json:"amount"`
	Detail string `json:"detail,omitempty"`
}

type DepositResponse struct {
	Balance string `json:"balance"`
	Message string `json:"message"`
}

// TransferRequest selects the recipient with exactly one of contact_index or contact_id
type TransferRequest struct {
	ContactIndex *int32 `json:"contact_index,omitempty"`
	ContactId    string `json:"contact_id,omitempty"`
	Amount       string `json:"amount"`
}

type TransferResponse struct {
	Amount      string    `json:"amount"`
	Balance     string    `json:"balance"`
	ContactId   string    `json:"contact_id"`
	ContactName string    `json:"contact_name"`
	Movement    *Movement `json:"movement"`
	Message     string    `json:"message"`
}

// Movement is one history entry. Amount is signed.
type Movement struct {
	Id     string `json:"id"`
	Kind   string `json:"kind"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
	Detail string `json:"detail"`
}

// ListMovementsRequest filter is one of all, deposits, transfers (empty means all)
type ListMovementsRequest struct {
	Filter string `json:"filter,omitempty"`
}

type ListMovementsResponse struct {
	Movements []*Movement `json:"movements"`
}

type Contact struct {
	Index     int32  `json:"index"`
	Id        string `json:"id"`
	Name      string `json:"name"`
	Bank      string `json:"bank"`
	AccountId string `json:"account_id"`
	Alias     string `json:"alias"`
}

type ListContactsRequest struct {
	Query string `json:"query,omitempty"`
}

type ListContactsResponse struct {
	Contacts []*Contact `json:"contacts"`
}

type AddContactRequest struct {
	Name      string `json:"name"`
	Bank      string `json:"bank"`
	AccountId string `json:"account_id"`
	Alias     string `json:"alias"`
}

type AddContactResponse struct {
	Contact *Contact `json:"contact"`
}

// RemoveContactRequest selects the contact with exactly one of index or id
type RemoveContactRequest struct {
	Index *int32 `json:"index,omitempty"`
	Id    string `json:"id,omitempty"`
}

type RemoveContactResponse struct{}

// Int32 returns a pointer to v, for the optional index fields
func Int32(v int32) *int32 {
	return &v
}
