package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wallet-backend/internal/domain"
	"github.com/simaogato/wallet-backend/internal/usecase/contactbook"
	"github.com/simaogato/wallet-backend/internal/usecase/ledger"
)

// Receipt is the outcome of a successful transfer
type Receipt struct {
	Amount      decimal.Decimal
	NewBalance  decimal.Decimal
	ContactID   uuid.UUID
	ContactName string
	Movement    domain.Movement
}

// TransferService moves money from the wallet to a saved contact.
// It holds no state: the contact is resolved again on every call.
type TransferService struct {
	Ledger   *ledger.LedgerService
	Contacts *contactbook.ContactBookService
}

// NewTransferService creates a new TransferService instance
func NewTransferService(ledgerService *ledger.LedgerService, contacts *contactbook.ContactBookService) *TransferService {
	return &TransferService{
		Ledger:   ledgerService,
		Contacts: contacts,
	}
}

// Transfer sends amount to the contact currently at contactIndex
func (s *TransferService) Transfer(ctx context.Context, contactIndex int, amount decimal.Decimal) (*Receipt, error) {
	// 1. Validate amount before touching any record
	rounded, err := domain.ValidateAmount(amount)
	if err != nil {
		return nil, err
	}

	// 2. Resolve recipient
	contact, err := s.Contacts.FindByIndex(ctx, contactIndex)
	if err != nil {
		return nil, err
	}

	return s.send(ctx, contact, rounded)
}

// TransferTo sends amount to the contact with the given ID
func (s *TransferService) TransferTo(ctx context.Context, contactID uuid.UUID, amount decimal.Decimal) (*Receipt, error) {
	rounded, err := domain.ValidateAmount(amount)
	if err != nil {
		return nil, err
	}

	contact, _, err := s.Contacts.FindByID(ctx, contactID)
	if err != nil {
		return nil, err
	}

	return s.send(ctx, contact, rounded)
}

// send debits the ledger and records the movement in one ledger write, so the
// balance is never persisted without its movement.
func (s *TransferService) send(ctx context.Context, contact *domain.Contact, amount decimal.Decimal) (*Receipt, error) {
	receipt := &Receipt{
		Amount:      amount,
		ContactID:   contact.ID,
		ContactName: contact.Name,
	}

	err := s.Ledger.Atomically(ctx, func(tx *ledger.Tx) error {
		// 3. Check funds
		if amount.GreaterThan(tx.Balance()) {
			return domain.ErrInsufficientFunds
		}

		// 4. Debit
		balance, err := tx.Withdraw(amount)
		if err != nil {
			return err
		}

		// 5. Record movement
		movement, err := tx.RecordMovement(domain.MovementKindTransfer, amount, Detail(contact))
		if err != nil {
			return err
		}

		receipt.NewBalance = balance
		receipt.Movement = movement
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6. Receipt
	return receipt, nil
}

// Detail is the movement description for a transfer to contact
func Detail(contact *domain.Contact) string {
	return fmt.Sprintf("Transferencia a %s (%s)", contact.Name, contact.Alias)
}
