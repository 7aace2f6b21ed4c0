package grpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	walletv1 "github.com/simaogato/wallet-backend/internal/adapter/grpc/wallet/v1"
	"github.com/simaogato/wallet-backend/internal/domain"
	"github.com/simaogato/wallet-backend/internal/usecase/contactbook"
	"github.com/simaogato/wallet-backend/internal/usecase/dashboard"
	"github.com/simaogato/wallet-backend/internal/usecase/ledger"
	"github.com/simaogato/wallet-backend/internal/usecase/session"
	"github.com/simaogato/wallet-backend/internal/usecase/transfer"
)

// Server implements the WalletService gRPC server
type Server struct {
	walletv1.UnimplementedWalletServiceServer

	SessionService   *session.SessionService
	LedgerService    *ledger.LedgerService
	ContactService   *contactbook.ContactBookService
	TransferService  *transfer.TransferService
	DashboardService *dashboard.DashboardService
}

// NewServer creates a new gRPC server instance
func NewServer(
	sessionService *session.SessionService,
	ledgerService *ledger.LedgerService,
	contactService *contactbook.ContactBookService,
	transferService *transfer.TransferService,
	dashboardService *dashboard.DashboardService,
) *Server {
	return &Server{
		SessionService:   sessionService,
		LedgerService:    ledgerService,
		ContactService:   contactService,
		TransferService:  transferService,
		DashboardService: dashboardService,
	}
}

// Login handles the Login RPC
func (s *Server) Login(ctx context.Context, req *walletv1.LoginRequest) (*walletv1.LoginResponse, error) {
	if err := s.SessionService.Login(ctx, req.Email, req.Password); err != nil {
		return nil, mapError(err)
	}

	balance, err := s.LedgerService.GetBalance(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return &walletv1.LoginResponse{Balance: domain.FormatAmount(balance)}, nil
}

// GetBalance handles the GetBalance RPC
func (s *Server) GetBalance(ctx context.Context, _ *walletv1.GetBalanceRequest) (*walletv1.GetBalanceResponse, error) {
	view, err := s.DashboardService.Balance(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return &walletv1.GetBalanceResponse{
		Balance: domain.FormatAmount(view.Amount),
		Display: view.Display,
	}, nil
}

// Deposit handles the Deposit RPC
func (s *Server) Deposit(ctx context.Context, req *walletv1.DepositRequest) (*walletv1.DepositResponse, error) {
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, mapError(err)
	}

	balance, err := s.LedgerService.Deposit(ctx, amount, req.Detail)
	if err != nil {
		return nil, mapError(err)
	}

	return &walletv1.DepositResponse{
		Balance: domain.FormatAmount(balance),
		Message: dashboard.DepositMessage(domain.RoundAmount(amount), balance),
	}, nil
}

// Transfer handles the Transfer RPC
func (s *Server) Transfer(ctx context.Context, req *walletv1.TransferRequest) (*walletv1.TransferResponse, error) {
	contactID, err := selectContact(req.ContactIndex, req.ContactId)
	if err != nil {
		return nil, err
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, mapError(err)
	}

	var receipt *transfer.Receipt
	if contactID != uuid.Nil {
		receipt, err = s.TransferService.TransferTo(ctx, contactID, amount)
	} else {
		receipt, err = s.TransferService.Transfer(ctx, int(*req.ContactIndex), amount)
	}
	if err != nil {
		return nil, mapError(err)
	}

	return &walletv1.TransferResponse{
		Amount:      domain.FormatAmount(receipt.Amount),
		Balance:     domain.FormatAmount(receipt.NewBalance),
		ContactId:   receipt.ContactID.String(),
		ContactName: receipt.ContactName,
		Movement:    movementToProto(receipt.Movement),
		Message:     dashboard.TransferMessage(receipt),
	}, nil
}

// ListMovements handles the ListMovements RPC
func (s *Server) ListMovements(ctx context.Context, req *walletv1.ListMovementsRequest) (*walletv1.ListMovementsResponse, error) {
	filter, err := domain.ParseMovementFilter(req.Filter)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	movements, err := s.LedgerService.ListMovements(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}

	protoMovements := make([]*walletv1.Movement, 0, len(movements))
	for _, m := range movements {
		protoMovements = append(protoMovements, movementToProto(m))
	}

	return &walletv1.ListMovementsResponse{Movements: protoMovements}, nil
}

// ListContacts handles the ListContacts RPC. An empty query lists every contact.
func (s *Server) ListContacts(ctx context.Context, req *walletv1.ListContactsRequest) (*walletv1.ListContactsResponse, error) {
	found, err := s.ContactService.Search(ctx, req.Query)
	if err != nil {
		return nil, mapError(err)
	}

	contacts := make([]*walletv1.Contact, 0, len(found))
	for _, ic := range found {
		contacts = append(contacts, contactToProto(ic.Index, ic.Contact))
	}

	return &walletv1.ListContactsResponse{Contacts: contacts}, nil
}

// AddContact handles the AddContact RPC
func (s *Server) AddContact(ctx context.Context, req *walletv1.AddContactRequest) (*walletv1.AddContactResponse, error) {
	index, contact, err := s.ContactService.Add(ctx, contactbook.AddContactInput{
		Name:      req.Name,
		Bank:      req.Bank,
		AccountID: req.AccountId,
		Alias:     req.Alias,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &walletv1.AddContactResponse{Contact: contactToProto(index, *contact)}, nil
}

// RemoveContact handles the RemoveContact RPC
func (s *Server) RemoveContact(ctx context.Context, req *walletv1.RemoveContactRequest) (*walletv1.RemoveContactResponse, error) {
	contactID, err := selectContact(req.Index, req.Id)
	if err != nil {
		return nil, err
	}

	if contactID != uuid.Nil {
		err = s.ContactService.RemoveByID(ctx, contactID)
	} else {
		err = s.ContactService.Remove(ctx, int(*req.Index))
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &walletv1.RemoveContactResponse{}, nil
}

// selectContact checks that exactly one of index or id is set. It returns the
// parsed id, or uuid.Nil when the index was given.
func selectContact(index *int32, id string) (uuid.UUID, error) {
	switch {
	case index == nil && id == "":
		return uuid.Nil, mapError(fmt.Errorf("%w: no contact selected", domain.ErrIndexOutOfRange))
	case index != nil && id != "":
		return uuid.Nil, status.Error(codes.InvalidArgument, "set either a contact index or a contact id, not both")
	case index != nil:
		return uuid.Nil, nil
	}

	contactID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid contact id format: %v", err)
	}
	if contactID == uuid.Nil {
		return uuid.Nil, mapError(fmt.Errorf("%w: %s", domain.ErrContactNotFound, id))
	}
	return contactID, nil
}

func movementToProto(m domain.Movement) *walletv1.Movement {
	return &walletv1.Movement{
		Id:     m.ID.String(),
		Kind:   string(m.Kind),
		Amount: domain.FormatAmount(m.Amount),
		Date:   m.Date.Format(domain.DateLayout),
		Detail: m.Detail,
	}
}

func contactToProto(index int, c domain.Contact) *walletv1.Contact {
	return &walletv1.Contact{
		Index:     int32(index),
		Id:        c.ID.String(),
		Name:      c.Name,
		Bank:      c.Bank,
		AccountId: c.AccountID,
		Alias:     c.Alias,
	}
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidAccountID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrIndexOutOfRange),
		errors.Is(err, domain.ErrContactNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrCorruptState):
		return status.Error(codes.DataLoss, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
