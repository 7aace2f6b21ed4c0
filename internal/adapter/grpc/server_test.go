package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	walletv1 "github.com/simaogato/wallet-backend/internal/adapter/grpc/wallet/v1"
	"github.com/simaogato/wallet-backend/internal/adapter/repository/kvstore"
	"github.com/simaogato/wallet-backend/internal/adapter/storage/memory"
	"github.com/simaogato/wallet-backend/internal/domain"
	"github.com/simaogato/wallet-backend/internal/usecase/contactbook"
	"github.com/simaogato/wallet-backend/internal/usecase/dashboard"
	"github.com/simaogato/wallet-backend/internal/usecase/ledger"
	"github.com/simaogato/wallet-backend/internal/usecase/session"
	"github.com/simaogato/wallet-backend/internal/usecase/transfer"
)

const testToken = "test-token"

func newTestClient(t *testing.T) walletv1.WalletServiceClient {
	t.Helper()

	store := memory.NewStore(nil)
	ledgerRepo := kvstore.NewLedgerRepository(store)
	ledgerService := ledger.NewLedgerService(ledgerRepo)
	contactService := contactbook.NewContactBookService(kvstore.NewContactRepository(store))
	sessionService := session.NewSessionService(ledgerService,
		session.Credentials{Email: "test@example.com", Password: "0000"},
		decimal.RequireFromString("100000.00"))

	server := NewServer(
		sessionService,
		ledgerService,
		contactService,
		transfer.NewTransferService(ledgerService, contactService),
		dashboard.NewDashboardService(ledgerService, contactService),
	)

	lis := bufconn.Listen(1024 * 1024)
	grpcServer := grpclib.NewServer(grpclib.UnaryInterceptor(AuthInterceptor(testToken)))
	walletv1.RegisterWalletServiceServer(grpcServer, server)
	go func() {
		_ = grpcServer.Serve(lis)
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpclib.NewClient("passthrough:///bufnet",
		grpclib.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpclib.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return walletv1.NewWalletServiceClient(conn)
}

func authed() context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), AuthorizationHeader, testToken)
}

func login(t *testing.T, client walletv1.WalletServiceClient) {
	t.Helper()
	resp, err := client.Login(authed(), &walletv1.LoginRequest{Email: "test@example.com", Password: "0000"})
	require.NoError(t, err)
	assert.Equal(t, "100000.00", resp.Balance)
}

func TestServer_RequiresToken(t *testing.T) {
	client := newTestClient(t)

	_, err := client.GetBalance(context.Background(), &walletv1.GetBalanceRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestServer_Login(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Login(authed(), &walletv1.LoginRequest{Email: "test@example.com", Password: "1234"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	login(t, client)

	balance, err := client.GetBalance(authed(), &walletv1.GetBalanceRequest{})
	require.NoError(t, err)
	assert.Equal(t, "100000.00", balance.Balance)
	assert.Equal(t, "$100.000,00", balance.Display)
}

func TestServer_DepositAndTransfer(t *testing.T) {
	client := newTestClient(t)
	login(t, client)
	ctx := authed()

	deposit, err := client.Deposit(ctx, &walletv1.DepositRequest{Amount: "500"})
	require.NoError(t, err)
	assert.Equal(t, "100500.00", deposit.Balance)
	assert.Equal(t, "Depósito de $500,00 realizado. Nuevo saldo: $100.500,00", deposit.Message)

	added, err := client.AddContact(ctx, &walletv1.AddContactRequest{
		Name: "Ana", Bank: "BancoX", AccountId: "123456", Alias: "ana",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(0), added.Contact.Index)
	assert.NotEmpty(t, added.Contact.Id)

	sent, err := client.Transfer(ctx, &walletv1.TransferRequest{ContactIndex: walletv1.Int32(0), Amount: "2000"})
	require.NoError(t, err)
	assert.Equal(t, "98500.00", sent.Balance)
	assert.Equal(t, "Ana", sent.ContactName)
	assert.Equal(t, added.Contact.Id, sent.ContactId)
	assert.Equal(t, "-2000.00", sent.Movement.Amount)
	assert.Equal(t, "Transferencia a Ana (ana)", sent.Movement.Detail)

	byID, err := client.Transfer(ctx, &walletv1.TransferRequest{ContactId: added.Contact.Id, Amount: "0.50"})
	require.NoError(t, err)
	assert.Equal(t, "98499.50", byID.Balance)

	all, err := client.ListMovements(ctx, &walletv1.ListMovementsRequest{})
	require.NoError(t, err)
	require.Len(t, all.Movements, 3)
	assert.Equal(t, byID.Movement.Id, all.Movements[0].Id)
	assert.Equal(t, string(domain.MovementKindDeposit), all.Movements[2].Kind)

	deposits, err := client.ListMovements(ctx, &walletv1.ListMovementsRequest{Filter: "deposits"})
	require.NoError(t, err)
	require.Len(t, deposits.Movements, 1)
	assert.Equal(t, "500.00", deposits.Movements[0].Amount)
}

func TestServer_ErrorCodes(t *testing.T) {
	client := newTestClient(t)
	login(t, client)
	ctx := authed()

	_, err := client.AddContact(ctx, &walletv1.AddContactRequest{Name: "Ana", Bank: "BancoX", AccountId: "123456", Alias: "ana"})
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{"Deposit Non-numeric", func() error {
			_, err := client.Deposit(ctx, &walletv1.DepositRequest{Amount: "abc"})
			return err
		}, codes.InvalidArgument},
		{"Deposit Huge Exponent", func() error {
			_, err := client.Deposit(ctx, &walletv1.DepositRequest{Amount: "1e50000000"})
			return err
		}, codes.InvalidArgument},
		{"Deposit Zero", func() error {
			_, err := client.Deposit(ctx, &walletv1.DepositRequest{Amount: "0"})
			return err
		}, codes.InvalidArgument},
		{"Transfer Insufficient Funds", func() error {
			_, err := client.Transfer(ctx, &walletv1.TransferRequest{ContactIndex: walletv1.Int32(0), Amount: "100000.01"})
			return err
		}, codes.FailedPrecondition},
		{"Transfer Stale Index", func() error {
			_, err := client.Transfer(ctx, &walletv1.TransferRequest{ContactIndex: walletv1.Int32(3), Amount: "1"})
			return err
		}, codes.NotFound},
		{"Transfer Bad Contact ID", func() error {
			_, err := client.Transfer(ctx, &walletv1.TransferRequest{ContactId: "nope", Amount: "1"})
			return err
		}, codes.InvalidArgument},
		{"Add Contact Bad Account", func() error {
			_, err := client.AddContact(ctx, &walletv1.AddContactRequest{Name: "Bo", Bank: "Y", AccountId: "12a456", Alias: "b"})
			return err
		}, codes.InvalidArgument},
		{"Remove Out Of Range", func() error {
			_, err := client.RemoveContact(ctx, &walletv1.RemoveContactRequest{Index: walletv1.Int32(5)})
			return err
		}, codes.NotFound},
		{"Transfer Without Recipient", func() error {
			_, err := client.Transfer(ctx, &walletv1.TransferRequest{Amount: "2000"})
			return err
		}, codes.NotFound},
		{"Transfer With Index And ID", func() error {
			_, err := client.Transfer(ctx, &walletv1.TransferRequest{ContactIndex: walletv1.Int32(0), ContactId: uuid.NewString(), Amount: "1"})
			return err
		}, codes.InvalidArgument},
		{"Transfer Nil Contact ID", func() error {
			_, err := client.Transfer(ctx, &walletv1.TransferRequest{ContactId: uuid.Nil.String(), Amount: "1"})
			return err
		}, codes.NotFound},
		{"Remove Without Selection", func() error {
			_, err := client.RemoveContact(ctx, &walletv1.RemoveContactRequest{})
			return err
		}, codes.NotFound},
		{"List Movements Bad Filter", func() error {
			_, err := client.ListMovements(ctx, &walletv1.ListMovementsRequest{Filter: "withdrawals"})
			return err
		}, codes.InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(tt.call()))
		})
	}

	balance, err := client.GetBalance(ctx, &walletv1.GetBalanceRequest{})
	require.NoError(t, err)
	assert.Equal(t, "100000.00", balance.Balance)

	contacts, err := client.ListContacts(ctx, &walletv1.ListContactsRequest{})
	require.NoError(t, err)
	assert.Len(t, contacts.Contacts, 1)
}

func TestServer_Contacts(t *testing.T) {
	client := newTestClient(t)
	login(t, client)
	ctx := authed()

	for i, name := range []string{"Ana", "Bruno", "Carla"} {
		_, err := client.AddContact(ctx, &walletv1.AddContactRequest{
			Name: name, Bank: "BancoX", AccountId: fmt.Sprintf("00000%d", i), Alias: name,
		})
		require.NoError(t, err)
	}

	found, err := client.ListContacts(ctx, &walletv1.ListContactsRequest{Query: "bru"})
	require.NoError(t, err)
	require.Len(t, found.Contacts, 1)
	assert.Equal(t, int32(1), found.Contacts[0].Index)

	_, err = client.RemoveContact(ctx, &walletv1.RemoveContactRequest{Id: found.Contacts[0].Id})
	require.NoError(t, err)
	_, err = client.RemoveContact(ctx, &walletv1.RemoveContactRequest{Index: walletv1.Int32(0)})
	require.NoError(t, err)

	all, err := client.ListContacts(ctx, &walletv1.ListContactsRequest{})
	require.NoError(t, err)
	require.Len(t, all.Contacts, 1)
	assert.Equal(t, "Carla", all.Contacts[0].Name)
	assert.Equal(t, int32(0), all.Contacts[0].Index)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{domain.ErrInvalidAmount, codes.InvalidArgument},
		{fmt.Errorf("failed to add contact: %w", domain.ErrInvalidAccountID), codes.InvalidArgument},
		{domain.ErrInsufficientFunds, codes.FailedPrecondition},
		{domain.ErrIndexOutOfRange, codes.NotFound},
		{domain.ErrContactNotFound, codes.NotFound},
		{fmt.Errorf("failed to load ledger: %w", domain.ErrCorruptState), codes.DataLoss},
		{domain.ErrInvalidCredentials, codes.Unauthenticated},
		{errors.New("disk on fire"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(mapError(tt.err)))
		})
	}
	assert.NoError(t, mapError(nil))
}
