package session

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wallet-backend/internal/domain"
	"github.com/simaogato/wallet-backend/internal/usecase/ledger"
)

// Credentials is the single accepted email/password pair
type Credentials struct {
	Email    string
	Password string
}

// SessionService checks the login pair and seeds the wallet on first login
type SessionService struct {
	Ledger         *ledger.LedgerService
	Credentials    Credentials
	InitialBalance decimal.Decimal
}

// NewSessionService creates a new SessionService instance
func NewSessionService(ledgerService *ledger.LedgerService, credentials Credentials, initialBalance decimal.Decimal) *SessionService {
	return &SessionService{
		Ledger:         ledgerService,
		Credentials:    credentials,
		InitialBalance: initialBalance,
	}
}

// Login accepts only the configured pair and seeds the wallet on success
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.Credentials.Email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.Credentials.Password)) == 1
	if !emailOK || !passwordOK {
		return domain.ErrInvalidCredentials
	}
	return s.Seed(ctx)
}

// Seed writes the initial balance and an empty movement list if no balance
// exists yet. An existing balance is left alone.
func (s *SessionService) Seed(ctx context.Context) error {
	if _, err := s.Ledger.SeedIfAbsent(ctx, s.InitialBalance); err != nil {
		return fmt.Errorf("failed to seed wallet: %w", err)
	}
	return nil
}
