package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wallet-backend/internal/domain"
)

// LedgerService owns the balance and the movement history.
// All operations on the ledger record are serialised by one lock, held for the
// whole load-modify-save cycle.
type LedgerService struct {
	Repo domain.LedgerRepository

	// Now stamps new movements; replaceable in tests
	Now func() time.Time

	mu sync.Mutex
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(repo domain.LedgerRepository) *LedgerService {
	return &LedgerService{
		Repo: repo,
		Now:  time.Now,
	}
}

// GetBalance returns the stored balance, zero when none was ever written
func (s *LedgerService) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.Repo.Load(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return record.Balance, nil
}

// Deposit credits amount and records a Deposit movement in the same write.
// An empty detail becomes domain.DefaultDepositDetail.
func (s *LedgerService) Deposit(ctx context.Context, amount decimal.Decimal, detail string) (decimal.Decimal, error) {
	if detail == "" {
		detail = domain.DefaultDepositDetail
	}

	var balance decimal.Decimal
	err := s.Atomically(ctx, func(tx *Tx) error {
		var err error
		if balance, err = tx.Deposit(amount); err != nil {
			return err
		}
		_, err = tx.RecordMovement(domain.MovementKindDeposit, amount, detail)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// Withdraw debits amount without recording a movement; the caller records one
// with its own detail. Use Atomically to do both in one write.
func (s *LedgerService) Withdraw(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.Atomically(ctx, func(tx *Tx) error {
		var err error
		balance, err = tx.Withdraw(amount)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// RecordMovement appends a movement. amount is a positive magnitude; the stored
// sign is taken from kind.
func (s *LedgerService) RecordMovement(ctx context.Context, kind domain.MovementKind, amount decimal.Decimal, detail string) error {
	return s.Atomically(ctx, func(tx *Tx) error {
		_, err := tx.RecordMovement(kind, amount, detail)
		return err
	})
}

// ListMovements returns a fresh snapshot of the history, most recent first
func (s *LedgerService) ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.Repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Movement, 0, len(record.Movements))
	for i := len(record.Movements) - 1; i >= 0; i-- {
		if filter.Matches(record.Movements[i].Kind) {
			out = append(out, record.Movements[i])
		}
	}
	return out, nil
}

// SeedIfAbsent writes initial as the balance with an empty history when no
// balance has been stored yet. It reports whether it wrote anything.
func (s *LedgerService) SeedIfAbsent(ctx context.Context, initial decimal.Decimal) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.Repo.Exists(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	record := &domain.LedgerRecord{
		Balance:   domain.RoundAmount(initial),
		Movements: []domain.Movement{},
	}
	if err := s.Repo.Save(ctx, record); err != nil {
		return false, fmt.Errorf("failed to seed ledger: %w", err)
	}
	return true, nil
}

// Atomically runs fn against a private copy of the ledger record while holding
// the ledger lock. The copy is persisted in a single batch only when fn returns
// nil and changed something; otherwise the stored record is left untouched.
func (s *LedgerService) Atomically(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.Repo.Load(ctx)
	if err != nil {
		return err
	}

	tx := &Tx{record: record.Clone(), now: s.Now()}
	if err := fn(tx); err != nil {
		return err
	}
	if !tx.dirty {
		return nil
	}

	if err := s.Repo.Save(ctx, tx.record); err != nil {
		return fmt.Errorf("failed to persist ledger: %w", err)
	}
	return nil
}
