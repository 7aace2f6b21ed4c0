package kvstore

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wallet-backend/internal/domain"
)

// ledgerRepository implements domain.LedgerRepository
type ledgerRepository struct {
	store domain.KeyValueStore
}

// NewLedgerRepository creates a new ledger repository over store
func NewLedgerRepository(store domain.KeyValueStore) domain.LedgerRepository {
	return &ledgerRepository{store: store}
}

// Load reads "saldo" and "movimientos"; absent keys read as zero and empty
func (r *ledgerRepository) Load(ctx context.Context) (*domain.LedgerRecord, error) {
	record := &domain.LedgerRecord{
		Balance:   decimal.Zero,
		Movements: []domain.Movement{},
	}

	rawBalance, ok, err := r.store.GetItem(ctx, KeyBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	if ok {
		if record.Balance, err = decodeBalance(rawBalance); err != nil {
			return nil, err
		}
	}

	rawMovements, ok, err := r.store.GetItem(ctx, KeyMovements)
	if err != nil {
		return nil, fmt.Errorf("failed to get movements: %w", err)
	}
	if ok {
		if record.Movements, err = decodeMovements(rawMovements); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// Save writes balance and movements in one batch
func (r *ledgerRepository) Save(ctx context.Context, record *domain.LedgerRecord) error {
	if record.Balance.IsNegative() {
		return fmt.Errorf("refusing to persist negative balance %s", record.Balance)
	}

	movements, err := encodeMovements(record.Movements)
	if err != nil {
		return err
	}

	err = r.store.SetItems(ctx, map[string]string{
		KeyBalance:   encodeBalance(record.Balance),
		KeyMovements: movements,
	})
	if err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	return nil
}

// Exists reports whether "saldo" has been written
func (r *ledgerRepository) Exists(ctx context.Context) (bool, error) {
	_, ok, err := r.store.GetItem(ctx, KeyBalance)
	if err != nil {
		return false, fmt.Errorf("failed to get balance: %w", err)
	}
	return ok, nil
}
