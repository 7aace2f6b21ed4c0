package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wallet-backend/internal/domain"
)

// Tx is a pending change to the ledger record, valid only inside Atomically.
type Tx struct {
	record *domain.LedgerRecord
	now    time.Time
	dirty  bool
}

// Balance returns the balance including changes made so far in this Tx
func (tx *Tx) Balance() decimal.Decimal {
	return tx.record.Balance
}

// Deposit adds amount (rounded to two digits) to the balance
func (tx *Tx) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded, err := domain.ValidateAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}

	balance := domain.RoundAmount(tx.record.Balance.Add(rounded))
	if err := domain.CheckAmountRange(balance); err != nil {
		return decimal.Zero, err
	}

	tx.record.Balance = balance
	tx.dirty = true
	return tx.record.Balance, nil
}

// Withdraw subtracts amount from the balance. The comparison uses the stored
// two-digit balance and the rounded amount; nothing changes on failure.
func (tx *Tx) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded, err := domain.ValidateAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}
	if rounded.GreaterThan(tx.record.Balance) {
		return decimal.Zero, domain.ErrInsufficientFunds
	}

	tx.record.Balance = domain.RoundAmount(tx.record.Balance.Sub(rounded))
	tx.dirty = true
	return tx.record.Balance, nil
}

// RecordMovement appends a movement stamped with the Tx time
func (tx *Tx) RecordMovement(kind domain.MovementKind, amount decimal.Decimal, detail string) (domain.Movement, error) {
	m, err := domain.NewMovement(kind, amount, tx.now, detail)
	if err != nil {
		return domain.Movement{}, err
	}

	tx.record.Movements = append(tx.record.Movements, m)
	tx.dirty = true
	return m, nil
}
