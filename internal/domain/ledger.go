package domain

import (
	"github.com/shopspring/decimal"
)

// LedgerRecord is the balance and the movement history, persisted together as one logical record.
type LedgerRecord struct {
	Balance   decimal.Decimal
	Movements []Movement
}

// Clone returns a copy whose movement slice can be appended to without touching r.
func (r *LedgerRecord) Clone() *LedgerRecord {
	movements := make([]Movement, len(r.Movements))
	copy(movements, r.Movements)
	return &LedgerRecord{Balance: r.Balance, Movements: movements}
}

// Replay sums the signed movement amounts, rounding after each step.
func (r *LedgerRecord) Replay() decimal.Decimal {
	total := decimal.Zero
	for _, m := range r.Movements {
		total = RoundAmount(total.Add(m.Amount))
	}
	return total
}
