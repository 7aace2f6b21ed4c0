package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementKind represents the type of a ledger movement
type MovementKind string

const (
	MovementKindDeposit  MovementKind = "Depósito"
	MovementKindTransfer MovementKind = "Transferencia"
)

// DateLayout is the es-CL locale date-time format used to persist and show movement dates
const DateLayout = "02-01-2006, 15:04:05"

// DefaultDepositDetail is used when a deposit is recorded without a description.
const DefaultDepositDetail = "Depósito en efectivo/cuenta"

// MovementFilter selects which movements ListMovements returns
type MovementFilter string

const (
	MovementFilterAll           MovementFilter = "all"
	MovementFilterDepositsOnly  MovementFilter = "deposits"
	MovementFilterTransfersOnly MovementFilter = "transfers"
)

// ParseMovementFilter maps user input to a MovementFilter. Empty input means all.
func ParseMovementFilter(s string) (MovementFilter, error) {
	switch s {
	case "", "all", "todos":
		return MovementFilterAll, nil
	case "deposits", "deposit", string(MovementKindDeposit):
		return MovementFilterDepositsOnly, nil
	case "transfers", "transfer", string(MovementKindTransfer):
		return MovementFilterTransfersOnly, nil
	default:
		return "", errors.New("invalid movement filter: " + s)
	}
}

// Matches reports whether a movement of kind k passes the filter.
func (f MovementFilter) Matches(k MovementKind) bool {
	switch f {
	case MovementFilterDepositsOnly:
		return k == MovementKindDeposit
	case MovementFilterTransfersOnly:
		return k == MovementKindTransfer
	default:
		return true
	}
}

// Movement is a single recorded ledger entry. Immutable once appended.
type Movement struct {
	ID     uuid.UUID
	Kind   MovementKind
	Amount decimal.Decimal // signed: deposits positive, transfers negative
	Date   time.Time
	Detail string
}

// NewMovement builds a movement from a positive magnitude. The sign comes from kind only.
func NewMovement(kind MovementKind, magnitude decimal.Decimal, date time.Time, detail string) (Movement, error) {
	amount, err := ValidateAmount(magnitude)
	if err != nil {
		return Movement{}, err
	}
	switch kind {
	case MovementKindDeposit:
	case MovementKindTransfer:
		amount = amount.Neg()
	default:
		return Movement{}, errors.New("movement kind must be Depósito or Transferencia")
	}
	return Movement{
		ID:     uuid.New(),
		Kind:   kind,
		Amount: amount,
		Date:   date,
		Detail: detail,
	}, nil
}

// Validate checks that the amount sign agrees with the kind.
func (m *Movement) Validate() error {
	switch m.Kind {
	case MovementKindDeposit:
		if !m.Amount.IsPositive() {
			return errors.New("deposit movement amount must be positive")
		}
	case MovementKindTransfer:
		if !m.Amount.IsNegative() {
			return errors.New("transfer movement amount must be negative")
		}
	default:
		return errors.New("movement kind must be Depósito or Transferencia")
	}
	return nil
}
