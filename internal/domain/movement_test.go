package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovement_SignFromKind(t *testing.T) {
	now := time.Now()

	deposit, err := NewMovement(MovementKindDeposit, decimal.RequireFromString("500"), now, "cash")
	require.NoError(t, err)
	assert.Equal(t, "500.00", FormatAmount(deposit.Amount))
	assert.NoError(t, deposit.Validate())

	transfer, err := NewMovement(MovementKindTransfer, decimal.RequireFromString("2000"), now, "to Ana")
	require.NoError(t, err)
	assert.Equal(t, "-2000.00", FormatAmount(transfer.Amount))
	assert.NoError(t, transfer.Validate())
}

func TestNewMovement_RejectsNonPositiveMagnitude(t *testing.T) {
	for _, amount := range []string{"0", "-10", "0.001"} {
		_, err := NewMovement(MovementKindTransfer, decimal.RequireFromString(amount), time.Now(), "")
		assert.ErrorIs(t, err, ErrInvalidAmount, amount)
	}
}

func TestNewMovement_UnknownKind(t *testing.T) {
	_, err := NewMovement(MovementKind("Retiro"), decimal.NewFromInt(1), time.Now(), "")
	assert.Error(t, err)
}

func TestMovement_Validate(t *testing.T) {
	tests := []struct {
		name    string
		kind    MovementKind
		amount  string
		wantErr bool
	}{
		{"Positive deposit", MovementKindDeposit, "10.00", false},
		{"Negative deposit", MovementKindDeposit, "-10.00", true},
		{"Negative transfer", MovementKindTransfer, "-10.00", false},
		{"Positive transfer", MovementKindTransfer, "10.00", true},
		{"Zero transfer", MovementKindTransfer, "0", true},
		{"Unknown kind", MovementKind("x"), "10.00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Movement{Kind: tt.kind, Amount: decimal.RequireFromString(tt.amount)}
			if tt.wantErr {
				assert.Error(t, m.Validate())
			} else {
				assert.NoError(t, m.Validate())
			}
		})
	}
}

func TestMovementFilter(t *testing.T) {
	f, err := ParseMovementFilter("")
	require.NoError(t, err)
	assert.Equal(t, MovementFilterAll, f)

	f, err = ParseMovementFilter("Depósito")
	require.NoError(t, err)
	assert.Equal(t, MovementFilterDepositsOnly, f)
	assert.True(t, f.Matches(MovementKindDeposit))
	assert.False(t, f.Matches(MovementKindTransfer))

	f, err = ParseMovementFilter("transfers")
	require.NoError(t, err)
	assert.True(t, f.Matches(MovementKindTransfer))
	assert.False(t, f.Matches(MovementKindDeposit))

	_, err = ParseMovementFilter("withdrawals")
	assert.Error(t, err)
}

func TestLedgerRecord_Replay(t *testing.T) {
	record := &LedgerRecord{
		Movements: []Movement{
			{Kind: MovementKindDeposit, Amount: decimal.RequireFromString("100000.00")},
			{Kind: MovementKindTransfer, Amount: decimal.RequireFromString("-2000.00")},
			{Kind: MovementKindDeposit, Amount: decimal.RequireFromString("0.10")},
			{Kind: MovementKindDeposit, Amount: decimal.RequireFromString("0.20")},
		},
	}
	assert.Equal(t, "98000.30", FormatAmount(record.Replay()))

	clone := record.Clone()
	clone.Movements = append(clone.Movements, Movement{Kind: MovementKindDeposit, Amount: decimal.NewFromInt(1)})
	assert.Len(t, record.Movements, 4)
}
