package dashboard

import (
	"context"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wallet-backend/internal/domain"
	"github.com/simaogato/wallet-backend/internal/usecase/contactbook"
	"github.com/simaogato/wallet-backend/internal/usecase/ledger"
	"github.com/simaogato/wallet-backend/internal/usecase/transfer"
)

// EmptyHistoryMessage is shown in a history section with no rows
const EmptyHistoryMessage = "No hay movimientos registrados."

// es-CL peso display: "$100.000,00"
var formatter = money.NewFormatter(domain.AmountPlaces, ",", ".", "$", "$1")

// FormatAmount renders d for display, e.g. 100000 -> "$100.000,00"
func FormatAmount(d decimal.Decimal) string {
	minor := domain.RoundAmount(d).Shift(domain.AmountPlaces)
	return formatter.Format(minor.IntPart())
}

// BalanceView is the balance as shown on the menu screen
type BalanceView struct {
	Amount  decimal.Decimal
	Display string
}

// HistoryRow is one rendered movement
type HistoryRow struct {
	ID      uuid.UUID
	Kind    domain.MovementKind
	Detail  string
	Date    string
	Amount  decimal.Decimal // absolute value
	Display string
}

// HistorySection is one of the two history tables
type HistorySection struct {
	Visible bool
	Rows    []HistoryRow
	Empty   string // EmptyHistoryMessage when visible with no rows
}

// HistoryView splits the movements into incomes (deposits) and expenses (transfers)
type HistoryView struct {
	Incomes  HistorySection
	Expenses HistorySection
}

// RecipientOption is one entry of the transfer recipient selector
type RecipientOption struct {
	Index int
	ID    uuid.UUID
	Label string
}

// DashboardService builds the read models the presentation layers render
type DashboardService struct {
	Ledger   *ledger.LedgerService
	Contacts *contactbook.ContactBookService
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(ledgerService *ledger.LedgerService, contacts *contactbook.ContactBookService) *DashboardService {
	return &DashboardService{
		Ledger:   ledgerService,
		Contacts: contacts,
	}
}

// Balance returns the current balance with its display form
func (s *DashboardService) Balance(ctx context.Context) (*BalanceView, error) {
	balance, err := s.Ledger.GetBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return &BalanceView{Amount: balance, Display: FormatAmount(balance)}, nil
}

// History renders the movement history for filter, most recent first.
// Sections excluded by the filter are not visible.
func (s *DashboardService) History(ctx context.Context, filter domain.MovementFilter) (*HistoryView, error) {
	movements, err := s.Ledger.ListMovements(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}

	view := &HistoryView{
		Incomes:  HistorySection{Visible: filter != domain.MovementFilterTransfersOnly, Rows: []HistoryRow{}},
		Expenses: HistorySection{Visible: filter != domain.MovementFilterDepositsOnly, Rows: []HistoryRow{}},
	}

	for _, m := range movements {
		abs := m.Amount.Abs()
		row := HistoryRow{
			ID:      m.ID,
			Kind:    m.Kind,
			Detail:  m.Detail,
			Date:    m.Date.Format(domain.DateLayout),
			Amount:  abs,
			Display: FormatAmount(abs),
		}
		if m.Kind == domain.MovementKindTransfer {
			view.Expenses.Rows = append(view.Expenses.Rows, row)
		} else {
			view.Incomes.Rows = append(view.Incomes.Rows, row)
		}
	}

	for _, section := range []*HistorySection{&view.Incomes, &view.Expenses} {
		if section.Visible && len(section.Rows) == 0 {
			section.Empty = EmptyHistoryMessage
		}
	}

	return view, nil
}

// RecipientOptions lists the contacts as transfer targets, labelled "Name (alias - bank)"
func (s *DashboardService) RecipientOptions(ctx context.Context) ([]RecipientOption, error) {
	contacts, err := s.Contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	options := make([]RecipientOption, 0, len(contacts))
	for i, c := range contacts {
		options = append(options, RecipientOption{
			Index: i,
			ID:    c.ID,
			Label: fmt.Sprintf("%s (%s - %s)", c.Name, c.Alias, c.Bank),
		})
	}
	return options, nil
}

// DepositMessage is the confirmation shown after a deposit
func DepositMessage(amount, balance decimal.Decimal) string {
	return fmt.Sprintf("Depósito de %s realizado. Nuevo saldo: %s", FormatAmount(amount), FormatAmount(balance))
}

// TransferMessage is the confirmation shown after a transfer
func TransferMessage(receipt *transfer.Receipt) string {
	return fmt.Sprintf("¡Transacción Exitosa! Se enviaron %s a %s. Nuevo Saldo: %s",
		FormatAmount(receipt.Amount), receipt.ContactName, FormatAmount(receipt.NewBalance))
}
