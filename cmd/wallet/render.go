package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/simaogato/wallet-backend/internal/usecase/contactbook"
	"github.com/simaogato/wallet-backend/internal/usecase/dashboard"
)

const noContactsMessage = "No hay contactos registrados."

var titleStyle = lipgloss.NewStyle().Bold(true)

func renderHistory(view *dashboard.HistoryView) string {
	var b strings.Builder
	writeSection(&b, "Ingresos", view.Incomes)
	writeSection(&b, "Egresos", view.Expenses)
	return b.String()
}

func writeSection(b *strings.Builder, title string, section dashboard.HistorySection) {
	if !section.Visible {
		return
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	if len(section.Rows) == 0 {
		b.WriteString(section.Empty)
		b.WriteString("\n\n")
		return
	}

	rows := make([][]string, 0, len(section.Rows))
	for _, r := range section.Rows {
		rows = append(rows, []string{r.Date, r.Detail, r.Display})
	}
	b.WriteString(table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Fecha", "Detalle", "Monto").
		Rows(rows...).
		String())
	b.WriteString("\n\n")
}

func renderContacts(contacts []contactbook.IndexedContact) string {
	if len(contacts) == 0 {
		return noContactsMessage + "\n"
	}

	rows := make([][]string, 0, len(contacts))
	for _, ic := range contacts {
		rows = append(rows, []string{
			strconv.Itoa(ic.Index),
			ic.Contact.Name,
			ic.Contact.Bank,
			ic.Contact.AccountID,
			ic.Contact.Alias,
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Nombre", "Banco", "CBU", "Alias").
		Rows(rows...).
		String() + "\n"
}
