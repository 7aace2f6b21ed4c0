// Package kvstore maps the wallet records onto a domain.KeyValueStore.
//
// The layout is the one the browser front end wrote into localStorage:
// "saldo" holds the balance as a two-decimal string, "movimientos" and
// "destinatarios" hold JSON arrays. Every read is validated; anything that does
// not decode cleanly is reported as domain.ErrCorruptState.
package kvstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wallet-backend/internal/domain"
)

// Persisted keys
const (
	KeyBalance   = "saldo"
	KeyMovements = "movimientos"
	KeyContacts  = "destinatarios"
)

// legacyDateLayout accepts records written without the comma separator
const legacyDateLayout = "02-01-2006 15:04:05"

// Namespaces for deterministic IDs of records persisted before IDs existed
var (
	movementNamespace = uuid.MustParse("6f1d3b2a-4c1e-4a57-9b0e-6d1f0b8a2c01")
	contactNamespace  = uuid.MustParse("6f1d3b2a-4c1e-4a57-9b0e-6d1f0b8a2c02")
)

// amount is a decimal that always serialises as a quoted two-decimal string
// and accepts either a quoted string or a bare JSON number.
type amount decimal.Decimal

func (a amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(domain.FormatAmount(decimal.Decimal(a)))
}

func (a *amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	if err := domain.CheckAmountRange(d); err != nil {
		return err
	}
	*a = amount(d)
	return nil
}

// movementRecord is one element of "movimientos"
type movementRecord struct {
	ID      string `json:"id,omitempty"`
	Tipo    string `json:"tipo"`
	Monto   amount `json:"monto"`
	Fecha   string `json:"fecha"`
	Detalle string `json:"detalle"`
}

// contactRecord is one element of "destinatarios"
type contactRecord struct {
	ID     string `json:"id,omitempty"`
	Nombre string `json:"nombre"`
	Banco  string `json:"banco"`
	Cbu    string `json:"cbu"`
	Alias  string `json:"alias"`
}

func corrupt(key string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", domain.ErrCorruptState, key, fmt.Sprintf(format, args...))
}

// decodeBalance parses the "saldo" value
func decodeBalance(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, corrupt(KeyBalance, "%q is not a decimal", raw)
	}
	if err := domain.CheckAmountRange(d); err != nil {
		return decimal.Zero, corrupt(KeyBalance, "%v", err)
	}
	if d.IsNegative() {
		return decimal.Zero, corrupt(KeyBalance, "negative balance %s", raw)
	}
	return domain.RoundAmount(d), nil
}

func encodeBalance(d decimal.Decimal) string {
	return domain.FormatAmount(domain.RoundAmount(d))
}

// decodeJSONArray rejects anything but a JSON array (null counts as empty)
func decodeJSONArray(key, raw string, dst any) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return corrupt(key, "%v", err)
	}
	if dec.More() {
		return corrupt(key, "trailing data after array")
	}
	return nil
}

func decodeMovements(raw string) ([]domain.Movement, error) {
	var records []movementRecord
	if err := decodeJSONArray(KeyMovements, raw, &records); err != nil {
		return nil, err
	}

	movements := make([]domain.Movement, 0, len(records))
	for i, r := range records {
		m := domain.Movement{
			Kind:   domain.MovementKind(r.Tipo),
			Amount: domain.RoundAmount(decimal.Decimal(r.Monto)),
			Detail: r.Detalle,
		}

		date, err := parseDate(r.Fecha)
		if err != nil {
			return nil, corrupt(KeyMovements, "entry %d: unparsable fecha %q", i, r.Fecha)
		}
		m.Date = date

		if err := m.Validate(); err != nil {
			return nil, corrupt(KeyMovements, "entry %d: %v", i, err)
		}

		id, err := recordID(r.ID, movementNamespace, i, r.Fecha+"|"+r.Detalle)
		if err != nil {
			return nil, corrupt(KeyMovements, "entry %d: %v", i, err)
		}
		m.ID = id

		movements = append(movements, m)
	}
	return movements, nil
}

func encodeMovements(movements []domain.Movement) (string, error) {
	records := make([]movementRecord, 0, len(movements))
	for _, m := range movements {
		records = append(records, movementRecord{
			ID:      m.ID.String(),
			Tipo:    string(m.Kind),
			Monto:   amount(m.Amount),
			Fecha:   m.Date.In(time.Local).Format(domain.DateLayout),
			Detalle: m.Detail,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to encode movements: %w", err)
	}
	return string(data), nil
}

func decodeContacts(raw string) ([]domain.Contact, error) {
	var records []contactRecord
	if err := decodeJSONArray(KeyContacts, raw, &records); err != nil {
		return nil, err
	}

	contacts := make([]domain.Contact, 0, len(records))
	for i, r := range records {
		id, err := recordID(r.ID, contactNamespace, i, r.Cbu)
		if err != nil {
			return nil, corrupt(KeyContacts, "entry %d: %v", i, err)
		}
		if err := domain.ValidateAccountID(r.Cbu); err != nil {
			return nil, corrupt(KeyContacts, "entry %d: %v", i, err)
		}
		contacts = append(contacts, domain.Contact{
			ID:        id,
			Name:      r.Nombre,
			Bank:      r.Banco,
			AccountID: r.Cbu,
			Alias:     r.Alias,
		})
	}
	return contacts, nil
}

func encodeContacts(contacts []domain.Contact) (string, error) {
	records := make([]contactRecord, 0, len(contacts))
	for _, c := range contacts {
		records = append(records, contactRecord{
			ID:     c.ID.String(),
			Nombre: c.Name,
			Banco:  c.Bank,
			Cbu:    c.AccountID,
			Alias:  c.Alias,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to encode contacts: %w", err)
	}
	return string(data), nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateLayout, s, time.Local)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation(legacyDateLayout, s, time.Local)
}

// recordID parses a stored ID, or derives a stable one for records written without it
func recordID(stored string, namespace uuid.UUID, position int, salt string) (uuid.UUID, error) {
	if stored != "" {
		return uuid.Parse(stored)
	}
	return uuid.NewSHA1(namespace, []byte(fmt.Sprintf("%d|%s", position, salt))), nil
}
