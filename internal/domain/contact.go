package domain

import (
	"github.com/google/uuid"
)

// AccountIDLength is the exact number of digits a contact account id must have.
const AccountIDLength = 6

// Contact is a saved transfer recipient.
// Position in the contact list is display order only; ID is the stable reference.
type Contact struct {
	ID        uuid.UUID
	Name      string
	Bank      string
	AccountID string // CBU/CVU, six digits
	Alias     string
}

// Validate ensures the contact adheres to domain rules
func (c *Contact) Validate() error {
	return ValidateAccountID(c.AccountID)
}

// ValidateAccountID returns ErrInvalidAccountID unless id is exactly six ASCII digits.
func ValidateAccountID(id string) error {
	if len(id) != AccountIDLength {
		return ErrInvalidAccountID
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return ErrInvalidAccountID
		}
	}
	return nil
}
