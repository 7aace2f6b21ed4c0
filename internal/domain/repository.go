package domain

import (
	"context"
)

// KeyValueStore is the persistent string store the wallet records live in.
// It mirrors browser localStorage: flat string keys, string values.
type KeyValueStore interface {
	// GetItem returns the value stored under key; ok is false if the key is absent
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItems writes all items as one batch: either every key is updated or none is
	SetItems(ctx context.Context, items map[string]string) error
}

// LedgerRepository defines persistence of the balance and movement history
type LedgerRepository interface {
	// Load reads the current record. An absent balance reads as zero, absent movements as empty
	Load(ctx context.Context) (*LedgerRecord, error)

	// Save persists balance and movements together in one batch
	Save(ctx context.Context, record *LedgerRecord) error

	// Exists reports whether a balance has ever been stored
	Exists(ctx context.Context) (bool, error)
}

// ContactRepository defines persistence of the ordered contact list
type ContactRepository interface {
	// Load reads the contact list in insertion order
	Load(ctx context.Context) ([]Contact, error)

	// Save replaces the persisted contact list
	Save(ctx context.Context, contacts []Contact) error
}
