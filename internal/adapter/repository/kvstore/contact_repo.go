package kvstore

import (
	"context"
	"fmt"

	"github.com/simaogato/wallet-backend/internal/domain"
)

// contactRepository implements domain.ContactRepository
type contactRepository struct {
	store domain.KeyValueStore
}

// NewContactRepository creates a new contact repository over store
func NewContactRepository(store domain.KeyValueStore) domain.ContactRepository {
	return &contactRepository{store: store}
}

// Load reads "destinatarios"; an absent key is an empty list
func (r *contactRepository) Load(ctx context.Context) ([]domain.Contact, error) {
	raw, ok, err := r.store.GetItem(ctx, KeyContacts)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}
	if !ok {
		return []domain.Contact{}, nil
	}
	return decodeContacts(raw)
}

// Save replaces "destinatarios"
func (r *contactRepository) Save(ctx context.Context, contacts []domain.Contact) error {
	raw, err := encodeContacts(contacts)
	if err != nil {
		return err
	}
	if err := r.store.SetItems(ctx, map[string]string{KeyContacts: raw}); err != nil {
		return fmt.Errorf("failed to save contacts: %w", err)
	}
	return nil
}
