package contactbook

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/wallet-backend/internal/domain"
)

// AddContactInput represents the input for adding a contact
type AddContactInput struct {
	Name      string
	Bank      string
	AccountID string
	Alias     string
}

// IndexedContact is a contact together with its current list position
type IndexedContact struct {
	Index   int
	Contact domain.Contact
}

// ContactBookService owns the ordered contact list.
// Indices returned by this service are valid only until the next Add or Remove.
type ContactBookService struct {
	Repo domain.ContactRepository

	mu sync.Mutex
}

// NewContactBookService creates a new ContactBookService instance
func NewContactBookService(repo domain.ContactRepository) *ContactBookService {
	return &ContactBookService{
		Repo: repo,
	}
}

// Add validates the account id, appends the contact with a fresh ID and returns
// its index.
func (s *ContactBookService) Add(ctx context.Context, input AddContactInput) (int, *domain.Contact, error) {
	contact := domain.Contact{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		Bank:      strings.TrimSpace(input.Bank),
		AccountID: strings.TrimSpace(input.AccountID),
		Alias:     strings.TrimSpace(input.Alias),
	}
	if err := contact.Validate(); err != nil {
		return 0, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.Repo.Load(ctx)
	if err != nil {
		return 0, nil, err
	}

	contacts = append(contacts, contact)
	if err := s.Repo.Save(ctx, contacts); err != nil {
		return 0, nil, err
	}

	return len(contacts) - 1, &contact, nil
}

// Remove deletes the contact at index; later contacts shift down by one
func (s *ContactBookService) Remove(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.Repo.Load(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(contacts) {
		return fmt.Errorf("%w: %d (have %d)", domain.ErrIndexOutOfRange, index, len(contacts))
	}

	return s.Repo.Save(ctx, removeAt(contacts, index))
}

// RemoveByID deletes the contact with the given ID
func (s *ContactBookService) RemoveByID(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.Repo.Load(ctx)
	if err != nil {
		return err
	}
	index := indexOf(contacts, id)
	if index < 0 {
		return fmt.Errorf("%w: %s", domain.ErrContactNotFound, id)
	}

	return s.Repo.Save(ctx, removeAt(contacts, index))
}

// List returns the contacts in insertion order
func (s *ContactBookService) List(ctx context.Context) ([]domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.Repo.Load(ctx)
}

// FindByIndex returns the contact currently at index
func (s *ContactBookService) FindByIndex(ctx context.Context, index int) (*domain.Contact, error) {
	contacts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(contacts) {
		return nil, fmt.Errorf("%w: %d (have %d)", domain.ErrIndexOutOfRange, index, len(contacts))
	}
	contact := contacts[index]
	return &contact, nil
}

// FindByID returns the contact with the given ID and its current index
func (s *ContactBookService) FindByID(ctx context.Context, id uuid.UUID) (*domain.Contact, int, error) {
	contacts, err := s.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	index := indexOf(contacts, id)
	if index < 0 {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrContactNotFound, id)
	}
	contact := contacts[index]
	return &contact, index, nil
}

// Search returns the contacts whose name, bank, account id or alias contains
// query, ignoring case. An empty query matches everything.
func (s *ContactBookService) Search(ctx context.Context, query string) ([]IndexedContact, error) {
	contacts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]IndexedContact, 0, len(contacts))
	for i, c := range contacts {
		if matchesAny(needle, c.Name, c.Bank, c.AccountID, c.Alias) {
			out = append(out, IndexedContact{Index: i, Contact: c})
		}
	}
	return out, nil
}

// matchesAny reports whether needle (already lower-cased) occurs inside one of fields
func matchesAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func indexOf(contacts []domain.Contact, id uuid.UUID) int {
	for i, c := range contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func removeAt(contacts []domain.Contact, index int) []domain.Contact {
	out := make([]domain.Contact, 0, len(contacts)-1)
	out = append(out, contacts[:index]...)
	return append(out, contacts[index+1:]...)
}
