package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/simaogato/wallet-backend/internal/domain"
)

// kvStore implements domain.KeyValueStore on the wallet_items table
type kvStore struct {
	db *DB
}

// NewKeyValueStore creates a new key-value store backed by PostgreSQL
func NewKeyValueStore(db *DB) domain.KeyValueStore {
	return &kvStore{db: db}
}

// GetItem retrieves the value stored under key
func (s *kvStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	query := `
		SELECT value
		FROM wallet_items
		WHERE key = $1
	`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get item %q: %w", key, err)
	}

	return value, true, nil
}

// SetItems upserts all items in a single database transaction
func (s *kvStore) SetItems(ctx context.Context, items map[string]string) error {
	// Start a database transaction
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	upsertQuery := `
		INSERT INTO wallet_items (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	// Stable key order keeps row locks acquired in the same order across writers
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := dbTx.ExecContext(ctx, upsertQuery, k, items[k]); err != nil {
			return fmt.Errorf("failed to upsert item %q: %w", k, err)
		}
	}

	// Commit the transaction
	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
