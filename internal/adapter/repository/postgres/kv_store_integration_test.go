//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/wallet-backend/internal/adapter/repository/kvstore"
	"github.com/simaogato/wallet-backend/internal/config"
	"github.com/simaogato/wallet-backend/internal/domain"
	"github.com/simaogato/wallet-backend/internal/usecase/contactbook"
	"github.com/simaogato/wallet-backend/internal/usecase/ledger"
	"github.com/simaogato/wallet-backend/internal/usecase/session"
	"github.com/simaogato/wallet-backend/internal/usecase/transfer"
)

var db *DB

// TestMain connects with the same DB_* settings the server uses
func TestMain(m *testing.M) {
	cfg := config.Default()
	cfg.ApplyEnv(os.Getenv)

	var err error
	db, err = NewDB(cfg.DatabaseURL())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	if err := db.Migrate(context.Background()); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}

	code := m.Run()
	db.Close()
	os.Exit(code)
}

func resetItems(t *testing.T) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), `DELETE FROM wallet_items`)
	require.NoError(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	require.NoError(t, db.Migrate(context.Background()))
}

func TestKeyValueStore_GetSet(t *testing.T) {
	resetItems(t)
	ctx := context.Background()
	store := NewKeyValueStore(db)

	_, ok, err := store.GetItem(ctx, kvstore.KeyBalance)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SetItems(ctx, map[string]string{
		kvstore.KeyBalance:   "10.00",
		kvstore.KeyMovements: "[]",
	}))
	require.NoError(t, store.SetItems(ctx, map[string]string{kvstore.KeyBalance: "20.00"}))

	value, ok, err := store.GetItem(ctx, kvstore.KeyBalance)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "20.00", value)

	value, ok, err = store.GetItem(ctx, kvstore.KeyMovements)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
}

func TestKeyValueStore_CanceledBatchWritesNothing(t *testing.T) {
	resetItems(t)
	store := NewKeyValueStore(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, store.SetItems(ctx, map[string]string{kvstore.KeyBalance: "1.00"}))

	_, ok, err := store.GetItem(context.Background(), kvstore.KeyBalance)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWalletFlow(t *testing.T) {
	resetItems(t)
	ctx := context.Background()
	store := NewKeyValueStore(db)

	ledgerRepo := kvstore.NewLedgerRepository(store)
	ledgerService := ledger.NewLedgerService(ledgerRepo)
	contacts := contactbook.NewContactBookService(kvstore.NewContactRepository(store))
	transfers := transfer.NewTransferService(ledgerService, contacts)
	sessions := session.NewSessionService(ledgerService,
		session.Credentials{Email: "test@example.com", Password: "0000"},
		decimal.RequireFromString("100000.00"))

	require.NoError(t, sessions.Login(ctx, "test@example.com", "0000"))

	_, _, err := contacts.Add(ctx, contactbook.AddContactInput{Name: "Ana", Bank: "BancoX", AccountID: "123456", Alias: "ana"})
	require.NoError(t, err)

	receipt, err := transfers.Transfer(ctx, 0, decimal.NewFromInt(2000))
	require.NoError(t, err)
	assert.Equal(t, "98000.00", receipt.NewBalance.StringFixed(2))

	// Concurrent transfers never overdraw
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = transfers.Transfer(ctx, 0, decimal.NewFromInt(10000))
		}()
	}
	wg.Wait()

	balance, err := ledgerService.GetBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "8000.00", balance.StringFixed(2))

	record, err := ledgerRepo.Load(ctx)
	require.NoError(t, err)
	seeded := decimal.RequireFromString("100000.00")
	assert.True(t, seeded.Add(record.Replay()).Equal(record.Balance), "balance must equal seed plus replayed movements")
	movements, err := ledgerService.ListMovements(ctx, domain.MovementFilterTransfersOnly)
	require.NoError(t, err)
	assert.Len(t, movements, 10)
}
