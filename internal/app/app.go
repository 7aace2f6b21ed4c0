// Package app builds the wallet services from a Config. Both binaries share it
// so that they read and write the same records.
package app

import (
	"context"
	"fmt"

	"github.com/simaogato/wallet-backend/internal/adapter/repository/kvstore"
	"github.com/simaogato/wallet-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/wallet-backend/internal/adapter/storage/jsonfile"
	"github.com/simaogato/wallet-backend/internal/adapter/storage/memory"
	"github.com/simaogato/wallet-backend/internal/config"
	"github.com/simaogato/wallet-backend/internal/domain"
	"github.com/simaogato/wallet-backend/internal/usecase/contactbook"
	"github.com/simaogato/wallet-backend/internal/usecase/dashboard"
	"github.com/simaogato/wallet-backend/internal/usecase/ledger"
	"github.com/simaogato/wallet-backend/internal/usecase/session"
	"github.com/simaogato/wallet-backend/internal/usecase/transfer"
)

// App holds one instance of every service, all sharing a single store
type App struct {
	Store domain.KeyValueStore

	SessionService   *session.SessionService
	LedgerService    *ledger.LedgerService
	ContactService   *contactbook.ContactBookService
	TransferService  *transfer.TransferService
	DashboardService *dashboard.DashboardService

	close func() error
}

// New opens the configured store and wires the services on top of it
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	initialBalance, err := cfg.InitialBalance()
	if err != nil {
		_ = closeStore()
		return nil, err
	}

	// 1. Repositories
	ledgerRepo := kvstore.NewLedgerRepository(store)
	contactRepo := kvstore.NewContactRepository(store)

	// 2. Services
	ledgerService := ledger.NewLedgerService(ledgerRepo)
	contactService := contactbook.NewContactBookService(contactRepo)

	return &App{
		Store: store,
		SessionService: session.NewSessionService(ledgerService, session.Credentials{
			Email:    cfg.Session.Email,
			Password: cfg.Session.Password,
		}, initialBalance),
		LedgerService:    ledgerService,
		ContactService:   contactService,
		TransferService:  transfer.NewTransferService(ledgerService, contactService),
		DashboardService: dashboard.NewDashboardService(ledgerService, contactService),
		close:            closeStore,
	}, nil
}

// Close releases the store
func (a *App) Close() error {
	return a.close()
}

func openStore(ctx context.Context, cfg *config.Config) (domain.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Backend {
	case config.BackendMemory:
		return memory.NewStore(nil), noop, nil

	case config.BackendFile:
		store, err := jsonfile.NewStore(cfg.Store.DataFile)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil

	case config.BackendPostgres:
		db, err := postgres.NewDB(cfg.DatabaseURL())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return postgres.NewKeyValueStore(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
