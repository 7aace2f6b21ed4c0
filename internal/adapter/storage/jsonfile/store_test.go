package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/simaogato/wallet-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissingFileIsEmpty(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "nested", "wallet.json"))
	require.NoError(t, err)

	_, ok, err := store.GetItem(context.Background(), "saldo")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SetItemsPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wallet.json")

	first, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.SetItems(ctx, map[string]string{"saldo": "100000.00", "movimientos": "[]"}))
	require.NoError(t, first.SetItems(ctx, map[string]string{"saldo": "98000.00"}))

	second, err := NewStore(path)
	require.NoError(t, err)

	v, ok, err := second.GetItem(ctx, "saldo")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "98000.00", v)

	v, ok, err = second.GetItem(ctx, "movimientos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	// Temp file must not linger after a successful write
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var snap Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.Equal(t, storageName, snap.Meta.Storage)
	assert.Equal(t, formatVersion, snap.Meta.Version)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewStore(path)
	require.NoError(t, err)

	_, _, err = store.GetItem(context.Background(), "saldo")
	assert.ErrorIs(t, err, domain.ErrCorruptState)

	err = store.SetItems(context.Background(), map[string]string{"saldo": "1.00"})
	assert.ErrorIs(t, err, domain.ErrCorruptState)
}
