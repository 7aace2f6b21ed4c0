package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, "test@example.com", cfg.Session.Email)
	assert.Equal(t, "0000", cfg.Session.Password)
	assert.Equal(t, "dev-token", cfg.GRPC.APIToken)

	balance, err := cfg.InitialBalance()
	require.NoError(t, err)
	assert.Equal(t, "100000.00", balance.StringFixed(2))

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=wallet sslmode=disable",
		cfg.DatabaseURL())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.toml")
	content := `
log_level = "debug"

[store]
backend = "postgres"

[database]
host = "db.internal"
name = "wallet_test"

[session]
initial_balance = "500.00"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := Default()
	require.NoError(t, cfg.LoadFile(path))

	env := map[string]string{
		"DB_PORT":   "6543",
		"API_TOKEN": "secret",
	}
	cfg.ApplyEnv(func(k string) string { return env[k] })
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, BackendPostgres, cfg.Store.Backend)
	assert.Equal(t, "secret", cfg.GRPC.APIToken)
	assert.Equal(t,
		"host=db.internal port=6543 user=postgres password=postgres dbname=wallet_test sslmode=disable",
		cfg.DatabaseURL())

	env["DB_CONN_STR"] = "postgres://explicit"
	cfg.ApplyEnv(func(k string) string { return env[k] })
	assert.Equal(t, "postgres://explicit", cfg.DatabaseURL())
}

func TestValidate_Errors(t *testing.T) {
	cfg := Default()
	cfg.Store.Backend = "redis"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Store.DataFile = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Session.InitialBalance = "lots"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Session.InitialBalance = "-1"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Store.Backend = " MEMORY "
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WALLET_CONFIG", "")
	t.Setenv("WALLET_STORE", "memory")
	t.Setenv("WALLET_LOGIN_EMAIL", "ana@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "ana@example.com", cfg.Session.Email)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
