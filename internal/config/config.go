// Package config resolves runtime settings for the wallet binaries.
//
// Sources, lowest precedence first: built-in defaults, a TOML file named by
// WALLET_CONFIG, a .env file in the working directory, process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"github.com/shopspring/decimal"
)

// Store backends
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

const (
	defaultAPIToken       = "dev-token"
	defaultGRPCPort       = ":8080"
	defaultDataFile       = "data/wallet.json"
	defaultLoginEmail     = "test@example.com"
	defaultLoginPassword  = "0000"
	defaultInitialBalance = "100000.00"
	defaultLogLevel       = "info"
)

// StoreConfig selects where wallet records live
type StoreConfig struct {
	Backend  string `toml:"backend"`
	DataFile string `toml:"data_file"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	ConnStr  string `toml:"conn_str"`
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
}

// GRPCConfig holds transport settings
type GRPCConfig struct {
	Port     string `toml:"port"`
	APIToken string `toml:"api_token"`
}

// SessionConfig holds the login credential pair and the first-login seed balance
type SessionConfig struct {
	Email          string `toml:"email"`
	Password       string `toml:"password"`
	InitialBalance string `toml:"initial_balance"`
}

// Config is the full runtime configuration
type Config struct {
	Store    StoreConfig    `toml:"store"`
	Database DatabaseConfig `toml:"database"`
	GRPC     GRPCConfig     `toml:"grpc"`
	Session  SessionConfig  `toml:"session"`
	LogLevel string         `toml:"log_level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:  BackendFile,
			DataFile: defaultDataFile,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			Name:     "wallet",
		},
		GRPC: GRPCConfig{
			Port:     defaultGRPCPort,
			APIToken: defaultAPIToken,
		},
		Session: SessionConfig{
			Email:          defaultLoginEmail,
			Password:       defaultLoginPassword,
			InitialBalance: defaultInitialBalance,
		},
		LogLevel: defaultLogLevel,
	}
}

// Load builds the configuration from every source and validates it
func Load() (*Config, error) {
	// A missing .env is normal outside development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv("WALLET_CONFIG"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the values set in a TOML file onto cfg
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	c.overlay(&file)
	return nil
}

// ApplyEnv overrides fields whose environment variable is set
func (c *Config) ApplyEnv(getenv func(string) string) {
	c.overlay(&Config{
		Store: StoreConfig{
			Backend:  getenv("WALLET_STORE"),
			DataFile: getenv("WALLET_DATA_FILE"),
		},
		Database: DatabaseConfig{
			ConnStr:  getenv("DB_CONN_STR"),
			Host:     getenv("DB_HOST"),
			Port:     getenv("DB_PORT"),
			User:     getenv("DB_USER"),
			Password: getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME"),
		},
		GRPC: GRPCConfig{
			Port:     getenv("GRPC_PORT"),
			APIToken: getenv("API_TOKEN"),
		},
		Session: SessionConfig{
			Email:          getenv("WALLET_LOGIN_EMAIL"),
			Password:       getenv("WALLET_LOGIN_PASSWORD"),
			InitialBalance: getenv("WALLET_INITIAL_BALANCE"),
		},
		LogLevel: getenv("LOG_LEVEL"),
	})
}

// overlay copies every non-empty field of o onto c
func (c *Config) overlay(o *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&c.Store.Backend, o.Store.Backend)
	set(&c.Store.DataFile, o.Store.DataFile)

	set(&c.Database.ConnStr, o.Database.ConnStr)
	set(&c.Database.Host, o.Database.Host)
	set(&c.Database.Port, o.Database.Port)
	set(&c.Database.User, o.Database.User)
	set(&c.Database.Password, o.Database.Password)
	set(&c.Database.Name, o.Database.Name)

	set(&c.GRPC.Port, o.GRPC.Port)
	set(&c.GRPC.APIToken, o.GRPC.APIToken)

	set(&c.Session.Email, o.Session.Email)
	set(&c.Session.Password, o.Session.Password)
	set(&c.Session.InitialBalance, o.Session.InitialBalance)

	set(&c.LogLevel, o.LogLevel)
}

// Validate checks the values that cannot be defaulted away
func (c *Config) Validate() error {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	switch c.Store.Backend {
	case BackendMemory, BackendPostgres:
	case BackendFile:
		if c.Store.DataFile == "" {
			return errors.New("store.data_file is required for the file backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q (want memory, file or postgres)", c.Store.Backend)
	}

	balance, err := c.InitialBalance()
	if err != nil {
		return err
	}
	if balance.IsNegative() {
		return errors.New("session.initial_balance must not be negative")
	}
	return nil
}

// InitialBalance parses the first-login seed balance
func (c *Config) InitialBalance() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.Session.InitialBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid session.initial_balance %q: %w", c.Session.InitialBalance, err)
	}
	return d, nil
}

// DatabaseURL returns DB_CONN_STR if given, otherwise builds it from the individual settings
func (c *Config) DatabaseURL() string {
	if c.Database.ConnStr != "" {
		return c.Database.ConnStr
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name)
}
