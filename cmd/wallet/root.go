package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/simaogato/wallet-backend/internal/app"
	"github.com/simaogato/wallet-backend/internal/config"
)

// cli is the state shared by the subcommands of one invocation
type cli struct {
	wallet *app.App
	logger *log.Logger

	// confirm asks a yes/no question; replaced in tests
	confirm func(title string) (bool, error)
}

func newRootCmd() *cobra.Command {
	return (&cli{confirm: confirmPrompt}).rootCmd()
}

func (c *cli) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "wallet",
		Short:        "Virtual wallet: balance, deposits, transfers and contacts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.logger, err = app.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			c.wallet, err = app.New(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to open wallet: %w", err)
			}
			c.logger.Debug("store opened", "backend", cfg.Store.Backend)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if c.wallet == nil {
				return nil
			}
			return c.wallet.Close()
		},
	}

	rootCmd.AddCommand(
		c.loginCmd(),
		c.balanceCmd(),
		c.depositCmd(),
		c.transferCmd(),
		c.movementsCmd(),
		c.contactsCmd(),
	)
	return rootCmd
}

func confirmPrompt(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Sí").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}
