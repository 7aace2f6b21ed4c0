package main

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/simaogato/wallet-backend/internal/domain"
	"github.com/simaogato/wallet-backend/internal/usecase/dashboard"
	"github.com/simaogato/wallet-backend/internal/usecase/transfer"
)

func (c *cli) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check the credentials and create the wallet on first use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.wallet.SessionService.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			view, err := c.wallet.DashboardService.Balance(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bienvenido. Saldo disponible: %s\n", view.Display)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Login email.")
	cmd.Flags().StringVar(&password, "password", "", "Login password.")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *cli) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := c.wallet.DashboardService.Balance(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saldo disponible: %s\n", view.Display)
			return nil
		},
	}
}

func (c *cli) depositCmd() *cobra.Command {
	var detail string

	cmd := &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Add money to the wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := domain.ParseAmount(args[0])
			if err != nil {
				return err
			}
			balance, err := c.wallet.LedgerService.Deposit(cmd.Context(), amount, detail)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dashboard.DepositMessage(domain.RoundAmount(amount), balance))
			return nil
		},
	}
	cmd.Flags().StringVar(&detail, "detail", "", "Movement description (default \""+domain.DefaultDepositDetail+"\").")
	return cmd
}

func (c *cli) transferCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "transfer (<index> | --to <id>) <amount>",
		Short: "Send money to a saved contact",
		Args: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("to") {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			amountArg := args[len(args)-1]
			amount, err := domain.ParseAmount(amountArg)
			if err != nil {
				return err
			}

			var receipt *transfer.Receipt
			if to != "" {
				id, err := uuid.Parse(to)
				if err != nil {
					return fmt.Errorf("%w: %q is not a contact id", domain.ErrContactNotFound, to)
				}
				receipt, err = c.wallet.TransferService.TransferTo(cmd.Context(), id, amount)
				if err != nil {
					return err
				}
			} else {
				index, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("%w: %q is not a contact index", domain.ErrIndexOutOfRange, args[0])
				}
				receipt, err = c.wallet.TransferService.Transfer(cmd.Context(), index, amount)
				if err != nil {
					return err
				}
			}

			c.logger.Debug("transfer sent", "contact", receipt.ContactID, "movement", receipt.Movement.ID)
			fmt.Fprintln(cmd.OutOrStdout(), dashboard.TransferMessage(receipt))
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Contact id to send to instead of a list index.")
	return cmd
}

func (c *cli) movementsCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "movements",
		Short: "Show the movement history, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := domain.ParseMovementFilter(filter)
			if err != nil {
				return err
			}
			view, err := c.wallet.DashboardService.History(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderHistory(view))
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", string(domain.MovementFilterAll), "One of all, deposits, transfers.")
	return cmd
}
