package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/simaogato/wallet-backend/internal/domain"
	"github.com/simaogato/wallet-backend/internal/usecase/contactbook"
)

func (c *cli) contactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage saved transfer recipients",
	}
	cmd.AddCommand(c.contactsListCmd(), c.contactsAddCmd(), c.contactsRemoveCmd())
	return cmd
}

func (c *cli) contactsListCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts with their current index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			found, err := c.wallet.ContactService.Search(cmd.Context(), search)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderContacts(found))
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Only contacts whose name, bank, account or alias contains this text.")
	return cmd
}

func (c *cli) contactsAddCmd() *cobra.Command {
	var input contactbook.AddContactInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a new contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			index, contact, err := c.wallet.ContactService.Add(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Contacto agregado [%d]: %s (%s - %s)\n", index, contact.Name, contact.Alias, contact.Bank)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Name, "name", "", "Contact name.")
	cmd.Flags().StringVar(&input.Bank, "bank", "", "Bank name.")
	cmd.Flags().StringVar(&input.AccountID, "account", "", "Account id (CBU/CVU), six digits.")
	cmd.Flags().StringVar(&input.Alias, "alias", "", "Account alias.")
	for _, name := range []string{"name", "bank", "account", "alias"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (c *cli) contactsRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <index>",
		Short: "Delete the contact at index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q is not a contact index", domain.ErrIndexOutOfRange, args[0])
			}
			contact, err := c.wallet.ContactService.FindByIndex(cmd.Context(), index)
			if err != nil {
				return err
			}

			if !yes {
				ok, err := c.confirm(fmt.Sprintf("¿Eliminar a %s (%s)?", contact.Name, contact.Alias))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Operación cancelada.")
					return nil
				}
			}

			// Remove by id so a concurrent reorder cannot delete someone else
			if err := c.wallet.ContactService.RemoveByID(cmd.Context(), contact.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Contacto eliminado: %s\n", contact.Name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")
	return cmd
}
