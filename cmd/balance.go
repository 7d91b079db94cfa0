package cmd

import (
	"fmt"

	"github.com/bnema/flychain-wallet/internal/domain"
	"github.com/spf13/cobra"
)

func newBalanceCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Inspect or override the session balance",
	}

	cmd.AddCommand(newBalanceSetCmd(app))

	return cmd
}

func newBalanceSetCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "set <value>",
		Short: "Overwrite the balance of the connected wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			balance := args[0]
			if !force && !domain.ValidBalance(balance) {
				return fmt.Errorf("invalid balance %q: expected a non-negative decimal (use --force to store it as-is)", balance)
			}

			if !app.store.State().IsConnected() {
				_, err := fmt.Fprintln(cmd.ErrOrStderr(), "no wallet connected; balance left at "+domain.DefaultBalance)
				if err != nil {
					return err
				}
			}

			app.store.SetBalance(balance)
			return writeSessionOutput(cmd, app, false)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Store the value without validating it")

	return cmd
}
