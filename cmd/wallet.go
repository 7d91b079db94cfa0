package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/flychain-wallet/internal/domain"
	"github.com/spf13/cobra"
)

var errNoRealWallet = errors.New("no real wallet connected")

func newWalletCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage keys of wallets created by real connections",
	}

	cmd.AddCommand(
		newWalletExportCmd(app),
		newWalletForgetCmd(app),
	)

	return cmd
}

func newWalletExportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [address]",
		Short: "Print the private key of a wallet (default: the connected one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := resolveWalletAddress(app, args)
			if err != nil {
				return err
			}

			key, err := app.keys.LoadKey(cmd.Context(), address)
			if err != nil {
				return fmt.Errorf("export wallet %s: %w", address, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
			return err
		},
	}
}

func newWalletForgetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "forget [address]",
		Short: "Delete the stored key of a wallet and disconnect it if active",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := resolveWalletAddress(app, args)
			if err != nil {
				return err
			}

			if err := app.keys.DeleteKey(cmd.Context(), address); err != nil {
				return fmt.Errorf("forget wallet %s: %w", address, err)
			}

			if strings.EqualFold(app.store.State().Address(), address) {
				app.store.Disconnect()
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "forgot wallet %s\n", address)
			return err
		},
	}
}

func resolveWalletAddress(app *app, args []string) (string, error) {
	if len(args) == 1 {
		if !domain.ValidAddress(args[0]) {
			return "", fmt.Errorf("%w: %q", domain.ErrInvalidAddress, args[0])
		}
		return args[0], nil
	}

	session := app.store.State()
	if !session.IsConnected() || session.IsDemoMode() {
		return "", errNoRealWallet
	}

	return session.Address(), nil
}
