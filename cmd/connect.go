package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/flychain-wallet/internal/application"
	"github.com/bnema/flychain-wallet/internal/domain"
	"github.com/spf13/cobra"
)

func newConnectCmd(app *app) *cobra.Command {
	var mode string
	var role string
	var noSpinner bool

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect a demo or real wallet",
		Long:  "Connect a wallet. Demo mode uses a fixed account per role; real mode runs the wallet handshake and always starts as a user.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			connect, err := application.ParseConnectCommand(mode, role)
			if err != nil {
				return err
			}

			run := func(ctx context.Context) error {
				return app.store.Execute(ctx, connect)
			}

			if connect.Mode == domain.ModeReal && !noSpinner {
				err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), spinnerTask{
					Label: "Waiting for wallet approval...",
					Done:  "Wallet approved",
					Run:   run,
				})
			} else {
				err = run(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("connect wallet: %w", err)
			}

			return writeSessionOutput(cmd, app, false)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(domain.ModeDemo), "Connection mode (demo|real)")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleUser), "Demo role (user|admin); ignored in real mode")
	cmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "Disable the handshake spinner")

	return cmd
}
