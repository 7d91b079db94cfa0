package cmd

import (
	"fmt"

	"github.com/bnema/flychain-wallet/internal/domain"
	"github.com/spf13/cobra"
)

func newRoleCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Manage the demo role",
	}

	cmd.AddCommand(newRoleSwitchCmd(app))

	return cmd
}

func newRoleSwitchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "switch <user|admin>",
		Short:     "Switch the demo account to another role",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.RoleUser), string(domain.RoleAdmin)},
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := domain.ParseRole(args[0])
			if err != nil {
				return err
			}

			if !app.store.SwitchRole(role) {
				if _, err := fmt.Fprintln(cmd.ErrOrStderr(), "role unchanged: switching roles is only available in demo mode"); err != nil {
					return err
				}
			}

			return writeSessionOutput(cmd, app, false)
		},
	}
}
