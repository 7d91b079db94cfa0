package cmd

import (
	"github.com/spf13/cobra"
)

func newDisconnectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Disconnect the wallet and reset the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.store.Disconnect()
			return writeSessionOutput(cmd, app, false)
		},
	}
}
