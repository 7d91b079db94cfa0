package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "flychain",
		Short:         "FlyChain wallet session manager",
		Long:          "flychain connects a demo or real wallet, keeps the session across runs, and lets you adjust the balance or switch demo roles from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.log.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConnectCmd(app),
		newDisconnectCmd(app),
		newBalanceCmd(app),
		newRoleCmd(app),
		newStatusCmd(app),
		newWalletCmd(app),
	)

	return rootCmd
}
