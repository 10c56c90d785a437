package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gq",
		Short:         "Geography quiz (gq): guess flags and capitals from the terminal",
		Long:          "gq plays flag and capital quizzes built from the REST Countries dataset, in the terminal or over a small JSON API.",
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

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		app.logSink.out = cmd.ErrOrStderr()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlayCmd(app),
		newCountriesCmd(app),
		newServeCmd(app),
	)

	return rootCmd
}
