package cmd

import (
	"github.com/TomoakiAbebe/rac-tourist/internal/logging"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rac",
		Short:         "Trip-planning interview game",
		Long:          "rac assigns you a travel customer with hidden preferences. Pick one venue per category, then see how well your plan matches what they wanted.",
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

	rootCmd.PersistentFlags().BoolVar(&app.plain, "plain", false, "disable colours and text styling")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		logger, err := logging.New(app.config.Log, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		app.logger = logger
		return nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newStartCmd(app),
		newShowCmd(app),
		newSelectCmd(app),
		newBackCmd(app),
		newRestartCmd(app),
		newPlanCmd(app),
		newResultCmd(app),
		newCustomersCmd(app),
		newPlayCmd(app),
	)

	return rootCmd
}
