package main

import (
	"github.com/sandevgo/beediary/internal/config"
	"github.com/sandevgo/beediary/internal/service/setup"
	"github.com/sandevgo/beediary/pkg/log"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:           "setup",
	Short:         "Configure beediary interactively",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Setup logger
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		// run wizard (includes save step)
		_, err := setup.RunWizard()
		if err != nil {
			return err
		}

		logger.Info().Msgf("initialized runtime directory at: %s", config.GetRuntimePath())
		logger.Info().Msg("Setup complete! You can now run 'beediary sync'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
