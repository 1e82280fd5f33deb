package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/beediary/internal/config"
	"github.com/sandevgo/beediary/pkg/log"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch missing days and write their journal files once",
	Long:  `Runs a single pass: pages the Bee API for conversations and facts, groups them by day, and writes a journal file for every fully elapsed day that does not have one yet. Existing files are never touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		loadEnv(ctx)

		appCfg := config.NewAppConfig(ctx)

		runner, err := newRunner(ctx, appCfg)
		if err != nil {
			return err
		}

		db, ledger, err := openLedger(ctx, appCfg)
		if err != nil {
			return err
		}
		defer db.Close()

		logger.Info().Str("target", appCfg.GetTargetDir()).Msg("starting sync")
		return runAndRecord(ctx, runner, ledger)
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
