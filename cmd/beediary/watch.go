package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sandevgo/beediary/internal/config"
	"github.com/sandevgo/beediary/pkg/log"
	"github.com/sandevgo/beediary/pkg/srv"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run sync on a schedule until interrupted",
	Long:  `Starts an immediate sync and repeats it on the configured interval (BEEDIARY_WATCH_INTERVAL, default 1h). Each pass is independent: days already on disk are skipped, so re-runs are safe.`,
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

		interval, err := time.ParseDuration(appCfg.WatchInterval)
		if err != nil {
			return fmt.Errorf("invalid watch interval %q: %w", appCfg.WatchInterval, err)
		}

		runner, err := newRunner(ctx, appCfg)
		if err != nil {
			return err
		}

		db, ledger, err := openLedger(ctx, appCfg)
		if err != nil {
			return err
		}

		services := []srv.Service{
			srv.NewTicker(interval, func(ctx context.Context) error {
				return runAndRecord(ctx, runner, ledger)
			}),
			srv.NewCleanup(db.Close),
		}

		logger.Info().Dur("interval", interval).Msg("starting watch")
		srv.StartServices(ctx, services)
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("beediary has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
