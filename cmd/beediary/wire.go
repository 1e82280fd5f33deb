package main

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sandevgo/beediary/internal/config"
	"github.com/sandevgo/beediary/internal/providers/bee"
	"github.com/sandevgo/beediary/internal/render"
	"github.com/sandevgo/beediary/internal/service/journal"
	"github.com/sandevgo/beediary/internal/storage/sqlite"
	"github.com/sandevgo/beediary/internal/storage/vault"
	"github.com/sandevgo/beediary/pkg/log"
)

// loadEnv pulls the .env written by 'beediary setup' into the process
// environment before the config structs are parsed.
func loadEnv(ctx context.Context) {
	envPath := filepath.Join(config.GetRuntimePath(), ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.FromCtx(ctx).Debug().Err(err).Str("path", envPath).Msg("no .env file loaded")
	}
}

func newRunner(ctx context.Context, appCfg *config.AppConfig) (*journal.Runner, error) {
	beeCfg := config.NewBeeConfig(ctx)

	loc := time.Local
	if appCfg.Timezone != "" && appCfg.Timezone != "Local" {
		l, err := time.LoadLocation(appCfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("unknown timezone %q: %w", appCfg.Timezone, err)
		}
		loc = l
	}

	clientCfg := bee.Config{
		Endpoint: beeCfg.Endpoint,
		APIKey:   beeCfg.APIKey,
	}
	if debug || config.IsDebug() {
		dl := bee.NewDebugLog(appCfg.GetDebugLogPath())
		if err := dl.Reset(); err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msg("failed to reset debug log")
		}
		clientCfg.DebugLog = dl
	}

	client := bee.NewClient(clientCfg)
	target := vault.New(appCfg.GetTargetDir())

	return journal.NewRunner(client, target, render.Day, journal.Options{
		Location:        loc,
		MonotonicPaging: appCfg.MonotonicPaging,
	}), nil
}

func openLedger(ctx context.Context, appCfg *config.AppConfig) (*sql.DB, *sqlite.Runs, error) {
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewRuns(db), nil
}

// runAndRecord executes one run and appends it to the ledger. Ledger
// write failures are logged only; the run outcome stands on its own.
func runAndRecord(ctx context.Context, runner *journal.Runner, ledger *sqlite.Runs) error {
	summary, runErr := runner.RunOnce(ctx)

	if err := ledger.Record(ctx, summary, runErr); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to record run in ledger")
	}

	for date, reason := range summary.Failed {
		log.FromCtx(ctx).Error().Str("date", date).Str("reason", reason).Msg("date failed")
	}

	return runErr
}
