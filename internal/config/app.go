package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/beediary/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"BEEDIARY_RUNTIME_PATH" envDefault:".beediary"`

	// Where the daily journal files are written
	TargetDir string `env:"BEEDIARY_TARGET_DIR" envDefault:"journal"`

	// Reference timezone used for assigning records to calendar days.
	// Any IANA name, or "Local" for the host timezone.
	Timezone string `env:"BEEDIARY_TIMEZONE" envDefault:"Local"`

	// The Bee API lists newest-first, which lets a run stop paging once a
	// whole page is already on disk. Set to false to always page through
	// the entire history.
	MonotonicPaging bool `env:"BEEDIARY_MONOTONIC_PAGING" envDefault:"true"`

	// Interval between runs in watch mode
	WatchInterval string `env:"BEEDIARY_WATCH_INTERVAL" envDefault:"1h"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetTargetDir() string {
	if filepath.IsAbs(c.TargetDir) {
		return c.TargetDir
	}
	return filepath.Join(GetRuntimePath(), c.TargetDir)
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(GetRuntimePath(), "beediary.db")
}

func (c AppConfig) GetDebugLogPath() string {
	return filepath.Join(GetRuntimePath(), "return_json.txt")
}
