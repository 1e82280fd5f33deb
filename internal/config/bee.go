package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/beediary/pkg/log"
)

type BeeConfig struct {
	Endpoint string `env:"BEE_API_ENDPOINT" envDefault:"https://api.bee.computer/v1"`
	APIKey   string `env:"BEE_API_KEY,required,notEmpty"`
}

func NewBeeConfig(ctx context.Context) *BeeConfig {
	c := &BeeConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Bee config, run 'beediary setup' first")
	}
	return c
}
