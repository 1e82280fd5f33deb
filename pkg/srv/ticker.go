package srv

import (
	"context"
	"time"

	"github.com/sandevgo/beediary/pkg/log"
)

// tickerService invokes fn once immediately and then on every interval
// until the context is cancelled. Errors from fn are logged, not fatal:
// the next tick gets a fresh attempt.
type tickerService struct {
	interval time.Duration
	fn       func(ctx context.Context) error
}

func NewTicker(interval time.Duration, fn func(ctx context.Context) error) Service {
	return &tickerService{interval: interval, fn: fn}
}

func (t *tickerService) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	if err := t.fn(ctx); err != nil {
		logger.Error().Err(err).Msg("scheduled run failed")
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := t.fn(ctx); err != nil {
				logger.Error().Err(err).Msg("scheduled run failed")
			}
		}
	}
}

func (t *tickerService) Shutdown(ctx context.Context) error {
	return nil
}
