package bee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sandevgo/beediary/internal/core"
	"github.com/sandevgo/beediary/pkg/log"
)

// ErrAuth is returned when the API rejects the key. Callers must not
// retry on it.
var ErrAuth = errors.New("bee api rejected the api key")

type Config struct {
	Endpoint string
	APIKey   string

	// Optional sink for raw response bodies, used by the debug artifact
	DebugLog *DebugLog
}

type Client struct {
	client   *http.Client
	endpoint string
	apiKey   string
	debugLog *DebugLog
}

func NewClient(cfg Config) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		debugLog: cfg.DebugLog,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, debugLabel string) ([]byte, error) {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", core.AppUserAgent)
	req.Header.Set("x-api-key", c.apiKey)

	log.FromCtx(ctx).Debug().Str("url", u).Msg("bee api request")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("status %d: %w", resp.StatusCode, ErrAuth)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("api returned status %d: %s", resp.StatusCode, string(body))
	}

	if c.debugLog != nil {
		if err := c.debugLog.Append(debugLabel, body); err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msg("failed to append debug log")
		}
	}

	return body, nil
}
