package bee

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sandevgo/beediary/internal/core"
)

// FactsPage is one page of the /me/facts listing. Only confirmed facts
// are requested; unconfirmed ones are assistant guesses.
type FactsPage struct {
	Facts       []core.Fact `json:"facts"`
	CurrentPage int         `json:"currentPage"`
	TotalPages  int         `json:"totalPages"`
	TotalCount  int         `json:"totalCount"`
}

func (c *Client) Facts(ctx context.Context, page int) (*FactsPage, error) {
	query := url.Values{
		"page":      {strconv.Itoa(page)},
		"confirmed": {"confirmed"},
	}

	body, err := c.get(ctx, "/me/facts", query, fmt.Sprintf("Facts_Page_%d", page))
	if err != nil {
		return nil, fmt.Errorf("list facts page %d: %w", page, err)
	}

	var result FactsPage
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode facts: %w", err)
	}
	return &result, nil
}
