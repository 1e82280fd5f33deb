package bee

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sandevgo/beediary/internal/core"
)

// ConversationsPage is one page of the /me/conversations listing.
type ConversationsPage struct {
	Conversations []core.Conversation `json:"conversations"`
	CurrentPage   int                 `json:"currentPage"`
	TotalPages    int                 `json:"totalPages"`
	TotalCount    int                 `json:"totalCount"`
}

func (c *Client) Conversations(ctx context.Context, page int) (*ConversationsPage, error) {
	query := url.Values{"page": {strconv.Itoa(page)}}

	body, err := c.get(ctx, "/me/conversations", query, fmt.Sprintf("Conversations_Page_%d", page))
	if err != nil {
		return nil, fmt.Errorf("list conversations page %d: %w", page, err)
	}

	var result ConversationsPage
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode conversations: %w", err)
	}
	return &result, nil
}

// ConversationDetail fetches the transcript of a single conversation.
// The listing rows carry no utterances; only the detail endpoint does.
func (c *Client) ConversationDetail(ctx context.Context, id int64) ([]core.Utterance, error) {
	path := fmt.Sprintf("/me/conversations/%d", id)

	body, err := c.get(ctx, path, nil, fmt.Sprintf("Conversation_Detail_%d", id))
	if err != nil {
		return nil, fmt.Errorf("conversation detail %d: %w", id, err)
	}

	var result struct {
		Conversation struct {
			Transcriptions []core.Transcription `json:"transcriptions"`
		} `json:"conversation"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode conversation detail: %w", err)
	}

	var utterances []core.Utterance
	for _, tr := range result.Conversation.Transcriptions {
		utterances = append(utterances, tr.Utterances...)
	}
	return utterances, nil
}
