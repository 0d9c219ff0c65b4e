package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"match-poster-bot/internal/api"
	"match-poster-bot/internal/store"
	"match-poster-bot/internal/types"
)

// FeedSource fetches the live picks feed over HTTP.
type FeedSource struct {
	client *api.Client
	url    string
}

// NewFeedSource builds a live source from the feed config.
func NewFeedSource(cfg store.FeedConfig) *FeedSource {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	opts := []api.ClientOption{
		api.WithTimeout(time.Duration(timeout) * time.Second),
		api.WithLogging(true),
	}
	for k, v := range cfg.Headers {
		opts = append(opts, api.WithHeader(k, v))
	}
	return &FeedSource{
		client: api.NewClient(opts...),
		url:    cfg.URL,
	}
}

// Fetch GETs the configured endpoint and decodes the feed envelope. A
// response without a server_response key yields an empty record set.
func (s *FeedSource) Fetch(ctx context.Context) ([]types.MatchRecord, error) {
	if s.url == "" {
		return nil, errors.New("feed url not configured")
	}

	resp, err := s.client.GET(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("fetch picks feed: %w", err)
	}

	var feed types.Feed
	if err := json.Unmarshal(resp.Body, &feed); err != nil {
		return nil, fmt.Errorf("decode picks feed: %w", err)
	}
	return feed.ServerResponse, nil
}
