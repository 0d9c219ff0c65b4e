package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"match-poster-bot/internal/api"
	"match-poster-bot/internal/logger"
	"match-poster-bot/internal/store"
)

const defaultBaseURL = "https://api.telegram.org"

// ErrMissingCredentials is returned before any network call when the bot
// token or chat id is not configured.
var ErrMissingCredentials = errors.New("telegram: bot token or chat id not configured")

// Publisher posts messages to a channel through the Bot API sendMessage
// endpoint. No retries happen at this layer; the supervisor owns the
// schedule.
type Publisher struct {
	client  *api.Client
	baseURL string
	token   string
	chatID  string
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithBaseURL overrides the Bot API host, for tests.
func WithBaseURL(url string) Option {
	return func(p *Publisher) {
		p.baseURL = url
	}
}

// NewPublisher builds a publisher from the telegram config.
func NewPublisher(cfg store.TelegramConfig, opts ...Option) *Publisher {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	p := &Publisher{
		// Logging stays off on this client: request URLs embed the token.
		client:  api.NewClient(api.WithTimeout(time.Duration(timeout) * time.Second)),
		baseURL: defaultBaseURL,
		token:   cfg.Token,
		chatID:  cfg.ChatID,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// Send posts text to the configured chat. Success requires a 2xx status and
// a truthy "ok" field in the response body.
func (p *Publisher) Send(ctx context.Context, text string) error {
	if p.token == "" || p.chatID == "" {
		return ErrMissingCredentials
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", p.baseURL, p.token)
	body := sendMessageRequest{
		ChatID:                p.chatID,
		Text:                  text,
		ParseMode:             "Markdown",
		DisableWebPagePreview: false,
	}

	resp, err := p.client.POST(ctx, url, body)
	if err != nil {
		if resp != nil {
			logger.Error(ctx, "Telegram rejected request", "status", resp.StatusCode, "body", string(resp.Body))
			return fmt.Errorf("telegram send: status %d: %s", resp.StatusCode, string(resp.Body))
		}
		return fmt.Errorf("telegram send: %w", err)
	}

	var out sendMessageResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return fmt.Errorf("telegram: decode response: %w", err)
	}
	if !out.OK {
		logger.Error(ctx, "Telegram reported failure", "description", out.Description)
		return fmt.Errorf("telegram: not ok: %s", out.Description)
	}

	logger.Posted(ctx, p.chatID, len(text))
	return nil
}
