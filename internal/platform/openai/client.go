package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fadilefdika/Doctor-AI/internal/platform/apierr"
	"github.com/fadilefdika/Doctor-AI/internal/platform/envutil"
	"github.com/fadilefdika/Doctor-AI/internal/platform/logger"
)

// Message is one role-tagged turn in a completion request. The sequence is
// forwarded to the provider verbatim; ordering is the caller's contract.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Options struct {
	MaxTokens int
}

// Client sends ordered message sequences to the completion endpoint.
// Temperature and model are fixed per deployment; errors are surfaced as
// upstream_error with the provider's text preserved, never retried.
type Client interface {
	Complete(ctx context.Context, messages []Message, opts *Options) (string, error)
}

const (
	fixedTemperature = 0.7
	defaultMaxTokens = 500
	minMaxTokens     = 300
	maxMaxTokens     = 500
)

type client struct {
	httpClient *http.Client
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(log *logger.Logger) (Client, error) {
	apiKey, err := envutil.Require("OPENAI_API_KEY")
	if err != nil {
		return nil, err
	}
	return &client{
		httpClient: &http.Client{
			Timeout: envutil.Duration("OPENAI_TIMEOUT", 60*time.Second),
		},
		log:     log.With("client", "OpenAIClient"),
		baseURL: strings.TrimRight(envutil.String("OPENAI_BASE_URL", "https://api.openai.com/v1"), "/"),
		apiKey:  apiKey,
		model:   envutil.String("OPENAI_CHAT_MODEL", "gpt-3.5-turbo"),
	}, nil
}

func (c *client) Complete(ctx context.Context, messages []Message, opts *Options) (string, error) {
	if len(messages) == 0 {
		return "", apierr.Validation(fmt.Errorf("completion requires at least one message"))
	}
	maxTokens := defaultMaxTokens
	if opts != nil && opts.MaxTokens != 0 {
		maxTokens = opts.MaxTokens
		if maxTokens < minMaxTokens {
			maxTokens = minMaxTokens
		}
		if maxTokens > maxMaxTokens {
			maxTokens = maxMaxTokens
		}
	}

	body := map[string]any{
		"model":       c.model,
		"messages":    messages,
		"temperature": fixedTemperature,
		"max_tokens":  maxTokens,
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return "", apierr.Internal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(encoded))
	if err != nil {
		return "", apierr.Internal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierr.Upstream(fmt.Errorf("completion provider unreachable: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierr.Upstream(fmt.Errorf("read completion response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return "", apierr.Upstream(fmt.Errorf("completion provider error (status %d): %s", resp.StatusCode, providerErrorText(raw)))
	}

	var payload struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", apierr.Upstream(fmt.Errorf("decode completion response: %w", err))
	}
	if len(payload.Choices) == 0 {
		return "", apierr.Upstream(fmt.Errorf("completion provider returned no choices"))
	}
	c.log.Debug("Completion finished",
		"model", c.model,
		"messages", len(messages),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return payload.Choices[0].Message.Content, nil
}

func providerErrorText(raw []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && strings.TrimSpace(payload.Error.Message) != "" {
		return strings.TrimSpace(payload.Error.Message)
	}
	text := strings.TrimSpace(string(raw))
	if len(text) > 300 {
		text = text[:300]
	}
	return text
}
