package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultMaxTokens caps the length of each generated summary.
	DefaultMaxTokens = 7096

	// AnthropicBaseURL is the public Anthropic API.
	AnthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion = "2023-06-01"
)

// Client sends a single user prompt and returns the model's text.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// HTTPClient calls the LiteLLM proxy (OpenAI chat completions format) or
// the Anthropic Messages API, depending on its credentials.
type HTTPClient struct {
	creds      Credentials
	model      string
	maxTokens  int
	httpClient *http.Client
}

// NewClient creates a client for model using creds.
func NewClient(creds Credentials, model string) *HTTPClient {
	return &HTTPClient{
		creds:     creds,
		model:     model,
		maxTokens: DefaultMaxTokens,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Complete sends prompt as the only user message.
func (c *HTTPClient) Complete(ctx context.Context, prompt string) (string, error) {
	slog.Debug("calling LLM", "provider", c.creds.Provider, "model", c.model, "prompt_bytes", len(prompt))

	switch c.creds.Provider {
	case ProviderLiteLLMProxy:
		return c.completeChat(ctx, prompt)
	case ProviderAnthropic:
		return c.completeMessages(ctx, prompt)
	default:
		return "", fmt.Errorf("unsupported LLM provider %q", c.creds.Provider)
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type requestBody struct {
	Model     string    `json:"model"`
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

func (c *HTTPClient) newBody(prompt string) requestBody {
	return requestBody{
		Model:     c.model,
		Messages:  []message{{Role: "user", Content: prompt}},
		MaxTokens: c.maxTokens,
	}
}

func (c *HTTPClient) completeChat(ctx context.Context, prompt string) (string, error) {
	url := strings.TrimRight(c.creds.BaseURL, "/") + "/chat/completions"
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.creds.APIKey)

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := c.post(ctx, url, header, c.newBody(prompt), &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("LLM proxy returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

func (c *HTTPClient) completeMessages(ctx context.Context, prompt string) (string, error) {
	base := c.creds.BaseURL
	if base == "" {
		base = AnthropicBaseURL
	}
	url := strings.TrimRight(base, "/") + "/v1/messages"
	header := http.Header{}
	header.Set("x-api-key", c.creds.APIKey)
	header.Set("anthropic-version", anthropicVersion)

	var parsed struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := c.post(ctx, url, header, c.newBody(prompt), &parsed); err != nil {
		return "", err
	}

	var text strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", errors.New("anthropic returned no text content")
	}
	return text.String(), nil
}

func (c *HTTPClient) post(ctx context.Context, url string, header http.Header, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal LLM request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build LLM request: %w", err)
	}
	req.Header = header
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call LLM: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("LLM responded with status %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode LLM response: %w", err)
	}
	return nil
}

// Compile-time interface conformance check.
var _ Client = (*HTTPClient)(nil)
