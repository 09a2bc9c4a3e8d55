package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var ErrNoEndpoint = errors.New("no model endpoint configured")

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

// NewOpenAI returns a client for an OpenAI-compatible /v1/chat/completions
// endpoint. Every request is bounded by timeout.
func NewOpenAI(endpoint, key, model string, timeout time.Duration) Client {
	return &openAI{
		endpoint: endpoint,
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: timeout},
	}
}

func (c *openAI) Complete(ctx context.Context, prompt string) (string, error) {
	if c.endpoint == "" {
		return "", ErrNoEndpoint
	}

	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": 0.2,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(c.endpoint, "/") + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("model endpoint returned %s", resp.Status)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode model response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("model response has no choices")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
