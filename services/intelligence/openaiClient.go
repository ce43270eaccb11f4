// File: services/intelligence/openaiClient.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hotelbot/models"

	"go.uber.org/zap"
)

// The upstream API occasionally hangs for minutes without answering, so
// each attempt is bounded tightly and retried once.
const (
	completionAttempts  = 2
	perAttemptTimeout   = 5 * time.Second
	retryBackoffInitial = 500 * time.Millisecond
)

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	baseURL      string
	apiKey       string
	defaultModel string
	client       *http.Client
	logger       *zap.Logger
}

func NewOpenAIClient(baseURL, apiKey, defaultModel string, logger *zap.Logger) *OpenAIClient {
	return &OpenAIClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		defaultModel: defaultModel,
		client:       &http.Client{Timeout: perAttemptTimeout},
		logger:       logger,
	}
}

type chatCompletionRequest struct {
	Model       string               `json:"model"`
	Messages    []models.ChatMessage `json:"messages"`
	Temperature *float32             `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message models.ChatMessage `json:"message"`
	} `json:"choices"`
}

// Complete runs the chat completion with a bounded retry.
func (c *OpenAIClient) Complete(ctx context.Context, messages []models.ChatMessage, opts CompletionOptions) (string, error) {
	backoff := retryBackoffInitial
	var lastErr error
	for attempt := 1; attempt <= completionAttempts; attempt++ {
		text, err := c.complete(ctx, messages, opts)
		if err == nil {
			return text, nil
		}
		lastErr = err
		c.logger.Warn("chat completion attempt failed",
			zap.Int("attempt", attempt), zap.Error(err))
		if attempt < completionAttempts {
			select {
			case <-time.After(backoff):
				backoff *= 2
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", fmt.Errorf("chat completion: %w", lastErr)
}

func (c *OpenAIClient) complete(ctx context.Context, messages []models.ChatMessage, opts CompletionOptions) (string, error) {
	model := opts.Model
	if model == "" {
		model = c.defaultModel
	}
	payload, err := json.Marshal(chatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: opts.Temperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion endpoint returned status %d", resp.StatusCode)
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}
	return decoded.Choices[0].Message.Content, nil
}
