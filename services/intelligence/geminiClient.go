// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"fmt"
	"strings"

	"hotelbot/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements ChatClient on the Gemini API.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, modelName: modelName}, nil
}

// Complete sends the transcript as a Gemini chat. The system message, when
// present, becomes the model's system instruction; the remaining turns map
// onto Gemini's user/model history.
func (g *GeminiClient) Complete(ctx context.Context, messages []models.ChatMessage, opts CompletionOptions) (string, error) {
	modelName := opts.Model
	if modelName == "" {
		modelName = g.modelName
	}
	model := g.client.GenerativeModel(modelName)
	if opts.Temperature != nil {
		model.SetTemperature(*opts.Temperature)
	}

	history, last := splitForGemini(messages)
	if last == "" {
		return "", fmt.Errorf("gemini: empty transcript")
	}
	for _, m := range messages {
		if m.Role == models.RoleSystem {
			model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(m.Content)}}
			break
		}
	}

	session := model.StartChat()
	session.History = history
	resp, err := session.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// splitForGemini converts the transcript into Gemini history plus the final
// user message. System messages are handled separately by the caller.
func splitForGemini(messages []models.ChatMessage) ([]*genai.Content, string) {
	var history []*genai.Content
	var last string
	for _, m := range messages {
		switch m.Role {
		case models.RoleSystem:
			continue
		case models.RoleAssistant:
			history = append(history, &genai.Content{
				Role:  "model",
				Parts: []genai.Part{genai.Text(m.Content)},
			})
		default:
			history = append(history, &genai.Content{
				Role:  "user",
				Parts: []genai.Part{genai.Text(m.Content)},
			})
		}
	}
	// Pop the trailing user turn; it is sent as the message itself.
	if n := len(history); n > 0 && history[n-1].Role == "user" {
		last = partText(history[n-1])
		history = history[:n-1]
	}
	return history, last
}

func partText(c *genai.Content) string {
	var sb strings.Builder
	for _, p := range c.Parts {
		if t, ok := p.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}
