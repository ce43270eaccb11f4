// File: services/intelligence/interface.go
package ai

import (
	"context"

	"hotelbot/models"
)

// CompletionOptions tune one completion call. Nil Temperature keeps the
// provider default; empty Model uses the client's configured default.
type CompletionOptions struct {
	Temperature *float32
	Model       string
}

// Temp is a convenience for building a temperature pointer inline.
func Temp(t float32) *float32 { return &t }

// ChatClient is the contract the conversation layer depends on: hand over a
// role-tagged transcript, get back the assistant's text. Retry and timeout
// policy live entirely inside implementations; callers only ever see a
// plain string or an error.
type ChatClient interface {
	Complete(ctx context.Context, messages []models.ChatMessage, opts CompletionOptions) (string, error)
}
