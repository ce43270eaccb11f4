package models

// Chat roles as sent to the completion API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one role-tagged message of a conversation transcript.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text" binding:"required"`
}

// ChatResponse is what the chat handler returns to the frontend. Flag is
// "booking_finished" on the terminal turn and omitted otherwise.
type ChatResponse struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text"`
	Flag      string `json:"flag,omitempty"`
}
