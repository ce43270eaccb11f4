// File: services/conversation/service.go
package conversation

import (
	"context"
	"fmt"
	"time"

	"hotelbot/models"
	"hotelbot/services/extraction"
	ai "hotelbot/services/intelligence"

	"go.uber.org/zap"
)

// ChatReply is one finished turn as surfaced to the HTTP layer.
type ChatReply struct {
	Text            string
	BookingFinished bool
}

// ChatService runs one dialogue turn end to end.
type ChatService interface {
	ContinueChat(ctx context.Context, sessionID, userText string) (*ChatReply, error)
}

// DefaultChatService implements ChatService: it keeps the transcript in the
// session store, asks the chat model for the next reply and for the
// structured state table, re-derives the booking state and lets the flow
// controller decide what the user actually sees.
type DefaultChatService struct {
	Chat      ai.ChatClient
	Extractor *extraction.StateExtractor
	Flow      *FlowController
	Sessions  SessionStore
	Logger    *zap.Logger

	// TableModel optionally overrides the model for the structured state
	// query (typically a fine-tuned variant).
	TableModel string

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewDefaultChatService(
	chat ai.ChatClient,
	extractor *extraction.StateExtractor,
	flow *FlowController,
	sessions SessionStore,
	tableModel string,
	logger *zap.Logger,
) *DefaultChatService {
	return &DefaultChatService{
		Chat:       chat,
		Extractor:  extractor,
		Flow:       flow,
		Sessions:   sessions,
		TableModel: tableModel,
		Logger:     logger,
		Now:        time.Now,
	}
}

// ContinueChat appends the user message to the session transcript, produces
// the assistant's reply and persists the updated transcript. Completion
// failures degrade to a fixed apology; the dialogue itself never errors out
// because of the upstream model.
func (s *DefaultChatService) ContinueChat(ctx context.Context, sessionID, userText string) (*ChatReply, error) {
	history, err := s.Sessions.History(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	history = append(history, models.ChatMessage{Role: models.RoleUser, Content: userText})

	modelReply := s.complete(ctx, s.withSystemContext(history), ai.CompletionOptions{Temperature: ai.Temp(0.5)})

	state := s.extractState(ctx, history, modelReply)
	decision := s.Flow.Decide(state)

	reply := &ChatReply{Text: modelReply, BookingFinished: decision.BookingFinished}
	switch {
	case decision.MsgToUser != "":
		reply.Text = decision.MsgToUser
	case decision.MsgToModel != "":
		// The instruction is injected as a user turn but never persisted.
		steered := append(append([]models.ChatMessage{}, s.withSystemContext(history)...),
			models.ChatMessage{Role: models.RoleUser, Content: decision.MsgToModel})
		reply.Text = s.complete(ctx, steered, ai.CompletionOptions{Temperature: ai.Temp(0.5)})
	}

	history = append(history, models.ChatMessage{Role: models.RoleAssistant, Content: reply.Text})
	if err := s.Sessions.SaveHistory(ctx, sessionID, history); err != nil {
		return nil, err
	}
	return reply, nil
}

// extractState asks the model to restate the known facts as a table and
// re-derives the full booking state from it. The previous turn's state is
// never patched; each turn supersedes it entirely.
func (s *DefaultChatService) extractState(ctx context.Context, history []models.ChatMessage, lastReply string) *models.BookingState {
	transcript := append([]models.ChatMessage{}, history...)
	if lastReply != "" {
		transcript = append(transcript, models.ChatMessage{Role: models.RoleAssistant, Content: lastReply})
	}
	transcript = append(transcript, models.ChatMessage{Role: models.RoleUser, Content: structuredDataQuery})

	table, err := s.Chat.Complete(ctx, transcript, ai.CompletionOptions{
		Temperature: ai.Temp(0.2),
		Model:       s.TableModel,
	})
	if err != nil {
		// A malformed or missing table degrades to per-attribute "no match".
		s.Logger.Error("structured state query failed", zap.Error(err))
		table = ""
	}
	s.Logger.Debug("structured state table", zap.String("table", table))
	return s.Extractor.Extract(ctx, table)
}

// complete wraps the chat client with the apology substitution: the rest of
// the pipeline only ever sees plain text.
func (s *DefaultChatService) complete(ctx context.Context, messages []models.ChatMessage, opts ai.CompletionOptions) string {
	text, err := s.Chat.Complete(ctx, messages, opts)
	if err != nil {
		s.Logger.Error("chat completion failed", zap.Error(err))
		return apologyMessage
	}
	return text
}

// withSystemContext prefixes the transcript with the task description, the
// hotel facts, the current date and the canned greeting.
func (s *DefaultChatService) withSystemContext(history []models.ChatMessage) []models.ChatMessage {
	systemText := fmt.Sprintf("%s\nThis is some context information about the hotel:\n%s\nThe current date and time is %s.",
		taskDescription, hotelInformation, s.Now().Format(time.RFC1123))
	messages := []models.ChatMessage{
		{Role: models.RoleSystem, Content: systemText},
		{Role: models.RoleAssistant, Content: greeting},
	}
	return append(messages, history...)
}
