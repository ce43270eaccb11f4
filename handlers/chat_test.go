package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelbot/config"
	"hotelbot/models"
	"hotelbot/services/conversation"
	"hotelbot/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatService struct {
	reply   *conversation.ChatReply
	err     error
	gotID   string
	gotText string
}

func (f *fakeChatService) ContinueChat(_ context.Context, sessionID, text string) (*conversation.ChatReply, error) {
	f.gotID = sessionID
	f.gotText = text
	return f.reply, f.err
}

func performChat(t *testing.T, svc conversation.ChatService, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/chat", NewChatHandler(svc).HandleChat)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleChat_Success(t *testing.T) {
	config.AppConfig.MaxInputChars = 1000
	svc := &fakeChatService{reply: &conversation.ChatReply{Text: "How many nights?"}}

	rec := performChat(t, svc, `{"sessionId":"abc","text":"4th of October"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc", resp.SessionID)
	assert.Equal(t, "How many nights?", resp.Text)
	assert.Empty(t, resp.Flag)
	assert.Equal(t, "4th of October", svc.gotText)
}

func TestHandleChat_AssignsSessionID(t *testing.T) {
	config.AppConfig.MaxInputChars = 1000
	svc := &fakeChatService{reply: &conversation.ChatReply{Text: "hi"}}

	rec := performChat(t, svc, `{"text":"hello"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, resp.SessionID, svc.gotID)
}

func TestHandleChat_BookingFinishedFlag(t *testing.T) {
	config.AppConfig.MaxInputChars = 1000
	svc := &fakeChatService{reply: &conversation.ChatReply{Text: "Thank you!", BookingFinished: true}}

	rec := performChat(t, svc, `{"sessionId":"abc","text":"confirm"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.FlagBookingFinished, resp.Flag)
}

func TestHandleChat_RejectsOversizedInput(t *testing.T) {
	config.AppConfig.MaxInputChars = 10
	svc := &fakeChatService{reply: &conversation.ChatReply{Text: "ignored"}}

	rec := performChat(t, svc, `{"sessionId":"abc","text":"this message is far too long"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Message is too long.", resp.Message)
	assert.Empty(t, svc.gotText, "core must not run for rejected input")
}

func TestHandleChat_RejectsMissingText(t *testing.T) {
	config.AppConfig.MaxInputChars = 1000
	svc := &fakeChatService{reply: &conversation.ChatReply{Text: "ignored"}}

	rec := performChat(t, svc, `{"sessionId":"abc"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleChat_ServiceError(t *testing.T) {
	config.AppConfig.MaxInputChars = 1000
	svc := &fakeChatService{err: errors.New("redis down")}

	rec := performChat(t, svc, `{"sessionId":"abc","text":"hello"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to process message", resp.Message)
	assert.NotContains(t, rec.Body.String(), "redis", "internals must not leak to the user")
}
