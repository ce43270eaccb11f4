package handlers

import (
	"net/http"

	"hotelbot/config"
	"hotelbot/models"
	"hotelbot/services/conversation"
	"hotelbot/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational booking endpoint.
type ChatHandler struct {
	Svc conversation.ChatService
}

func NewChatHandler(svc conversation.ChatService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// HandleChat receives one user message and returns the assistant's reply.
// Oversized inputs are rejected before the conversation core ever runs.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	maxChars := config.AppConfig.MaxInputChars
	if maxChars > 0 && len(req.Text) > maxChars {
		logger.Warn("Chat input too long", zap.Int("length", len(req.Text)))
		utils.JSONError(c, http.StatusBadRequest, "Message is too long.", "")
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	reply, err := h.Svc.ContinueChat(c.Request.Context(), req.SessionID, req.Text)
	if err != nil {
		logger.Error("Chat turn failed", zap.String("sessionId", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", "")
		return
	}

	resp := models.ChatResponse{
		SessionID: req.SessionID,
		Text:      reply.Text,
	}
	if reply.BookingFinished {
		resp.Flag = models.FlagBookingFinished
	}
	c.JSON(http.StatusOK, resp)
}
