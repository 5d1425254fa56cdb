package http

import (
	"errors"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noskills/chat-gateway/internal/core"
)

// MessageHandlers serves the HTTP ingestion endpoint.
type MessageHandlers struct {
	gateway *core.Gateway
	log     *zerolog.Logger
}

// NewMessageHandlers creates a new message handlers instance.
func NewMessageHandlers(gw *core.Gateway, logger *zerolog.Logger) *MessageHandlers {
	return &MessageHandlers{gateway: gw, log: logger}
}

// PostMessageRequest represents the ingestion request body.
type PostMessageRequest struct {
	Content string `json:"content" binding:"required"`
	ChatID  string `json:"chatId" binding:"required"`
}

// FieldError describes one validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse carries the full list of field errors.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// PostMessageResponse confirms a broadcast message.
type PostMessageResponse struct {
	Success bool           `json:"success"`
	Message map[string]any `json:"message"`
}

// PostMessage handles POST /api/messages. A valid body is trimmed,
// HTML-escaped and broadcast to the target room through the same
// dispatcher the socket path uses; the caller need not be a member.
func (h *MessageHandlers) PostMessage(c *gin.Context) {
	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid post message request")
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: fieldErrors(err)})
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: []FieldError{
			{Field: "content", Message: "content must not be empty"},
		}})
		return
	}

	msg := h.gateway.PostMessage(req.ChatID, html.EscapeString(content))

	h.log.Info().Str("message_id", msg.ID).Str("chat_id", msg.ChatID).Msg("message ingested")
	c.JSON(http.StatusOK, PostMessageResponse{Success: true, Message: msg.Payload()})
}

var requestFieldNames = map[string]string{
	"Content": "content",
	"ChatID":  "chatId",
}

func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: "invalid request body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if name, ok := requestFieldNames[field]; ok {
			field = name
		}
		out = append(out, FieldError{Field: field, Message: "failed on " + fe.Tag()})
	}
	return out
}
