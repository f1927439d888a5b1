package handler

import (
	"net/http"

	"github.com/Scott-fo/mern-tinder-backend/internal/domain"
	"github.com/Scott-fo/mern-tinder-backend/internal/usecase/message"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MessageHandler struct {
	messageUseCase *message.MessageUseCase
	logger         *zap.Logger
}

func NewMessageHandler(messageUseCase *message.MessageUseCase, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
		logger:         logger,
	}
}

// GetMessages handles GET /messages?userId=&correspondingUserId=. Only
// the userId → correspondingUserId direction is returned.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	fromUserID := c.Query("userId")
	toUserID := c.Query("correspondingUserId")

	messages, err := h.messageUseCase.GetDirected(c.Request.Context(), fromUserID, toUserID)
	if err != nil {
		h.logger.Error("failed to get messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get messages",
		})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// SendMessageRequest wraps the message document posted to POST /message.
type SendMessageRequest struct {
	Message domain.Message `json:"message" binding:"required"`
}

// CreateMessage handles POST /message. The message document is stored
// verbatim; the response is the insert acknowledgment.
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	ack, err := h.messageUseCase.Send(c.Request.Context(), req.Message)
	if err != nil {
		h.logger.Error("failed to insert message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to insert message",
		})
		return
	}

	c.JSON(http.StatusOK, ack)
}
