package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/application/usecase"
)

// SendMessageController handles the send-message endpoint only (one controller per endpoint)
type SendMessageController struct {
	uc *usecase.SendMessageUseCase
}

func NewSendMessageController(uc *usecase.SendMessageUseCase) *SendMessageController {
	return &SendMessageController{uc: uc}
}

// sendMessageRequest is the DTO for the HTTP request body
type sendMessageRequest struct {
	SenderID       string `json:"senderId" binding:"required"`
	ReceiverID     string `json:"receiverId" binding:"required"`
	AdoptionPostID string `json:"adoptionPostId"`
	ChatID         string `json:"chatId"`
	Message        string `json:"message" binding:"required"`
}

func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := callerID(c)
		if !ok {
			return
		}
		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		msg, err := h.uc.Execute(c.Request.Context(), usecase.SendMessageInput{
			CallerID:       caller,
			SenderID:       req.SenderID,
			ReceiverID:     req.ReceiverID,
			AdoptionPostID: req.AdoptionPostID,
			ChatID:         req.ChatID,
			Body:           req.Message,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, msg)
	}
}
