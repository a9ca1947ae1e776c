package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// requestAction is the shared shape of the four request-lifecycle use cases.
type requestAction interface {
	Execute(ctx context.Context, chatID, callerID string) error
}

// RequestActionController handles one request-lifecycle endpoint
// (send/cancel/accept/reject); construct one per route.
type RequestActionController struct {
	uc requestAction
	ok string
}

func NewRequestActionController(uc requestAction, okMessage string) *RequestActionController {
	return &RequestActionController{uc: uc, ok: okMessage}
}

func (h *RequestActionController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := callerID(c)
		if !ok {
			return
		}
		chatID := c.Param("chatId")
		if err := h.uc.Execute(c.Request.Context(), chatID, caller); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": h.ok})
	}
}
