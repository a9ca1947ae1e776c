package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/application/usecase"
)

// ListChatsController handles the conversation-list endpoint only (one controller per endpoint)
type ListChatsController struct {
	uc *usecase.ListChatsUseCase
}

func NewListChatsController(uc *usecase.ListChatsUseCase) *ListChatsController {
	return &ListChatsController{uc: uc}
}

func (h *ListChatsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := callerID(c)
		if !ok {
			return
		}
		chats, err := h.uc.Execute(c.Request.Context(), caller)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, chats)
	}
}
