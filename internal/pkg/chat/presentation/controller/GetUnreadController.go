package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/application/usecase"
)

// GetUnreadController handles the unread-messages endpoint only (one controller per endpoint)
type GetUnreadController struct {
	uc *usecase.GetUnreadUseCase
}

func NewGetUnreadController(uc *usecase.GetUnreadUseCase) *GetUnreadController {
	return &GetUnreadController{uc: uc}
}

func (h *GetUnreadController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := callerID(c)
		if !ok {
			return
		}
		chatID := c.Param("chatId")
		msgs, err := h.uc.Execute(c.Request.Context(), chatID, caller)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, msgs)
	}
}
