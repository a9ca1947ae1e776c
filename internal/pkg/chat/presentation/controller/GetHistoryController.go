package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/application/usecase"
)

// GetHistoryController handles the history endpoint only (one controller per endpoint)
type GetHistoryController struct {
	uc *usecase.GetHistoryUseCase
}

func NewGetHistoryController(uc *usecase.GetHistoryUseCase) *GetHistoryController {
	return &GetHistoryController{uc: uc}
}

func (h *GetHistoryController) Handle() gin.HandlerFunc {
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
