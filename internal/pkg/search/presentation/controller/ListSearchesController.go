package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/usecase"
)

// ListSearchesController handles the list-searches endpoint only (one controller per endpoint)
type ListSearchesController struct {
	uc *usecase.ListSearchesUseCase
}

func NewListSearchesController(uc *usecase.ListSearchesUseCase) *ListSearchesController {
	return &ListSearchesController{uc: uc}
}

func (h *ListSearchesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := callerID(c)
		if !ok {
			return
		}
		searches, err := h.uc.Execute(c.Request.Context(), caller)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, searches)
	}
}
