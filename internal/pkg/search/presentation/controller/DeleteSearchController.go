package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/usecase"
)

// DeleteSearchController handles the delete-search endpoint only (one controller per endpoint)
type DeleteSearchController struct {
	uc *usecase.DeleteSearchUseCase
}

func NewDeleteSearchController(uc *usecase.DeleteSearchUseCase) *DeleteSearchController {
	return &DeleteSearchController{uc: uc}
}

func (h *DeleteSearchController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := callerID(c)
		if !ok {
			return
		}
		if err := h.uc.Execute(c.Request.Context(), c.Param("searchId"), caller); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
