package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/usecase"
)

// DeletePostController handles the delete-post endpoint only (one controller per endpoint)
type DeletePostController struct {
	uc *usecase.DeletePostUseCase
}

func NewDeletePostController(uc *usecase.DeletePostUseCase) *DeletePostController {
	return &DeletePostController{uc: uc}
}

func (h *DeletePostController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := callerID(c)
		if !ok {
			return
		}
		if err := h.uc.Execute(c.Request.Context(), c.Param("postId"), caller); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
