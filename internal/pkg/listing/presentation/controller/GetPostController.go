package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/usecase"
)

// GetPostController handles the post-detail endpoint only (one controller per endpoint)
type GetPostController struct {
	uc *usecase.GetPostUseCase
}

func NewGetPostController(uc *usecase.GetPostUseCase) *GetPostController {
	return &GetPostController{uc: uc}
}

func (h *GetPostController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := h.uc.Execute(c.Request.Context(), c.Param("postId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}
