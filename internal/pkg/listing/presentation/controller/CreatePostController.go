package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/usecase"
)

// CreatePostController handles the create-post endpoint only (one controller per endpoint)
type CreatePostController struct {
	uc *usecase.CreatePostUseCase
}

func NewCreatePostController(uc *usecase.CreatePostUseCase) *CreatePostController {
	return &CreatePostController{uc: uc}
}

// createPostRequest is the DTO for the HTTP request body
type createPostRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Species     string `json:"species" binding:"required"`
	Breed       string `json:"breed"`
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
	Color       string `json:"color"`
	Location    string `json:"location"`
}

func (h *CreatePostController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := callerID(c)
		if !ok {
			return
		}
		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		post, err := h.uc.Execute(c.Request.Context(), usecase.CreatePostInput{
			OwnerID:     caller,
			Name:        req.Name,
			Description: req.Description,
			Species:     req.Species,
			Breed:       req.Breed,
			Gender:      req.Gender,
			Age:         req.Age,
			Color:       req.Color,
			Location:    req.Location,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}
