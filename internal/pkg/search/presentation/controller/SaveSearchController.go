package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/usecase"
)

// SaveSearchController handles the save-search endpoint only (one controller per endpoint)
type SaveSearchController struct {
	uc *usecase.SaveSearchUseCase
}

func NewSaveSearchController(uc *usecase.SaveSearchUseCase) *SaveSearchController {
	return &SaveSearchController{uc: uc}
}

// saveSearchRequest is the DTO for the HTTP request body
type saveSearchRequest struct {
	Species  []string `json:"species"`
	Breed    []string `json:"breed"`
	Gender   string   `json:"gender"`
	MinAge   *int     `json:"minAge"`
	MaxAge   *int     `json:"maxAge"`
	Color    []string `json:"color"`
	Location []string `json:"location"`
}

func (h *SaveSearchController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := callerID(c)
		if !ok {
			return
		}
		var req saveSearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s, err := h.uc.Execute(c.Request.Context(), usecase.SaveSearchInput{
			UserID:   caller,
			Species:  req.Species,
			Breed:    req.Breed,
			Gender:   req.Gender,
			MinAge:   req.MinAge,
			MaxAge:   req.MaxAge,
			Color:    req.Color,
			Location: req.Location,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, s)
	}
}
