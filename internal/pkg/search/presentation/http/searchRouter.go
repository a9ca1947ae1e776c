package http

import (
	"github.com/gin-gonic/gin"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/usecase"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/persistence/repository/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/presentation/controller"
)

// RegisterRoutes registers saved-search HTTP endpoints under the given router group
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, repo repository.SearchRepository) {
	saveCtl := controller.NewSaveSearchController(usecase.NewSaveSearchUseCase(repo))
	listCtl := controller.NewListSearchesController(usecase.NewListSearchesUseCase(repo))
	deleteCtl := controller.NewDeleteSearchController(usecase.NewDeleteSearchUseCase(repo))

	// POST /api/v1/search -> save a standing search for the caller
	g.POST("/search", saveCtl.Handle())

	// GET /api/v1/search -> list the caller's saved searches
	g.GET("/search", listCtl.Handle())

	// DELETE /api/v1/search/:searchId -> owner-only removal
	g.DELETE("/search/:searchId", deleteCtl.Handle())
}
