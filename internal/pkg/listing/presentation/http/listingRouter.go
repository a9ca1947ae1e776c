package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	busport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/usecase"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/persistence/repository/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/presentation/controller"
)

// RegisterRoutes registers listing-related HTTP endpoints under the given router group
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, repo repository.PostRepository, bus busport.Publisher, log *slog.Logger) {
	createCtl := controller.NewCreatePostController(usecase.NewCreatePostUseCase(repo, bus, log))
	getCtl := controller.NewGetPostController(usecase.NewGetPostUseCase(repo))
	deleteCtl := controller.NewDeletePostController(usecase.NewDeletePostUseCase(repo))

	// POST /api/v1/posts -> publish a new adoption post
	g.POST("/posts", createCtl.Handle())

	// GET /api/v1/posts/:postId -> fetch one post
	g.GET("/posts/:postId", getCtl.Handle())

	// DELETE /api/v1/posts/:postId -> owner-only removal
	g.DELETE("/posts/:postId", deleteCtl.Handle())
}
