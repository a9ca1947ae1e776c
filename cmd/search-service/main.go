package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/StefanoAtzeni2001/adottaTO/internal/config"
	"github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/database"
	busadapter "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/adapter"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/task"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/usecase"
	searchadapter "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/persistence/repository/adapter"
	searchhttp "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/presentation/http"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found or could not be loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Connect to the database on startup
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := searchadapter.NewPgSearchRepository(pool)
	if err := repo.Migrate(ctx); err != nil {
		logger.Error("failed to run search migrations", "error", err)
		os.Exit(1)
	}

	bus, err := busadapter.NewAsynqPublisherFromEnv(event.DefaultBindings())
	if err != nil {
		logger.Error("failed to connect to event bus", "error", err)
		os.Exit(1)
	}
	defer bus.Close()

	// Consumer side: match every new post against the saved searches.
	consumer, err := busadapter.NewAsynqServer(event.QueueSavedSearch, logger)
	if err != nil {
		logger.Error("failed to start event consumer", "error", err)
		os.Exit(1)
	}
	task.RegisterNewPostTask(consumer, usecase.NewMatchPostUseCase(repo, bus, logger), logger)

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	api := r.Group("/api/v1")
	searchhttp.RegisterRoutes(api, repo)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := consumer.Run(runCtx); err != nil {
			logger.Error("event consumer failed", "error", err)
			stop()
		}
	}()

	go func() {
		logger.Info("search service listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-runCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	logger.Info("search service stopped")
}
