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
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/task"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/usecase"
	listingadapter "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/persistence/repository/adapter"
	listinghttp "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/presentation/http"
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

	repo := listingadapter.NewPgPostRepository(pool)
	if err := repo.Migrate(ctx); err != nil {
		logger.Error("failed to run listing migrations", "error", err)
		os.Exit(1)
	}

	bus, err := busadapter.NewAsynqPublisherFromEnv(event.DefaultBindings())
	if err != nil {
		logger.Error("failed to connect to event bus", "error", err)
		os.Exit(1)
	}
	defer bus.Close()

	// Consumer side: close the post when a request is accepted.
	consumer, err := busadapter.NewAsynqServer(event.QueueListing, logger)
	if err != nil {
		logger.Error("failed to start event consumer", "error", err)
		os.Exit(1)
	}
	task.RegisterRequestAcceptedTask(consumer, usecase.NewClosePostUseCase(repo), logger)

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	api := r.Group("/api/v1")
	listinghttp.RegisterRoutes(api, repo, bus, logger)

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
		logger.Info("listing service listening", "addr", cfg.HTTPAddr)
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
	logger.Info("listing service stopped")
}
