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
	cacheadapter "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/cache/adapter"
	busadapter "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/adapter"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/application/task"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/application/usecase"
	mailadapter "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/mailer/adapter"
	mailport "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/mailer/port"
	profileadapter "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/profile/adapter"
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

	cache, err := cacheadapter.NewRedisAdapter()
	if err != nil {
		logger.Error("failed to connect to cache", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	profiles := profileadapter.NewCachedClient(
		profileadapter.NewHTTPClient(cfg.UserServiceURL, cfg.ProfileTimeout),
		cache, cfg.ProfileCacheTTL, logger)

	var mailer mailport.Mailer
	if cfg.SMTPAddr != "" {
		mailer = mailadapter.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPFrom)
	} else {
		logger.Warn("SMTP_ADDR not set, emails are logged only")
		mailer = mailadapter.NewLogMailer(logger)
	}

	consumer, err := busadapter.NewAsynqServer(event.QueueEmail, logger)
	if err != nil {
		logger.Error("failed to start event consumer", "error", err)
		os.Exit(1)
	}
	task.RegisterEmailTasks(consumer, usecase.NewNotifyUseCase(profiles, mailer, logger), logger)

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

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
		logger.Info("notification service listening", "addr", cfg.HTTPAddr)
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
	logger.Info("notification service stopped")
}
