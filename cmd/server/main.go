package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/database"
	"portfolio-api/internal/handlers"
	customMiddleware "portfolio-api/internal/middleware"
	"portfolio-api/internal/notify"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/server"
	"portfolio-api/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet.
		_ = logger.Initialize(logger.Config{Level: "info", Environment: "production"})
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	if err := logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	}); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongo, err := database.Connect(ctx, cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	// Initialize repositories
	collaborationRepo := repository.NewCollaborationRepo(mongo.DB)
	guestbookRepo := repository.NewGuestbookRepo(mongo.DB)

	// Ensure indexes
	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if err := collaborationRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Warn("Failed to create collaboration indexes", zap.Error(err))
	}
	if err := guestbookRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Warn("Failed to create guestbook indexes", zap.Error(err))
	}
	cancel()

	var notifier notify.Notifier
	if cfg.EmailEnabled() {
		notifier = notify.NewResendNotifier(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.Email.To, cfg.Email.Timeout)
	} else {
		logger.Warn("RESEND_API_KEY not set, collaboration emails will only be logged")
		notifier = notify.NewLogNotifier()
	}

	if !cfg.Guestbook.ApprovedOnly {
		logger.Warn("Guestbook listing includes unapproved entries; set GUESTBOOK_APPROVED_ONLY=true to hide them")
	}

	limiter := customMiddleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	defer limiter.Stop()

	router := server.NewRouter(server.Options{
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		MaxBodyBytes:      cfg.Server.MaxBodyBytes,
		Health:            handlers.NewHealthHandler(),
		Collaboration:     handlers.NewCollaborationHandler(collaborationRepo, notifier),
		Guestbook:         handlers.NewGuestbookHandler(guestbookRepo, cfg.Guestbook.ApprovedOnly),
		SubmissionLimiter: limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.Email.Timeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("Portfolio API starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	if err := mongo.Disconnect(shutdownCtx); err != nil {
		logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
	}
}
