package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-studio-backend/config"
	_ "go-studio-backend/docs" // Important for Swagger
	v1 "go-studio-backend/internal/delivery/http/v1"
	"go-studio-backend/internal/usecase"
	"go-studio-backend/pkg/email"
	"go-studio-backend/pkg/logger"
	"go-studio-backend/pkg/redis"
	"go-studio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Aakar Architects Forms API
// @version         1.0
// @description     Relays website form submissions (contact, quote, internship, work application) as emails.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting studio forms backend", "port", cfg.Port)

	// 3. Setup Redis (rate limiting; in-memory fallback when absent)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err.Error())
	}
	defer redis.Close()

	// 4. Setup Mail Transport (constructed once, shared by all requests)
	mailer := email.NewMailer(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - form submissions will fail")
	}
	defer mailer.Close()

	renderer := email.NewRenderer(cfg.EmailTimezone)

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	submissionUC := usecase.NewSubmissionUsecase(cfg, mailer, renderer, validate)
	healthUC := usecase.NewHealthUsecase()

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC: submissionUC,
		HealthUC:     healthUC,
		Config:       cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
