package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"jobtrack-api/config"
	"jobtrack-api/internal/api/handlers"
	"jobtrack-api/internal/app"
	"jobtrack-api/internal/auth"
	"jobtrack-api/internal/database"
	"jobtrack-api/internal/server"

	_ "jobtrack-api/docs" // Generated by swag init

	"github.com/go-playground/validator/v10"
)

// @title           JobTrack API
// @version         1.0
// @description     REST API for tracking job and internship applications, built with Gin and pgx.

// @contact.name   API Support

// @license.name  MIT

// @host      localhost:5000
// @BasePath  /
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// Redis only backs rate limiting, so a missing instance is not fatal
	// outside production.
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		if cfg.IsProduction() {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Printf("WARN: Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	validate := validator.New()

	tokenManager := auth.NewTokenManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTTL,
		cfg.JWT.RefreshTTL,
	)

	var googleVerifier auth.GoogleVerifier
	if cfg.Google.ClientID != "" {
		googleVerifier = auth.NewGoogleVerifier(cfg.Google.ClientID)
	} else {
		log.Println("WARN: GOOGLE_CLIENT_ID not set, Google sign-in disabled")
	}

	// Internal error details only leave the process outside production.
	handlers.SetErrorDetailExposure(!cfg.IsProduction())

	application := &app.Application{
		Config:         cfg,
		DBPool:         dbPool,
		RedisClient:    redisClient,
		Validator:      validate,
		TokenManager:   tokenManager,
		GoogleVerifier: googleVerifier,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down...")
	log.Println("Application gracefully stopped.")
}
