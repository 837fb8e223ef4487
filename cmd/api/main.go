package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-profilepage-backend/config"
	_ "go-profilepage-backend/docs" // Important for Swagger
	v1 "go-profilepage-backend/internal/delivery/http/v1"
	"go-profilepage-backend/internal/repository/postgres"
	"go-profilepage-backend/internal/usecase"
	"go-profilepage-backend/pkg/auth"
	"go-profilepage-backend/pkg/database"
	"go-profilepage-backend/pkg/logger"
	"go-profilepage-backend/pkg/media"
	"go-profilepage-backend/pkg/redis"
	"go-profilepage-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Profile Pages API
// @version         1.0
// @description     Backend for shareable profile pages using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting profile pages backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Media Store
	var mediaStore media.Store
	if cfg.S3Bucket != "" {
		mediaStore, err = media.NewS3Store(context.Background(), media.S3Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			PublicBaseURL:   cfg.MediaBaseURL,
		})
		if err != nil {
			logger.Log.Error("Failed to set up media store", "error", err)
			os.Exit(1)
		}
	}

	// 6. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate, cfg.FrontendURL)
	mediaUC := usecase.NewMediaUsecase(mediaStore, cfg.MaxImageSizeBytes)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:    profileUC,
		MediaUC:      mediaUC,
		HealthUC:     healthUC,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 10. Start Server
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
