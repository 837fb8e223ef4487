package v1

import (
	"net/http"
	"time"

	"go-profilepage-backend/config"
	"go-profilepage-backend/internal/delivery/http/middleware"
	"go-profilepage-backend/internal/delivery/http/response"
	"go-profilepage-backend/internal/domain"
	"go-profilepage-backend/internal/usecase"
	"go-profilepage-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC    domain.ProfileUsecase
	MediaUC      usecase.MediaUsecase
	HealthUC     usecase.HealthUsecase
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))

	uploads := protected.Group("")
	uploads.Use(middleware.RateLimitMiddleware(
		middleware.UploadRateLimitConfig(deps.Config.RateLimitUploadThreshold, window)))

	NewProfileHandler(v1, protected, deps.ProfileUC)
	NewMediaHandler(uploads, deps.MediaUC)
	NewThemeHandler(v1)

	return r
}
