package v1

import (
	"net/http"
	"time"

	"go-studio-backend/config"
	"go-studio-backend/internal/delivery/http/middleware"
	"go-studio-backend/internal/domain"
	"go-studio-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SubmissionUC domain.SubmissionUsecase
	HealthUC     usecase.HealthUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check. Bare shape, not the envelope: uptime monitors and
	// the frontend's connectivity probe read it directly.
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.HealthUC.Check(c.Request.Context()))
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public form routes, rate limited per client IP
	forms := api.Group("")
	forms.Use(middleware.RateLimitMiddleware(middleware.FormRateLimitConfig(
		deps.Config.RateLimitFormThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))
	NewSubmissionHandler(forms, deps.SubmissionUC)

	// Uniform 404 body for anything unmatched
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return r
}
