package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dermalens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		analysis := v1.Group("/analysis")
		{
			analysis.POST("/skin", handler.AnalyzeSkin)
		}

		recommendations := v1.Group("/recommendations")
		{
			recommendations.POST("/skincare", handler.RecommendSkincare)
			recommendations.POST("/hair", handler.RecommendHair)
		}

		v1.POST("/report", handler.GenerateReport)
		v1.POST("/chat", handler.Chat)
	}

	return router
}
