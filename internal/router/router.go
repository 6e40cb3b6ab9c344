package router

import (
	"github.com/gin-gonic/gin"

	"github.com/tastemap/backend/internal/api"
	"github.com/tastemap/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	healthHandler *api.HealthHandler,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/health", healthHandler.Health)

	// Recipe API routes
	apiGroup := router.Group("/api")
	recipeHandler.RegisterRoutes(apiGroup)

	return router
}
