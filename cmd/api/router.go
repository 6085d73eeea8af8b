package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whatsapp-reviews/internal/shared/middleware"
	"whatsapp-reviews/internal/shared/response"
	"whatsapp-reviews/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	router.GET("/health", healthCheckHandler(c))

	setupWebhookRoutes(router, c)
	setupReviewRoutes(router, c)

	return router
}

// ========================================
// WEBHOOK ROUTES
// ========================================
func setupWebhookRoutes(router *gin.Engine, c *container.Container) {
	router.POST("/whatsapp", c.WebhookHandler.Receive)
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(router *gin.Engine, c *container.Container) {
	api := router.Group("/api")
	{
		api.GET("/reviews", c.ReviewHandler.ListReviews)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "SYS_002", err.Error())
			return
		}
		response.Health(ctx)
	}
}
