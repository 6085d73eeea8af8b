package main

import (
	"github.com/gin-gonic/gin"

	"whatsapp-reviews/internal/dashboard/handler"
	"whatsapp-reviews/internal/dashboard/view"
	"whatsapp-reviews/internal/shared/middleware"
)

func SetupRouter(h *handler.DashboardHandler) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(view.Templates())

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/", h.Page)
	router.POST("/refresh", h.Refresh)
	router.GET("/state", h.State)
	router.GET("/health", h.Health)

	return router
}
