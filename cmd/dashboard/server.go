package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"whatsapp-reviews/internal/config"
	"whatsapp-reviews/internal/dashboard/client"
	"whatsapp-reviews/internal/dashboard/handler"
	"whatsapp-reviews/internal/dashboard/service"
	"whatsapp-reviews/internal/dashboard/view"
	"whatsapp-reviews/pkg/logger"
)

func Serve(cfg *config.DashboardConfig) {
	// ========================================
	// 1. WIRE DEPENDENCIES
	// ========================================
	reviewsClient := client.NewHTTPClient(cfg.BackendURL, cfg.FetchTimeout)
	dashboard := service.NewDashboard(reviewsClient)
	dashboardHandler := handler.NewDashboardHandler(dashboard, view.NewPageFormatter(cfg.Location))

	// ========================================
	// 2. SETUP ROUTER
	// ========================================
	router := SetupRouter(dashboardHandler)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", cfg.Port),
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// ========================================
	// 3. START SERVER (NON-BLOCKING)
	// ========================================
	go func() {
		logger.Info("Dashboard starting", map[string]interface{}{
			"addr":     "http://localhost:" + cfg.Port,
			"backend":  cfg.BackendURL + client.ReviewsPath,
			"timezone": cfg.Location.String(),
		})

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start dashboard")
		}
	}()

	// ========================================
	// 4. GRACEFUL SHUTDOWN
	// ========================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down dashboard...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Dashboard forced to shutdown", err)
	}

	// in-flight fetches are bounded by the client timeout
	dashboard.Wait()

	log.Info().Msg("Dashboard exited gracefully")
}
