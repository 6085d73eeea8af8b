package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"whatsapp-reviews/internal/config"
	"whatsapp-reviews/pkg/logger"
)

func main() {
	envFileErr := godotenv.Load()

	cfg, err := config.LoadDashboard()
	if err != nil {
		logger.Init("development", "")
		log.Fatal().Err(err).Msg("Failed to load dashboard config")
	}

	logger.Init(cfg.Environment, os.Getenv("LOG_LEVEL"))
	if envFileErr != nil {
		logger.Warn("No .env file found, using system environment variables", nil)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	Serve(cfg)
}
