package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds the collector API configuration.
// Every field is populated from environment variables.
type Config struct {
	App          AppConfig
	Redis        RedisConfig
	Conversation ConversationConfig
	CORS         CORSConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	URL      string // overrides Host/Password/DB when set
	Host     string
	Password string
	DB       int
}

// ConversationConfig drives the WhatsApp webhook flow
type ConversationConfig struct {
	StateStore      string        // redis | memory
	StateTTL        time.Duration // idle conversations expire after this
	DuplicateWindow time.Duration // identical reviews inside the window are dropped
}

type CORSConfig struct {
	AllowedOrigins []string
}

const (
	StateStoreRedis  = "redis"
	StateStoreMemory = "memory"
)

// Load reads the API config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "WhatsApp Review Collector"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Conversation: ConversationConfig{
			StateStore:      strings.ToLower(getEnv("STATE_STORE", StateStoreMemory)),
			StateTTL:        time.Duration(getEnvInt("STATE_TTL_SECONDS", 1800)) * time.Second,
			DuplicateWindow: getEnvDuration("DUPLICATE_WINDOW", 10*time.Minute),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the values that cannot be defaulted silently
func (c *Config) Validate() error {
	switch c.Conversation.StateStore {
	case StateStoreRedis, StateStoreMemory:
	default:
		return fmt.Errorf("STATE_STORE must be %q or %q, got %q",
			StateStoreRedis, StateStoreMemory, c.Conversation.StateStore)
	}

	if c.Conversation.StateTTL <= 0 {
		return fmt.Errorf("STATE_TTL_SECONDS must be positive")
	}
	if c.Conversation.DuplicateWindow < 0 {
		return fmt.Errorf("DUPLICATE_WINDOW must not be negative")
	}

	if c.App.Environment == "production" && c.Conversation.StateStore == StateStoreMemory {
		log.Warn().Msg("In-memory conversation state is lost on restart, set STATE_STORE=redis")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
