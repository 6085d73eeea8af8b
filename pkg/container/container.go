package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"whatsapp-reviews/internal/config"
	"whatsapp-reviews/internal/infrastructure/cache"
	"whatsapp-reviews/internal/infrastructure/database"
	"whatsapp-reviews/pkg/logger"

	conversationHandler "whatsapp-reviews/internal/domains/conversation/handler"
	conversationRepo "whatsapp-reviews/internal/domains/conversation/repository"
	conversationService "whatsapp-reviews/internal/domains/conversation/service"
	reviewHandler "whatsapp-reviews/internal/domains/review/handler"
	reviewRepo "whatsapp-reviews/internal/domains/review/repository"
	reviewService "whatsapp-reviews/internal/domains/review/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the collector API
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *cache.RedisClient // nil unless STATE_STORE=redis

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	ReviewRepo reviewRepo.ReviewRepository
	StateStore conversationRepo.StateStore

	// ========================================
	// SERVICE LAYER
	// ========================================
	ReviewService       reviewService.ServiceInterface
	ConversationService conversationService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	ReviewHandler  *reviewHandler.ReviewHandler
	WebhookHandler *conversationHandler.WebhookHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

func NewContainer() (*Container, error) {
	log.Info().Msg("Initializing DI Container...")

	c := &Container{}

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// 2. Infrastructure
	if err := c.initInfrastructure(); err != nil {
		c.Cleanup()
		return nil, err
	}

	// 3. Layers
	if err := c.initRepositories(); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}
	c.initServices()
	c.initHandlers()

	log.Info().Str("state_store", cfg.Conversation.StateStore).Msg("DI Container initialized successfully")
	return c, nil
}

func (c *Container) initInfrastructure() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	if err := db.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	if c.Config.Conversation.StateStore != config.StateStoreRedis {
		return nil
	}

	redisClient, err := cache.NewRedisClient(cache.Options{
		URL:      c.Config.Redis.URL,
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	if err != nil {
		return err
	}
	if err := redisClient.Connect(ctx); err != nil {
		_ = redisClient.Close()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Redis = redisClient

	return nil
}

func (c *Container) initRepositories() error {
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(c.DB.Pool)

	switch c.Config.Conversation.StateStore {
	case config.StateStoreRedis:
		c.StateStore = conversationRepo.NewRedisStateStore(c.Redis.Client, c.Config.Conversation.StateTTL)
	case config.StateStoreMemory:
		c.StateStore = conversationRepo.NewMemoryStateStore(c.Config.Conversation.StateTTL)
	default:
		return fmt.Errorf("unknown state store %q", c.Config.Conversation.StateStore)
	}

	return nil
}

func (c *Container) initServices() {
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.Config.Conversation.DuplicateWindow)
	c.ConversationService = conversationService.NewConversationService(c.StateStore, c.ReviewService)
}

func (c *Container) initHandlers() {
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.WebhookHandler = conversationHandler.NewWebhookHandler(c.ConversationService)
}

// HealthCheck pings every backing store the container opened
func (c *Container) HealthCheck(ctx context.Context) error {
	if c.DB != nil {
		if err := c.DB.HealthCheck(ctx); err != nil {
			return err
		}
	}
	if c.Redis != nil {
		if err := c.Redis.HealthCheck(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ========================================
// CLEANUP
// ========================================

func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("Database connections closed")
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		} else {
			log.Info().Msg("Redis connections closed")
		}
	}

	logger.Debug("Container cleanup completed")
}
