package container

import (
	"context"
	"fmt"
	"time"

	"github.com/Scott-fo/mern-tinder-backend/internal/config"
	"github.com/Scott-fo/mern-tinder-backend/internal/delivery/http"
	"github.com/Scott-fo/mern-tinder-backend/internal/delivery/http/handler"
	"github.com/Scott-fo/mern-tinder-backend/internal/infrastructure/database"
	"github.com/Scott-fo/mern-tinder-backend/internal/infrastructure/logger"
	"github.com/Scott-fo/mern-tinder-backend/internal/infrastructure/server"
	"github.com/Scott-fo/mern-tinder-backend/internal/repository/mongodb"
	"github.com/Scott-fo/mern-tinder-backend/internal/usecase/auth"
	"github.com/Scott-fo/mern-tinder-backend/internal/usecase/message"
	"github.com/Scott-fo/mern-tinder-backend/internal/usecase/user"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Mongo  *mongo.Client
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log, err := logger.New(cfg.Logging.Level, cfg.Server.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if cfg.JWT.Secret == config.DefaultJWTSecret {
		log.Warn("JWT_SECRET is the development default; set a real secret before deploying")
	}

	// Initialize database
	mongoClient, err := database.NewMongoClient(&cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mongo: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	// Initialize Redis (optional cache)
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("failed to initialize redis, continuing without cache", zap.Error(err))
			redisClient = nil
		}
	}

	// Initialize repositories
	userRepo := mongodb.NewUserRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.ExpiryMin)
	userUseCase := user.NewUserUseCase(userRepo, redisClient, log)
	messageUseCase := message.NewMessageUseCase(messageRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase, log)
	userHandler := handler.NewUserHandler(userUseCase, log)
	messageHandler := handler.NewMessageHandler(messageUseCase, log)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		userHandler,
		messageHandler,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Logger: log,
		Mongo:  mongoClient,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error("error closing redis", zap.Error(err))
		}
	}

	// Disconnect Mongo
	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.Mongo.Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to disconnect mongo: %w", err)
		}
	}

	_ = c.Logger.Sync()
	return nil
}
