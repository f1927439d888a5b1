package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoConfig struct {
	URI            string
	Database       string
	MaxPoolSize    uint64
	MinPoolSize    uint64
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret    string
	ExpiryMin int
}

type LoggingConfig struct {
	Level string
}

// DefaultJWTSecret is only acceptable for local development; Validate
// lets it through but the caller logs a warning when it is in use.
const DefaultJWTSecret = "dev-only-change-me"

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", 8000)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "app-data")
	viper.SetDefault("MONGO_MAX_POOL_SIZE", 100)
	viper.SetDefault("MONGO_MIN_POOL_SIZE", 10)
	viper.SetDefault("JWT_SECRET", DefaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_MIN", 60*24)
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("LOG_LEVEL", "info")

	config := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("SERVER_HOST"),
			Port:         viper.GetInt("PORT"),
			Env:          viper.GetString("ENV"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Mongo: MongoConfig{
			URI:            viper.GetString("MONGO_URI"),
			Database:       viper.GetString("MONGO_DB"),
			MaxPoolSize:    viper.GetUint64("MONGO_MAX_POOL_SIZE"),
			MinPoolSize:    viper.GetUint64("MONGO_MIN_POOL_SIZE"),
			ConnectTimeout: 10 * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:    viper.GetString("JWT_SECRET"),
			ExpiryMin: viper.GetInt("JWT_EXPIRY_MIN"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo URI is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo database name is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.JWT.ExpiryMin <= 0 {
		return fmt.Errorf("JWT expiry must be positive")
	}
	return nil
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Enabled reports whether a Redis cache has been configured.
func (c *RedisConfig) Enabled() bool {
	return c.Host != ""
}
