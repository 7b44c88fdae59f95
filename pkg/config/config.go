package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Redis, used for the active-shift cache. Leave RedisAddr empty to run
	// without a cache.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// RateLimit uses the limiter format, e.g. "100-M" for 100 requests per minute.
	RateLimit string

	// TimezoneOffsetHours is the fixed UTC offset business dates are derived in.
	TimezoneOffsetHours int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("TIMEZONE_OFFSET_HOURS", 8)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         viper.GetString("PGSQL_URL"),
		Port:                viper.GetString("PORT"),
		IsProduction:        viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       viper.GetBool("ENABLE_DB_CHECK"),
		RedisAddr:           viper.GetString("REDIS_ADDR"),
		RedisPassword:       viper.GetString("REDIS_PASSWORD"),
		RedisDB:             viper.GetInt("REDIS_DB"),
		RateLimit:           viper.GetString("RATE_LIMIT"),
		TimezoneOffsetHours: viper.GetInt("TIMEZONE_OFFSET_HOURS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.RedisAddr == "" {
		log.Println("Warning: REDIS_ADDR not set. Active shift caching is disabled.")
	}

	return cfg, nil
}
