package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// External rate provider.
	FXAPIBaseURL string
	FXAPITimeout time.Duration

	// API rate limit in ulule/limiter notation, e.g. "100-M".
	RateLimit string

	// AllowedOrigins configures CORS for the back-office frontend.
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("FX_API_BASE_URL", "https://api.frankfurter.app")
	viper.SetDefault("FX_API_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.FXAPIBaseURL = viper.GetString("FX_API_BASE_URL")

	fxTimeoutStr := viper.GetString("FX_API_TIMEOUT")
	fxTimeout, err := time.ParseDuration(fxTimeoutStr)
	if err != nil {
		fxTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for FX_API_TIMEOUT ('%s'). Defaulting to %s.\n", fxTimeoutStr, fxTimeout.String())
	}
	cfg.FXAPITimeout = fxTimeout

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")

	return cfg, nil
}
