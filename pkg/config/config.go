package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LookupPolicy controls what happens when an exchange rate lookup finds no
// usable pair for a currency: silently fall back to a 1:1 rate, or block the
// document until a rate exists.
type LookupPolicy string

const (
	LookupFallback LookupPolicy = "fallback"
	LookupBlock    LookupPolicy = "block"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	JWTSecret     string
	RateLimit     string // ulule/limiter format, e.g. "100-M"
	FXLookup      LookupPolicy
	ReferenceTTL  time.Duration // Stale-time window for cached reference data
	ReferenceSize int           // Max cached reference entries
}

// LoadConfig loads configuration from environment variables and an optional
// .env file.
func LoadConfig() (*Config, error) {
	// The .env file is optional; real environment variables win.
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("FX_LOOKUP_POLICY", string(LookupFallback))
	viper.SetDefault("REFERENCE_TTL", "5m")
	viper.SetDefault("REFERENCE_CACHE_SIZE", 128)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	policy := LookupPolicy(viper.GetString("FX_LOOKUP_POLICY"))
	switch policy {
	case LookupFallback, LookupBlock:
		cfg.FXLookup = policy
	default:
		return nil, fmt.Errorf("invalid FX_LOOKUP_POLICY %q: must be %q or %q", policy, LookupFallback, LookupBlock)
	}

	ttlStr := viper.GetString("REFERENCE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 5 * time.Minute
		log.Printf("Warning: Invalid value for REFERENCE_TTL (%q). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.ReferenceTTL = ttl

	cfg.ReferenceSize = viper.GetInt("REFERENCE_CACHE_SIZE")
	if cfg.ReferenceSize <= 0 {
		cfg.ReferenceSize = 128
	}

	return cfg, nil
}
