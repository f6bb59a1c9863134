// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration. Loaded once at startup and
// treated as immutable.
type Config struct {
	Port    string
	BaseURL string

	StripeSecretKey string
	StripeAPIURL    string
	CheckoutTimeout time.Duration

	AdminPassword string

	// Checkout-creation rate limit, per client IP.
	RateLimitCheckout int // requests per minute
	RateLimitBurst    int
}

// Load reads the configuration from environment variables. The Stripe
// secret key is required; everything else has a default.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:8080"),
		StripeSecretKey:   os.Getenv("STRIPE_SECRET_KEY"),
		StripeAPIURL:      getEnv("STRIPE_API_URL", ""),
		CheckoutTimeout:   getEnvDuration("CHECKOUT_TIMEOUT", 10*time.Second),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		RateLimitCheckout: getEnvInt("RATE_LIMIT_CHECKOUT", 30),
		RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.StripeSecretKey == "" {
		return Config{}, fmt.Errorf("STRIPE_SECRET_KEY environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return i
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}
