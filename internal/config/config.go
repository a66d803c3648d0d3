package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Store StoreConfig
	Auth  AuthConfig
	Keys  StorageKeys
}

type StoreConfig struct {
	Path        string
	BusyTimeout time.Duration
}

type AuthConfig struct {
	SimulatedLatency time.Duration
	MinPasswordLen   int
}

// StorageKeys are the names under which state is kept in the key-value store.
type StorageKeys struct {
	Cart     string
	Wishlist string
	Session  string
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Store: StoreConfig{
			Path:        getEnv("STORE_PATH", "storefront.db"),
			BusyTimeout: getEnvDuration("STORE_BUSY_TIMEOUT", 5*time.Second),
		},
		Auth: AuthConfig{
			SimulatedLatency: getEnvDuration("AUTH_SIMULATED_LATENCY", time.Second),
			MinPasswordLen:   getEnvInt("AUTH_MIN_PASSWORD_LEN", 6),
		},
		Keys: StorageKeys{
			Cart:     getEnv("STORAGE_KEY_CART", "stepkick-cart"),
			Wishlist: getEnv("STORAGE_KEY_WISHLIST", "stepkick-wishlist"),
			Session:  getEnv("STORAGE_KEY_SESSION", "stepkick-user"),
		},
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
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		fmt.Printf("Warning: invalid duration for %s, using default\n", key)
	}
	return defaultValue
}
