package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const fallbackBackendURL = "https://api.bookly.example.com"

type Config struct {
	ServerPort string

	// BackendBaseURL is resolved from the runtime config file, then the
	// environment, then a hardcoded fallback, in that order.
	BackendBaseURL string

	RedisAddr     string
	RedisPassword string

	PlacesAPIKey  string
	PlacesBaseURL string

	MercadoPagoAccessToken string

	DefaultLocale string
	LogLevel      string
}

// runtimeConfig mirrors the JSON file mounted at deploy time. Only the
// backend URL is honoured from it.
type runtimeConfig struct {
	BackendBaseURL string `json:"backend_base_url"`
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:             getEnv("SERVER_PORT", "8080"),
		BackendBaseURL:         resolveBackendURL(),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          getEnv("REDIS_PASSWORD", ""),
		PlacesAPIKey:           getEnv("PLACES_API_KEY", ""),
		PlacesBaseURL:          getEnv("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
		MercadoPagoAccessToken: getEnv("MP_ACCESS_TOKEN", ""),
		DefaultLocale:          getEnv("DEFAULT_LOCALE", "az"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
	}
}

func resolveBackendURL() string {
	if path := os.Getenv("RUNTIME_CONFIG"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			var rc runtimeConfig
			if err := json.Unmarshal(data, &rc); err == nil && rc.BackendBaseURL != "" {
				return rc.BackendBaseURL
			}
		}
	}

	return getEnv("BACKEND_BASE_URL", fallbackBackendURL)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
