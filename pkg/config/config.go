package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

type Config struct {
	Port string `yaml:"port"`

	OpenRouterAPIKey   string        `yaml:"-"`
	OpenRouterBase     string        `yaml:"openrouterBaseUrl"`
	OpenRouterModel    string        `yaml:"openrouterModel"`
	OpenRouterAppTitle string        `yaml:"openrouterAppTitle"`
	OpenRouterReferer  string        `yaml:"openrouterReferer"`
	OpenRouterTimeout  time.Duration `yaml:"openrouterTimeout"`

	Currency string `yaml:"currency"`

	LogLevel       string `yaml:"logLevel"`
	LogDevelopment bool   `yaml:"logDevelopment"`

	CORSAllowOrigins string `yaml:"corsAllowOrigins"`
	SwaggerEnabled   bool   `yaml:"swaggerEnabled"`
}

// Defaults returns the configuration used when neither a file nor the environment
// override a value.
func Defaults() Config {
	return Config{
		Port:               "8080",
		OpenRouterBase:     "https://openrouter.ai/api/v1",
		OpenRouterModel:    "gpt-4o-mini",
		OpenRouterAppTitle: "Expense Tracker",
		OpenRouterReferer:  "https://expense-tacker-backend.netlify.app",
		OpenRouterTimeout:  30 * time.Second,
		Currency:           "₹",
		LogLevel:           "info",
		CORSAllowOrigins:   "*",
		SwaggerEnabled:     true,
	}
}

// Load reads environment variables, optionally from a .env file if present.
// When CONFIG_FILE points to a YAML file its values are applied before the environment.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.OpenRouterAPIKey = strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY"))
	cfg.OpenRouterBase = getEnv("OPENROUTER_BASE_URL", cfg.OpenRouterBase)
	cfg.OpenRouterModel = getEnv("OPENROUTER_MODEL", cfg.OpenRouterModel)
	cfg.OpenRouterAppTitle = getEnv("OPENROUTER_APP_TITLE", cfg.OpenRouterAppTitle)
	cfg.OpenRouterReferer = getEnv("OPENROUTER_REFERER", cfg.OpenRouterReferer)
	cfg.OpenRouterTimeout = getEnvDuration("OPENROUTER_TIMEOUT", cfg.OpenRouterTimeout)
	cfg.Currency = getEnv("EXPENSE_CURRENCY", cfg.Currency)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogDevelopment = getEnvBool("LOG_DEVELOPMENT", cfg.LogDevelopment)
	cfg.CORSAllowOrigins = getEnv("CORS_ALLOW_ORIGINS", cfg.CORSAllowOrigins)
	cfg.SwaggerEnabled = getEnvBool("SWAGGER_ENABLED", cfg.SwaggerEnabled)
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
