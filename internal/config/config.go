// Package config loads application configuration from environment variables
// and an optional .env file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Identity IdentityConfig
	AI       AIConfig
	Razorpay RazorpayConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	PostgresURL string
}

type IdentityConfig struct {
	JWTSecret string
}

// AIConfig selects the generation provider and its model.
type AIConfig struct {
	Provider     string // "gemini" or "openai"
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

// Load reads configuration from the environment. A missing .env file is not
// an error; missing required keys are.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			PostgresURL: os.Getenv("POSTGRES_URL"),
		},
		Identity: IdentityConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		AI: AIConfig{
			Provider:     getEnv("AI_PROVIDER", "gemini"),
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Razorpay: RazorpayConfig{
			KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
			KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.PostgresURL == "" {
		return fmt.Errorf("POSTGRES_URL is required")
	}
	if c.Identity.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.AI.Provider {
	case "gemini":
		if c.AI.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when AI_PROVIDER=gemini")
		}
	case "openai":
		if c.AI.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("unsupported AI_PROVIDER: %s", c.AI.Provider)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
