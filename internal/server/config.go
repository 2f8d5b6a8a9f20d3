package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/apptitude/internal/llm"
	"github.com/abhisek/apptitude/internal/logger"
)

// Config holds question-service settings.
type Config struct {
	// Port the HTTP listener binds to.
	Port int
	// Env is "production" or "development".
	Env string
	// LogLevel is "debug" or "info".
	LogLevel string

	// LLM configures the model provider behind the service.
	LLM llm.Config
}

// LoadConfig reads configuration from apptitude.yaml (if present in the
// working directory) and APPTITUDE_* environment variables, with env vars
// taking precedence.
func LoadConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 5001)
	v.SetDefault("server.env", "development")
	v.SetDefault("server.log_level", "info")

	v.SetConfigName("apptitude")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("APPTITUDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Port:     v.GetInt("server.port"),
		Env:      v.GetString("server.env"),
		LogLevel: v.GetString("server.log_level"),
		LLM:      llm.ConfigFromEnv(),
	}

	// Standard provider key vars still work when no APPTITUDE_* key is set.
	if !hasAPIKey(cfg.LLM) {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg.LLM = discovered
		}
	}

	return cfg, nil
}

// LoggerConfig derives the logger settings from the server config.
func (c Config) LoggerConfig() logger.Config {
	return logger.Config{Level: c.LogLevel, Env: c.Env}
}

func hasAPIKey(cfg llm.Config) bool {
	switch cfg.Provider {
	case "xai":
		return cfg.XAI.APIKey != ""
	case "openai":
		return cfg.OpenAI.APIKey != ""
	case "anthropic":
		return cfg.Anthropic.APIKey != ""
	case "gemini":
		return cfg.Gemini.APIKey != ""
	case "mock":
		return true
	}
	return false
}
