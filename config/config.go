package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	MaxInputChars     int    `mapstructure:"MAX_INPUT_CHARS"`

	// Redis configuration (session transcripts).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	SessionTTLMin  int    `mapstructure:"SESSION_TTL_MIN"`

	// Chat model provider: "openai" (any OpenAI-compatible endpoint) or "gemini".
	ChatProvider string `mapstructure:"CHAT_PROVIDER"`

	OpenAIBaseURL    string `mapstructure:"OPENAI_BASE_URL"`
	OpenAIAPIKey     string `mapstructure:"OPENAI_API_KEY"`
	OpenAIChatModel  string `mapstructure:"OPENAI_CHAT_MODEL"`
	OpenAITableModel string `mapstructure:"OPENAI_TABLE_MODEL"`

	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Duckling entity-extraction service.
	DucklingURL string `mapstructure:"DUCKLING_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("MAX_INPUT_CHARS", 1000)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("SESSION_TTL_MIN", 60)
	viper.SetDefault("CHAT_PROVIDER", "openai")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com")
	// API keys need an explicit default so viper picks them up from the
	// environment even when no config file mentions them.
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_CHAT_MODEL", "gpt-3.5-turbo-0613")
	viper.SetDefault("OPENAI_TABLE_MODEL", "ft:gpt-3.5-turbo-0613:personal::87fl6OLL")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("DUCKLING_URL", "http://localhost:8000")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
