package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_APIKeysFromEnvironment(t *testing.T) {
	viper.Reset()
	t.Setenv("OPENAI_API_KEY", "sk-test-openai")
	t.Setenv("GEMINI_API_KEY", "gm-test-gemini")

	LoadConfig()

	assert.Equal(t, "sk-test-openai", AppConfig.OpenAIAPIKey)
	assert.Equal(t, "gm-test-gemini", AppConfig.GeminiAPIKey)
}

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "openai", AppConfig.ChatProvider)
	assert.Empty(t, AppConfig.OpenAIAPIKey)
	assert.Empty(t, AppConfig.GeminiAPIKey)
}
