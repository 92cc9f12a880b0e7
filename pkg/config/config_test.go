package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/repairbot/pkg/domain"
)

const minimalConfig = `
gateway:
  url: http://evolution:8080
  instance: shop
llm:
  model: openai/gpt-4o-mini
bot:
  admin_number: "5511988880000"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		t.Setenv("TEST_LLM_KEY", "secret-key")
		configContent := `
server:
  listen: ":9090"
  timeout: 45s
  auth_password: pass
gateway:
  url: http://evolution:8080
  api_key: evo-key
  instance: shop
  webhook_url: https://bot.example.com/webhook
llm:
  endpoint: https://api.openai.com/v1
  api_key: ${TEST_LLM_KEY}
  model: gpt-4o-mini
  temperature: 0.2
bot:
  name: Luna
  admin_number: "5511988880000"
  debug_number: "5511977770000"
  ai_active: false
  handoff_pause_days: 5
  not_found_policy: similar
  similar_limit: 2
  capability_timeout: 10s
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "pass", cfg.Server.AuthPassword)
		assert.Equal(t, "admin", cfg.Server.AuthUser)
		assert.Equal(t, "evo-key", cfg.Gateway.APIKey)
		assert.Equal(t, "https://bot.example.com/webhook", cfg.Gateway.WebhookURL)
		assert.Equal(t, "secret-key", cfg.LLM.APIKey, "env expanded")
		assert.InDelta(t, 0.2, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, "Luna", cfg.Bot.Name)
		assert.False(t, cfg.Bot.IsAIActive())
		assert.Equal(t, 5, cfg.Bot.HandoffPauseDays)
		assert.Equal(t, domain.NotFoundSimilar, cfg.Bot.NotFoundPolicy)
		assert.Equal(t, 2, cfg.Bot.SimilarLimit)
		assert.Equal(t, 10*time.Second, cfg.Bot.CapabilityTimeout)

		listen, timeout := cfg.GetServerConfig()
		assert.Equal(t, ":9090", listen)
		assert.Equal(t, 45*time.Second, timeout)
		assert.Equal(t, "gpt-4o-mini", cfg.GetLLMConfig().Model)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, minimalConfig))
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.InDelta(t, 1.0, cfg.Server.WebhookRate, 0.001)
		assert.Equal(t, 5, cfg.Server.WebhookBurst)
		assert.Contains(t, cfg.Database.DSN, "repairbot.db")
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 15*time.Second, cfg.Gateway.Timeout)
		assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.Endpoint)
		assert.Equal(t, 500, cfg.LLM.MaxTokens)
		assert.Equal(t, "Assistente", cfg.Bot.Name)
		assert.Equal(t, "55", cfg.Bot.CountryCode)
		assert.True(t, cfg.Bot.IsAIActive())
		assert.Equal(t, 3, cfg.Bot.HandoffPauseDays)
		assert.Equal(t, 10, cfg.Bot.HistoryLimit)
		assert.Equal(t, 100, cfg.Bot.HistoryRetention)
		assert.Equal(t, domain.NotFoundBackorder, cfg.Bot.NotFoundPolicy)
		assert.Equal(t, 45*time.Second, cfg.Bot.CapabilityTimeout)
		assert.Equal(t, time.Hour, cfg.Bot.JanitorInterval)
		assert.Equal(t, 180*time.Second, cfg.GetRoutingTimeout())
		_, serverTimeout := cfg.GetServerConfig()
		assert.Less(t, serverTimeout, cfg.GetRoutingTimeout())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "invalid: yaml: content: ["))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"no gateway url", "gateway: {instance: x}\nllm: {model: m}\nbot: {admin_number: '1'}", "gateway.url is required"},
		{"no instance", "gateway: {url: http://x}\nllm: {model: m}\nbot: {admin_number: '1'}", "gateway.instance is required"},
		{"no model", "gateway: {url: http://x, instance: x}\nbot: {admin_number: '1'}", "llm.model is required"},
		{"no admin", "gateway: {url: http://x, instance: x}\nllm: {model: m}", "bot.admin_number is required"},
		{"bad temperature", "gateway: {url: http://x, instance: x}\nllm: {model: m, temperature: 3}\nbot: {admin_number: '1'}", "llm.temperature"},
		{"bad policy", "gateway: {url: http://x, instance: x}\nllm: {model: m}\nbot: {admin_number: '1', not_found_policy: guess}", "not_found_policy"},
		{"negative pause days", "gateway: {url: http://x, instance: x}\nllm: {model: m}\nbot: {admin_number: '1', handoff_pause_days: -1}", "handoff_pause_days"},
		{"short server timeout", "server: {timeout: 10ms}\ngateway: {url: http://x, instance: x}\nllm: {model: m}\nbot: {admin_number: '1'}", "server timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "repairbot configuration", schema["title"])
	assert.Contains(t, string(data), "not_found_policy")
	assert.Contains(t, string(data), "admin_number")
}
