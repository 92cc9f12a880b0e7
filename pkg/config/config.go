package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/repairbot/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go ../../schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen       string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		AuthUser     string        `yaml:"auth_user" json:"auth_user" jsonschema:"default=admin,description=Management API basic auth user"`
		AuthPassword string        `yaml:"auth_password" json:"auth_password" jsonschema:"description=Management API basic auth password (auth disabled if empty)"`
		WebhookRate  float64       `yaml:"webhook_rate" json:"webhook_rate" jsonschema:"default=1,description=Sustained webhook messages per second allowed per sender"`
		WebhookBurst int           `yaml:"webhook_burst" json:"webhook_burst" jsonschema:"default=5,description=Webhook burst size per sender"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:repairbot.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Gateway GatewayConfig `yaml:"gateway" json:"gateway" jsonschema:"description=WhatsApp gateway (Evolution API) configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for intent classification and replies"`

	Bot BotConfig `yaml:"bot" json:"bot" jsonschema:"description=Assistant behavior"`
}

// GatewayConfig holds Evolution API connection settings
type GatewayConfig struct {
	URL           string        `yaml:"url" json:"url" jsonschema:"required,description=Evolution API base URL"`
	APIKey        string        `yaml:"api_key" json:"api_key" jsonschema:"description=Evolution API key (can use environment variable)"`
	Instance      string        `yaml:"instance" json:"instance" jsonschema:"required,description=Evolution API instance name"`
	WebhookURL    string        `yaml:"webhook_url" json:"webhook_url" jsonschema:"description=Public URL of this service webhook, registered on startup if set"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Gateway request timeout"`
	CheckInterval time.Duration `yaml:"check_interval" json:"check_interval" jsonschema:"default=5m,description=Connection state check interval"`
}

// LLMConfig holds LLM configuration
type LLMConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://openrouter.ai/api/v1,description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. openai/gpt-4o-mini)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for reply generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=Extra instructions appended to the assistant system prompt (optional)"`
}

// BotConfig holds assistant behavior settings
type BotConfig struct {
	Name              string        `yaml:"name" json:"name" jsonschema:"default=Assistente,description=Assistant name used in greetings"`
	AdminNumber       string        `yaml:"admin_number" json:"admin_number" jsonschema:"required,description=Owner phone number, messages from it are admin commands"`
	CountryCode       string        `yaml:"country_code" json:"country_code" jsonschema:"default=55,description=Country code added to national numbers"`
	DebugNumber       string        `yaml:"debug_number" json:"debug_number" jsonschema:"description=Initial debug sender, only this number is processed when set"`
	AIActive          *bool         `yaml:"ai_active" json:"ai_active" jsonschema:"default=true,description=Initial state of automated replies"`
	HandoffPauseDays  int           `yaml:"handoff_pause_days" json:"handoff_pause_days" jsonschema:"default=3,minimum=1,description=Days a sender stays paused after a human support request"`
	HistoryLimit      int           `yaml:"history_limit" json:"history_limit" jsonschema:"default=10,description=Conversation turns passed to the LLM"`
	HistoryRetention  int           `yaml:"history_retention" json:"history_retention" jsonschema:"default=100,description=Turns kept per sender, 0 keeps everything"`
	NotFoundPolicy    string        `yaml:"not_found_policy" json:"not_found_policy" jsonschema:"default=backorder,enum=backorder,enum=similar,description=Reply when a priced item is not in the catalog"`
	SimilarLimit      int           `yaml:"similar_limit" json:"similar_limit" jsonschema:"default=3,description=Maximum suggestions for the similar policy"`
	CapabilityTimeout time.Duration `yaml:"capability_timeout" json:"capability_timeout" jsonschema:"default=45s,description=Timeout for each LLM or gateway call made while routing a message"`
	JanitorInterval   time.Duration `yaml:"janitor_interval" json:"janitor_interval" jsonschema:"default=1h,description=History retention check interval"`
}

// IsAIActive returns the initial state of automated replies, true if not set
func (b BotConfig) IsAIActive() bool {
	return b.AIActive == nil || *b.AIActive
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.AuthUser == "" {
		c.Server.AuthUser = "admin"
	}
	if c.Server.WebhookRate == 0 {
		c.Server.WebhookRate = 1
	}
	if c.Server.WebhookBurst == 0 {
		c.Server.WebhookBurst = 5
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:repairbot.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// gateway
	if c.Gateway.Timeout == 0 {
		c.Gateway.Timeout = 15 * time.Second
	}
	if c.Gateway.CheckInterval == 0 {
		c.Gateway.CheckInterval = 5 * time.Minute
	}

	// llm
	if c.LLM.Endpoint == "" {
		c.LLM.Endpoint = "https://openrouter.ai/api/v1"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 500
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}

	// bot
	if c.Bot.Name == "" {
		c.Bot.Name = "Assistente"
	}
	if c.Bot.CountryCode == "" {
		c.Bot.CountryCode = "55"
	}
	if c.Bot.HandoffPauseDays == 0 {
		c.Bot.HandoffPauseDays = 3
	}
	if c.Bot.HistoryLimit == 0 {
		c.Bot.HistoryLimit = 10
	}
	if c.Bot.HistoryRetention == 0 {
		c.Bot.HistoryRetention = 100
	}
	if c.Bot.NotFoundPolicy == "" {
		c.Bot.NotFoundPolicy = domain.NotFoundBackorder
	}
	if c.Bot.SimilarLimit == 0 {
		c.Bot.SimilarLimit = 3
	}
	if c.Bot.CapabilityTimeout == 0 {
		c.Bot.CapabilityTimeout = 45 * time.Second
	}
	if c.Bot.JanitorInterval == 0 {
		c.Bot.JanitorInterval = time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Gateway.URL == "" {
		return fmt.Errorf("gateway.url is required")
	}
	if cfg.Gateway.Instance == "" {
		return fmt.Errorf("gateway.instance is required")
	}

	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if cfg.Bot.AdminNumber == "" {
		return fmt.Errorf("bot.admin_number is required")
	}
	if cfg.Bot.HandoffPauseDays < 1 {
		return fmt.Errorf("bot.handoff_pause_days must be at least 1")
	}
	if cfg.Bot.HistoryLimit < 0 || cfg.Bot.HistoryRetention < 0 {
		return fmt.Errorf("bot history limits must be non-negative")
	}
	if cfg.Bot.NotFoundPolicy != domain.NotFoundBackorder && cfg.Bot.NotFoundPolicy != domain.NotFoundSimilar {
		return fmt.Errorf("bot.not_found_policy must be %q or %q", domain.NotFoundBackorder, domain.NotFoundSimilar)
	}
	if cfg.Bot.CapabilityTimeout < time.Second {
		return fmt.Errorf("bot.capability_timeout must be at least 1 second")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Server.WebhookRate < 0 || cfg.Server.WebhookBurst < 0 {
		return fmt.Errorf("server webhook rate limits must be non-negative")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// capabilityCallsPerMessage is the longest chain of sequential LLM and gateway calls
// one inbound message can make: classify, extract, generate, send
const capabilityCallsPerMessage = 4

// GetRoutingTimeout returns the worst-case time to route one inbound message
func (c *Config) GetRoutingTimeout() time.Duration {
	return capabilityCallsPerMessage * c.Bot.CapabilityTimeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetAuthConfig returns management API credentials, empty password disables auth
func (c *Config) GetAuthConfig() (user, password string) {
	return c.Server.AuthUser, c.Server.AuthPassword
}

// GetWebhookRate returns the per-sender webhook rate limit, non-positive rate disables limiting
func (c *Config) GetWebhookRate() (perSecond float64, burst int) {
	return c.Server.WebhookRate, c.Server.WebhookBurst
}
