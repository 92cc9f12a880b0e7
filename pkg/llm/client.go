// Package llm implements intent classification, item extraction and reply
// generation on top of an OpenAI-compatible chat completion API.
package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/repairbot/pkg/config"
)

// Client talks to the chat completion endpoint
type Client struct {
	client  *openai.Client
	config  config.LLMConfig
	botName string
}

var reThink = regexp.MustCompile(`(?is)<think>.*?</think>`)

// New creates a new LLM client. botName is how the assistant introduces itself.
func New(cfg config.LLMConfig, botName string) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if botName == "" {
		botName = "Assistente"
	}
	return &Client{
		client:  openai.NewClientWithConfig(clientConfig),
		config:  cfg,
		botName: botName,
	}
}

type chatParams struct {
	messages    []openai.ChatCompletionMessage
	temperature float32
	maxTokens   int
}

// chat runs a single completion and returns the raw content of the first choice
func (c *Client) chat(ctx context.Context, p chatParams) (string, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
		Messages:    p.messages,
	})
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	return resp.Choices[0].Message.Content, nil
}

// cleanText removes reasoning blocks some models emit and trims the rest
func cleanText(s string) string {
	return strings.TrimSpace(reThink.ReplaceAllString(s, ""))
}

func system(content string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: content}
}

func user(content string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: content}
}
