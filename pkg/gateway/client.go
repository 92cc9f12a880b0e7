// Package gateway talks to the Evolution API WhatsApp gateway and decodes its webhook events.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/umputun/repairbot/pkg/config"
	"github.com/umputun/repairbot/pkg/phone"
)

// Client sends messages through an Evolution API instance
type Client struct {
	baseURL     string
	apiKey      string
	instance    string
	adminNumber string
	client      *http.Client
}

// New creates a gateway client. Admin notifications go to adminNumber.
func New(cfg config.GatewayConfig, adminNumber string) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:     strings.TrimSuffix(cfg.URL, "/"),
		apiKey:      cfg.APIKey,
		instance:    cfg.Instance,
		adminNumber: phone.Digits(adminNumber),
		client:      &http.Client{Timeout: timeout},
	}
}

// SendMessage sends a text message to a number
func (c *Client) SendMessage(ctx context.Context, number, text string) error {
	payload := map[string]string{"number": phone.Digits(number), "text": text}
	if err := c.post(ctx, "/message/sendText/"+c.instance, payload, nil); err != nil {
		log.Printf("[WARN] failed to send message to %s: %v", number, err)
		return fmt.Errorf("send message to %s: %w", number, err)
	}
	log.Printf("[DEBUG] message sent to %s, %d chars", number, len(text))
	return nil
}

// SendAdminNotification sends a text message to the shop owner
func (c *Client) SendAdminNotification(ctx context.Context, text string) error {
	if c.adminNumber == "" {
		return fmt.Errorf("admin number is not configured")
	}
	return c.SendMessage(ctx, c.adminNumber, text)
}

// SetWebhook registers the URL Evolution API delivers message and connection events to
func (c *Client) SetWebhook(ctx context.Context, webhookURL string) error {
	payload := map[string]any{
		"url":    webhookURL,
		"events": []string{"MESSAGES_UPSERT", "CONNECTION_UPDATE"},
	}
	if err := c.post(ctx, "/webhook/set/"+c.instance, payload, nil); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	log.Printf("[INFO] webhook registered for instance %s: %s", c.instance, webhookURL)
	return nil
}

// ConnectionState returns the WhatsApp connection state of the instance, e.g. "open" or "close"
func (c *Client) ConnectionState(ctx context.Context) (string, error) {
	var resp struct {
		Instance struct {
			State string `json:"state"`
		} `json:"instance"`
	}
	if err := c.do(ctx, http.MethodGet, "/instance/connectionState/"+c.instance, nil, &resp); err != nil {
		return "", fmt.Errorf("get connection state: %w", err)
	}
	return resp.Instance.State, nil
}

func (c *Client) post(ctx context.Context, path string, payload, result any) error {
	return c.do(ctx, http.MethodPost, path, payload, result)
}

func (c *Client) do(ctx context.Context, method, path string, payload, result any) error {
	body := io.Reader(http.NoBody)
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
