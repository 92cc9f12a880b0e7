// Package settings builds the runtime configuration snapshot consumed by the router
package settings

import (
	"context"
	"fmt"
	"log"

	"github.com/umputun/repairbot/pkg/domain"
	"github.com/umputun/repairbot/pkg/phone"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store GlobalFlag

// Store persists runtime settings
type Store interface {
	GetSetting(ctx context.Context, key string) (value string, ok bool, err error)
	SetSetting(ctx context.Context, key, value string) error
}

// GlobalFlag reports the global suppression flag
type GlobalFlag interface {
	IsGlobalPaused(ctx context.Context) (bool, error)
}

// Provider assembles settings from the static config and the settings table
type Provider struct {
	store        Store
	global       GlobalFlag
	phone        phone.Normalizer
	adminSender  string
	defaultDebug string
}

// Params for the Provider
type Params struct {
	AdminNumber string
	DebugNumber string // initial debug sender, used until changed at runtime
	Normalizer  phone.Normalizer
}

// NewProvider makes a settings provider
func NewProvider(store Store, global GlobalFlag, params Params) *Provider {
	if params.Normalizer.CountryCode == "" {
		params.Normalizer = phone.New("")
	}
	return &Provider{
		store:        store,
		global:       global,
		phone:        params.Normalizer,
		adminSender:  params.Normalizer.Normalize(params.AdminNumber),
		defaultDebug: params.Normalizer.Normalize(params.DebugNumber),
	}
}

// Snapshot reads the current settings, one call per inbound message
func (p *Provider) Snapshot(ctx context.Context) (domain.Settings, error) {
	paused, err := p.global.IsGlobalPaused(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("snapshot: %w", err)
	}
	debug, err := p.DebugSender(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("snapshot: %w", err)
	}
	return domain.Settings{AIActive: !paused, DebugSender: debug, AdminSender: p.adminSender}, nil
}

// DebugSender returns the only sender processed in debug mode, empty if debug mode is off
func (p *Provider) DebugSender(ctx context.Context) (string, error) {
	v, ok, err := p.store.GetSetting(ctx, domain.SettingDebugNumber)
	if err != nil {
		return "", fmt.Errorf("get debug sender: %w", err)
	}
	if !ok {
		return p.defaultDebug, nil
	}
	return v, nil
}

// SetDebugSender restricts processing to one sender, an empty number turns debug mode off
func (p *Provider) SetDebugSender(ctx context.Context, number string) error {
	id := p.phone.Normalize(number)
	if number != "" && id == "" {
		return fmt.Errorf("invalid debug number %q", number)
	}
	if err := p.store.SetSetting(ctx, domain.SettingDebugNumber, id); err != nil {
		return fmt.Errorf("set debug sender: %w", err)
	}
	if id == "" {
		log.Printf("[INFO] debug mode disabled")
		return nil
	}
	log.Printf("[INFO] debug mode enabled for %s", id)
	return nil
}

// AdminSender returns the normalized admin number
func (p *Provider) AdminSender() string {
	return p.adminSender
}
