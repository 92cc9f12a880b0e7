// Package pause implements per-sender suppression windows and the global
// suppression flag. Expired windows are removed lazily when they are read.
package pause

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/umputun/repairbot/pkg/domain"
	"github.com/umputun/repairbot/pkg/phone"
	"github.com/umputun/repairbot/pkg/repository"
)

//go:generate moq -out mocks/repository.go -pkg mocks -skip-ensure -fmt goimports . Repository SettingStore

// Repository persists pause windows
type Repository interface {
	UpsertPause(ctx context.Context, rec domain.PauseRecord) error
	GetPause(ctx context.Context, senderID string) (domain.PauseRecord, error)
	DeleteExpired(ctx context.Context, senderID string, now time.Time) (bool, error)
	DeletePause(ctx context.Context, senderID string) error
	ListPauses(ctx context.Context) ([]domain.PauseRecord, error)
}

// SettingStore persists runtime settings
type SettingStore interface {
	GetSetting(ctx context.Context, key string) (value string, ok bool, err error)
	SetSetting(ctx context.Context, key, value string) error
}

// Store manages sender pauses and the global flag
type Store struct {
	repo            Repository
	settings        SettingStore
	phone           phone.Normalizer
	now             func() time.Time
	defaultAIActive bool
}

// Config for the Store
type Config struct {
	Normalizer      phone.Normalizer
	DefaultAIActive bool             // used until the flag is toggled for the first time
	Clock           func() time.Time // time.Now if nil
}

// New makes a pause store
func New(repo Repository, settings SettingStore, cfg Config) *Store {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Normalizer.CountryCode == "" {
		cfg.Normalizer = phone.New("")
	}
	return &Store{repo: repo, settings: settings, phone: cfg.Normalizer, now: cfg.Clock, defaultAIActive: cfg.DefaultAIActive}
}

// Normalize returns the canonical sender identifier used as the store key
func (s *Store) Normalize(senderID string) string {
	return s.phone.Normalize(senderID)
}

// IsPaused reports whether the sender is inside an active window. An expired window is deleted.
func (s *Store) IsPaused(ctx context.Context, senderID string) (bool, error) {
	id := s.phone.Normalize(senderID)
	if id == "" {
		return false, nil
	}
	rec, err := s.repo.GetPause(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check pause for %s: %w", id, err)
	}

	now := s.now()
	if rec.Active(now) {
		return true, nil
	}

	deleted, err := s.repo.DeleteExpired(ctx, id, now)
	if err != nil {
		return false, fmt.Errorf("remove expired pause for %s: %w", id, err)
	}
	if deleted {
		log.Printf("[DEBUG] pause for %s expired at %s, removed", id, rec.PausedUntil.Format(time.RFC3339))
	}
	return false, nil
}

// Pause opens a window of the given number of days, replacing any existing one
func (s *Store) Pause(ctx context.Context, senderID string, days int) (domain.PauseRecord, error) {
	if days <= 0 {
		return domain.PauseRecord{}, fmt.Errorf("invalid pause duration %d days", days)
	}
	id := s.phone.Normalize(senderID)
	if id == "" {
		return domain.PauseRecord{}, fmt.Errorf("invalid sender %q", senderID)
	}
	now := s.now()
	rec := domain.PauseRecord{SenderID: id, PausedUntil: now.Add(time.Duration(days) * 24 * time.Hour), CreatedAt: now}
	if err := s.repo.UpsertPause(ctx, rec); err != nil {
		return domain.PauseRecord{}, fmt.Errorf("pause %s: %w", id, err)
	}
	log.Printf("[INFO] paused %s until %s", id, rec.PausedUntil.Format(time.RFC3339))
	return rec, nil
}

// Resume removes the sender's window. Resuming a sender that is not paused is not an error.
func (s *Store) Resume(ctx context.Context, senderID string) error {
	id := s.phone.Normalize(senderID)
	if id == "" {
		return fmt.Errorf("invalid sender %q", senderID)
	}
	if err := s.repo.DeletePause(ctx, id); err != nil {
		return fmt.Errorf("resume %s: %w", id, err)
	}
	log.Printf("[INFO] resumed %s", id)
	return nil
}

// ListPaused returns all stored windows in insertion order, expired ones included
// until they are read by IsPaused
func (s *Store) ListPaused(ctx context.Context) ([]domain.PauseRecord, error) {
	recs, err := s.repo.ListPauses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list paused: %w", err)
	}
	return recs, nil
}

// SetGlobalPause switches automated replies off (true) or on (false) for everyone
func (s *Store) SetGlobalPause(ctx context.Context, paused bool) error {
	if err := s.settings.SetSetting(ctx, domain.SettingAIActive, strconv.FormatBool(!paused)); err != nil {
		return fmt.Errorf("set global pause: %w", err)
	}
	log.Printf("[INFO] global pause set to %v", paused)
	return nil
}

// IsGlobalPaused reports the global flag
func (s *Store) IsGlobalPaused(ctx context.Context) (bool, error) {
	v, ok, err := s.settings.GetSetting(ctx, domain.SettingAIActive)
	if err != nil {
		return false, fmt.Errorf("get global pause: %w", err)
	}
	if !ok {
		return !s.defaultAIActive, nil
	}
	active, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[WARN] invalid %s value %q, using default", domain.SettingAIActive, v)
		return !s.defaultAIActive, nil
	}
	return !active, nil
}
