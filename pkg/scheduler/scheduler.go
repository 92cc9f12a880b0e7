// Package scheduler runs periodic housekeeping: conversation history retention
// and the WhatsApp connection state check.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/pruner.go -pkg mocks -skip-ensure -fmt goimports . HistoryPruner ConnectionChecker

// HistoryPruner trims conversation logs
type HistoryPruner interface {
	PruneTurns(ctx context.Context, keep int) (int64, error)
}

// ConnectionChecker reports the gateway connection state
type ConnectionChecker interface {
	ConnectionState(ctx context.Context) (string, error)
}

// Params for the scheduler
type Params struct {
	History         HistoryPruner
	Connection      ConnectionChecker // optional
	Retention       int               // turns kept per sender
	CleanupInterval time.Duration
	CheckInterval   time.Duration
}

// Scheduler manages periodic housekeeping jobs
type Scheduler struct {
	history         HistoryPruner
	connection      ConnectionChecker
	retention       int
	cleanupInterval time.Duration
	checkInterval   time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc

	mu        sync.RWMutex
	state     string
	checkedAt time.Time
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.CleanupInterval == 0 {
		params.CleanupInterval = time.Hour
	}
	if params.CheckInterval == 0 {
		params.CheckInterval = 5 * time.Minute
	}
	return &Scheduler{
		history:         params.History,
		connection:      params.Connection,
		retention:       params.Retention,
		cleanupInterval: params.CleanupInterval,
		checkInterval:   params.CheckInterval,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	if s.retention > 0 {
		s.wg.Add(1)
		go s.cleanupWorker(ctx)
	}

	if s.connection != nil {
		s.wg.Add(1)
		go s.connectionWorker(ctx)
	}

	lgr.Printf("[INFO] scheduler started with cleanup interval %v (keep %d turns), connection check interval %v",
		s.cleanupInterval, s.retention, s.checkInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// ConnectionState returns the last observed gateway state and when it was checked.
// Empty state means no check has completed yet.
func (s *Scheduler) ConnectionState() (state string, checkedAt time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.checkedAt
}

func (s *Scheduler) cleanupWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	s.performCleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.performCleanup(ctx)
		}
	}
}

// performCleanup trims every sender's history to the retention limit
func (s *Scheduler) performCleanup(ctx context.Context) {
	deleted, err := s.history.PruneTurns(ctx, s.retention)
	if err != nil {
		lgr.Printf("[WARN] failed to prune conversation history: %v", err)
		return
	}
	if deleted > 0 {
		lgr.Printf("[INFO] pruned %d old conversation turns", deleted)
	}
}

func (s *Scheduler) connectionWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	s.checkConnection(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.checkConnection(ctx)
		}
	}
}

func (s *Scheduler) checkConnection(ctx context.Context) {
	state, err := s.connection.ConnectionState(ctx)
	if err != nil {
		lgr.Printf("[WARN] can't get gateway connection state: %v", err)
		state = "unknown"
	}

	s.mu.Lock()
	prev := s.state
	s.state, s.checkedAt = state, time.Now()
	s.mu.Unlock()

	switch {
	case state != "open" && state != prev:
		lgr.Printf("[WARN] whatsapp connection state is %q", state)
	case state != prev:
		lgr.Printf("[INFO] whatsapp connection state is %q", state)
	}
}
