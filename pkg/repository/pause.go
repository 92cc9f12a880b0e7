package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/repairbot/pkg/domain"
)

// PauseRepository stores per-sender suppression windows
type PauseRepository struct {
	db *sqlx.DB
}

type pauseSQL struct {
	SenderID    string    `db:"sender_id"`
	PausedUntil int64     `db:"paused_until"`
	CreatedAt   time.Time `db:"created_at"`
}

func (p pauseSQL) toDomain() domain.PauseRecord {
	return domain.PauseRecord{
		SenderID:    p.SenderID,
		PausedUntil: time.UnixMilli(p.PausedUntil),
		CreatedAt:   p.CreatedAt,
	}
}

// NewPauseRepository creates a new pause repository
func NewPauseRepository(db *sqlx.DB) *PauseRepository {
	return &PauseRepository{db: db}
}

// UpsertPause creates or replaces the window for a sender. The new expiry always
// overwrites the previous one, windows never stack.
func (r *PauseRepository) UpsertPause(ctx context.Context, rec domain.PauseRecord) error {
	query := `
		INSERT INTO pauses (sender_id, paused_until, created_at) VALUES (?, ?, ?)
		ON CONFLICT(sender_id) DO UPDATE SET paused_until = excluded.paused_until, created_at = excluded.created_at
	`
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	return withRetry(ctx, "upsert pause", func() error {
		_, err := r.db.ExecContext(ctx, query, rec.SenderID, rec.PausedUntil.UnixMilli(), created.UTC())
		return err
	})
}

// GetPause returns the window for a sender or ErrNotFound
func (r *PauseRepository) GetPause(ctx context.Context, senderID string) (domain.PauseRecord, error) {
	var row pauseSQL
	err := r.db.GetContext(ctx, &row, "SELECT sender_id, paused_until, created_at FROM pauses WHERE sender_id = ?", senderID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PauseRecord{}, ErrNotFound
	}
	if err != nil {
		return domain.PauseRecord{}, fmt.Errorf("get pause: %w", err)
	}
	return row.toDomain(), nil
}

// DeleteExpired removes the sender's window only if it ended at or before now.
// A window replaced concurrently with a later expiry is left intact.
func (r *PauseRepository) DeleteExpired(ctx context.Context, senderID string, now time.Time) (bool, error) {
	var deleted bool
	err := withRetry(ctx, "delete expired pause", func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM pauses WHERE sender_id = ? AND paused_until <= ?",
			senderID, now.UnixMilli())
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		deleted = n > 0
		return nil
	})
	return deleted, err
}

// DeletePause removes the sender's window, no error if there is none
func (r *PauseRepository) DeletePause(ctx context.Context, senderID string) error {
	return withRetry(ctx, "delete pause", func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM pauses WHERE sender_id = ?", senderID)
		return err
	})
}

// ListPauses returns all windows in insertion order
func (r *PauseRepository) ListPauses(ctx context.Context) ([]domain.PauseRecord, error) {
	var rows []pauseSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT sender_id, paused_until, created_at FROM pauses ORDER BY rowid"); err != nil {
		return nil, fmt.Errorf("list pauses: %w", err)
	}
	res := make([]domain.PauseRecord, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}
