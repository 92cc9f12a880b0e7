package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/repairbot/pkg/domain"
)

// HistoryRepository stores the per-sender conversation log
type HistoryRepository struct {
	db *sqlx.DB
}

type turnSQL struct {
	ID        int64     `db:"id"`
	SenderID  string    `db:"sender_id"`
	Role      string    `db:"role"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

func (t turnSQL) toDomain() domain.Turn {
	return domain.Turn{SenderID: t.SenderID, Role: domain.Role(t.Role), Content: t.Content, CreatedAt: t.CreatedAt}
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// AppendTurns adds turns to the log in a single transaction, preserving their order
func (r *HistoryRepository) AppendTurns(ctx context.Context, turns ...domain.Turn) error {
	if len(turns) == 0 {
		return nil
	}
	return withRetry(ctx, "append turns", func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		for _, t := range turns {
			if _, err := tx.ExecContext(ctx, "INSERT INTO conversation_turns (sender_id, role, content) VALUES (?, ?, ?)",
				t.SenderID, string(t.Role), t.Content); err != nil {
				return err
			}
		}
		return tx.Commit()
	})
}

// RecentTurns returns up to limit newest turns of a sender, oldest first
func (r *HistoryRepository) RecentTurns(ctx context.Context, senderID string, limit int) ([]domain.Turn, error) {
	if limit <= 0 {
		return []domain.Turn{}, nil
	}
	query := `
		SELECT id, sender_id, role, content, created_at FROM (
			SELECT id, sender_id, role, content, created_at FROM conversation_turns
			WHERE sender_id = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC
	`
	var rows []turnSQL
	if err := r.db.SelectContext(ctx, &rows, query, senderID, limit); err != nil {
		return nil, fmt.Errorf("get recent turns: %w", err)
	}
	res := make([]domain.Turn, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

// PruneTurns keeps only the newest keep turns of every sender and returns the number of removed rows
func (r *HistoryRepository) PruneTurns(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	query := `
		DELETE FROM conversation_turns WHERE id IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (PARTITION BY sender_id ORDER BY id DESC) AS rn
				FROM conversation_turns
			) WHERE rn > ?
		)
	`
	var removed int64
	err := withRetry(ctx, "prune turns", func() error {
		res, err := r.db.ExecContext(ctx, query, keep)
		if err != nil {
			return err
		}
		removed, err = res.RowsAffected()
		return err
	})
	return removed, err
}
