package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/repairbot/pkg/domain"
)

func TestPauseRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("get missing", func(t *testing.T) {
		_, err := repos.Pause.GetPause(ctx, "5511999990001")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("upsert replaces window", func(t *testing.T) {
		require.NoError(t, repos.Pause.UpsertPause(ctx, domain.PauseRecord{SenderID: "5511999990001", PausedUntil: now.Add(72 * time.Hour)}))
		require.NoError(t, repos.Pause.UpsertPause(ctx, domain.PauseRecord{SenderID: "5511999990001", PausedUntil: now.Add(24 * time.Hour)}))

		rec, err := repos.Pause.GetPause(ctx, "5511999990001")
		require.NoError(t, err)
		assert.True(t, rec.PausedUntil.Equal(now.Add(24*time.Hour)), "got %v", rec.PausedUntil)

		all, err := repos.Pause.ListPauses(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("list in insertion order", func(t *testing.T) {
		require.NoError(t, repos.Pause.UpsertPause(ctx, domain.PauseRecord{SenderID: "5511999990003", PausedUntil: now.Add(time.Hour)}))
		require.NoError(t, repos.Pause.UpsertPause(ctx, domain.PauseRecord{SenderID: "5511999990002", PausedUntil: now.Add(time.Hour)}))
		all, err := repos.Pause.ListPauses(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "5511999990001", all[0].SenderID)
		assert.Equal(t, "5511999990003", all[1].SenderID)
		assert.Equal(t, "5511999990002", all[2].SenderID)
	})

	t.Run("delete expired is conditional", func(t *testing.T) {
		deleted, err := repos.Pause.DeleteExpired(ctx, "5511999990003", now)
		require.NoError(t, err)
		assert.False(t, deleted, "window still open")

		deleted, err = repos.Pause.DeleteExpired(ctx, "5511999990003", now.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, deleted, "expiry boundary deletes")

		_, err = repos.Pause.GetPause(ctx, "5511999990003")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, repos.Pause.DeletePause(ctx, "5511999990002"))
		require.NoError(t, repos.Pause.DeletePause(ctx, "5511999990002"))
		all, err := repos.Pause.ListPauses(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "5511999990001", all[0].SenderID)
	})
}
