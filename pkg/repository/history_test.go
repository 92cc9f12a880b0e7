package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/repairbot/pkg/domain"
)

func TestHistoryRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repos.History.AppendTurns(ctx,
			domain.Turn{SenderID: "a", Role: domain.RoleUser, Content: fmt.Sprintf("q%d", i)},
			domain.Turn{SenderID: "a", Role: domain.RoleAssistant, Content: fmt.Sprintf("r%d", i)},
		)
		require.NoError(t, err)
	}
	require.NoError(t, repos.History.AppendTurns(ctx, domain.Turn{SenderID: "b", Role: domain.RoleUser, Content: "hello"}))
	require.NoError(t, repos.History.AppendTurns(ctx))

	t.Run("recent returns newest in chronological order", func(t *testing.T) {
		turns, err := repos.History.RecentTurns(ctx, "a", 3)
		require.NoError(t, err)
		require.Len(t, turns, 3)
		assert.Equal(t, "r1", turns[0].Content)
		assert.Equal(t, domain.RoleAssistant, turns[0].Role)
		assert.Equal(t, "q2", turns[1].Content)
		assert.Equal(t, "r2", turns[2].Content)
	})

	t.Run("zero limit", func(t *testing.T) {
		turns, err := repos.History.RecentTurns(ctx, "a", 0)
		require.NoError(t, err)
		assert.Empty(t, turns)
	})

	t.Run("unknown sender", func(t *testing.T) {
		turns, err := repos.History.RecentTurns(ctx, "nobody", 10)
		require.NoError(t, err)
		assert.Empty(t, turns)
	})

	t.Run("prune keeps newest per sender", func(t *testing.T) {
		removed, err := repos.History.PruneTurns(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(4), removed)

		turns, err := repos.History.RecentTurns(ctx, "a", 10)
		require.NoError(t, err)
		require.Len(t, turns, 2)
		assert.Equal(t, "q2", turns[0].Content)
		assert.Equal(t, "r2", turns[1].Content)

		turns, err = repos.History.RecentTurns(ctx, "b", 10)
		require.NoError(t, err)
		assert.Len(t, turns, 1)

		removed, err = repos.History.PruneTurns(ctx, 0)
		require.NoError(t, err)
		assert.Zero(t, removed)
	})
}
