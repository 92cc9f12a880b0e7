package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	_, ok, err := repos.Setting.GetSetting(ctx, "ai_active")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repos.Setting.SetSetting(ctx, "ai_active", "false"))
	v, ok, err := repos.Setting.GetSetting(ctx, "ai_active")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "false", v)

	require.NoError(t, repos.Setting.SetSetting(ctx, "ai_active", "true"))
	v, _, err = repos.Setting.GetSetting(ctx, "ai_active")
	require.NoError(t, err)
	assert.Equal(t, "true", v)
}
