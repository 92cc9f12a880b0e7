package pause

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/repairbot/pkg/domain"
	"github.com/umputun/repairbot/pkg/pause/mocks"
	"github.com/umputun/repairbot/pkg/phone"
	"github.com/umputun/repairbot/pkg/repository"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func setupStore(t *testing.T, aiActive bool) (*Store, *fakeClock) {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	clock := &fakeClock{t: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)}
	s := New(repos.Pause, repos.Setting, Config{Normalizer: phone.New("55"), DefaultAIActive: aiActive, Clock: clock.Now})
	return s, clock
}

func TestStore_PauseAndExpire(t *testing.T) {
	s, clock := setupStore(t, true)
	ctx := context.Background()

	rec, err := s.Pause(ctx, "5511999990001@s.whatsapp.net", 3)
	require.NoError(t, err)
	assert.Equal(t, "5511999990001", rec.SenderID)
	assert.Equal(t, clock.Now().Add(72*time.Hour), rec.PausedUntil)

	paused, err := s.IsPaused(ctx, "5511999990001")
	require.NoError(t, err)
	assert.True(t, paused)

	clock.Advance(72*time.Hour - time.Second)
	paused, err = s.IsPaused(ctx, "5511999990001")
	require.NoError(t, err)
	assert.True(t, paused)

	clock.Advance(time.Second)
	paused, err = s.IsPaused(ctx, "5511999990001")
	require.NoError(t, err)
	assert.False(t, paused, "expired at boundary")

	list, err := s.ListPaused(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "expired record removed on read")
}

func TestStore_PauseReplaces(t *testing.T) {
	s, clock := setupStore(t, true)
	ctx := context.Background()

	_, err := s.Pause(ctx, "5511999990001", 3)
	require.NoError(t, err)
	_, err = s.Pause(ctx, "5511999990001", 1)
	require.NoError(t, err)

	list, err := s.ListPaused(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].PausedUntil.Equal(clock.Now().Add(24*time.Hour)))
}

func TestStore_NormalizesTargets(t *testing.T) {
	s, _ := setupStore(t, true)
	ctx := context.Background()

	// admin typed the national form, the webhook delivers the full jid
	_, err := s.Pause(ctx, "(11) 99999-0001", 2)
	require.NoError(t, err)

	paused, err := s.IsPaused(ctx, "5511999990001@s.whatsapp.net")
	require.NoError(t, err)
	assert.True(t, paused)

	require.NoError(t, s.Resume(ctx, "+55 11 99999-0001"))
	paused, err = s.IsPaused(ctx, "5511999990001")
	require.NoError(t, err)
	assert.False(t, paused)
}

func TestStore_AreaCodeMatchesCountryCode(t *testing.T) {
	tests := []struct {
		name, pauseAs, webhook string
	}{
		{"national mobile", "(55) 99999-8888", "5555999998888@s.whatsapp.net"},
		{"national digits", "55999998888", "5555999998888@s.whatsapp.net"},
		{"full number", "+55 55 99999-8888", "5555999998888@s.whatsapp.net"},
		{"landline", "55 3333-4444", "555533334444@s.whatsapp.net"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := setupStore(t, true)
			ctx := context.Background()

			rec, err := s.Pause(ctx, tt.pauseAs, 3)
			require.NoError(t, err)
			assert.Equal(t, s.Normalize(tt.webhook), rec.SenderID)

			paused, err := s.IsPaused(ctx, tt.webhook)
			require.NoError(t, err)
			assert.True(t, paused)

			require.NoError(t, s.Resume(ctx, tt.pauseAs))
			paused, err = s.IsPaused(ctx, tt.webhook)
			require.NoError(t, err)
			assert.False(t, paused)
		})
	}
}

func TestStore_ResumeIdempotent(t *testing.T) {
	s, _ := setupStore(t, true)
	ctx := context.Background()
	require.NoError(t, s.Resume(ctx, "5511999990009"))
	require.NoError(t, s.Resume(ctx, "5511999990009"))
	require.Error(t, s.Resume(ctx, "not a number"))
}

func TestStore_InvalidPause(t *testing.T) {
	s, _ := setupStore(t, true)
	_, err := s.Pause(context.Background(), "5511999990001", 0)
	require.Error(t, err)
	_, err = s.Pause(context.Background(), "", 3)
	require.Error(t, err)

	paused, err := s.IsPaused(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, paused)
}

func TestStore_GlobalPause(t *testing.T) {
	t.Run("default active", func(t *testing.T) {
		s, _ := setupStore(t, true)
		ctx := context.Background()

		paused, err := s.IsGlobalPaused(ctx)
		require.NoError(t, err)
		assert.False(t, paused)

		require.NoError(t, s.SetGlobalPause(ctx, true))
		paused, err = s.IsGlobalPaused(ctx)
		require.NoError(t, err)
		assert.True(t, paused)

		require.NoError(t, s.SetGlobalPause(ctx, false))
		paused, err = s.IsGlobalPaused(ctx)
		require.NoError(t, err)
		assert.False(t, paused)
	})

	t.Run("default inactive", func(t *testing.T) {
		s, _ := setupStore(t, false)
		paused, err := s.IsGlobalPaused(context.Background())
		require.NoError(t, err)
		assert.True(t, paused)
	})

	t.Run("global flag independent of sender pauses", func(t *testing.T) {
		s, _ := setupStore(t, true)
		ctx := context.Background()
		_, err := s.Pause(ctx, "5511999990001", 1)
		require.NoError(t, err)
		require.NoError(t, s.SetGlobalPause(ctx, true))
		require.NoError(t, s.SetGlobalPause(ctx, false))
		paused, err := s.IsPaused(ctx, "5511999990001")
		require.NoError(t, err)
		assert.True(t, paused)
	})
}

func TestStore_Errors(t *testing.T) {
	repo := &mocks.RepositoryMock{
		GetPauseFunc: func(ctx context.Context, senderID string) (domain.PauseRecord, error) {
			return domain.PauseRecord{}, errors.New("disk I/O error")
		},
		UpsertPauseFunc: func(ctx context.Context, rec domain.PauseRecord) error {
			return errors.New("disk I/O error")
		},
	}
	settings := &mocks.SettingStoreMock{
		GetSettingFunc: func(ctx context.Context, key string) (string, bool, error) {
			return "garbage", true, nil
		},
	}
	s := New(repo, settings, Config{DefaultAIActive: true})

	_, err := s.IsPaused(context.Background(), "5511999990001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")

	_, err = s.Pause(context.Background(), "5511999990001", 3)
	require.Error(t, err)

	paused, err := s.IsGlobalPaused(context.Background())
	require.NoError(t, err)
	assert.False(t, paused, "unparsable value falls back to default")
	assert.Len(t, settings.GetSettingCalls(), 1)
}
