package cache_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notehub/internal/adapters/cache"
	"notehub/internal/config"
	"notehub/internal/domain/entities"
	cachePorts "notehub/internal/ports/cache"
)

func mockRedisConfig(t *testing.T) *config.RedisConfig {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return &config.RedisConfig{
		Host:           host,
		Port:           port,
		PoolSize:       10,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    3 * time.Second,
		WriteTimeout:   3 * time.Second,
		DefaultTTL:     time.Minute,
	}
}

func TestNewRedisNoteListCache(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx := context.Background()
		noteCache, err := cache.NewRedisNoteListCache(ctx, mockRedisConfig(t))

		require.NoError(t, err)
		require.NotNil(t, noteCache)
		assert.Implements(t, (*cachePorts.NoteListCache)(nil), noteCache)
		assert.NoError(t, noteCache.Close())
	})

	t.Run("connection failure", func(t *testing.T) {
		ctx := context.Background()
		cfg := &config.RedisConfig{
			Host:           "127.0.0.1",
			Port:           1,
			ConnectTimeout: 100 * time.Millisecond,
			ReadTimeout:    100 * time.Millisecond,
			WriteTimeout:   100 * time.Millisecond,
		}

		noteCache, err := cache.NewRedisNoteListCache(ctx, cfg)

		require.Error(t, err)
		assert.Nil(t, noteCache)
	})
}

func TestRedisNoteListCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	noteCache, err := cache.NewRedisNoteListCache(ctx, mockRedisConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = noteCache.Close() })

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	notes := []*entities.Note{
		{ID: "n1", UserID: "user-1", Title: "First", Tags: []string{"go"}, UpdatedAt: now},
		{ID: "n2", UserID: "user-1", Title: "Second", Tags: []string{}, UpdatedAt: now.Add(-time.Hour)},
	}

	t.Run("miss before set", func(t *testing.T) {
		got, err := noteCache.GetList(ctx, "user-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, noteCache.SetList(ctx, "user-1", notes))

		got, err := noteCache.GetList(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "n1", got[0].ID)
		assert.Equal(t, "Second", got[1].Title)
		assert.True(t, got[0].UpdatedAt.Equal(now))
	})

	t.Run("lists are isolated per user", func(t *testing.T) {
		got, err := noteCache.GetList(ctx, "user-2")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set replaces wholesale", func(t *testing.T) {
		require.NoError(t, noteCache.SetList(ctx, "user-1", notes[:1]))

		got, err := noteCache.GetList(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "n1", got[0].ID)
	})

	t.Run("invalidate drops the list", func(t *testing.T) {
		require.NoError(t, noteCache.Invalidate(ctx, "user-1"))

		got, err := noteCache.GetList(ctx, "user-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty list is cached, not a miss", func(t *testing.T) {
		require.NoError(t, noteCache.SetList(ctx, "user-3", []*entities.Note{}))

		got, err := noteCache.GetList(ctx, "user-3")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}
