package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealth-objective/domain"
)

func newTestHistory(t *testing.T, maxSize int) (*RedisHistory, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	h := NewRedisHistory(client, "wealth:projections", maxSize)
	t.Cleanup(func() { _ = h.Close() })
	return h, mr
}

func TestRedisHistory_SaveAndRecent(t *testing.T) {
	h, _ := newTestHistory(t, 10)
	ctx := context.Background()
	require.NoError(t, h.Ping(ctx))

	rec := domain.ProjectionRecord{
		ID:        "abc",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Input: domain.ProjectionInput{
			Principal:      decimal.RequireFromString("1000"),
			PeriodicRate:   decimal.RequireFromString("0.01"),
			HorizonPeriods: 1,
		},
		Result: domain.ProjectionResult{Points: []domain.ProjectionPoint{
			{Period: 0, Balance: decimal.RequireFromString("1000")},
			{Period: 1, Balance: decimal.RequireFromString("1010")},
		}},
	}
	require.NoError(t, h.Save(ctx, rec))

	got, err := h.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "abc", got[0].ID)
	assert.True(t, got[0].CreatedAt.Equal(rec.CreatedAt))
	assert.True(t, got[0].Result.FinalBalance().Equal(decimal.RequireFromString("1010")))
}

func TestRedisHistory_TrimsToMaxSize(t *testing.T) {
	h, mr := newTestHistory(t, 2)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, h.Save(ctx, domain.ProjectionRecord{ID: id}))
	}

	items, err := mr.List("wealth:projections")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	got, err := h.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestRedisHistory_ServerDown(t *testing.T) {
	h, mr := newTestHistory(t, 2)
	mr.Close()

	err := h.Save(context.Background(), domain.ProjectionRecord{ID: "x"})
	assert.Error(t, err)
}
