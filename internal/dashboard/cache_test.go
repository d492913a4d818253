package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amin-Golden/GymWeb/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

func TestCache_GetHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := NewCacheWithClient(rdb, 15*time.Second)

	data, _ := json.Marshal(Stats{TotalClients: 3, ActiveGymSessions: 1})
	mock.ExpectGet(statsKey).SetVal(string(data))

	got, err := cache.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.TotalClients)
	assert.Equal(t, 1, got.ActiveGymSessions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetMiss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := NewCacheWithClient(rdb, 15*time.Second)

	mock.ExpectGet(statsKey).RedisNil()

	got, err := cache.Get(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetError(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := NewCacheWithClient(rdb, 15*time.Second)

	mock.ExpectGet(statsKey).SetErr(errors.New("connection refused"))

	got, err := cache.Get(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestCache_Set(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := NewCacheWithClient(rdb, 15*time.Second)

	stats := &Stats{TotalPayments: 7}
	data, _ := json.Marshal(stats)
	mock.ExpectSet(statsKey, data, 15*time.Second).SetVal("OK")

	assert.NoError(t, cache.Set(context.Background(), stats))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Invalidate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := NewCacheWithClient(rdb, 15*time.Second)

	mock.ExpectDel(statsKey).SetVal(1)

	assert.NoError(t, cache.Invalidate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_NilIsNoop(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	got, err := cache.Get(ctx)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, cache.Set(ctx, &Stats{}))
	assert.NoError(t, cache.Invalidate(ctx))
	assert.NoError(t, cache.Ping(ctx))
	assert.NoError(t, cache.Close())
}
