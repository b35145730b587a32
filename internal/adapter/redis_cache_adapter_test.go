package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"mvpduo/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "mvpduo:questions:approved:1-1-1:TYT"

	t.Run("Hit", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(`[{"id":"q1"}]`)
		val, err := adapter.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, `[{"id":"q1"}]`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("i/o timeout")
		mock.ExpectGet(key).SetErr(redisErr)
		_, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.Contains(t, err.Error(), key)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_GetAndTouch(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()
	key := "mvpduo:session:active:u1"

	mock.ExpectGetEx(key, 2*time.Hour).SetVal(`{"id":"s1"}`)
	val, err := adapter.GetAndTouch(ctx, key, 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"s1"}`, val)

	mock.ExpectGetEx(key, 2*time.Hour).SetErr(redis.Nil)
	_, err = adapter.GetAndTouch(ctx, key, 2*time.Hour)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_SetDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectSet("k", "v", 10*time.Minute).SetVal("OK")
	assert.NoError(t, adapter.Set(ctx, "k", "v", 10*time.Minute))

	mock.ExpectSet("k", "v", 0).SetErr(errors.New("READONLY replica"))
	assert.Error(t, adapter.Set(ctx, "k", "v", 0))

	mock.ExpectDel("k").SetVal(1)
	assert.NoError(t, adapter.Delete(ctx, "k"))

	mock.ExpectDel("missing").SetVal(0)
	assert.NoError(t, adapter.Delete(ctx, "missing"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_DeleteMatching(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()
	pattern := "mvpduo:questions:approved:1-2-3:*"

	mock.ExpectScan(0, pattern, scanBatch).SetVal([]string{"a", "b"}, 42)
	mock.ExpectDel("a", "b").SetVal(2)
	mock.ExpectScan(42, pattern, scanBatch).SetVal([]string{}, 7)
	mock.ExpectScan(7, pattern, scanBatch).SetVal([]string{"c"}, 0)
	mock.ExpectDel("c").SetVal(1)

	n, err := adapter.DeleteMatching(ctx, pattern)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectScan(0, pattern, scanBatch).SetErr(errors.New("connection reset"))
	n, err = adapter.DeleteMatching(ctx, pattern)
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, adapter.Ping(context.Background()))

	mock.ExpectPing().SetErr(errors.New("connection refused"))
	assert.Error(t, adapter.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
