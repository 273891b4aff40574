package storage_test

import (
	"context"
	"errors"
	"testing"

	"hr-admin/internal/storage"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key maps redis.Nil to ErrKeyNotFound", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(storage.EmployeesKey).RedisNil()

		store := storage.NewRedisStore(rdb)

		_, err := store.Get(ctx, storage.EmployeesKey)
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get returns the stored blob", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(storage.EmployeesKey).SetVal(`[{"id":"emp_1"}]`)

		store := storage.NewRedisStore(rdb)

		val, err := store.Get(ctx, storage.EmployeesKey)
		assert.NoError(t, err)
		assert.Equal(t, `[{"id":"emp_1"}]`, val)
	})

	t.Run("set writes without a TTL", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSet(storage.SessionKey, `{"username":"admin"}`, 0).SetVal("OK")

		store := storage.NewRedisStore(rdb)

		assert.NoError(t, store.Set(ctx, storage.SessionKey, `{"username":"admin"}`))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete issues DEL", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectDel(storage.SessionKey).SetVal(1)

		store := storage.NewRedisStore(rdb)

		assert.NoError(t, store.Delete(ctx, storage.SessionKey))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("connection failure propagates", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(storage.EmployeesKey).SetErr(errors.New("connection refused"))

		store := storage.NewRedisStore(rdb)

		_, err := store.Get(ctx, storage.EmployeesKey)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrKeyNotFound)
	})
}
