package app

import (
	"context"
	"fmt"
	"os"

	"hr-admin/internal/audit"
	"hr-admin/internal/shared/connection"
	"hr-admin/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp menyiapkan infrastruktur (store, redis, audit) lalu
// mendaftarkan seluruh modul beserta route-nya.
func BuildApp(router *gin.Engine, logger *zap.Logger) (audit.Logger, error) {
	store, err := buildStore()
	if err != nil {
		return nil, err
	}

	// Redis opsional, dipakai untuk cache statistik dashboard. Bila
	// STORAGE_DRIVER=redis, koneksi yang sama dipakai ulang lewat store.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return nil, err
		}
	}

	auditLogger := buildAuditLogger()

	if err := registerModules(context.Background(), router, store, rdb, auditLogger, logger); err != nil {
		return nil, err
	}

	return auditLogger, nil
}

func buildStore() (storage.Store, error) {
	driver := os.Getenv("STORAGE_DRIVER")
	switch driver {
	case "redis":
		rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(rdb), nil

	case "postgres":
		db, err := connection.ConnectGORMWithRetry(
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_SSLMODE"),
			5,
		)
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db)

	case "sqlite", "":
		// Default: file lokal, mode single-user
		db, err := connection.ConnectSQLite(os.Getenv("SQLITE_PATH"))
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db)

	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}

func buildAuditLogger() audit.Logger {
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		zap.L().Info("audit events will be published to kafka", zap.String("brokers", brokers))
		return audit.NewKafkaLogger(brokers)
	}
	return audit.NewStdoutLogger()
}
