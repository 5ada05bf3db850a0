package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/session-toolbar/internal/config"
	"github.com/spec-kit/session-toolbar/internal/storage"
)

// Redis wraps the go-redis client backing per-client toolbar storage.
type Redis struct {
	Client *redis.Client
	cfg    config.ToolbarConfig
}

// NewRedis connects to Redis. An unreachable server is logged, not fatal;
// readiness reports it.
func NewRedis(cfg config.RedisConfig, toolbar config.ToolbarConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.String("addr", cfg.Addr), zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("addr", cfg.Addr))
	}

	return &Redis{Client: client, cfg: toolbar}
}

// StoreFor returns the key-value store of one browser client.
func (r *Redis) StoreFor(clientID string) storage.KeyValueStore {
	return storage.NewRedisStore(r.Client, r.cfg.KeyNamespace, clientID, r.cfg.ClientTTL())
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}
