package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/saim-honey388/BAKERY-CHAT/internal/config"
	"github.com/saim-honey388/BAKERY-CHAT/internal/logger"
)

// New picks the session backend. Redis is preferred when configured
// and reachable; otherwise sessions degrade to process-local memory.
func New(ctx context.Context, cfg *config.Config) Store {
	ttl := cfg.SessionTTL
	if cfg.RedisAddr == "" {
		logger.L().Info("no redis configured, using in-memory sessions")
		return NewMemoryStore(ttl)
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.L().Warn("redis unreachable, falling back to in-memory sessions",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
		return NewMemoryStore(ttl)
	}

	logger.L().Info("session store connected", zap.String("addr", cfg.RedisAddr))
	return NewRedisStore(client, ttl)
}
