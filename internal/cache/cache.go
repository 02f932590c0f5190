package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Теги кэша. Каждый тег соответствует типу ресурса; мутация ресурса
// инвалидирует все закэшированные выборки с этим тегом.
const (
	TagProduct       = "product"
	TagDisclaimer    = "disclaimer"
	TagTrainingVideo = "trainingVideo"
	TagAdmin         = "admin"
	TagBuyer         = "buyer"
	TagUser          = "user"
)

// ListCache — кэш списочных выборок поверх Redis. Все операции best‑effort:
// ошибки кэша логируются и не влияют на результат запроса. Нулевой *ListCache
// безопасен — каждая операция превращается в no‑op.
type ListCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.SugaredLogger
}

// New подключается к Redis и проверяет соединение.
func New(addr, password string, db int, logger *zap.SugaredLogger) (*ListCache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &ListCache{rdb: rdb, ttl: 5 * time.Minute, logger: logger}, nil
}

// Close закрывает соединение с Redis.
func (c *ListCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func (c *ListCache) enabled() bool {
	return c != nil && c.rdb != nil
}

func listKey(tag, key string) string { return "list:" + tag + ":" + key }
func tagKey(tag string) string       { return "tag:" + tag }

// Get читает закэшированную выборку в dest. Возвращает false при промахе
// или любой ошибке кэша.
func (c *ListCache) Get(ctx context.Context, tag, key string, dest any) bool {
	if !c.enabled() {
		return false
	}
	raw, err := c.rdb.Get(ctx, listKey(tag, key)).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.logger.Warnw("cache: get failed", "tag", tag, "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warnw("cache: unmarshal failed", "tag", tag, "key", key, "error", err)
		return false
	}
	return true
}

// Set сохраняет выборку и регистрирует ключ в индексе тега.
func (c *ListCache) Set(ctx context.Context, tag, key string, val any) {
	if !c.enabled() {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		c.logger.Warnw("cache: marshal failed", "tag", tag, "key", key, "error", err)
		return
	}
	lk := listKey(tag, key)
	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, lk, raw, c.ttl)
	pipe.SAdd(ctx, tagKey(tag), lk)
	pipe.Expire(ctx, tagKey(tag), c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warnw("cache: set failed", "tag", tag, "key", key, "error", err)
	}
}

// Invalidate сбрасывает все выборки перечисленных тегов.
func (c *ListCache) Invalidate(ctx context.Context, tags ...string) {
	if !c.enabled() {
		return
	}
	for _, tag := range tags {
		keys, err := c.rdb.SMembers(ctx, tagKey(tag)).Result()
		if err != nil {
			c.logger.Warnw("cache: invalidate failed", "tag", tag, "error", err)
			continue
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				c.logger.Warnw("cache: del failed", "tag", tag, "error", err)
			}
		}
		if err := c.rdb.Del(ctx, tagKey(tag)).Err(); err != nil {
			c.logger.Warnw("cache: del tag index failed", "tag", tag, "error", err)
		}
	}
}
