package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"mind-journal/internal/domain"
)

// AdviceCache guarda consejos ya parseados. Es opcional: un cache nil se
// comporta como miss permanente.
type AdviceCache interface {
	Get(ctx context.Context, key string) (domain.Advice, bool)
	Set(ctx context.Context, key string, advice domain.Advice)
}

type redisAdviceClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisAdviceCache struct {
	client redisAdviceClient
	ttl    time.Duration
	prefix string
}

// NewRedisAdviceCache construye el cache sobre Redis. Cualquier error de
// Redis es fail-open: nunca bloquea un turno.
func NewRedisAdviceCache(client *redis.Client, ttl time.Duration) AdviceCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisAdviceCache{
		client: client,
		ttl:    ttl,
		prefix: "advice:",
	}
}

// AdviceCacheKey deriva una clave estable de (emocion, intensidad, mensaje).
func AdviceCacheKey(emotion domain.Emotion, intensity float64, message string) string {
	payload := fmt.Sprintf("%s|%d|%s", emotion, int(intensity*100), strings.TrimSpace(message))
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func (c *redisAdviceCache) Get(ctx context.Context, key string) (domain.Advice, bool) {
	if c == nil || c.client == nil || key == "" {
		return domain.Advice{}, false
	}
	opCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	raw, err := c.client.Get(opCtx, c.prefix+key).Result()
	if err != nil {
		return domain.Advice{}, false
	}
	var advice domain.Advice
	if err := json.Unmarshal([]byte(raw), &advice); err != nil {
		return domain.Advice{}, false
	}
	return advice, true
}

func (c *redisAdviceCache) Set(ctx context.Context, key string, advice domain.Advice) {
	if c == nil || c.client == nil || key == "" {
		return
	}
	raw, err := json.Marshal(advice)
	if err != nil {
		return
	}
	opCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	_ = c.client.Set(opCtx, c.prefix+key, raw, c.ttl).Err()
}
