package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KashAmir418/Numerio-sub000/internal/domain"
)

// ResultCache guarda resultados por día ambiente. El motor es determinista
// dentro de un día, así que la clave incluye la fecha actual y el TTL
// expira a medianoche local: el caché nunca sobrevive a la rotación diaria.
type ResultCache interface {
	Get(key string) (domain.CompatibilityResult, bool, error)
	Set(key string, result domain.CompatibilityResult, ttl time.Duration) error
}

// CacheKey compone la clave de una lectura para un día dado.
func CacheKey(dateA, dateB, nameA, nameB, day string) string {
	return strings.Join([]string{dateA, dateB, nameA, nameB, day}, "|")
}

// TTLUntilMidnight devuelve cuánto falta para la próxima medianoche local.
func TTLUntilMidnight(now time.Time) time.Duration {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return midnight.Sub(now)
}

type memoryEntry struct {
	result    domain.CompatibilityResult
	expiresAt time.Time
}

type memoryResultCache struct {
	mu    sync.Mutex
	items map[string]memoryEntry
}

func NewMemoryResultCache() ResultCache {
	return &memoryResultCache{items: make(map[string]memoryEntry)}
}

func (c *memoryResultCache) Get(key string) (domain.CompatibilityResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.items[key]
	if !ok {
		return domain.CompatibilityResult{}, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.items, key)
		return domain.CompatibilityResult{}, false, nil
	}
	return entry.result, true, nil
}

func (c *memoryResultCache) Set(key string, result domain.CompatibilityResult, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = memoryEntry{result: result, expiresAt: time.Now().Add(ttl)}
	return nil
}

type redisResultCache struct {
	client *redis.Client
	prefix string
}

func NewRedisResultCache(client *redis.Client) ResultCache {
	if client == nil {
		return nil
	}
	return &redisResultCache{
		client: client,
		prefix: "compat:result:",
	}
}

func (c *redisResultCache) Get(key string) (domain.CompatibilityResult, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err == redis.Nil {
		return domain.CompatibilityResult{}, false, nil
	}
	if err != nil {
		return domain.CompatibilityResult{}, false, err
	}
	var result domain.CompatibilityResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return domain.CompatibilityResult{}, false, err
	}
	return result, true, nil
}

func (c *redisResultCache) Set(key string, result domain.CompatibilityResult, ttl time.Duration) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, c.prefix+key, raw, ttl).Err()
}
