package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrMiss = errors.New("cache miss")

// KV is the small key/value surface the session layer needs. Backed by Redis
// in production; the in-memory variant keeps `go run` working without one.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type RedisKV struct {
	c *redis.Client
}

func NewRedisKV(c *redis.Client) *RedisKV { return &RedisKV{c: c} }

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.c.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrMiss
		}
		return "", err
	}
	return val, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.c.Set(ctx, key, value, ttl).Err()
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	return r.c.Del(ctx, key).Err()
}

type memoryEntry struct {
	value    string
	expires  time.Time
	hasLimit bool
}

// MemoryKV is a process-local KV for dev and tests.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]memoryEntry
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: map[string]memoryEntry{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.data[key]
	if !ok {
		return "", ErrMiss
	}
	if e.hasLimit && time.Now().After(e.expires) {
		delete(m.data, key)
		return "", ErrMiss
	}
	return e.value, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expires = time.Now().Add(ttl)
		e.hasLimit = true
	}
	m.data[key] = e
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
