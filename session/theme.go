package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const themeTTL = 30 * 24 * time.Hour

// ThemeStore persists the theme flag, the one value allowed to outlive a
// session. Backed by Redis when configured, otherwise by process memory.
type ThemeStore interface {
	Get(ctx context.Context, sessionID string) (string, bool)
	Set(ctx context.Context, sessionID, theme string)
}

// NewThemeStore returns a Redis-backed store when a client is available and
// an in-memory fallback otherwise.
func NewThemeStore(client *redis.Client) ThemeStore {
	if client != nil {
		return &redisThemeStore{client: client}
	}
	return &memoryThemeStore{themes: make(map[string]string)}
}

type redisThemeStore struct {
	client *redis.Client
}

func (s *redisThemeStore) Get(ctx context.Context, sessionID string) (string, bool) {
	val, err := s.client.Get(ctx, "theme:"+sessionID).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (s *redisThemeStore) Set(ctx context.Context, sessionID, theme string) {
	s.client.Set(ctx, "theme:"+sessionID, theme, themeTTL)
}

type memoryThemeStore struct {
	mu     sync.RWMutex
	themes map[string]string
}

func (s *memoryThemeStore) Get(_ context.Context, sessionID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.themes[sessionID]
	return val, ok
}

func (s *memoryThemeStore) Set(_ context.Context, sessionID, theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themes[sessionID] = theme
}
