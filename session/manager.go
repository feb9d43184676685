package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Manager is the session registry. Sessions are created empty on first
// contact and discarded with the process; only the theme flag goes through
// the ThemeStore.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	themes   ThemeStore
}

func NewManager(themes ThemeStore) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		themes:   themes,
	}
}

// Get looks up an existing session.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Create starts a fresh session, restoring a previously persisted theme for
// the same session ID when the store has one.
func (m *Manager) Create(ctx context.Context) *Session {
	id := uuid.Must(uuid.NewV7()).String()
	theme, _ := m.themes.Get(ctx, id)
	s := newSession(id, theme)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return s
}

// GetOrCreate resolves the session for a request. A stale or empty ID yields
// a brand-new session, mirroring a fresh browser session.
func (m *Manager) GetOrCreate(ctx context.Context, id string) *Session {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s
		}
	}
	return m.Create(ctx)
}

// SetTheme updates the session's theme and writes it through to the store.
func (m *Manager) SetTheme(ctx context.Context, s *Session, theme string) {
	s.setTheme(theme)
	m.themes.Set(ctx, s.ID, theme)
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
