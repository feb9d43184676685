package services

import (
	"sync"
	"time"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/google/uuid"
)

// activityLogCapacity bounds the in-memory log; oldest entries drop first.
const activityLogCapacity = 500

// ActivityLog records admin console actions in memory. Entries die with the
// process, like every other piece of session state.
type ActivityLog struct {
	mu      sync.RWMutex
	entries []models.AdminActivityEntry
}

var activityLog = &ActivityLog{}

// GetActivityLog returns the shared log instance.
func GetActivityLog() *ActivityLog {
	return activityLog
}

// Record appends an entry, evicting the oldest once at capacity.
func (l *ActivityLog) Record(adminEmail, method, path, action string) {
	entry := models.AdminActivityEntry{
		ID:         uuid.Must(uuid.NewV7()).String(),
		AdminEmail: adminEmail,
		Method:     method,
		Path:       path,
		Action:     action,
		At:         time.Now().UTC(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > activityLogCapacity {
		l.entries = l.entries[len(l.entries)-activityLogCapacity:]
	}
}

// Recent returns up to limit entries, newest first.
func (l *ActivityLog) Recent(limit int) []models.AdminActivityEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := len(l.entries)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]models.AdminActivityEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, l.entries[i])
	}
	return out
}
