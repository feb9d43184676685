package dashboard_cache

import (
	"sync"
	"time"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
)

const TTL = 1 * time.Minute

// ── Dashboard stats cache ────────────────────────────────────────────────────
// The dashboard aggregates over every order on each hit; cache the result
// briefly and drop it whenever an order mutates.

type statsEntry struct {
	stats     models.DashboardStatsResponse
	fetchedAt time.Time
}

var (
	statsMu    sync.RWMutex
	statsCache *statsEntry
)

func GetStats() (models.DashboardStatsResponse, bool) {
	statsMu.RLock()
	defer statsMu.RUnlock()
	if statsCache != nil && time.Since(statsCache.fetchedAt) < TTL {
		return statsCache.stats, true
	}
	return models.DashboardStatsResponse{}, false
}

func SetStats(stats models.DashboardStatsResponse) {
	statsMu.Lock()
	defer statsMu.Unlock()
	statsCache = &statsEntry{stats: stats, fetchedAt: time.Now()}
}

// Invalidate drops the cached stats (call on any order status change).
func Invalidate() {
	statsMu.Lock()
	statsCache = nil
	statsMu.Unlock()
}
