package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityLogRecordAndRecent(t *testing.T) {
	l := &ActivityLog{}

	l.Record("admin@vibecart.com", "PATCH", "/api/v1/admin/orders/o-1003/status", "update order status")
	l.Record("admin@vibecart.com", "PATCH", "/api/v1/admin/orders/o-1001/status", "update order status")

	recent := l.Recent(10)
	require.Len(t, recent, 2)
	assert.Contains(t, recent[0].Path, "o-1001", "newest first")
	assert.Contains(t, recent[1].Path, "o-1003")
	assert.NotEmpty(t, recent[0].ID)
	assert.False(t, recent[0].At.IsZero())
}

func TestActivityLogRecentLimit(t *testing.T) {
	l := &ActivityLog{}
	for i := 0; i < 5; i++ {
		l.Record("admin@vibecart.com", "PATCH", fmt.Sprintf("/orders/%d", i), "update order status")
	}

	assert.Len(t, l.Recent(3), 3)
	assert.Len(t, l.Recent(0), 5, "non-positive limit returns everything")
	assert.Len(t, l.Recent(100), 5)
}

func TestActivityLogEvictsOldestAtCapacity(t *testing.T) {
	l := &ActivityLog{}
	for i := 0; i < activityLogCapacity+10; i++ {
		l.Record("admin@vibecart.com", "PATCH", fmt.Sprintf("/orders/%d", i), "update order status")
	}

	recent := l.Recent(0)
	require.Len(t, recent, activityLogCapacity)
	assert.Contains(t, recent[0].Path, fmt.Sprintf("/orders/%d", activityLogCapacity+9))
	assert.Contains(t, recent[len(recent)-1].Path, "/orders/10", "the first ten entries were evicted")
}
