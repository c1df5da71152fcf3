// Package usage tracks per-application launch statistics.
package usage

import (
	"math"
	"time"
)

// Entry holds the statistics for a single application identity.
type Entry struct {
	Count    uint64 `json:"count"`
	LastUsed uint64 `json:"last_used"`
}

// Map is the in-memory usage snapshot, keyed by application identity.
type Map map[string]Entry

// Record notes one successful launch of the given identity: the counter is
// incremented (saturating, never wrapping) and the timestamp refreshed.
func (m Map) Record(id string) {
	e := m[id]
	if e.Count < math.MaxUint64 {
		e.Count++
	}
	e.LastUsed = uint64(time.Now().Unix())
	m[id] = e
}
