package engine

import (
	"github.com/daystram/reversi/board"
)

// memo caches child values within one decision. Each search frame owns a
// layer over its caller's memo: a frame sees everything its ancestors stored
// before descending, while its own entries vanish when it returns. A nil memo
// disables caching.
type memo struct {
	parent  *memo
	entries map[board.Fingerprint]float64
	stats   *MemoStats
}

// MemoStats counts memo usage over one decision.
type MemoStats struct {
	Hits   uint64
	Misses uint64
	Writes uint64
}

func newMemo(stats *MemoStats) *memo {
	return &memo{
		entries: make(map[board.Fingerprint]float64),
		stats:   stats,
	}
}

// descend returns a new layer for a child frame.
func (m *memo) descend() *memo {
	if m == nil {
		return nil
	}
	return &memo{
		parent:  m,
		entries: make(map[board.Fingerprint]float64),
		stats:   m.stats,
	}
}

func (m *memo) get(f board.Fingerprint) (float64, bool) {
	if m == nil {
		return 0, false
	}
	for l := m; l != nil; l = l.parent {
		if v, ok := l.entries[f]; ok {
			m.stats.Hits++
			return v, true
		}
	}
	m.stats.Misses++
	return 0, false
}

func (m *memo) set(f board.Fingerprint, v float64) {
	if m == nil {
		return
	}
	m.stats.Writes++
	m.entries[f] = v
}
