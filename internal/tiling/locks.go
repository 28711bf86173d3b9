package tiling

import "sync"

// windowLocks serializes reconciliations per window id. Interleaved writes
// to one window from two call sites are a race the reconciliation protocol
// cannot reason about, so the calling layer holds the window's lock for the
// whole call.
type windowLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newWindowLocks() *windowLocks {
	return &windowLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for id and returns its release func. Entries are
// kept for the life of the service; the map is bounded by the number of
// distinct windows seen.
func (l *windowLocks) acquire(id string) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
