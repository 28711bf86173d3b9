package tiling

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowLocksSerializePerWindow(t *testing.T) {
	locks := newWindowLocks()

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
		wg      sync.WaitGroup
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.acquire("w")
			defer release()

			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen, "one reconciliation in flight per window")
}

func TestWindowLocksIndependentWindows(t *testing.T) {
	locks := newWindowLocks()

	releaseA := locks.acquire("a")
	defer releaseA()

	// A held lock on one window must not block another window.
	done := make(chan struct{})
	go func() {
		release := locks.acquire("b")
		release()
		close(done)
	}()
	<-done
}
