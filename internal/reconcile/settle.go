package reconcile

import "time"

// Settle holds the delays inserted after each kind of write to let its
// asynchronous effect become observable. Size changes take longer to land
// than position changes, and some apps reposition themselves while resizing,
// so the initial size write gets the longest delay.
//
// All control-flow logic is independent of these values; tests run with the
// zero value (no delays) and production tuning never touches the state
// machine.
type Settle struct {
	Relocate        time.Duration
	InitialSize     time.Duration
	InitialPosition time.Duration
	Correction      time.Duration

	// Sleep is the suspension primitive; nil means time.Sleep. Tests
	// substitute it to observe or skip delays.
	Sleep func(time.Duration)
}

// DefaultSettle returns the production settle policy.
func DefaultSettle() Settle {
	return Settle{
		Relocate:        30 * time.Millisecond,
		InitialSize:     40 * time.Millisecond,
		InitialPosition: 30 * time.Millisecond,
		Correction:      25 * time.Millisecond,
	}
}

func (s Settle) wait(d time.Duration) {
	if d <= 0 {
		return
	}
	if s.Sleep != nil {
		s.Sleep(d)
		return
	}
	time.Sleep(d)
}
