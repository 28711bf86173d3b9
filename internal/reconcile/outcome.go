package reconcile

import "github.com/gridplane/gridplane/internal/geometry"

// Outcome is the terminal result of one reconciliation call. It is built
// once from the final read and returned to the caller; the engine retains
// nothing across calls.
type Outcome struct {
	// Achieved is the last observed geometry, in screen coordinates.
	Achieved geometry.State `json:"achieved"`

	PositionMatched    bool `json:"position_matched"`
	SizeMatched        bool `json:"size_matched"`
	ConstraintDetected bool `json:"constraint_detected"`

	// Attempts counts correction-loop iterations, including the one that
	// observed convergence.
	Attempts int `json:"attempts"`
}

// Converged reports full success. An oversized result caused by an
// app-enforced floor still counts; an undersized one does not.
func (o Outcome) Converged() bool {
	return o.PositionMatched && o.SizeMatched
}
