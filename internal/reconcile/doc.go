// Package reconcile drives a window's observed geometry toward a target
// rectangle through an asynchronous, non-atomic control surface.
//
// The control surface gives no synchronous confirmation that a write took
// effect, apps impose silent constraints (minimum sizes, coupled
// position/size writes, delayed effect), and a handle can go stale at any
// point. The controller runs a bounded retry/verify protocol:
//
//	Init -> SafeRelocate (conditional) -> InitialSize -> InitialPosition ->
//	CorrectionLoop -> Terminal
//
// Each write is followed by a settle delay before the next read, because the
// write's effect is only observable out of band. The loop terminates on
// convergence, constraint detection, stagnation, or budget exhaustion, and
// always within a deterministic worst-case latency (~500ms with production
// settle delays). Geometry mismatch is never an error: it is reported
// through the Outcome's fields.
package reconcile
