// Package geometry provides the value types and pure functions the
// reconciliation engine operates on: points, sizes, rectangles, observed
// window state, the control-surface coordinate transform, and the tolerance
// evaluator that classifies an observed state against a target rectangle.
//
// Coordinate Systems:
//   - Screen: origin bottom-left, y increases upward (caller-facing)
//   - Control: origin top-left, y increases downward (OS-facing)
//
// Every rectangle crossing the boundary between the two systems goes through
// ToControl/ToScreen; the transform is exact arithmetic with no loss.
package geometry
