package geometry

import "math"

// Default comparison parameters. Tolerance is the per-axis deviation still
// counted as a match; Slack is the excess beyond which an oversized actual
// size is read as an app-enforced minimum rather than write latency.
const (
	DefaultTolerance = 10.0
	DefaultSlack     = 5.0
)

// Evaluator classifies observed geometry against a target rectangle.
type Evaluator struct {
	Tolerance float64
	Slack     float64
}

// NewEvaluator creates an evaluator with default tolerance and slack.
func NewEvaluator() Evaluator {
	return Evaluator{Tolerance: DefaultTolerance, Slack: DefaultSlack}
}

// Classification is the result of comparing actual geometry to a target.
type Classification struct {
	PositionMatched    bool
	SizeMatched        bool
	ConstraintDetected bool
}

// Matched reports full convergence: both position and size acceptable.
func (c Classification) Matched() bool {
	return c.PositionMatched && c.SizeMatched
}

// Classify compares an observed state to the target rectangle.
//
// Size matching is deliberately asymmetric: a window stuck above the target
// size is an app-enforced floor and counts as success, since the user cannot
// get a smaller window than the app allows. A window stuck below the target
// never counts as success.
func (e Evaluator) Classify(target Rect, actual State) Classification {
	var c Classification

	c.PositionMatched = math.Abs(actual.Position.X-target.X) < e.Tolerance &&
		math.Abs(actual.Position.Y-target.Y) < e.Tolerance

	c.ConstraintDetected = actual.Size.Width > target.Width+e.Slack ||
		actual.Size.Height > target.Height+e.Slack

	withinTolerance := math.Abs(actual.Size.Width-target.Width) < e.Tolerance &&
		math.Abs(actual.Size.Height-target.Height) < e.Tolerance

	notSmaller := actual.Size.Width >= target.Width-e.Tolerance &&
		actual.Size.Height >= target.Height-e.Tolerance

	c.SizeMatched = withinTolerance || (c.ConstraintDetected && notSmaller)

	return c
}
