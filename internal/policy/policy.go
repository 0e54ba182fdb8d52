// Package policy implements the routing decision function that classifies
// a task by its complexity score into one of three execution bands.
package policy

// Label is the policy's output category.
type Label string

const (
	Classical Label = "Classical"
	Hybrid    Label = "Hybrid"
	Quantum   Label = "Quantum"
)

// Decide maps a complexity score to its decision band.
//
// Boundaries are exact: 0.8 is Hybrid, 0.4 is Classical. Callers clamp
// complexity into [0, 1] before invoking. The task label is not consulted
// today; it is accepted so the signature stays stable if task-aware routing
// lands later and so audit call sites read naturally.
func Decide(task string, complexity float64) Label {
	switch {
	case complexity > 0.8:
		return Quantum
	case complexity > 0.4:
		return Hybrid
	default:
		return Classical
	}
}
