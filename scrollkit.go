package scrollkit

// Axis selects the scroll direction a Coordinator manages. A Coordinator
// operates on exactly one axis; instantiate two for surfaces that scroll
// both ways.
type Axis uint8

const (
	Vertical   Axis = iota // scroll along y (default)
	Horizontal             // scroll along x
)

// MovementState describes what is currently driving scroll delta.
type MovementState uint8

const (
	MovementIdle     MovementState = iota // no gesture, no simulation
	MovementDragging                      // pointer is down and past the slop threshold
	MovementFlinging                      // simulator is producing decay deltas
)

// String returns the state name for debug output.
func (m MovementState) String() string {
	switch m {
	case MovementIdle:
		return "idle"
	case MovementDragging:
		return "dragging"
	case MovementFlinging:
		return "flinging"
	default:
		return "unknown"
	}
}

const (
	defaultDragSlop         = 4.0   // units of pointer travel before a drag arms
	defaultMinFlingVelocity = 50.0  // units/sec below which a release is not a fling
	defaultMaxFlingVelocity = 8000.0
	defaultFlingFriction    = 0.015
)

// Config configures a Coordinator. The zero value is usable: a vertical
// coordinator with default gesture thresholds.
type Config struct {
	// Axis is the scroll direction. Adapters use it to pick which pointer
	// component feeds the coordinator; the engine itself is axis-agnostic.
	Axis Axis

	// DragSlop is the pointer travel, in position units, required before a
	// press-and-move becomes a drag.
	DragSlop float64

	// MinFlingVelocity is the release velocity, in units/sec, below which
	// a release settles to idle instead of flinging.
	MinFlingVelocity float64

	// MaxFlingVelocity caps the velocity handed to the fling simulator.
	MaxFlingVelocity float64

	// FlingFriction scales fling deceleration. Larger values stop flings
	// sooner.
	FlingFriction float64

	// Debugf receives internal trace logs for callers that need deep
	// diagnostics. Nil disables tracing.
	Debugf func(format string, args ...any)
}

// withDefaults fills unset fields with default values.
func (c Config) withDefaults() Config {
	if c.DragSlop <= 0 {
		c.DragSlop = defaultDragSlop
	}
	if c.MinFlingVelocity <= 0 {
		c.MinFlingVelocity = defaultMinFlingVelocity
	}
	if c.MaxFlingVelocity <= 0 {
		c.MaxFlingVelocity = defaultMaxFlingVelocity
	}
	if c.FlingFriction <= 0 {
		c.FlingFriction = defaultFlingFriction
	}
	return c
}
