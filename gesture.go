package scrollkit

import "math"

// gestureState tracks the in-flight pointer gesture for a coordinator.
type gestureState struct {
	pressed    bool
	initialPos float64
	lastPos    float64
	tracker    velocityTracker
}

// Press feeds a pointer-down sample at pos along the configured axis.
// Pressing mid-fling cancels the simulation and enters dragging directly,
// so the user can catch a moving surface; the cumulative offset is
// untouched. Otherwise the gesture starts idle and arms into dragging once
// movement exceeds the slop threshold.
func (c *Coordinator) Press(pos float64) {
	if c.state == MovementFlinging {
		c.fling.cancel()
		c.glide = nil
		c.state = MovementDragging
		c.debugf("press at %.1f caught fling, dragging", pos)
	} else {
		c.state = MovementIdle
	}

	g := &c.gesture
	g.pressed = true
	g.initialPos = pos
	g.lastPos = pos
	g.tracker.reset()
	g.tracker.add(pos, 0)
}

// Move feeds a pointer-move sample observed dt seconds after the previous
// one. Before the slop threshold is exceeded the sample only feeds the
// velocity tracker; while dragging, the inverted pointer delta (content
// moves opposite the finger) is distributed immediately. Samples without a
// preceding Press are ignored.
func (c *Coordinator) Move(pos float64, dt float32) error {
	g := &c.gesture
	if !g.pressed {
		return nil
	}
	g.tracker.add(pos, float64(dt))

	if c.state != MovementDragging && math.Abs(pos-g.initialPos) > c.cfg.DragSlop {
		c.state = MovementDragging
		c.debugf("drag armed at %.1f", pos)
	}

	var err error
	if c.state == MovementDragging {
		if delta := int(pos - g.lastPos); delta != 0 {
			err = c.distribute(-delta)
		}
	}
	g.lastPos = pos
	return err
}

// Release feeds the pointer-up sample ending the gesture. A drag released
// with at least MinFlingVelocity of pointer speed starts a fling (capped
// at MaxFlingVelocity); anything else, including a release with no
// recorded samples, settles to idle.
func (c *Coordinator) Release() {
	g := &c.gesture
	if !g.pressed || c.state != MovementDragging {
		g.pressed = false
		c.state = MovementIdle
		return
	}
	g.pressed = false

	pointerVelocity := g.tracker.velocity()
	if math.Abs(pointerVelocity) < c.cfg.MinFlingVelocity {
		c.state = MovementIdle
		return
	}

	// Scroll velocity opposes pointer velocity.
	c.fling.start(-pointerVelocity, c.cfg.FlingFriction, c.cfg.MaxFlingVelocity)
	if !c.fling.active {
		c.state = MovementIdle
		return
	}
	c.state = MovementFlinging
	c.debugf("fling at %.0f units/sec", -pointerVelocity)
}
