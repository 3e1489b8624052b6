package scrollkit

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// glideAnim holds an active programmatic smooth-scroll tween.
type glideAnim struct {
	tween *gween.Tween
	last  int
	done  bool
}

// Coordinator distributes scroll delta for one axis across the self region
// and the settled delegate regions, and runs the gesture and fling state
// machines that produce that delta.
//
// A Coordinator is single-threaded: gesture samples, layout settles, and
// simulator steps must all arrive from one goroutine, and a Delegate must
// not call back into the coordinator from Consume.
type Coordinator struct {
	cfg Config
	seq *regionSequence

	// selfOffset is how far the self region's own content is scrolled.
	selfOffset int

	// token indexes the delegate region that currently holds scroll
	// authority; token == delegateCount means authority sits past the last
	// delegate, against the trailing content edge.
	token int

	// selfScrolling is true while the self region (not a delegate) is
	// consuming delta.
	selfScrolling bool

	// cumulative is the combined scroll position: selfOffset plus all
	// consumed delegate offsets up to the token.
	cumulative int

	state MovementState

	fling   flingSim
	glide   *glideAnim
	gesture gestureState

	distributing   bool
	lastIterations int // iterations of the most recent distribute loop
}

// NewCoordinator creates a Coordinator with the given configuration.
// Unset Config fields take defaults.
func NewCoordinator(cfg Config) *Coordinator {
	return &Coordinator{
		cfg:           cfg.withDefaults(),
		seq:           newRegionSequence(),
		selfScrolling: true,
	}
}

// Axis returns the configured scroll axis.
func (c *Coordinator) Axis() Axis { return c.cfg.Axis }

// State returns the current movement state.
func (c *Coordinator) State() MovementState { return c.state }

// Offset returns the cumulative scroll position: the sum of the self
// region's offset and every consumed delegate offset up to the token.
// Hosts use it to restore scroll position across a rebuild.
func (c *Coordinator) Offset() int { return c.cumulative }

// SelfOffset returns how far the self region's own content is scrolled,
// excluding delegate scrolling. Hosts translate their directly-owned
// children by this amount.
func (c *Coordinator) SelfOffset() int { return c.selfOffset }

// DelegateCount returns the number of settled delegate regions.
func (c *Coordinator) DelegateCount() int { return c.seq.delegateCount() }

// SetDelegate declares or replaces the delegate region starting at
// bounds.Start. Out-of-order declaration is fine; regions are ordered when
// Settle commits them. Replacing the delegate of an already-settled region
// recomputes the cumulative offset in place, so the swap causes no visible
// jump even when the new delegate reports a different internal offset.
func (c *Coordinator) SetDelegate(bounds DelegateBounds, d Delegate) {
	if c.seq.set(bounds, d) {
		c.recomputeCumulative()
		c.debugf("delegate replaced at %d, cumulative recomputed to %d", bounds.Start, c.cumulative)
	}
}

// Settle commits declared delegate regions and records the self region's
// boundaries for the current layout: contentEnd is the trailing edge of
// all content and viewportEnd the trailing edge of the visible window,
// both in self-region coordinates. Call it after every layout pass.
//
// Settle resets the token to the first region and then replays the
// previous cumulative offset through distribution, so the visual scroll
// position survives a rebuild. It fails with *UnsettledSequenceError when
// a declared region has no delegate.
func (c *Coordinator) Settle(contentEnd, viewportEnd int) error {
	if err := c.seq.settle(contentEnd, viewportEnd); err != nil {
		return err
	}

	prev := c.cumulative
	c.token = 0
	c.selfScrolling = true
	c.recomputeCumulative()
	if diff := prev - c.cumulative; diff != 0 {
		c.debugf("settle: replaying %d to restore cumulative %d", diff, prev)
		return c.distribute(diff)
	}
	return nil
}

// ScrollBy scrolls the combined content by delta.
func (c *Coordinator) ScrollBy(delta int) error {
	return c.distribute(delta)
}

// ScrollTo scrolls the combined content to the absolute cumulative
// position target.
func (c *Coordinator) ScrollTo(target int) error {
	return c.distribute(target - c.cumulative)
}

// SmoothScrollTo animates the cumulative position to target over duration
// seconds, easing with fn (ease.OutQuint when nil). The animation is
// advanced by Step and canceled by a new press, exactly like a fling.
func (c *Coordinator) SmoothScrollTo(target int, duration float32, fn ease.TweenFunc) {
	distance := target - c.cumulative
	if distance == 0 || duration <= 0 {
		return
	}
	if fn == nil {
		fn = ease.OutQuint
	}
	c.fling.cancel()
	c.glide = &glideAnim{tween: gween.New(0, float32(distance), duration, fn)}
	c.state = MovementFlinging
}

// Step advances whichever simulation is active (a fling or a smooth
// scroll) by dt seconds and distributes the resulting delta. Call it once
// per frame; it is a no-op outside MovementFlinging. dt must be
// non-negative; only monotonic elapsed time matters, not wall-clock time.
func (c *Coordinator) Step(dt float32) error {
	if c.state != MovementFlinging {
		// Nothing should be simulating outside the flinging state.
		c.fling.cancel()
		c.glide = nil
		return nil
	}

	if g := c.glide; g != nil {
		val, done := g.tween.Update(dt)
		delta := int(val) - g.last
		g.last = int(val)
		var err error
		if delta != 0 {
			err = c.distribute(delta)
		}
		if done {
			c.glide = nil
			c.state = MovementIdle
			c.debugf("smooth scroll finished at cumulative %d", c.cumulative)
		}
		return err
	}

	delta, done := c.fling.step(dt)
	var err error
	if delta != 0 {
		err = c.distribute(delta)
	}
	if done {
		c.state = MovementIdle
		c.debugf("fling finished at cumulative %d", c.cumulative)
	}
	return err
}

// distribute hands delta to whichever region holds the token, clamping and
// forwarding as needed, and toggles authority between the self region and
// delegate regions until the delta is fully consumed. Each pass either
// consumes everything or moves the token one position, so the loop
// terminates within 2*(delegateCount+1) iterations.
func (c *Coordinator) distribute(delta int) error {
	if !c.seq.settled() {
		return &UnsettledSequenceError{Start: -1}
	}
	if c.distributing {
		return &ContractViolationError{Reason: "nested distribute: a Delegate must not scroll the coordinator from Consume"}
	}
	c.distributing = true
	defer func() { c.distributing = false }()

	c.lastIterations = 0
	remaining := delta
	for remaining != 0 {
		c.lastIterations++

		var err error
		if c.selfScrolling {
			remaining = c.applySelfDelta(remaining)
		} else {
			remaining, err = c.applyDelegateDelta(remaining)
			if err != nil {
				return err
			}
		}

		if remaining == 0 {
			break
		}
		c.selfScrolling = !c.selfScrolling
	}
	return nil
}

// applySelfDelta scrolls the self region by as much of delta as the
// nearest boundary in the direction of travel allows, and returns the
// remainder. Hitting the end of the previous delegate region while moving
// negative also retreats the token so that region can consume next.
func (c *Coordinator) applySelfDelta(delta int) int {
	var selfDelta, remainder int

	if delta < 0 {
		if c.token > 0 {
			// The previous region's trailing edge must not scroll past the
			// viewport's trailing edge.
			prev := c.seq.regionAt(c.token - 1)
			viewportTrailing := c.selfOffset + c.seq.viewportEnd
			selfDelta = clampDelta(prev.bounds.End, viewportTrailing, delta, true)
			remainder = delta - selfDelta
			if remainder != 0 {
				c.token--
				c.debugf("token retreats to %d", c.token)
			}
		} else {
			// No previous region; clamp against the leading content edge.
			selfDelta = clampDelta(0, c.selfOffset, delta, true)
			remainder = 0
		}
	} else {
		if c.token < c.seq.delegateCount() {
			// The active region's leading edge must not scroll past the
			// viewport's leading edge.
			cur := c.seq.regionAt(c.token)
			selfDelta = clampDelta(cur.bounds.Start, c.selfOffset, delta, false)
			remainder = delta - selfDelta
		} else {
			// Past the last region; clamp against the trailing content
			// edge. This terminal segment absorbs the full delta.
			viewportTrailing := c.selfOffset + c.seq.viewportEnd
			selfDelta = clampDelta(c.seq.contentEnd, viewportTrailing, delta, false)
			remainder = 0
		}
	}

	c.selfOffset += selfDelta
	c.cumulative += selfDelta
	return remainder
}

// applyDelegateDelta forwards delta to the token-holding delegate and
// returns the remainder it reports. A positive remainder means the
// delegate is exhausted in the direction of travel, so the token advances;
// negative exhaustion leaves the token in place and the self region
// retreats it once its own boundary is reached.
func (c *Coordinator) applyDelegateDelta(delta int) (int, error) {
	region := c.seq.regionAt(c.token)
	if region == nil || region.delegate == nil {
		return 0, &NoActiveRegionError{Token: c.token}
	}

	remainder := region.delegate.Consume(delta)
	if remainder != 0 && (remainder > 0) != (delta > 0) {
		return 0, &ContractViolationError{
			Reason: fmt.Sprintf("delegate at %d returned remainder %d for delta %d: sign must match", region.bounds.Start, remainder, delta),
		}
	}
	if abs(remainder) > abs(delta) {
		return 0, &ContractViolationError{
			Reason: fmt.Sprintf("delegate at %d returned remainder %d for delta %d: magnitude exceeds delta", region.bounds.Start, remainder, delta),
		}
	}

	c.cumulative += delta - remainder
	if remainder > 0 {
		c.token++
		c.debugf("token advances to %d", c.token)
	}
	return remainder, nil
}

// recomputeCumulative rebuilds the cumulative offset from the physical
// state: the self offset plus each delegate's reported offset up to and
// including the token holder.
func (c *Coordinator) recomputeCumulative() {
	c.cumulative = c.selfOffset
	for i := 0; i < c.seq.delegateCount(); i++ {
		c.cumulative += c.seq.regionAt(i).delegate.ScrollOffset()
		if i >= c.token {
			break
		}
	}
}

func (c *Coordinator) debugf(format string, args ...any) {
	if c.cfg.Debugf != nil {
		c.cfg.Debugf(format, args...)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
