package scrollkit

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flingDecelScale converts the friction coefficient into a deceleration in
// units/sec². With the default friction this lands close to platform
// scroller feel: a 2000 units/sec release travels a few hundred units over
// well under a second.
const flingDecelScale = 166667.0

// flingSim produces position samples that decay from an initial velocity
// to rest along a quintic ease-out curve. It knows nothing about regions;
// its per-step deltas are fed into distribution by the coordinator.
//
// Given release velocity v and deceleration a, the fling runs for
// duration T = |v|/a over a total signed distance D = v*T/5; the quintic
// curve's initial slope 5D/T then matches v exactly, and the per-step
// delta decays monotonically to zero.
type flingSim struct {
	tween  *gween.Tween
	last   int
	active bool
}

// start begins a fling from the given signed velocity in units/sec,
// clamped to maxVelocity. Velocities too small to travel a whole unit
// leave the simulator idle.
func (f *flingSim) start(velocity, friction, maxVelocity float64) {
	speed := math.Abs(velocity)
	if speed > maxVelocity {
		speed = maxVelocity
		velocity = math.Copysign(maxVelocity, velocity)
	}

	decel := friction * flingDecelScale
	duration := speed / decel
	distance := velocity * duration / 5

	if math.Abs(distance) < 1 {
		f.cancel()
		return
	}

	f.tween = gween.New(0, float32(distance), float32(duration), ease.OutQuint)
	f.last = 0
	f.active = true
}

// step advances the simulation by dt seconds and returns the position
// delta for this step, plus whether the fling has reached rest. Integer
// truncation of the curve can yield transient zero deltas mid-flight, so
// completion is keyed on the curve finishing, not on the first zero step.
// An idle simulator returns (0, true).
func (f *flingSim) step(dt float32) (delta int, done bool) {
	if !f.active {
		return 0, true
	}

	val, finished := f.tween.Update(dt)
	pos := int(val)
	delta = pos - f.last
	f.last = pos

	if finished {
		f.cancel()
		return delta, true
	}
	return delta, false
}

// cancel stops the simulation immediately.
func (f *flingSim) cancel() {
	f.tween = nil
	f.last = 0
	f.active = false
}
