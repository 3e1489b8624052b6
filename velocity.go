package scrollkit

// velocityWindow is how far back, in seconds, release velocity looks.
// Samples older than this reflect an earlier phase of the gesture and
// would drag the estimate toward stale motion.
const velocityWindow = 0.1

// maxVelocitySamples bounds the ring; at 60 samples/sec a 100 ms window
// never needs more than 8 entries.
const maxVelocitySamples = 16

type velocitySample struct {
	pos     float64
	elapsed float64 // accumulated gesture time at this sample
}

// velocityTracker estimates pointer velocity along one axis from the most
// recent samples inside a fixed time window. A fixed ring keeps it
// allocation-free across gestures.
type velocityTracker struct {
	ring    [maxVelocitySamples]velocitySample
	head    int // next write slot
	count   int
	elapsed float64
}

// reset clears all samples for a new gesture.
func (v *velocityTracker) reset() {
	v.head = 0
	v.count = 0
	v.elapsed = 0
}

// add records a pointer position observed dt seconds after the previous
// sample.
func (v *velocityTracker) add(pos float64, dt float64) {
	v.elapsed += dt
	v.ring[v.head] = velocitySample{pos: pos, elapsed: v.elapsed}
	v.head = (v.head + 1) % maxVelocitySamples
	if v.count < maxVelocitySamples {
		v.count++
	}
}

// velocity returns the pointer velocity in units/sec over the sample
// window, or 0 when fewer than two usable samples exist.
func (v *velocityTracker) velocity() float64 {
	if v.count < 2 {
		return 0
	}

	newest := v.ring[(v.head-1+maxVelocitySamples)%maxVelocitySamples]

	// Walk backward to the oldest sample still inside the window.
	oldest := newest
	for i := 2; i <= v.count; i++ {
		s := v.ring[(v.head-i+maxVelocitySamples)%maxVelocitySamples]
		if newest.elapsed-s.elapsed > velocityWindow {
			break
		}
		oldest = s
	}

	span := newest.elapsed - oldest.elapsed
	if span <= 0 {
		return 0
	}
	return (newest.pos - oldest.pos) / span
}
