package scrollkit

// clampDelta limits delta so that a moving position does not cross a
// boundary. position is where the moving edge currently sits, boundary is
// the coordinate it must not pass, and disallowNegative picks which side of
// the boundary is forbidden: true means the position may not land on the
// negative side of the boundary, false means it may not land on the
// positive side.
//
// Returns delta reduced by exactly the overshoot, so the position lands on
// the boundary; delta is returned unchanged when the destination stays on
// the allowed side. Exact integer arithmetic throughout.
func clampDelta(boundary, position, delta int, disallowNegative bool) int {
	destination := position + delta
	overshoot := destination - boundary
	if (disallowNegative && overshoot < 0) || (!disallowNegative && overshoot > 0) {
		return delta - overshoot
	}
	return delta
}
