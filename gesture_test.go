package scrollkit

import "testing"

const frame = float32(1.0 / 60.0)

// newGestureCoordinator returns a settled coordinator with a long
// unobstructed self region, so gestures have unlimited room.
func newGestureCoordinator(t *testing.T) *Coordinator {
	t.Helper()
	co := NewCoordinator(Config{})
	if err := co.Settle(100000, 500); err != nil {
		t.Fatalf("Settle() = %v", err)
	}
	return co
}

// drag feeds a press at start followed by evenly spaced moves to end.
func drag(t *testing.T, co *Coordinator, start, end float64, steps int) {
	t.Helper()
	co.Press(start)
	for i := 1; i <= steps; i++ {
		pos := start + (end-start)*float64(i)/float64(steps)
		if err := co.Move(pos, frame); err != nil {
			t.Fatalf("Move(%.1f) = %v", pos, err)
		}
	}
}

// settle steps the coordinator until the movement state returns to idle.
func settleFling(t *testing.T, co *Coordinator) {
	t.Helper()
	for i := 0; co.State() == MovementFlinging; i++ {
		if i > 10000 {
			t.Fatal("fling never settled")
		}
		if err := co.Step(frame); err != nil {
			t.Fatalf("Step() = %v", err)
		}
	}
}

func TestGestureSlopArmsDrag(t *testing.T) {
	co := newGestureCoordinator(t)

	co.Press(300)
	if err := co.Move(298, frame); err != nil {
		t.Fatalf("Move() = %v", err)
	}
	if co.State() != MovementIdle {
		t.Errorf("state = %v after sub-slop move, want idle", co.State())
	}
	if co.Offset() != 0 {
		t.Errorf("offset = %d after sub-slop move, want 0", co.Offset())
	}

	if err := co.Move(290, frame); err != nil {
		t.Fatalf("Move() = %v", err)
	}
	if co.State() != MovementDragging {
		t.Errorf("state = %v after crossing slop, want dragging", co.State())
	}
	// The arming frame applies its full delta: -(290-298) = 8.
	if co.Offset() != 8 {
		t.Errorf("offset = %d, want 8", co.Offset())
	}
}

func TestGestureDragInvertsPointerDelta(t *testing.T) {
	co := newGestureCoordinator(t)

	// Finger moves up (negative), content scrolls down (positive). The
	// pre-slop travel is part of the arming frame, so the full 100 lands.
	drag(t, co, 400, 300, 10)
	if co.Offset() != 100 {
		t.Errorf("offset = %d, want 100", co.Offset())
	}
}

func TestGestureReleaseBelowMinVelocityIdles(t *testing.T) {
	co := NewCoordinator(Config{MinFlingVelocity: 1000})
	if err := co.Settle(100000, 500); err != nil {
		t.Fatalf("Settle() = %v", err)
	}

	// 10 units/frame at 60fps is 600 units/sec, below the 1000 minimum.
	drag(t, co, 400, 300, 10)
	co.Release()
	if co.State() != MovementIdle {
		t.Errorf("state = %v, want idle for a slow release", co.State())
	}
}

func TestGestureFlingAfterFastRelease(t *testing.T) {
	co := newGestureCoordinator(t)

	// 20 units/frame at 60fps is 1200 units/sec of pointer speed.
	drag(t, co, 600, 400, 10)
	co.Release()
	if co.State() != MovementFlinging {
		t.Fatalf("state = %v, want flinging", co.State())
	}

	dragged := co.Offset()
	settleFling(t, co)
	if co.Offset() <= dragged {
		t.Errorf("fling did not continue the scroll: offset %d, was %d at release", co.Offset(), dragged)
	}
}

func TestGesturePressCatchesFling(t *testing.T) {
	co := newGestureCoordinator(t)

	drag(t, co, 600, 400, 10)
	co.Release()
	if co.State() != MovementFlinging {
		t.Fatalf("state = %v, want flinging", co.State())
	}
	if err := co.Step(frame); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	caught := co.Offset()

	// A new press grabs the surface mid-flight: the scroll stops where it
	// is and subsequent moves drag immediately, without re-arming slop.
	co.Press(400)
	if co.State() != MovementDragging {
		t.Errorf("state = %v after press mid-fling, want dragging", co.State())
	}
	if err := co.Step(frame); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if co.Offset() != caught {
		t.Errorf("offset moved to %d after catch, want %d", co.Offset(), caught)
	}

	if err := co.Move(399, frame); err != nil {
		t.Fatalf("Move() = %v", err)
	}
	if co.Offset() != caught+1 {
		t.Errorf("offset = %d after 1-unit drag, want %d", co.Offset(), caught+1)
	}
}

func TestGestureReleaseWithoutSamples(t *testing.T) {
	co := newGestureCoordinator(t)

	// Release with no press at all.
	co.Release()
	if co.State() != MovementIdle {
		t.Errorf("state = %v, want idle", co.State())
	}

	// Press then immediate release: no move samples, no fling.
	co.Press(300)
	co.Release()
	if co.State() != MovementIdle {
		t.Errorf("state = %v after tap, want idle", co.State())
	}
	if co.Offset() != 0 {
		t.Errorf("offset = %d after tap, want 0", co.Offset())
	}
}

func TestGestureMoveWithoutPressIgnored(t *testing.T) {
	co := newGestureCoordinator(t)
	if err := co.Move(250, frame); err != nil {
		t.Fatalf("Move() = %v", err)
	}
	if co.State() != MovementIdle || co.Offset() != 0 {
		t.Errorf("state = %v, offset = %d after hover move, want idle, 0", co.State(), co.Offset())
	}
}

func TestGestureFlingVelocityUsesRecentWindow(t *testing.T) {
	co := newGestureCoordinator(t)

	// A long slow approach followed by a fast finish: only the recent
	// fast samples should decide the fling velocity.
	co.Press(600)
	pos := 600.0
	for i := 0; i < 30; i++ { // slow: 60 units/sec
		pos--
		if err := co.Move(pos, frame); err != nil {
			t.Fatalf("Move() = %v", err)
		}
	}
	for i := 0; i < 6; i++ { // fast: 1800 units/sec
		pos -= 30
		if err := co.Move(pos, frame); err != nil {
			t.Fatalf("Move() = %v", err)
		}
	}
	co.Release()
	if co.State() != MovementFlinging {
		t.Fatalf("state = %v, want flinging after fast finish", co.State())
	}

	dragged := co.Offset()
	settleFling(t, co)
	// 1800 units/sec of scroll velocity decays over ~260 units; the slow
	// phase alone (60 units/sec) would not even reach the fling minimum.
	if flung := co.Offset() - dragged; flung < 150 {
		t.Errorf("fling traveled %d, want the fast window's reach (>=150)", flung)
	}
}

func TestGestureDragAgainstBoundaryClamps(t *testing.T) {
	co := NewCoordinator(Config{})
	if err := co.Settle(800, 500); err != nil {
		t.Fatalf("Settle() = %v", err)
	}

	// Drag far past the content end: offset pins at contentEnd-viewportEnd.
	drag(t, co, 900, 100, 20)
	if co.Offset() != 300 {
		t.Errorf("offset = %d, want 300 (clamped)", co.Offset())
	}

	// And far past the start going the other way.
	co.Release()
	drag(t, co, 100, 900, 20)
	settleFling(t, co)
	if co.Offset() != 0 {
		t.Errorf("offset = %d, want 0 (clamped at start)", co.Offset())
	}
}
