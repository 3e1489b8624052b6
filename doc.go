// Package scrollkit coordinates scrolling across a stack of nested
// scrollable regions so that they behave like one continuous surface.
//
// A [Coordinator] owns a single scroll axis. Its content is a sequence of
// regions: the coordinator's own directly-scrolled area (the self region)
// interleaved with zero or more delegate regions, each backed by an
// externally owned [Delegate]. When scroll delta arrives, whether from a
// drag, a fling, or a programmatic call, the coordinator hands it to whichever
// region currently holds the scroll token, clamps it against that region's
// boundary, and passes the token on until the delta is fully consumed. No
// delta is ever created or lost at a region boundary, so a single gesture
// can travel smoothly across a header, through a long list, and on to a
// footer.
//
// # Quick start
//
//	co := scrollkit.NewCoordinator(scrollkit.Config{Axis: scrollkit.Vertical})
//	co.SetDelegate(scrollkit.DelegateBounds{Start: 200, End: 680}, list)
//	if err := co.Settle(1200, 680); err != nil {
//		// a declared region has no delegate yet
//	}
//
//	// Feed pointer samples as they arrive:
//	co.Press(y)
//	co.Move(y, dt)
//	co.Release()
//
//	// And step once per frame to drive fling decay:
//	co.Step(dt)
//
//	offset := co.Offset() // combined scroll position across all regions
//
// A [Delegate] is the only integration point an embedded scrollable needs:
// report its own offset and consume as much of a delta as its content
// allows, returning the remainder. The coordinator never touches layout or
// rendering; hosts supply region boundaries via [Coordinator.SetDelegate]
// and [Coordinator.Settle] on each layout pass.
//
// Flings decay along a quintic ease-out curve driven by [gween], the same
// feel as a platform scroller. For Ebitengine hosts the ebitenscroll
// subpackage polls mouse and touch state into the coordinator.
//
// Each Coordinator manages exactly one axis. For a surface that scrolls
// both ways, create two independent coordinators; they share no state.
//
// [gween]: https://github.com/tanema/gween
package scrollkit
