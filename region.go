package scrollkit

import "sort"

// Delegate is the capability a nested scrollable exposes so the coordinator
// can forward scroll into it. Implementations are external; the coordinator
// never inspects their content.
type Delegate interface {
	// ScrollOffset returns how far the delegate's own content is scrolled
	// along the coordinator's axis.
	ScrollOffset() int

	// Consume applies as much of delta as the delegate's content allows,
	// updating its internal offset, and returns the unconsumed remainder.
	//
	// The remainder must have the same sign as delta, a magnitude no
	// greater than |delta|, and must be exactly 0 unless the delegate is at
	// a boundary of its own content. Consume must not call back into the
	// coordinator.
	Consume(delta int) int
}

// DelegateBounds places a delegate region in the self region's coordinate
// space along the scroll axis.
type DelegateBounds struct {
	Start int // leading edge
	End   int // trailing edge
}

type sequencePhase uint8

const (
	phaseUnsettled sequencePhase = iota
	phaseSettled
)

// delegateRegion pairs a region's bounds with its backing delegate.
type delegateRegion struct {
	bounds   DelegateBounds
	delegate Delegate
}

// regionSequence holds the ordered delegate regions plus the self region's
// boundaries. Declarations accumulate in a staging map keyed by start
// boundary, so hosts may register delegates in any order; settle commits
// them into the sorted settled slice in one step. Typed phase access
// replaces scattered "is sorted" flag checks: mutation is only legal
// through the methods here, and distribution refuses an unsettled
// sequence.
type regionSequence struct {
	staging map[int]*delegateRegion
	regions []*delegateRegion

	contentEnd  int // trailing edge of all content, self coordinates
	viewportEnd int // trailing edge of the visible window, offset-relative

	phase sequencePhase
}

func newRegionSequence() *regionSequence {
	return &regionSequence{staging: make(map[int]*delegateRegion)}
}

func (s *regionSequence) settled() bool { return s.phase == phaseSettled }

// set declares or replaces the delegate region starting at bounds.Start.
// A nil delegate declares the region without pairing it; settle will then
// fail until a delegate arrives.
//
// Replacing the delegate of an already-settled region at the same start
// swaps it in place without unsettling the sequence; the returned flag
// tells the caller the swap happened so it can recompute the cumulative
// offset (the new delegate may report a different internal offset).
func (s *regionSequence) set(bounds DelegateBounds, d Delegate) (replacedSettled bool) {
	if s.phase == phaseSettled && d != nil {
		for _, r := range s.regions {
			if r.bounds.Start == bounds.Start {
				r.bounds = bounds
				r.delegate = d
				return true
			}
		}
	}

	s.staging[bounds.Start] = &delegateRegion{bounds: bounds, delegate: d}
	s.phase = phaseUnsettled
	return false
}

// settle commits staged declarations and records the self region's
// boundaries. A non-empty staging is the complete declaration for the new
// layout and replaces the settled list wholesale; regions absent from it
// are dropped, since a layout pass re-declares every region it still has.
// Empty staging keeps the current regions and only refreshes boundaries.
//
// Every staged region must have a delegate; otherwise the sequence stays
// unsettled and an *UnsettledSequenceError identifies the first unpaired
// region. Settling with unchanged declarations and boundaries is
// idempotent.
func (s *regionSequence) settle(contentEnd, viewportEnd int) error {
	if len(s.staging) > 0 {
		starts := make([]int, 0, len(s.staging))
		for start := range s.staging {
			starts = append(starts, start)
		}
		sort.Ints(starts)
		for _, start := range starts {
			if s.staging[start].delegate == nil {
				return &UnsettledSequenceError{Start: start}
			}
		}

		s.regions = s.regions[:0]
		for _, start := range starts {
			s.regions = append(s.regions, s.staging[start])
			delete(s.staging, start)
		}
	}

	s.contentEnd = contentEnd
	s.viewportEnd = viewportEnd
	s.phase = phaseSettled
	return nil
}

// delegateCount returns the number of settled delegate regions.
func (s *regionSequence) delegateCount() int { return len(s.regions) }

// regionAt returns the settled region at index i, or nil when out of range.
func (s *regionSequence) regionAt(i int) *delegateRegion {
	if i < 0 || i >= len(s.regions) {
		return nil
	}
	return s.regions[i]
}
