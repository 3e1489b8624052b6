package scrollkit

import "fmt"

// UnsettledSequenceError reports that the region sequence was used before
// every declared region had been paired with a Delegate and committed by
// Settle. It is a wiring error in the host: declare delegates with
// SetDelegate, then call Settle before distributing any scroll.
type UnsettledSequenceError struct {
	// Start is the start boundary of the first declared region that has no
	// delegate, or -1 when distribution was attempted before Settle.
	Start int
}

func (e *UnsettledSequenceError) Error() string {
	if e.Start < 0 {
		return "scrollkit: scroll before Settle: region sequence is unsettled"
	}
	return fmt.Sprintf("scrollkit: region at %d declared without a delegate; pair it with SetDelegate before Settle", e.Start)
}

// ContractViolationError reports that a Delegate broke the Consume
// contract, or that a distribution was issued while another was still in
// progress. Either corrupts the cumulative-offset invariant, so it is
// surfaced immediately instead of being clamped away.
type ContractViolationError struct {
	Reason string
}

func (e *ContractViolationError) Error() string {
	return "scrollkit: contract violation: " + e.Reason
}

// NoActiveRegionError reports that the distribution loop landed on a
// delegate slot with no region behind it. This only happens when the host
// built the sequence incorrectly.
type NoActiveRegionError struct {
	Token int
}

func (e *NoActiveRegionError) Error() string {
	return fmt.Sprintf("scrollkit: no region holds the scroll token (token=%d)", e.Token)
}
