package rot3

import "fmt"

// PreconditionError is the value rot3 panics with when it's built with the rot3debug build tag and a conversion is handed input
// outside of its valid domain (a zero-length matrix row, a non-unit quaternion, or a non-finite angle). Without the build tag
// these checks are compiled out entirely, and the conversions simply produce whatever the math produces for bad input.
type PreconditionError struct {
	Op     string // The conversion that was called
	Reason string // What was wrong with the input
	Value  string // The offending input, formatted
}

func (err *PreconditionError) Error() string {
	return fmt.Sprintf("rot3: %s: %s (got %s)", err.Op, err.Reason, err.Value)
}

// unitTolerance is how far a quaternion's squared norm may be from 1 before the debug checks consider it non-unit.
const unitTolerance = 1e-3
