//go:build rot3debug

package rot3

import "github.com/solarlune/rot3/realmath"

// DebugChecks is true if rot3 was built with the rot3debug build tag, enabling precondition checks on conversion inputs.
const DebugChecks = true

func checkMatrixRows[T Real](op string, m Matrix3[T]) {
	for i := 0; i < 3; i++ {
		row := m.Row(i)
		if !row.IsFinite() {
			panic(&PreconditionError{Op: op, Reason: "matrix row is not finite", Value: row.String()})
		}
		if row.IsZero() {
			panic(&PreconditionError{Op: op, Reason: "matrix row has zero length", Value: row.String()})
		}
	}
}

func checkUnitQuaternion[T Real](op string, q Quaternion[T]) {
	if !q.IsFinite() {
		panic(&PreconditionError{Op: op, Reason: "quaternion is not finite", Value: q.String()})
	}
	if realmath.Abs(float64(q.MagnitudeSquared())-1) > unitTolerance {
		panic(&PreconditionError{Op: op, Reason: "quaternion is not of unit length", Value: q.String()})
	}
}

func checkFiniteEuler[T Real](op string, e Euler[T]) {
	if !e.IsFinite() {
		panic(&PreconditionError{Op: op, Reason: "euler angles are not finite", Value: e.String()})
	}
}
