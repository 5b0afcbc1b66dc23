//go:build !rot3debug

package rot3

// DebugChecks is true if rot3 was built with the rot3debug build tag, enabling precondition checks on conversion inputs.
const DebugChecks = false

func checkMatrixRows[T Real](op string, m Matrix3[T]) {}

func checkUnitQuaternion[T Real](op string, q Quaternion[T]) {}

func checkFiniteEuler[T Real](op string, e Euler[T]) {}
