// Package rot3 converts between the three rotation representations used for 3D spatial computation: 3x3 rotation matrices,
// unit quaternions, and Euler angles.
//
// All of the types are small value types that are generic over the precision they are computed in (float32 or float64), and
// all of the conversions are pure functions - nothing here allocates, keeps state, or needs synchronization, so they can be
// freely called from a rendering or physics loop on as many goroutines as you like.
//
// The conventions are fixed (see Convention): Matrix3s are row-major with each row being a rotated basis axis, Euler angles
// are applied intrinsically in X (roll), then Y (pitch), then Z (yaw) order, and Quaternions are written W, X, Y, Z.
package rot3

import "github.com/solarlune/rot3/realmath"

// Real is the floating-point type a rotation is stored and computed in; either float32 or float64.
type Real = realmath.Real

// ConventionInfo describes the fixed conventions rot3 uses.
type ConventionInfo struct {
	EulerOrder      string // Order that the Euler angles are applied in (intrinsically).
	QuaternionOrder string // Order of the Quaternion components (scalar first).
	MatrixLayout    string // How a Matrix3 is laid out in memory.
}

// Convention is the single convention used across all of rot3's conversions. It is not configurable.
var Convention = ConventionInfo{
	EulerOrder:      "XYZ",
	QuaternionOrder: "WXYZ",
	MatrixLayout:    "row-major",
}

// gimbalLockThreshold returns the value below which the XY-plane projection of a matrix's first row is considered to have
// vanished (and so the matrix is considered to be in gimbal lock).
func gimbalLockThreshold[T Real]() T {
	return 16 * realmath.Epsilon[T]()
}

// Aliases for the float32 and float64 instantiations.
type (
	Vector3f    = Vector3[float32]
	Matrix3f    = Matrix3[float32]
	Quaternionf = Quaternion[float32]
	Eulerf      = Euler[float32]

	Vector3d    = Vector3[float64]
	Matrix3d    = Matrix3[float64]
	Quaterniond = Quaternion[float64]
	Eulerd      = Euler[float64]
)

// NormalizeMatrix3 returns a copy of the given matrix with each row rescaled to be of unit length. See Matrix3.Normalized().
func NormalizeMatrix3[T Real](m Matrix3[T]) Matrix3[T] {
	return m.Normalized()
}

// Matrix3ToEuler returns the Euler angles represented by the given rotation matrix. See Matrix3.Euler().
func Matrix3ToEuler[T Real](m Matrix3[T]) Euler[T] {
	return m.Euler()
}

// QuaternionToMatrix3 returns the rotation matrix represented by the given unit quaternion. See Quaternion.Matrix3().
func QuaternionToMatrix3[T Real](q Quaternion[T]) Matrix3[T] {
	return q.Matrix3()
}

// EulerToQuaternion returns the unit quaternion represented by the given Euler angles. See Euler.Quaternion().
func EulerToQuaternion[T Real](e Euler[T]) Quaternion[T] {
	return e.Quaternion()
}
