package rot3

import (
	"github.com/solarlune/rot3/realmath"
)

// Quaternion represents a rotation as w + xi + yj + zk. A Quaternion representing a rotation should be of unit length.
// A Quaternion and its negation represent the exact same rotation; rot3 doesn't pick one of the two over the other,
// so use SameRotation() rather than Equals() to check if two Quaternions rotate the same way.
type Quaternion[T Real] struct {
	W, X, Y, Z T
}

// NewQuaternion creates a new Quaternion out of the given components; note that the scalar (W) component comes first.
func NewQuaternion[T Real](w, x, y, z T) Quaternion[T] {
	return Quaternion[T]{W: w, X: x, Y: y, Z: z}
}

// NewQuaternionIdentity returns a Quaternion that represents no rotation.
func NewQuaternionIdentity[T Real]() Quaternion[T] {
	return Quaternion[T]{W: 1}
}

// Matrix3 returns the rotation Matrix3 that the Quaternion represents.
// The Quaternion is assumed to be of unit length, and isn't normalized beforehand; a non-unit Quaternion produces a
// Matrix3 that scales or skews as well as rotates.
func (quat Quaternion[T]) Matrix3() Matrix3[T] {

	checkUnitQuaternion("Quaternion.Matrix3", quat)

	// Pre-scaling by sqrt(2) means each product below is already doubled.
	q0 := realmath.Sqrt2 * quat.W
	q1 := realmath.Sqrt2 * quat.X
	q2 := realmath.Sqrt2 * quat.Y
	q3 := realmath.Sqrt2 * quat.Z

	qda := q0 * q1
	qdb := q0 * q2
	qdc := q0 * q3
	qaa := q1 * q1
	qab := q1 * q2
	qac := q1 * q3
	qbb := q2 * q2
	qbc := q2 * q3
	qcc := q3 * q3

	return Matrix3[T]{
		{1 - qbb - qcc, qdc + qab, -qdb + qac},
		{-qdc + qab, 1 - qaa - qcc, qda + qbc},
		{qdb + qac, -qda + qbc, 1 - qaa - qbb},
	}

}

// Euler returns the Euler angles represented by the Quaternion. This is the same as quat.Matrix3().Euler(), and so returns
// the same one of the two possible Euler triples that Matrix3.Euler() does.
func (quat Quaternion[T]) Euler() Euler[T] {
	return quat.Matrix3().Euler()
}

// Dot returns the dot product of the Quaternion and the other Quaternion provided.
func (quat Quaternion[T]) Dot(other Quaternion[T]) T {
	return quat.W*other.W + quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z
}

// Magnitude returns the length of the Quaternion.
func (quat Quaternion[T]) Magnitude() T {
	return realmath.Sqrt(quat.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of the Quaternion.
func (quat Quaternion[T]) MagnitudeSquared() T {
	return quat.Dot(quat)
}

// Negated returns a copy of the Quaternion with all four components negated. It represents the same rotation.
func (quat Quaternion[T]) Negated() Quaternion[T] {
	return Quaternion[T]{W: -quat.W, X: -quat.X, Y: -quat.Y, Z: -quat.Z}
}

// Equals returns true if each component of the Quaternion is close to the other Quaternion's.
func (quat Quaternion[T]) Equals(other Quaternion[T]) bool {

	eps := T(1e-4)

	return realmath.Abs(quat.W-other.W) <= eps &&
		realmath.Abs(quat.X-other.X) <= eps &&
		realmath.Abs(quat.Y-other.Y) <= eps &&
		realmath.Abs(quat.Z-other.Z) <= eps

}

// SameRotation returns true if the Quaternion and the other Quaternion represent the same rotation; that is to say, if they're
// equal, or if one is equal to the negation of the other.
func (quat Quaternion[T]) SameRotation(other Quaternion[T]) bool {
	return quat.Equals(other) || quat.Equals(other.Negated())
}

// IsFinite returns true if none of the Quaternion's components are NaN or infinite.
func (quat Quaternion[T]) IsFinite() bool {
	return realmath.IsFinite(quat.W) && realmath.IsFinite(quat.X) && realmath.IsFinite(quat.Y) && realmath.IsFinite(quat.Z)
}

// Floats returns the Quaternion's components, in W, X, Y, Z order.
func (quat Quaternion[T]) Floats() [4]T {
	return [4]T{quat.W, quat.X, quat.Y, quat.Z}
}

func (quat Quaternion[T]) String() string {
	return "{" + formatReal(quat.W) + ", " + formatReal(quat.X) + ", " + formatReal(quat.Y) + ", " + formatReal(quat.Z) + "}"
}
