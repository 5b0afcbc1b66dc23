package rot3

import (
	"github.com/solarlune/rot3/realmath"
)

// Euler represents a rotation as three angles in radians, applied intrinsically (around the object's own, already-rotated
// axes) in X, then Y, then Z order.
type Euler[T Real] struct {
	X T // Roll, the rotation around the X axis
	Y T // Pitch, the rotation around the Y axis
	Z T // Yaw, the rotation around the Z axis
}

// NewEuler creates a new Euler out of the given roll, pitch, and yaw, in radians.
func NewEuler[T Real](x, y, z T) Euler[T] {
	return Euler[T]{X: x, Y: y, Z: z}
}

// NewEulerDegrees creates a new Euler out of the given roll, pitch, and yaw, in degrees.
func NewEulerDegrees[T Real](x, y, z T) Euler[T] {
	return Euler[T]{
		X: realmath.ToRadians(x),
		Y: realmath.ToRadians(y),
		Z: realmath.ToRadians(z),
	}
}

// Quaternion returns the unit Quaternion that the Euler angles represent.
func (euler Euler[T]) Quaternion() Quaternion[T] {

	checkFiniteEuler("Euler.Quaternion", euler)

	ti := euler.X * 0.5
	tj := euler.Y * 0.5
	th := euler.Z * 0.5

	ci := realmath.Cos(ti)
	cj := realmath.Cos(tj)
	ch := realmath.Cos(th)
	si := realmath.Sin(ti)
	sj := realmath.Sin(tj)
	sh := realmath.Sin(th)

	cc := ci * ch
	cs := ci * sh
	sc := si * ch
	ss := si * sh

	return Quaternion[T]{
		W: cj*cc + sj*ss,
		X: cj*sc - sj*cs,
		Y: cj*ss + sj*cc,
		Z: cj*cs - sj*sc,
	}

}

// Matrix3 returns the rotation Matrix3 that the Euler angles represent.
func (euler Euler[T]) Matrix3() Matrix3[T] {
	return euler.Quaternion().Matrix3()
}

// Degrees returns a copy of the Euler with each angle converted from radians to degrees.
func (euler Euler[T]) Degrees() Euler[T] {
	return Euler[T]{
		X: realmath.ToDegrees(euler.X),
		Y: realmath.ToDegrees(euler.Y),
		Z: realmath.ToDegrees(euler.Z),
	}
}

// Radians returns a copy of the Euler with each angle converted from degrees to radians. It's the inverse of Degrees().
func (euler Euler[T]) Radians() Euler[T] {
	return NewEulerDegrees(euler.X, euler.Y, euler.Z)
}

// Equals returns true if each angle of the Euler is close to the other Euler's. Note that two Eulers that aren't equal can still
// represent the same rotation; compare their Quaternions with Quaternion.SameRotation() to check for that.
func (euler Euler[T]) Equals(other Euler[T]) bool {
	return Vector3[T](euler).Equals(Vector3[T](other))
}

// IsFinite returns true if none of the angles are NaN or infinite.
func (euler Euler[T]) IsFinite() bool {
	return Vector3[T](euler).IsFinite()
}

// Floats returns the angles as a [3]T array, in X, Y, Z order.
func (euler Euler[T]) Floats() [3]T {
	return [3]T{euler.X, euler.Y, euler.Z}
}

func (euler Euler[T]) String() string {
	return Vector3[T](euler).String()
}
