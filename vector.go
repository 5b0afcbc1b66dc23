package rot3

import (
	"strconv"

	"github.com/solarlune/rot3/realmath"
)

// Vector3 represents a 3D Vector. In rot3 it's mainly used as a row of a Matrix3.
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you can do method-chaining easily.
type Vector3[T Real] struct {
	X T // The X (1st) component of the Vector3
	Y T // The Y (2nd) component of the Vector3
	Z T // The Z (3rd) component of the Vector3
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3[T Real](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling vector, added together with the other Vector3 provided.
func (vec Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale returns a copy of the Vector3 with each component multiplied by the scalar given.
func (vec Vector3[T]) Scale(scalar T) Vector3[T] {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided Other Vector3.
func (vec Vector3[T]) Cross(other Vector3[T]) Vector3[T] {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Dot returns the dot product of a Vector3 and another Vector3.
func (vec Vector3[T]) Dot(other Vector3[T]) T {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Magnitude returns the length of the Vector3.
func (vec Vector3[T]) Magnitude() T {
	return realmath.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector3; this is faster than Magnitude() as it avoids the square root.
func (vec Vector3[T]) MagnitudeSquared() T {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Unit returns a copy of the Vector3, normalized (divided by its magnitude so it's of unit length).
// A zero-length Vector3 can't be normalized; in that case the Vector3 is returned unaltered.
func (vec Vector3[T]) Unit() Vector3[T] {
	l := vec.Magnitude()
	if l == 0 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Equals returns true if the two Vector3s are close enough in all values.
func (vec Vector3[T]) Equals(other Vector3[T]) bool {

	eps := T(1e-4)

	if realmath.Abs(vec.X-other.X) > eps || realmath.Abs(vec.Y-other.Y) > eps || realmath.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// IsZero returns true if all of the components of the Vector3 are exactly 0.
func (vec Vector3[T]) IsZero() bool {
	return vec.X == 0 && vec.Y == 0 && vec.Z == 0
}

// IsFinite returns true if none of the Vector3's components are NaN or infinite.
func (vec Vector3[T]) IsFinite() bool {
	return realmath.IsFinite(vec.X) && realmath.IsFinite(vec.Y) && realmath.IsFinite(vec.Z)
}

// Floats returns a [3]T array consisting of the Vector3's contents.
func (vec Vector3[T]) Floats() [3]T {
	return [3]T{vec.X, vec.Y, vec.Z}
}

// String returns a string representation of the Vector3, excellent for debugging purposes.
func (vec Vector3[T]) String() string {
	return "{" + formatReal(vec.X) + ", " + formatReal(vec.Y) + ", " + formatReal(vec.Z) + "}"
}

func formatReal[T Real](value T) string {
	bitSize := 64
	if realmath.Is32[T]() {
		bitSize = 32
	}
	return strconv.FormatFloat(float64(value), 'f', -1, bitSize)
}
