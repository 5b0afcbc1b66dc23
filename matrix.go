package rot3

import (
	"github.com/solarlune/rot3/realmath"
)

// Matrix3 represents a 3x3 rotation matrix. A Matrix3 in rot3 is row-major, and each row is one of the rotated basis axes
// (i.e. the X axis is matrix[0], the Y axis is matrix[1], and the Z axis is matrix[2]).
// A Matrix3 can be indexed directly (matrix[row][col]), or by row through Row() and SetRow().
// A Matrix3 representing a rotation should be orthonormal with a determinant of +1, but this isn't enforced on creation.
type Matrix3[T Real] [3][3]T

// NewMatrix3 returns a new identity Matrix3.
func NewMatrix3[T Real]() Matrix3[T] {

	mat := Matrix3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	return mat

}

// NewMatrix3FromRows returns a new Matrix3 made up of the three row Vectors given.
func NewMatrix3FromRows[T Real](x, y, z Vector3[T]) Matrix3[T] {
	mat := Matrix3[T]{}
	mat.SetRow(0, x)
	mat.SetRow(1, y)
	mat.SetRow(2, z)
	return mat
}

// Row returns the indiced row from the Matrix3 as a Vector3.
func (matrix Matrix3[T]) Row(rowIndex int) Vector3[T] {
	return Vector3[T]{
		X: matrix[rowIndex][0],
		Y: matrix[rowIndex][1],
		Z: matrix[rowIndex][2],
	}
}

// Column returns the indiced column from the Matrix3 as a Vector3.
func (matrix Matrix3[T]) Column(columnIndex int) Vector3[T] {
	return Vector3[T]{
		X: matrix[0][columnIndex],
		Y: matrix[1][columnIndex],
		Z: matrix[2][columnIndex],
	}
}

// SetRow sets the Matrix3 with the row in rowIndex set to the 3D vector passed.
func (matrix *Matrix3[T]) SetRow(rowIndex int, vec Vector3[T]) {
	matrix[rowIndex][0] = vec.X
	matrix[rowIndex][1] = vec.Y
	matrix[rowIndex][2] = vec.Z
}

// SetColumn sets the Matrix3 with the column in columnIndex set to the 3D vector passed.
func (matrix *Matrix3[T]) SetColumn(columnIndex int, vec Vector3[T]) {
	matrix[0][columnIndex] = vec.X
	matrix[1][columnIndex] = vec.Y
	matrix[2][columnIndex] = vec.Z
}

// Right returns the right-facing rotational component of the Matrix3. For an identity matrix, this would be [1, 0, 0], or +X.
func (matrix Matrix3[T]) Right() Vector3[T] {
	return matrix.Row(0)
}

// Up returns the upward rotational component of the Matrix3. For an identity matrix, this would be [0, 1, 0], or +Y.
func (matrix Matrix3[T]) Up() Vector3[T] {
	return matrix.Row(1)
}

// Forward returns the forward rotational component of the Matrix3. For an identity matrix, this would be [0, 0, 1], or +Z.
func (matrix Matrix3[T]) Forward() Vector3[T] {
	return matrix.Row(2)
}

// Normalize rescales each row of the Matrix3 in place so that it's of unit length. This is meant to clean up drift that accumulates
// from composing rotations over and over; note that it only fixes the length of each row independently, and doesn't
// re-orthogonalize the rows against each other.
// A zero-length row can't be rescaled, and so is left as-is.
func (matrix *Matrix3[T]) Normalize() {
	for i := 0; i < 3; i++ {
		matrix.SetRow(i, matrix.Row(i).Unit())
	}
}

// Normalized returns a copy of the Matrix3 with each row rescaled to be of unit length. See Normalize().
func (matrix Matrix3[T]) Normalized() Matrix3[T] {
	checkMatrixRows("Matrix3.Normalized", matrix)
	matrix.Normalize()
	return matrix
}

// Euler returns the Euler angles (intrinsic XYZ, in radians) represented by the rotation Matrix3.
// The Matrix3 is normalized (see Normalized()) before the angles are extracted; the calling Matrix3 isn't altered.
//
// Every rotation outside of gimbal lock can be represented by two different Euler triples (see EulerCandidates()).
// Which one gets returned is deterministic: the first candidate is returned if |x| + |y| + |y| of the first candidate is
// greater than |x| + |y| + |z| of the second, and the second is returned otherwise. Note that the first sum counts the
// pitch twice and ignores the yaw. For most small rotations this means the flipped candidate is the one returned;
// the identity matrix, for example, gives (-Pi, -Pi, -Pi).
func (matrix Matrix3[T]) Euler() Euler[T] {

	a, b := matrix.EulerCandidates()

	sumA := realmath.Abs(a.X) + realmath.Abs(a.Y) + realmath.Abs(a.Y)
	sumB := realmath.Abs(b.X) + realmath.Abs(b.Y) + realmath.Abs(b.Z)

	if sumA > sumB {
		return a
	}

	return b

}

// EulerCandidates returns both of the Euler triples (intrinsic XYZ, in radians) that represent the rotation Matrix3, after
// normalizing a copy of it. The second candidate is the first "flipped" one: the roll and yaw are turned by half a
// revolution, and the pitch is mirrored about +/- 90 degrees.
//
// If the Matrix3 is in gimbal lock (its first row has no meaningful projection onto the XY plane), roll and yaw describe the
// same axis and can't be told apart. In that case all of the rotation is put into the roll, the yaw is 0, and both candidates
// are the same.
func (matrix Matrix3[T]) EulerCandidates() (Euler[T], Euler[T]) {

	m := matrix.Normalized()

	cy := realmath.Hypot(m[0][0], m[0][1])

	if cy > gimbalLockThreshold[T]() {

		a := Euler[T]{
			X: realmath.Atan2(m[1][2], m[2][2]),
			Y: realmath.Atan2(-m[0][2], cy),
			Z: realmath.Atan2(m[0][1], m[0][0]),
		}

		b := Euler[T]{
			X: realmath.Atan2(-m[1][2], -m[2][2]),
			Y: realmath.Atan2(-m[0][2], -cy),
			Z: realmath.Atan2(-m[0][1], -m[0][0]),
		}

		return a, b

	}

	a := Euler[T]{
		X: realmath.Atan2(-m[2][1], m[1][1]),
		Y: realmath.Atan2(-m[0][2], cy),
		Z: 0,
	}

	return a, a

}

// InGimbalLock returns true if extracting Euler angles from the Matrix3 would hit the gimbal lock singularity.
func (matrix Matrix3[T]) InGimbalLock() bool {
	m := matrix.Normalized()
	return realmath.Hypot(m[0][0], m[0][1]) <= gimbalLockThreshold[T]()
}

// Transposed transposes a Matrix3, switching the Matrix from being Row Major to being Column Major. For orthonormalized Matrices
// (like rotation matrices), this is equivalent to inverting it.
func (matrix Matrix3[T]) Transposed() Matrix3[T] {
	newMat := Matrix3[T]{}
	for i := 0; i < 3; i++ {
		newMat.SetColumn(i, matrix.Row(i))
	}
	return newMat
}

// Mult multiplies a Matrix3 by another provided Matrix3 - this effectively combines them.
func (matrix Matrix3[T]) Mult(other Matrix3[T]) Matrix3[T] {

	newMat := Matrix3[T]{}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			newMat[i][j] = matrix[i][0]*other[0][j] + matrix[i][1]*other[1][j] + matrix[i][2]*other[2][j]
		}
	}

	return newMat

}

// MultVec multiplies the row vector given by the Matrix3, returning the transformed vector.
func (matrix Matrix3[T]) MultVec(vect Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z,
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z,
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z,
	}
}

// Determinant returns the determinant of the Matrix3. For a proper rotation this is 1.
func (matrix Matrix3[T]) Determinant() T {
	return matrix.Row(0).Dot(matrix.Row(1).Cross(matrix.Row(2)))
}

// IsOrthonormal returns true if the Matrix3's rows are each of unit length and mutually perpendicular, within the tolerance given.
func (matrix Matrix3[T]) IsOrthonormal(tolerance T) bool {

	for i := 0; i < 3; i++ {
		if realmath.Abs(matrix.Row(i).Magnitude()-1) > tolerance {
			return false
		}
		for j := i + 1; j < 3; j++ {
			if realmath.Abs(matrix.Row(i).Dot(matrix.Row(j))) > tolerance {
				return false
			}
		}
	}

	return true

}

// Equals returns true if the matrix equals the same values in the provided Other Matrix3.
func (matrix Matrix3[T]) Equals(other Matrix3[T]) bool {

	eps := T(0.0001) // epsilon floating point error value
	for i := 0; i < len(matrix); i++ {
		for j := 0; j < len(matrix[i]); j++ {
			if realmath.Abs(matrix[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix3[T]) IsIdentity() bool {
	return matrix.Equals(NewMatrix3[T]())
}

// Floats returns the Matrix3's values in row-major order.
func (matrix Matrix3[T]) Floats() [9]T {
	return [9]T{
		matrix[0][0], matrix[0][1], matrix[0][2],
		matrix[1][0], matrix[1][1], matrix[1][2],
		matrix[2][0], matrix[2][1], matrix[2][2],
	}
}

func (matrix Matrix3[T]) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += formatReal(x) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
