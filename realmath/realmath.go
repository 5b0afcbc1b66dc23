// realmath is a stand-in for the built-in math package for the functions rot3 needs, but the functions are generic over
// either float32 or float64 instead of only taking float64s. This is so the rotation types can be instantiated at whichever
// precision the caller works in while all of the conversions still use the same trigonometric primitives.
package realmath

import "math"

// Real is the set of floating-point types the rotation types can be instantiated with.
type Real interface {
	float32 | float64
}

// Epsilon32 is the machine epsilon of float32 (the difference between 1 and the next representable float32); the same as C's FLT_EPSILON.
const Epsilon32 = 0x1p-23

// Epsilon64 is the machine epsilon of float64; the same as C's DBL_EPSILON.
const Epsilon64 = 0x1p-52

// Sqrt2 is the square root of 2.
const Sqrt2 = math.Sqrt2

// Pi is, well, Pi.
const Pi = math.Pi

// Epsilon returns the machine epsilon for the floating-point type T.
func Epsilon[T Real]() T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return Epsilon32
	}
	return Epsilon64
}

// Is32 returns true if T is float32.
func Is32[T Real]() bool {
	var zero T
	_, ok := any(zero).(float32)
	return ok
}

// ToRadians is a helper function to easily convert degrees to radians.
func ToRadians[T Real](degrees T) T {
	return T(math.Pi * float64(degrees) / 180)
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees[T Real](radians T) T {
	return T(float64(radians) / math.Pi * 180)
}

// Abs returns the absolute value of x.
//
// Special cases are:
//
//	Abs(±Inf) = +Inf
//	Abs(NaN) = NaN
func Abs[T Real](x T) T {
	return T(math.Abs(float64(x)))
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt[T Real](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
//
// Special cases are:
//
//	Sin(±0) = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin[T Real](x T) T {
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
//
// Special cases are:
//
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos[T Real](x T) T {
	return T(math.Cos(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to determine the quadrant of the return value.
// The sign of a zero argument matters: Atan2(-0, x<0) = -Pi while Atan2(+0, x<0) = +Pi.
//
// Special cases are (in order):
//
//	Atan2(y, NaN) = NaN
//	Atan2(NaN, x) = NaN
//	Atan2(+0, x>=0) = +0
//	Atan2(-0, x>=0) = -0
//	Atan2(+0, x<=-0) = +Pi
//	Atan2(-0, x<=-0) = -Pi
//	Atan2(y>0, 0) = +Pi/2
//	Atan2(y<0, 0) = -Pi/2
func Atan2[T Real](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// Hypot returns Sqrt(p*p + q*q), taking care to avoid unnecessary overflow and underflow.
//
// Special cases are:
//
//	Hypot(±Inf, q) = +Inf
//	Hypot(p, ±Inf) = +Inf
//	Hypot(NaN, q) = NaN
//	Hypot(p, NaN) = NaN
func Hypot[T Real](p, q T) T {
	return T(math.Hypot(float64(p), float64(q)))
}

// IsNaN returns if the provided value is a NaN.
func IsNaN[T Real](x T) bool {
	return math.IsNaN(float64(x))
}

// IsInf returns if the provided value (x) is Inf in the direction of the sign provided.
func IsInf[T Real](x T, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// IsFinite returns if the provided value is neither NaN nor an infinity.
func IsFinite[T Real](x T) bool {
	return !IsNaN(x) && !IsInf(x, 0)
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[T Real](value, min, max T) T {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}
