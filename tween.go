package rot3

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EulerTween eases a set of Euler angles from one triple to another over time, one angle at a time.
// Since each angle is eased on its own, the path the rotation takes isn't the shortest arc between the two
// orientations; it's the path you'd get from animating the roll, pitch, and yaw values directly.
type EulerTween struct {
	From, To Euler[float32]

	x, y, z  *gween.Tween
	current  Euler[float32]
	finished bool
}

// NewEulerTween returns a new EulerTween that eases from one Euler triple to another over the duration given (in whatever
// unit of time you pass to Update()), using the easing function given. Passing nil for easing uses linear easing.
func NewEulerTween(from, to Euler[float32], duration float32, easing ease.TweenFunc) *EulerTween {

	if easing == nil {
		easing = ease.Linear
	}

	return &EulerTween{
		From:    from,
		To:      to,
		x:       gween.New(from.X, to.X, duration, easing),
		y:       gween.New(from.Y, to.Y, duration, easing),
		z:       gween.New(from.Z, to.Z, duration, easing),
		current: from,
	}

}

// Update advances the EulerTween by dt, returning the current Euler angles and whether the tween has finished.
func (tween *EulerTween) Update(dt float32) (Euler[float32], bool) {

	x, fx := tween.x.Update(dt)
	y, fy := tween.y.Update(dt)
	z, fz := tween.z.Update(dt)

	tween.current = Euler[float32]{X: x, Y: y, Z: z}
	tween.finished = fx && fy && fz

	return tween.current, tween.finished

}

// Set sets the EulerTween to the given point in time, returning the Euler angles at that time and whether the tween has finished.
func (tween *EulerTween) Set(time float32) (Euler[float32], bool) {

	x, fx := tween.x.Set(time)
	y, fy := tween.y.Set(time)
	z, fz := tween.z.Set(time)

	tween.current = Euler[float32]{X: x, Y: y, Z: z}
	tween.finished = fx && fy && fz

	return tween.current, tween.finished

}

// Reset rewinds the EulerTween back to its starting angles.
func (tween *EulerTween) Reset() {
	tween.x.Reset()
	tween.y.Reset()
	tween.z.Reset()
	tween.current = tween.From
	tween.finished = false
}

// Current returns the current Euler angles of the EulerTween.
func (tween *EulerTween) Current() Euler[float32] {
	return tween.current
}

// Quaternion returns the current rotation of the EulerTween as a Quaternion.
func (tween *EulerTween) Quaternion() Quaternion[float32] {
	return tween.current.Quaternion()
}

// Matrix3 returns the current rotation of the EulerTween as a rotation Matrix3.
func (tween *EulerTween) Matrix3() Matrix3[float32] {
	return tween.current.Matrix3()
}

// Finished returns true if the EulerTween has reached its end.
func (tween *EulerTween) Finished() bool {
	return tween.finished
}
