package rot3

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func BenchmarkEulerQuaternion(b *testing.B) {

	b.ReportAllocs()

	euler := NewEuler(0.1, 1, 0.2)

	for i := 0; i < b.N; i++ {
		euler.Quaternion()
	}

}

func TestEulerQuaternionIdentity(t *testing.T) {

	q := NewEuler(0.0, 0, 0).Quaternion()
	assert.Equal(t, NewQuaternion(1.0, 0, 0, 0), q)

	m := q.Matrix3()
	assert.Equal(t, NewMatrix3[float64](), m)

	// The returned triple is the flipped (-pi, -pi, -pi) solution; see TestMatrix3EulerIdentity.
	e := m.Euler()
	assert.True(t, e.Quaternion().SameRotation(q))

	a, _ := m.EulerCandidates()
	assertEulerInDelta(t, NewEuler(0.0, 0, 0), a, 0)

}

func TestEulerQuaternionYawQuarterTurn(t *testing.T) {

	q := NewEuler(0, 0, math.Pi/2).Quaternion()

	assert.InDelta(t, 0.7071, q.W, 1e-4)
	assert.InDelta(t, 0, q.X, 1e-12)
	assert.InDelta(t, 0, q.Y, 1e-12)
	assert.InDelta(t, 0.7071, q.Z, 1e-4)

	m := q.Matrix3()
	assert.True(t, m.Row(0).Equals(NewVector3(0.0, 1, 0)), "row 0: %s", m.Row(0))
	assert.True(t, m.Row(1).Equals(NewVector3(-1.0, 0, 0)), "row 1: %s", m.Row(1))
	assert.True(t, m.Row(2).Equals(NewVector3(0.0, 0, 1)), "row 2: %s", m.Row(2))

	a, _ := m.EulerCandidates()
	assertEulerInDelta(t, NewEuler(0, 0, math.Pi/2), a, 1e-12)
	assert.True(t, m.Euler().Quaternion().SameRotation(q))

}

func TestEulerQuaternionUnitNorm(t *testing.T) {

	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 1000; i++ {

		e := NewEuler(
			(rng.Float64()*2-1)*100,
			(rng.Float64()*2-1)*100,
			(rng.Float64()*2-1)*100,
		)

		if l := e.Quaternion().Magnitude(); math.Abs(l-1) > 1e-6 {
			t.Fatalf("quaternion from %s has a norm of %f", e, l)
		}

		ef := NewEuler(float32(e.X), float32(e.Y), float32(e.Z))

		if l := ef.Quaternion().Magnitude(); math.Abs(float64(l)-1) > 1e-5 {
			t.Fatalf("float32 quaternion from %s has a norm of %f", ef, l)
		}

	}

}

func TestEulerSingleAxes(t *testing.T) {

	angle := 0.7
	s, c := math.Sin(angle), math.Cos(angle)

	roll := NewEuler(angle, 0, 0).Matrix3()
	assert.True(t, roll.Equals(Matrix3[float64]{{1, 0, 0}, {0, c, s}, {0, -s, c}}), "roll:\n%s", roll)

	pitch := NewEuler(0, angle, 0).Matrix3()
	assert.True(t, pitch.Equals(Matrix3[float64]{{c, 0, -s}, {0, 1, 0}, {s, 0, c}}), "pitch:\n%s", pitch)

	yaw := NewEuler(0, 0, angle).Matrix3()
	assert.True(t, yaw.Equals(Matrix3[float64]{{c, s, 0}, {-s, c, 0}, {0, 0, 1}}), "yaw:\n%s", yaw)

}

func TestEulerComposition(t *testing.T) {

	// The combined rotation is the roll matrix times the pitch matrix times the yaw matrix.
	e := NewEuler(0.3, -0.6, 1.2)

	composed := NewEuler(e.X, 0, 0).Matrix3().
		Mult(NewEuler(0, e.Y, 0).Matrix3()).
		Mult(NewEuler(0, 0, e.Z).Matrix3())

	assert.True(t, composed.Equals(e.Matrix3()), "expected\n%s\ngot\n%s", composed, e.Matrix3())

}

func TestEulerFloat32RoundTrip(t *testing.T) {

	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 1000; i++ {

		in := NewEuler(
			float32((rng.Float64()*2-1)*math.Pi),
			float32((rng.Float64()*2-1)*1.4),
			float32((rng.Float64()*2-1)*math.Pi),
		)

		q := in.Quaternion()
		out := q.Matrix3().Euler()

		if !out.Quaternion().SameRotation(q) {
			t.Fatalf("round trip #%d failed: %s -> %s", i, in, out)
		}

	}

}

func TestEulerDegrees(t *testing.T) {

	e := NewEulerDegrees(90.0, -45, 180)
	assertEulerInDelta(t, NewEuler(math.Pi/2, -math.Pi/4, math.Pi), e, 1e-12)
	assertEulerInDelta(t, NewEuler(90.0, -45, 180), e.Degrees(), 1e-12)
	assertEulerInDelta(t, e, e.Degrees().Radians(), 1e-12)

}

func TestConversionsConcurrent(t *testing.T) {

	inputs := make([]Euler[float64], 64)
	expected := make([]Euler[float64], len(inputs))

	rng := rand.New(rand.NewSource(6))

	for i := range inputs {
		inputs[i] = NewEuler(rng.Float64()*6-3, rng.Float64()*2.8-1.4, rng.Float64()*6-3)
		expected[i] = inputs[i].Quaternion().Matrix3().Euler()
	}

	var group errgroup.Group

	for w := 0; w < 8; w++ {
		group.Go(func() error {
			for n := 0; n < 200; n++ {
				for i, e := range inputs {
					if out := e.Quaternion().Matrix3().Euler(); out != expected[i] {
						return assert.AnError
					}
				}
			}
			return nil
		})
	}

	require.NoError(t, group.Wait())

}
