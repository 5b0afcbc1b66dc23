package rot3

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func BenchmarkQuaternionMatrix3(b *testing.B) {

	b.ReportAllocs()

	quat := NewEuler(0.1, 1, 0.2).Quaternion()

	for i := 0; i < b.N; i++ {
		quat.Matrix3()
	}

}

func randomUnitQuaternion(rng *rand.Rand) Quaternion[float64] {
	for {
		q := NewQuaternion(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		l := q.Magnitude()
		if l < 1e-6 {
			continue
		}
		return NewQuaternion(q.W/l, q.X/l, q.Y/l, q.Z/l)
	}
}

func TestQuaternionMatrix3Identity(t *testing.T) {
	m := NewQuaternionIdentity[float64]().Matrix3()
	assert.Equal(t, NewMatrix3[float64](), m)
}

func TestQuaternionMatrix3YawQuarterTurn(t *testing.T) {

	half := math.Sqrt2 / 2

	m := NewQuaternion(half, 0, 0, half).Matrix3()

	assert.True(t, m.Row(0).Equals(NewVector3(0.0, 1, 0)), "row 0: %s", m.Row(0))
	assert.True(t, m.Row(1).Equals(NewVector3(-1.0, 0, 0)), "row 1: %s", m.Row(1))
	assert.True(t, m.Row(2).Equals(NewVector3(0.0, 0, 1)), "row 2: %s", m.Row(2))

}

func TestQuaternionMatrix3Orthonormal(t *testing.T) {

	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 1000; i++ {

		q := randomUnitQuaternion(rng)
		m := q.Matrix3()

		if !m.IsOrthonormal(1e-9) {
			t.Fatalf("matrix from %s isn't orthonormal:\n%s", q, m)
		}

		assert.InDelta(t, 1, m.Determinant(), 1e-9)

	}

}

func TestQuaternionDoubleCover(t *testing.T) {

	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {
		q := randomUnitQuaternion(rng)
		assert.True(t, q.Matrix3().Equals(q.Negated().Matrix3()))
		assert.True(t, q.SameRotation(q.Negated()))
	}

	assert.False(t, NewQuaternionIdentity[float64]().SameRotation(NewQuaternion(0.0, 1, 0, 0)))

}

func TestQuaternionMatrix3NonUnit(t *testing.T) {

	if DebugChecks {
		t.Skip("non-unit quaternions panic when built with rot3debug")
	}

	// Not normalized internally; the result isn't a rotation.
	m := NewQuaternion(2.0, 0, 0, 0).Matrix3()
	assert.Equal(t, NewMatrix3[float64](), m)

	m = NewQuaternion(0.0, 2, 0, 0).Matrix3()
	assert.False(t, m.IsOrthonormal(1e-6))

}

func TestQuaternionEuler(t *testing.T) {

	q := NewEuler(3.0, 1.5, 0.05).Quaternion()
	e := q.Euler()

	assertEulerInDelta(t, q.Matrix3().Euler(), e, 0)
	assert.True(t, e.Quaternion().SameRotation(q))

}
