package rot3

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func BenchmarkVector3Unit(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector3[float32], 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, Vector3[float32]{X: rand.Float32(), Y: rand.Float32(), Z: rand.Float32()})
	}

	b.ReportAllocs()
	b.StartTimer()

	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i] = vecs[i].Add(vecs[i+1]).Unit()
		}
	}

}

func TestVector3Unit(t *testing.T) {

	v := NewVector3(3.0, 0, 4).Unit()
	assert.Equal(t, NewVector3(0.6, 0, 0.8), v)
	assert.InDelta(t, 1, v.Magnitude(), 1e-15)

	zero := Vector3[float64]{}
	assert.Equal(t, zero, zero.Unit())

}

func TestVector3Cross(t *testing.T) {

	x := NewVector3[float32](1, 0, 0)
	y := NewVector3[float32](0, 1, 0)

	assert.Equal(t, NewVector3[float32](0, 0, 1), x.Cross(y))
	assert.Equal(t, NewVector3[float32](0, 0, -1), y.Cross(x))
	assert.Equal(t, float32(0), x.Dot(y))

}

func TestVector3String(t *testing.T) {
	assert.Equal(t, "{1, -0.5, 0.25}", NewVector3(1.0, -0.5, 0.25).String())
	assert.Equal(t, "{0.1, 0, 0}", NewVector3[float32](0.1, 0, 0).String())
}
