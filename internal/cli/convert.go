package cli

import (
	"errors"
	"fmt"

	"github.com/solarlune/rot3"
	"github.com/solarlune/rot3/internal/logger"
	"github.com/solarlune/rot3/realmath"
	"go.uber.org/zap"
)

// Input kinds.
const (
	KindEuler      = "euler"
	KindQuaternion = "quaternion"
	KindMatrix     = "matrix"
)

// Job is a single conversion to run: exactly one of Euler, Quaternion, or Matrix should be set.
type Job struct {
	Name       string      `yaml:"name,omitempty"`
	Euler      []float64   `yaml:"euler,omitempty,flow"`      // roll, pitch, yaw
	Quaternion []float64   `yaml:"quaternion,omitempty,flow"` // w, x, y, z
	Matrix     [][]float64 `yaml:"matrix,omitempty"`          // three rows of three
}

// Result is a rotation in all three representations.
type Result struct {
	Name       string        `yaml:"name,omitempty"`
	Input      string        `yaml:"input"`
	Euler      [3]float64    `yaml:"euler,flow"`
	Candidates [2][3]float64 `yaml:"candidates,flow"`
	GimbalLock bool          `yaml:"gimbal_lock"`
	Quaternion [4]float64    `yaml:"quaternion,flow"`
	Matrix     [3][3]float64 `yaml:"matrix,flow"`
}

var errNoInput = errors.New("one of euler, quaternion, or matrix must be given")

// Kind returns which representation the Job converts from.
func (job Job) Kind() (string, error) {

	kinds := []string{}

	if job.Euler != nil {
		kinds = append(kinds, KindEuler)
	}
	if job.Quaternion != nil {
		kinds = append(kinds, KindQuaternion)
	}
	if job.Matrix != nil {
		kinds = append(kinds, KindMatrix)
	}

	switch len(kinds) {
	case 0:
		return "", errNoInput
	case 1:
		return kinds[0], nil
	default:
		return "", fmt.Errorf("only one of euler, quaternion, or matrix may be given, got %v", kinds)
	}

}

// Convert runs the Job at the given precision (32 or 64). If degrees is set, Euler angles are read and written in degrees.
func Convert(job Job, precision int, degrees bool) (Result, error) {
	if precision == 32 {
		return convert[float32](job, degrees)
	}
	return convert[float64](job, degrees)
}

func convert[T rot3.Real](job Job, degrees bool) (Result, error) {

	kind, err := job.Kind()
	if err != nil {
		return Result{}, err
	}

	var matrix rot3.Matrix3[T]
	var quat rot3.Quaternion[T]

	switch kind {

	case KindEuler:

		if len(job.Euler) != 3 {
			return Result{}, fmt.Errorf("euler needs 3 values (roll, pitch, yaw), got %d", len(job.Euler))
		}

		euler := rot3.NewEuler(T(job.Euler[0]), T(job.Euler[1]), T(job.Euler[2]))
		if degrees {
			euler = euler.Radians()
		}

		if !euler.IsFinite() {
			return Result{}, fmt.Errorf("euler angles must be finite, got %s", euler)
		}

		quat = euler.Quaternion()
		matrix = quat.Matrix3()

	case KindQuaternion:

		if len(job.Quaternion) != 4 {
			return Result{}, fmt.Errorf("quaternion needs 4 values (w, x, y, z), got %d", len(job.Quaternion))
		}

		quat = rot3.NewQuaternion(T(job.Quaternion[0]), T(job.Quaternion[1]), T(job.Quaternion[2]), T(job.Quaternion[3]))

		if !quat.IsFinite() {
			return Result{}, fmt.Errorf("quaternion must be finite, got %s", quat)
		}

		if l := quat.Magnitude(); realmath.Abs(l-1) > 1e-3 {
			logger.Warn("quaternion is not of unit length; the matrix will scale as well as rotate",
				zap.String("name", job.Name), zap.Float64("length", float64(l)))
		}

		matrix = quat.Matrix3()

	case KindMatrix:

		if len(job.Matrix) != 3 {
			return Result{}, fmt.Errorf("matrix needs 3 rows, got %d", len(job.Matrix))
		}

		for i, row := range job.Matrix {
			if len(row) != 3 {
				return Result{}, fmt.Errorf("matrix row %d needs 3 values, got %d", i, len(row))
			}
			v := rot3.NewVector3(T(row[0]), T(row[1]), T(row[2]))
			if !v.IsFinite() {
				return Result{}, fmt.Errorf("matrix row %d must be finite, got %s", i, v)
			}
			if v.IsZero() {
				return Result{}, fmt.Errorf("matrix row %d has zero length", i)
			}
			matrix.SetRow(i, v)
		}

		matrix = matrix.Normalized()

		if !matrix.IsOrthonormal(1e-3) {
			logger.Warn("matrix rows are not mutually perpendicular; the euler angles are approximate", zap.String("name", job.Name))
		}

		quat = matrix.Euler().Quaternion()

	}

	result := newResult(job.Name, kind, matrix, quat, degrees)

	logger.Debug("converted",
		zap.String("name", job.Name),
		zap.String("input", kind),
		zap.Float64s("euler", result.Euler[:]),
		zap.Bool("gimbal_lock", result.GimbalLock),
	)

	return result, nil

}

func newResult[T rot3.Real](name, kind string, matrix rot3.Matrix3[T], quat rot3.Quaternion[T], degrees bool) Result {

	euler := matrix.Euler()
	a, b := matrix.EulerCandidates()

	if degrees {
		euler = euler.Degrees()
		a = a.Degrees()
		b = b.Degrees()
	}

	result := Result{
		Name:       name,
		Input:      kind,
		Euler:      floats3(euler.Floats()),
		Candidates: [2][3]float64{floats3(a.Floats()), floats3(b.Floats())},
		GimbalLock: matrix.InGimbalLock(),
	}

	q := quat.Floats()
	for i := range q {
		result.Quaternion[i] = float64(q[i])
	}

	for i := 0; i < 3; i++ {
		result.Matrix[i] = floats3(matrix.Row(i).Floats())
	}

	return result

}

func floats3[T rot3.Real](values [3]T) [3]float64 {
	return [3]float64{float64(values[0]), float64(values[1]), float64(values[2])}
}
