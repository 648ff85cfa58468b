package quat

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LeftMatrix returns the 4x4 matrix L with L·p.Column() == q.Mul(p).Column().
func (q Quaternion) LeftMatrix() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		q.W, -q.X, -q.Y, -q.Z,
		q.X, q.W, -q.Z, q.Y,
		q.Y, q.Z, q.W, -q.X,
		q.Z, -q.Y, q.X, q.W,
	})
}

// Column returns the components as a 4x1 column vector (w, x, y, z).
func (q Quaternion) Column() *mat.VecDense {
	a := q.Array()
	return mat.NewVecDense(4, a[:])
}

// RotationMatrix returns the 3x3 rotation matrix of a unit quaternion.
func (q Quaternion) RotationMatrix() (*mat.Dense, error) {
	if !q.IsUnit() {
		return nil, errors.Wrapf(ErrInvalidRotation, "magnitude %v", q.Magnitude())
	}

	xx := q.X * q.X
	xy := q.X * q.Y
	xz := q.X * q.Z
	xw := q.X * q.W
	yy := q.Y * q.Y
	yz := q.Y * q.Z
	yw := q.Y * q.W
	zz := q.Z * q.Z
	zw := q.Z * q.W

	return mat.NewDense(3, 3, []float64{
		1 - 2*(yy+zz), 2 * (xy - zw), 2 * (xz + yw),
		2 * (xy + zw), 1 - 2*(xx+zz), 2 * (yz - xw),
		2 * (xz - yw), 2 * (yz + xw), 1 - 2*(xx+yy),
	}), nil
}
