// Package quat provides a quaternion value type with Hamilton-product
// arithmetic, rotation and matrix views.
package quat

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	gquat "gonum.org/v1/gonum/num/quat"
)

// Tolerance is the absolute tolerance used by IsUnit and IsPure.
const Tolerance = 0.001

// Quaternion is a hypercomplex number w + xi + yj + zk.
// W is the real (scalar) part; X, Y, Z form the vector part.
// Methods never modify the receiver.
type Quaternion struct {
	W, X, Y, Z float64
}

// New returns the quaternion (w, x, y, z).
func New(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// Zero returns the additive identity (0, 0, 0, 0).
func Zero() Quaternion {
	return Quaternion{}
}

// One returns the multiplicative identity (1, 0, 0, 0).
func One() Quaternion {
	return Quaternion{W: 1}
}

// Identity is an alias for One.
func Identity() Quaternion {
	return One()
}

// FromVector returns the pure quaternion (0, v.X, v.Y, v.Z).
func FromVector(v r3.Vector) Quaternion {
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z}
}

// FromNumber converts a gonum quaternion.
func FromNumber(n gquat.Number) Quaternion {
	return Quaternion{W: n.Real, X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}

// Number converts q to a gonum quaternion.
func (q Quaternion) Number() gquat.Number {
	return gquat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// Vec returns the vector part as a 3D vector.
func (q Quaternion) Vec() r3.Vector {
	return r3.Vector{X: q.X, Y: q.Y, Z: q.Z}
}

// Vector returns the vector part as a quaternion, i.e. (0, x, y, z).
func (q Quaternion) Vector() Quaternion {
	return Quaternion{X: q.X, Y: q.Y, Z: q.Z}
}

// Add returns the componentwise sum q + o.
func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W + o.W,
		X: q.X + o.X,
		Y: q.Y + o.Y,
		Z: q.Z + o.Z,
	}
}

// AddScalar adds s to the real part only.
func (q Quaternion) AddScalar(s float64) Quaternion {
	return Quaternion{W: q.W + s, X: q.X, Y: q.Y, Z: q.Z}
}

// Scale multiplies every component by s.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{
		W: q.W * s,
		X: q.X * s,
		Y: q.Y * s,
		Z: q.Z * s,
	}
}

// Mul returns the Hamilton product q * o. It is not commutative.
//
// The product is built from the scalar/vector split:
//
//	real   = q.w*o.w - q.v·o.v
//	vector = q.v×o.v + o.v*q.w + q.v*o.w
func (q Quaternion) Mul(o Quaternion) Quaternion {
	qv, ov := q.Vec(), o.Vec()
	w := q.W*o.W - qv.Dot(ov)
	cross := Quaternion{W: w}.Add(FromVector(qv.Cross(ov)))
	return cross.Add(o.Vector().Scale(q.W)).Add(q.Vector().Scale(o.W))
}

// Equal reports whether all four components are exactly equal.
func (q Quaternion) Equal(o Quaternion) bool {
	return q.W == o.W && q.X == o.X && q.Y == o.Y && q.Z == o.Z
}

// ApproxEqual reports whether every component differs by at most eps.
func (q Quaternion) ApproxEqual(o Quaternion, eps float64) bool {
	return math.Abs(q.W-o.W) <= eps &&
		math.Abs(q.X-o.X) <= eps &&
		math.Abs(q.Y-o.Y) <= eps &&
		math.Abs(q.Z-o.Z) <= eps
}

// Conjugate returns (w, -x, -y, -z).
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Negative returns (-w, -x, -y, -z).
func (q Quaternion) Negative() Quaternion {
	return Quaternion{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Dot returns the dot product of the vector parts only. W is ignored.
func (q Quaternion) Dot(o Quaternion) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

// MagnitudeSquared returns w² + x² + y² + z².
func (q Quaternion) MagnitudeSquared() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Magnitude returns the Euclidean norm of all four components.
func (q Quaternion) Magnitude() float64 {
	return math.Sqrt(q.MagnitudeSquared())
}

// IsUnit reports whether the magnitude is within Tolerance of 1.
func (q Quaternion) IsUnit() bool {
	return math.Abs(q.Magnitude()-1) <= Tolerance
}

// IsPure reports whether the real part is within Tolerance of 0.
func (q Quaternion) IsPure() bool {
	return math.Abs(q.W) <= Tolerance
}

// Inverse returns the inverse of a unit quaternion. ok is false when q is
// not unit; no general inverse is attempted.
func (q Quaternion) Inverse() (inv Quaternion, ok bool) {
	if !q.IsUnit() {
		return Quaternion{}, false
	}
	return q.Conjugate().Scale(1.0 / q.MagnitudeSquared()), true
}

// Unit returns q scaled to magnitude 1.
//
// Unit does not guard against a zero quaternion: the result then has
// NaN components.
func (q Quaternion) Unit() Quaternion {
	return q.Scale(1.0 / q.Magnitude())
}

// Array returns the components as [w, x, y, z].
func (q Quaternion) Array() [4]float64 {
	return [4]float64{q.W, q.X, q.Y, q.Z}
}

// String formats q as "[w = 1, x = 0, y = 0, z = 0]".
func (q Quaternion) String() string {
	return fmt.Sprintf("[w = %v, x = %v, y = %v, z = %v]", q.W, q.X, q.Y, q.Z)
}
