package quat

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// DefaultDelta is the tolerance Angle uses when matching cos² and sin².
	DefaultDelta = 0.001
	// DefaultStep is the angular increment of the Angle search.
	DefaultStep = math.Pi / 36000
)

var (
	// ErrInvalidRotation is returned when a non-unit quaternion is used as a rotation.
	ErrInvalidRotation = errors.New("invalid rotation quaternion")
	// ErrNotPure is returned when Rotate is given an operand with a real part.
	ErrNotPure = errors.New("invalid operand: must be pure")
	// ErrNoAngle is returned by Angle for non-unit quaternions.
	ErrNoAngle = errors.New("non-unit quaternions have no angle")
	// ErrAngleNotFound is returned when the Angle search finds no candidate.
	ErrAngleNotFound = errors.New("no angle found")
)

// AngleAxis returns axis*sin(angle) + cos(angle). The axis must already be
// normalized for the result to be a unit quaternion.
func AngleAxis(angle float64, axis Quaternion) Quaternion {
	return axis.Scale(math.Sin(angle)).AddScalar(math.Cos(angle))
}

// Rotate applies q to the pure quaternion v using the sandwich product
// q * v * conj(q). q must be unit and v must be pure.
func (q Quaternion) Rotate(v Quaternion) (Quaternion, error) {
	if !q.IsUnit() {
		return Quaternion{}, errors.Wrapf(ErrInvalidRotation, "magnitude %v", q.Magnitude())
	}
	if !v.IsPure() {
		return Quaternion{}, errors.Wrapf(ErrNotPure, "real part %v", v.W)
	}
	return q.Mul(v).Mul(q.Conjugate()), nil
}

// Angle returns the angle encoded by a unit quaternion using DefaultDelta
// and DefaultStep.
func (q Quaternion) Angle() (float64, error) {
	return q.AngleWithin(DefaultDelta, DefaultStep)
}

// AngleWithin searches [-π, π] in increments of step for the first θ with
// cos²θ ≈ w² and sin²θ ≈ |v|², each within delta. Negative matches are
// shifted by π, so the result lies in [0, π).
//
// Because only squares are compared, θ, -θ and π-θ are indistinguishable and
// the search settles on the smallest of them. The first match sits at the
// edge of the delta band, so results drift by up to about delta/|sin 2θ|,
// and angles below roughly sqrt(delta) already match at -π and return 0.
func (q Quaternion) AngleWithin(delta, step float64) (float64, error) {
	if !q.IsUnit() {
		return 0, errors.Wrapf(ErrNoAngle, "magnitude %v", q.Magnitude())
	}
	if step <= 0 {
		return 0, errors.Errorf("angle step must be positive, got %v", step)
	}

	w2 := q.W * q.W
	v2 := q.Vec().Norm2()
	for i := 0; ; i++ {
		theta := -math.Pi + float64(i)*step
		if theta > math.Pi {
			break
		}
		c := math.Cos(theta)
		s := math.Sin(theta)
		if math.Abs(c*c-w2) <= delta && math.Abs(s*s-v2) <= delta {
			if theta < 0 {
				theta += math.Pi
			}
			return theta, nil
		}
	}
	return 0, ErrAngleNotFound
}
