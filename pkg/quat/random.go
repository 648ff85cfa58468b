package quat

import "github.com/pkg/errors"

// IntSource is the subset of *math/rand.Rand used by Random.
type IntSource interface {
	Intn(n int) int
}

// Range is a closed integer interval [Min, Max].
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// QuizRange is the interval the multiplication quiz draws from.
var QuizRange = Range{Min: -4, Max: 4}

// Validate reports an error when Min exceeds Max.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return errors.Errorf("invalid range [%d, %d]: min exceeds max", r.Min, r.Max)
	}
	return nil
}

func (r Range) draw(src IntSource) float64 {
	return float64(r.Min + src.Intn(r.Max-r.Min+1))
}

// Random returns a quaternion whose components are drawn independently and
// uniformly from r. It panics if r is invalid.
func Random(src IntSource, r Range) Quaternion {
	if err := r.Validate(); err != nil {
		panic(err)
	}
	return Quaternion{
		W: r.draw(src),
		X: r.draw(src),
		Y: r.draw(src),
		Z: r.draw(src),
	}
}
