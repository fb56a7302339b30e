package amplitude

import (
	"errors"
	"fmt"
	"math"
)

// DefaultVelocity is the default interval velocity in m/s.
const DefaultVelocity = 1500.0

// ErrInvalidVelocity is returned for a velocity that is not a positive finite number.
var ErrInvalidVelocity = errors.New("invalid velocity")

// ValidateVelocity rejects zero, negative, NaN and infinite velocities.
func ValidateVelocity(velocity float64) error {
	if !(velocity > 0) || math.IsInf(velocity, 1) {
		return fmt.Errorf("%w: must be positive and finite, got %g", ErrInvalidVelocity, velocity)
	}
	return nil
}

// ToDepthAxis converts two-way time in milliseconds to one-way depth in metres:
// depth = t/1000 * v/2. The output keeps the index order of timeMs.
func ToDepthAxis(timeMs []float64, velocity float64) ([]float64, error) {
	if err := ValidateVelocity(velocity); err != nil {
		return nil, err
	}

	depth := make([]float64, len(timeMs))
	for i, t := range timeMs {
		depth[i] = t / 1000 * velocity / 2
	}
	return depth, nil
}

// Extent returns the first and last value of an axis, used for plot extents.
func Extent(axis []float64) (first, last float64) {
	if len(axis) == 0 {
		return 0, 0
	}
	return axis[0], axis[len(axis)-1]
}
