// Package curve provides the two smoothstep-shaped scoring curves every
// behavior utility is built from.
package curve

import (
	"github.com/amindell11/astronomical-home-sub002/common/utils/number"
)

func smoothstep(value float64) float64 {
	v := number.Clamp01(value)
	return v * v * (3 - 2*v)
}

// Desire grows from 0 at value=0 to maxBonus at value=1, monotonically.
func Desire(value float64, maxBonus float64) float64 {
	return smoothstep(value) * maxBonus
}

// Fear is the complement of Desire: maxBonus at value=0, 0 at value=1.
// Desire(v, m) + Fear(v, m) == m for every v.
func Fear(value float64, maxBonus float64) float64 {
	return (1 - smoothstep(value)) * maxBonus
}
