// Package utils contains small numeric helpers shared across packages.
package utils

import (
	"math"
)

// Float64AlmostEqual compares two float64s and returns if the difference between them is at most epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}
