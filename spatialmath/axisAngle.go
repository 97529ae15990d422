package spatialmath

import (
	"math"
)

// See here for a thorough explanation: https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
// Basic explanation: an orientation can be expressed by first specifying an axis, i.e. a line from the
// origin to a point on the unit sphere, represented by (rx, ry, rz), and a rotation around that axis, theta.

// R4AA represents an R4 axis angle. Theta is in radians.
type R4AA struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// NewR4AA creates an axis angle with no rotation about +Z.
func NewR4AA() *R4AA {
	return &R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// Axis returns the (possibly unnormalized) rotation axis.
func (r4 *R4AA) Axis() Vector {
	return Vector{r4.RX, r4.RY, r4.RZ}
}

// Quaternion returns the axis angle as a unit quaternion. It fails with ErrZeroAxis if the axis
// has no direction.
func (r4 *R4AA) Quaternion() (Quaternion, error) {
	return NewQuaternionFromAxisAngle(r4.Theta, r4.Axis())
}

// QuatToR4AA converts a unit quaternion to an axis angle. The identity maps to NewR4AA.
func QuatToR4AA(q Quaternion) *R4AA {
	sinHalf := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if sinHalf == 0 {
		return NewR4AA()
	}
	theta := 2 * math.Atan2(sinHalf, q.W)
	return &R4AA{theta, q.X / sinHalf, q.Y / sinHalf, q.Z / sinHalf}
}
