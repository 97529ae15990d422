package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// PointEpsilon is the per-component tolerance used by Point.AlmostEqual. It absorbs the round-off
// left behind by chains of rotations and translations.
const PointEpsilon = 1e-15

// Point is a position in 3D space. It has no orientation.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float64) Point {
	return Point{x, y, z}
}

// NewPointFromCylindrical returns the cartesian point for cylindrical coordinates, where r is the
// magnitude of the X-Y component and theta is the angle around the Z axis in radians.
func NewPointFromCylindrical(r, theta, z float64) Point {
	return Point{r * math.Cos(theta), r * math.Sin(theta), z}
}

// R3 returns the point as an r3.Vector from the origin.
func (p Point) R3() r3.Vector {
	return r3.Vector(p)
}

// Add moves the point by v.
func (p Point) Add(v Vector) Point {
	return Point(p.R3().Add(v.R3()))
}

// Sub moves the point by v in the opposite direction.
func (p Point) Sub(v Vector) Point {
	return Point(p.R3().Sub(v.R3()))
}

// SubPoint returns the vector that goes from o to p.
func (p Point) SubPoint(o Point) Vector {
	return Vector(p.R3().Sub(o.R3()))
}

// Scale multiplies each coordinate of the point by m.
func (p Point) Scale(m float64) Point {
	return Point(p.R3().Mul(m))
}

// Vector returns the displacement from the origin to p.
func (p Point) Vector() Vector {
	return Vector(p)
}

// AlmostEqual returns whether p and o coincide to within PointEpsilon on every axis.
func (p Point) AlmostEqual(o Point) bool {
	return p.AlmostEqualWithin(o, PointEpsilon)
}

// AlmostEqualWithin returns whether p and o coincide to within epsilon on every axis.
func (p Point) AlmostEqualWithin(o Point, epsilon float64) bool {
	return withinEpsilon(p.R3(), o.R3(), epsilon)
}

func (p Point) String() string {
	return fmt.Sprintf("<Point %v, %v, %v>", p.X, p.Y, p.Z)
}
