// Package spatialmath defines the points, vectors, rotations and rigid transforms used to
// describe where frames sit relative to one another.
package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Vector is a free direction or displacement in 3D space. Unlike a Point it carries no position.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Unit vectors along each axis.
var (
	XAxis = Vector{1, 0, 0}
	YAxis = Vector{0, 1, 0}
	ZAxis = Vector{0, 0, 1}
)

// NewVector returns a vector with the given components.
func NewVector(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// R3 returns the vector as an r3.Vector.
func (v Vector) R3() r3.Vector {
	return r3.Vector(v)
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector(v.R3().Add(o.R3()))
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector(v.R3().Sub(o.R3()))
}

// Mul scales the vector by m.
func (v Vector) Mul(m float64) Vector {
	return Vector(v.R3().Mul(m))
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.R3().Dot(o.R3())
}

// Cross returns the cross product v × o.
func (v Vector) Cross(o Vector) Vector {
	return Vector(v.R3().Cross(o.R3()))
}

// Norm returns the magnitude of the vector.
func (v Vector) Norm() float64 {
	return v.R3().Norm()
}

// Normalize returns a unit vector in the direction of v. The zero vector normalizes to
// itself; callers that need a direction must check for it first.
func (v Vector) Normalize() Vector {
	return Vector(v.R3().Normalize())
}

// IsZero reports whether every component of the vector is zero.
func (v Vector) IsZero() bool {
	return v == Vector{}
}

// Point returns the point reached by displacing the origin by v.
func (v Vector) Point() Point {
	return Point(v)
}

// AlmostEqual returns whether each component of v is within epsilon of o.
func (v Vector) AlmostEqual(o Vector, epsilon float64) bool {
	return withinEpsilon(v.R3(), o.R3(), epsilon)
}

func (v Vector) String() string {
	return fmt.Sprintf("<Vector %f %f %f>", v.X, v.Y, v.Z)
}

func withinEpsilon(a, b r3.Vector, epsilon float64) bool {
	d := a.Sub(b).Abs()
	return d.X <= epsilon && d.Y <= epsilon && d.Z <= epsilon
}
