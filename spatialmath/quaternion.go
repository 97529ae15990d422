package spatialmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/tf/utils"
)

// ErrZeroAxis is returned when a rotation is requested about an axis with no direction.
var ErrZeroAxis = errors.New("cannot build a rotation about a zero-length axis")

// Quaternion is a rotation in 3D space stored as (w, x, y, z). Rotations built by this package are
// unit quaternions, but Inverse and Rotate are correct for any non-zero quaternion.
type Quaternion struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewZeroQuaternion returns the identity rotation.
func NewZeroQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// NewQuaternion returns the quaternion w + xi + yj + zk.
func NewQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{w, x, y, z}
}

// NewQuaternionFromAxisAngle returns the rotation of theta radians about axis. The axis is
// normalized before use; a zero axis returns ErrZeroAxis.
func NewQuaternionFromAxisAngle(theta float64, axis Vector) (Quaternion, error) {
	if axis.IsZero() {
		return Quaternion{}, ErrZeroAxis
	}
	sinA := math.Sin(theta / 2)
	u := axis.Normalize().Mul(sinA)
	return Quaternion{math.Cos(theta / 2), u.X, u.Y, u.Z}, nil
}

// NewQuaternionFromNumber converts a gonum quaternion.
func NewQuaternionFromNumber(n quat.Number) Quaternion {
	return Quaternion{n.Real, n.Imag, n.Jmag, n.Kmag}
}

// Number returns q as a gonum quaternion.
func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// Mul returns the Hamilton product q·o. The product is not commutative.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return NewQuaternionFromNumber(quat.Mul(q.Number(), o.Number()))
}

// Conj returns the conjugate of q.
func (q Quaternion) Conj() Quaternion {
	return NewQuaternionFromNumber(quat.Conj(q.Number()))
}

// Inverse returns the conjugate of q divided by its squared norm.
func (q Quaternion) Inverse() Quaternion {
	return NewQuaternionFromNumber(quat.Inv(q.Number()))
}

// Norm returns the magnitude of q.
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.Number())
}

// Rotate rotates p by q using the sandwich product q·p·q⁻¹ and keeps the vector part.
func (q Quaternion) Rotate(p Point) Point {
	pure := quat.Number{Imag: p.X, Jmag: p.Y, Kmag: p.Z}
	out := quat.Mul(quat.Mul(q.Number(), pure), quat.Inv(q.Number()))
	return Point{out.Imag, out.Jmag, out.Kmag}
}

// Matrix returns the rotation matrix of q, which is assumed to be a unit quaternion.
func (q Quaternion) Matrix() mgl64.Mat3 {
	return q.mgl().Mat4().Mat3()
}

func (q Quaternion) mgl() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// AlmostEqual returns whether every component of q is within epsilon of the matching component of o.
// q and -q describe the same rotation but are not considered equal here.
func (q Quaternion) AlmostEqual(o Quaternion, epsilon float64) bool {
	return utils.Float64AlmostEqual(q.W, o.W, epsilon) &&
		utils.Float64AlmostEqual(q.X, o.X, epsilon) &&
		utils.Float64AlmostEqual(q.Y, o.Y, epsilon) &&
		utils.Float64AlmostEqual(q.Z, o.Z, epsilon)
}

func (q Quaternion) String() string {
	return fmt.Sprintf("<Quaternion %f %f %f %f>", q.W, q.X, q.Y, q.Z)
}
