package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a position and orientation describing where a frame sits relative to its parent.
type Pose struct {
	Position    Point
	Orientation Quaternion
}

// NewPose returns a pose at position with the given orientation.
func NewPose(position Point, orientation Quaternion) Pose {
	return Pose{position, orientation}
}

// NewZeroPose returns a pose at the origin with no rotation.
func NewZeroPose() Pose {
	return Pose{Orientation: NewZeroQuaternion()}
}

// NewPoseFromPoint returns an unrotated pose at position.
func NewPoseFromPoint(position Point) Pose {
	return Pose{position, NewZeroQuaternion()}
}

// Matrix returns the homogeneous matrix taking coordinates in the posed frame to coordinates in
// the frame the pose is expressed in: rotate by the orientation, then translate by the position.
func (p Pose) Matrix() mgl64.Mat4 {
	t := mgl64.Translate3D(p.Position.X, p.Position.Y, p.Position.Z)
	return t.Mul4(p.Orientation.mgl().Mat4())
}

// PoseAlmostEqual returns whether two poses have positions and orientations within epsilon.
func PoseAlmostEqual(a, b Pose, epsilon float64) bool {
	return a.Position.AlmostEqualWithin(b.Position, epsilon) && a.Orientation.AlmostEqual(b.Orientation, epsilon)
}
