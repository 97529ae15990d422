package spatialmath

import (
	"fmt"
)

// RigidTransform is a translation paired with a rotation describing a coordinate change between
// two frames.
type RigidTransform struct {
	Translation Vector
	Rotation    Quaternion
}

// NewRigidTransform returns the transform (translation, rotation).
func NewRigidTransform(translation Vector, rotation Quaternion) RigidTransform {
	return RigidTransform{translation, rotation}
}

// NewZeroRigidTransform returns the identity transform.
func NewZeroRigidTransform() RigidTransform {
	return RigidTransform{Rotation: NewZeroQuaternion()}
}

// NewRigidTransformFromPose returns the transform whose translation is the pose's position and whose
// rotation is the pose's orientation.
func NewRigidTransformFromPose(p Pose) RigidTransform {
	return RigidTransform{p.Position.Vector(), p.Orientation}
}

// Inverse negates the translation and inverts the rotation.
func (rt RigidTransform) Inverse() RigidTransform {
	return RigidTransform{rt.Translation.Mul(-1), rt.Rotation.Inverse()}
}

// Pose reads the transform back as a pose.
func (rt RigidTransform) Pose() Pose {
	return Pose{rt.Translation.Point(), rt.Rotation}
}

// AlmostEqual returns whether the translations and rotations of rt and other agree within epsilon.
func (rt RigidTransform) AlmostEqual(other RigidTransform, epsilon float64) bool {
	return rt.Translation.AlmostEqual(other.Translation, epsilon) && rt.Rotation.AlmostEqual(other.Rotation, epsilon)
}

func (rt RigidTransform) String() string {
	return fmt.Sprintf("<RigidTransform %v %v>", rt.Translation, rt.Rotation)
}
