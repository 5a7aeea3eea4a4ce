// Package spatialmath defines spatial mathematical operations.
// Poses are rigid-body transforms (a rotation plus a translation) backed by unit dual quaternions.
package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

const defaultFloatPrecision = 1e-8

// Pose represents a 6dof pose, position and orientation, with respect to the origin.
// The Point() method returns the position in (x,y,z) and the Orientation() method returns the orientation.
type Pose interface {
	Point() r3.Vector
	Orientation() Orientation
}

// NewZeroPose returns a pose at (0,0,0) with same orientation as whatever frame it is placed in.
func NewZeroPose() Pose {
	return newDualQuaternion()
}

// NewPose takes in a position and orientation and returns a Pose. A nil orientation means no rotation.
func NewPose(p r3.Vector, o Orientation) Pose {
	q := newDualQuaternion()
	if o != nil {
		q.Real = Normalize(o.Quaternion())
	}
	q.SetTranslation(p)
	return q
}

// NewPoseFromOrientation takes in an orientation and returns a Pose with no translation.
func NewPoseFromOrientation(o Orientation) Pose {
	return NewPose(r3.Vector{}, o)
}

// NewPoseFromPoint takes in a cartesian (x,y,z) and stores it as a vector.
// It will have the same orientation as the frame it is in.
func NewPoseFromPoint(point r3.Vector) Pose {
	return NewPose(point, nil)
}

// Compose treats Poses as functional transforms (i.e. 4x4 homogeneous matrices) and multiplies them together:
// the result is a followed by b, with b expressed in the frame established by a. Order matters.
func Compose(a, b Pose) Pose {
	result := newDualQuaternionFromPose(a)
	result.Number = result.Transformation(newDualQuaternionFromPose(b).Number)
	return result
}

// PoseInverse will return the inverse of a pose. So if a given pose p is the pose of A relative to B, PoseInverse(p)
// will give the pose of B relative to A.
func PoseInverse(p Pose) Pose {
	return newDualQuaternionFromPose(p).Invert()
}

// PoseBetween returns the difference between two Poses, i.e. the pose b expressed in the frame of a.
// Compose(a, PoseBetween(a, b)) == b.
func PoseBetween(a, b Pose) Pose {
	return Compose(PoseInverse(a), b)
}

// PoseAlmostEqual will return a bool describing whether 2 poses are approximately the same.
func PoseAlmostEqual(a, b Pose) bool {
	return PoseAlmostCoincident(a, b) && OrientationAlmostEqual(a.Orientation(), b.Orientation())
}

// PoseAlmostEqualEps will return a bool describing whether 2 poses are approximately the same, using the same
// epsilon for the distance between points and the angle between orientations.
func PoseAlmostEqualEps(a, b Pose, epsilon float64) bool {
	return R3VectorAlmostEqual(a.Point(), b.Point(), epsilon) &&
		OrientationAlmostEqualEps(a.Orientation(), b.Orientation(), epsilon)
}

// PoseAlmostCoincident will return a bool describing whether 2 poses approximately are at the same 3D coordinates.
func PoseAlmostCoincident(a, b Pose) bool {
	return R3VectorAlmostEqual(a.Point(), b.Point(), defaultFloatPrecision)
}

// R3VectorAlmostEqual compares two r3.Vector objects and returns if the all elementwise differences are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon && math.Abs(a.Z-b.Z) < epsilon
}

// PrettyPrint returns a short human readable description of a pose.
func PrettyPrint(p Pose) string {
	pt := p.Point()
	ea := p.Orientation().EulerAngles()
	return fmt.Sprintf("{X:%.6f Y:%.6f Z:%.6f Roll:%.6f Pitch:%.6f Yaw:%.6f}",
		pt.X, pt.Y, pt.Z, ea.Roll, ea.Pitch, ea.Yaw)
}
