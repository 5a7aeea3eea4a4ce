// Package referenceframe defines serial kinematic chains and does the math of composing them into poses.
// A Chain is an ordered list of Segments, base to tip. Each Segment carries a fixed offset from the previous
// segment's distal frame to its joint origin, followed by a joint which is either fixed or rotates about an axis.
// Forward kinematics composes those transforms into the pose of the tip relative to the base.
package referenceframe

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	spatial "go.viam.com/kinchain/spatialmath"
)

// JointType is the closed set of joints a Segment may carry.
type JointType int

const (
	// FixedJoint consumes no joint value.
	FixedJoint JointType = iota
	// RotationalJoint consumes one joint value, an angle in radians about the joint axis.
	RotationalJoint
)

// String returns the name used for the joint type in model configurations.
func (jt JointType) String() string {
	switch jt {
	case FixedJoint:
		return "fixed"
	case RotationalJoint:
		return "rotational"
	}
	return "unknown"
}

// ParseJointType converts a model configuration string to a JointType. "revolute" is accepted as an alias of
// "rotational".
func ParseJointType(s string) (JointType, error) {
	switch s {
	case "fixed":
		return FixedJoint, nil
	case "rotational", "revolute":
		return RotationalJoint, nil
	default:
		return FixedJoint, NewUnknownJointTypeError(s)
	}
}

// Joint connects a segment to its parent. The zero value is an unnamed fixed joint.
type Joint struct {
	name  string
	jType JointType
	axis  r3.Vector
}

// NewFixedJoint returns a joint that never moves.
func NewFixedJoint(name string) Joint {
	return Joint{name: name, jType: FixedJoint}
}

// NewRotationalJoint returns a joint rotating about the given axis, expressed in the frame of the joint origin.
// The axis is normalized.
func NewRotationalJoint(name string, axis r3.Vector) (Joint, error) {
	if spatial.R3VectorAlmostEqual(r3.Vector{}, axis, 1e-8) {
		return Joint{}, errors.Wrapf(ErrZeroAxis, "joint %q", name)
	}
	return Joint{name: name, jType: RotationalJoint, axis: axis.Normalize()}, nil
}

// Name returns the name of the joint.
func (j Joint) Name() string {
	return j.name
}

// Type returns whether the joint is fixed or rotational.
func (j Joint) Type() JointType {
	return j.jType
}

// Axis returns the unit rotation axis. It is the zero vector for fixed joints.
func (j Joint) Axis() r3.Vector {
	return j.axis
}

// DoF returns how many joint values the joint consumes.
func (j Joint) DoF() int {
	if j.jType == RotationalJoint {
		return 1
	}
	return 0
}

// rotation returns the pose of the joint rotated by angle radians about its axis.
func (j Joint) rotation(angle float64) spatial.Pose {
	return spatial.NewPoseFromOrientation(&spatial.R4AA{Theta: angle, RX: j.axis.X, RY: j.axis.Y, RZ: j.axis.Z})
}

// Segment is one rigid link plus the joint connecting it to its parent. Segments are immutable.
type Segment struct {
	name   string
	joint  Joint
	offset spatial.Pose
}

// NewSegment creates a segment given a name, its joint, and the fixed pose of the joint origin relative to the
// previous segment's distal frame. The joint motion is applied after the offset. A nil offset means no offset.
func NewSegment(name string, joint Joint, offset spatial.Pose) (Segment, error) {
	if name == "" {
		return Segment{}, ErrEmptySegmentName
	}
	if offset == nil {
		offset = spatial.NewZeroPose()
	}
	// copy so the segment does not share the caller's pose
	offset = spatial.NewPose(offset.Point(), offset.Orientation())
	return Segment{name: name, joint: joint, offset: offset}, nil
}

// Name returns the name of the segment.
func (s Segment) Name() string {
	return s.name
}

// Joint returns the joint of the segment.
func (s Segment) Joint() Joint {
	return s.joint
}

// Offset returns the fixed pose of the joint origin relative to the previous segment.
func (s Segment) Offset() spatial.Pose {
	return s.offset
}

// Transform returns the pose of the segment's distal frame relative to the previous segment for the given joint
// values, which must have exactly as many entries as the joint has degrees of freedom.
func (s Segment) Transform(inputs []Input) (spatial.Pose, error) {
	if len(inputs) != s.joint.DoF() {
		return nil, NewIncorrectDoFError(s.name, len(inputs), s.joint.DoF())
	}
	pose, _ := s.compose(spatial.NewZeroPose(), inputs, 0)
	return pose, nil
}

// AlmostEquals returns if the other segment is the same up to floating point imprecision.
func (s Segment) AlmostEquals(other Segment) bool {
	return s.name == other.name &&
		s.joint.name == other.joint.name &&
		s.joint.jType == other.joint.jType &&
		spatial.R3VectorAlmostEqual(s.joint.axis, other.joint.axis, 1e-8) &&
		spatial.PoseAlmostEqual(s.offset, other.offset)
}
