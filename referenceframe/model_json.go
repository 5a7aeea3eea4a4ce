package referenceframe

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	spatial "go.viam.com/kinchain/spatialmath"
)

// ModelConfig is the hand-authored specification of one robot: its segments in chain order, base first, and the
// limits of its movable joints in the same order. Model configurations are written as Go literals; the JSON tags
// only exist so a specification can be printed.
type ModelConfig struct {
	Name     string          `json:"name"`
	Segments []SegmentConfig `json:"segments"`
	Limits   LimitsConfig    `json:"limits"`
}

// SegmentConfig describes one segment.
type SegmentConfig struct {
	Name   string       `json:"name"`
	Joint  JointConfig  `json:"joint"`
	Offset OffsetConfig `json:"offset"`
}

// JointConfig describes the joint of a segment. Type is "fixed" or "rotational"; Axis is ignored for fixed joints.
type JointConfig struct {
	Name string    `json:"name,omitempty"`
	Type string    `json:"type"`
	Axis r3.Vector `json:"axis"`
}

// OffsetConfig is the fixed pose of a segment's joint origin relative to the previous segment. The rotation is given
// either as roll-pitch-yaw angles or as a quaternion, never both; with neither there is no rotation.
type OffsetConfig struct {
	Translation r3.Vector           `json:"translation"`
	RPY         *spatial.EulerAngles `json:"rpy,omitempty"`
	Quaternion  *QuaternionConfig    `json:"quaternion,omitempty"`
}

// QuaternionConfig is a rotation quaternion with W the real part. It need not be normalized.
type QuaternionConfig struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quaternion returns the configuration as a gonum quaternion.
func (cfg QuaternionConfig) Quaternion() quat.Number {
	return quat.Number{Real: cfg.W, Imag: cfg.X, Jmag: cfg.Y, Kmag: cfg.Z}
}

// LimitsConfig holds the four parallel limit arrays, indexed by movable joint.
type LimitsConfig struct {
	Lower    []float64 `json:"lower"`
	Upper    []float64 `json:"upper"`
	MaxSpeed []float64 `json:"max_speed"`
	MaxAccel []float64 `json:"max_accel"`
}

// Pose converts the offset to a pose.
func (cfg OffsetConfig) Pose() (spatial.Pose, error) {
	switch {
	case cfg.RPY != nil && cfg.Quaternion != nil:
		return nil, errors.New("offset rotation must be given as rpy or quaternion, not both")
	case cfg.RPY != nil:
		return spatial.NewPose(cfg.Translation, cfg.RPY), nil
	case cfg.Quaternion != nil:
		q := cfg.Quaternion.Quaternion()
		if quat.Abs(q) == 0 {
			return nil, errors.New("offset quaternion must not be zero")
		}
		return spatial.NewPose(cfg.Translation, spatial.NewQuaternion(q)), nil
	default:
		return spatial.NewPoseFromPoint(cfg.Translation), nil
	}
}

// ToJoint converts the joint configuration to a Joint.
func (cfg JointConfig) ToJoint() (Joint, error) {
	jType, err := ParseJointType(cfg.Type)
	if err != nil {
		return Joint{}, err
	}
	switch jType {
	case FixedJoint:
		return NewFixedJoint(cfg.Name), nil
	case RotationalJoint:
		return NewRotationalJoint(cfg.Name, cfg.Axis)
	}
	return Joint{}, NewUnknownJointTypeError(cfg.Type)
}

// ToSegment converts the segment configuration to a Segment.
func (cfg SegmentConfig) ToSegment() (Segment, error) {
	joint, err := cfg.Joint.ToJoint()
	if err != nil {
		return Segment{}, errors.Wrapf(err, "segment %q", cfg.Name)
	}
	offset, err := cfg.Offset.Pose()
	if err != nil {
		return Segment{}, errors.Wrapf(err, "segment %q", cfg.Name)
	}
	return NewSegment(cfg.Name, joint, offset)
}

// ParseChain builds the chain described by the configuration.
func (cfg *ModelConfig) ParseChain() (*Chain, error) {
	segments := make([]Segment, 0, len(cfg.Segments))
	for _, sc := range cfg.Segments {
		seg, err := sc.ToSegment()
		if err != nil {
			return nil, errors.Wrapf(err, "model %q", cfg.Name)
		}
		segments = append(segments, seg)
	}
	return NewChain(cfg.Name, segments...)
}

// ParseLimits builds the joint limits described by the configuration.
func (cfg *ModelConfig) ParseLimits() (*JointLimits, error) {
	limits, err := NewJointLimits(cfg.Limits.Lower, cfg.Limits.Upper, cfg.Limits.MaxSpeed, cfg.Limits.MaxAccel)
	if err != nil {
		return nil, errors.Wrapf(err, "model %q", cfg.Name)
	}
	return limits, nil
}

// ParseConfig builds both the chain and its limits, and checks that the limits cover exactly the movable joints.
func (cfg *ModelConfig) ParseConfig() (*Chain, *JointLimits, error) {
	chain, err := cfg.ParseChain()
	if err != nil {
		return nil, nil, err
	}
	limits, err := cfg.ParseLimits()
	if err != nil {
		return nil, nil, err
	}
	if err := limits.CheckChain(chain); err != nil {
		return nil, nil, err
	}
	return chain, limits, nil
}
