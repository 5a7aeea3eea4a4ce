// Package robotmodels provides the kinematic chains and joint limits of the supported robot arms.
package robotmodels

import (
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/kinchain/referenceframe"
	spatial "go.viam.com/kinchain/spatialmath"
)

// RobotModel identifies one of the robot arms known to this package.
type RobotModel int

const (
	// Sawyer is the Rethink Robotics Sawyer 7 DoF arm.
	Sawyer RobotModel = iota
	// Iiwa is the KUKA LBR iiwa 7 DoF arm.
	Iiwa
)

// ErrUnknownModel is returned for a RobotModel value or name outside of the supported set.
var ErrUnknownModel = errors.New("unknown robot model")

// AllModels returns every supported model in declaration order.
func AllModels() []RobotModel {
	return []RobotModel{Sawyer, Iiwa}
}

func (m RobotModel) String() string {
	switch m {
	case Sawyer:
		return "sawyer"
	case Iiwa:
		return "iiwa"
	}
	return "unknown"
}

// ModelFromName returns the model with the given name, ignoring case.
func ModelFromName(name string) (RobotModel, error) {
	for _, m := range AllModels() {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownModel, "%q", name)
}

// Spec returns a fresh copy of the literal specification of the model.
func Spec(m RobotModel) (*referenceframe.ModelConfig, error) {
	switch m {
	case Sawyer:
		return sawyerConfig(), nil
	case Iiwa:
		return iiwaConfig(), nil
	}
	return nil, errors.Wrapf(ErrUnknownModel, "value %d", int(m))
}

// Chain returns the kinematic chain of the model. Every call builds a new, immutable chain from the same literal
// data, so repeated calls give structurally identical chains.
func Chain(m RobotModel) (*referenceframe.Chain, error) {
	cfg, err := Spec(m)
	if err != nil {
		return nil, err
	}
	return cfg.ParseChain()
}

// Limits returns the joint limits of the model, one entry per movable joint of its chain.
func Limits(m RobotModel) (*referenceframe.JointLimits, error) {
	cfg, err := Spec(m)
	if err != nil {
		return nil, err
	}
	return cfg.ParseLimits()
}

func rotationalZ(name string) referenceframe.JointConfig {
	return referenceframe.JointConfig{Name: name, Type: referenceframe.RotationalJoint.String(), Axis: r3.Vector{Z: 1}}
}

func fixed() referenceframe.JointConfig {
	return referenceframe.JointConfig{Type: referenceframe.FixedJoint.String()}
}

func offset(x, y, z float64, rpy *spatial.EulerAngles) referenceframe.OffsetConfig {
	return referenceframe.OffsetConfig{Translation: r3.Vector{X: x, Y: y, Z: z}, RPY: rpy}
}

func rpy(roll, pitch, yaw float64) *spatial.EulerAngles {
	return &spatial.EulerAngles{Roll: roll, Pitch: pitch, Yaw: yaw}
}
