package referenceframe

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	spatial "go.viam.com/kinchain/spatialmath"
)

func TestJointTypes(t *testing.T) {
	for _, name := range []string{"fixed", "rotational", "revolute"} {
		_, err := ParseJointType(name)
		test.That(t, err, test.ShouldBeNil)
	}
	jt, err := ParseJointType("revolute")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, jt, test.ShouldEqual, RotationalJoint)
	test.That(t, jt.String(), test.ShouldEqual, "rotational")
	test.That(t, FixedJoint.String(), test.ShouldEqual, "fixed")

	_, err = ParseJointType("prismatic")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "prismatic")
}

func TestNewRotationalJoint(t *testing.T) {
	_, err := NewRotationalJoint("j0", r3.Vector{})
	test.That(t, errors.Is(err, ErrZeroAxis), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "j0")

	j, err := NewRotationalJoint("j1", r3.Vector{Z: 3})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, j.Axis(), test.ShouldResemble, r3.Vector{Z: 1})
	test.That(t, j.DoF(), test.ShouldEqual, 1)
	test.That(t, j.Type(), test.ShouldEqual, RotationalJoint)
	test.That(t, j.Name(), test.ShouldEqual, "j1")

	fixed := NewFixedJoint("base")
	test.That(t, fixed.DoF(), test.ShouldEqual, 0)
	test.That(t, Joint{}.Type(), test.ShouldEqual, FixedJoint)
}

func TestNewSegment(t *testing.T) {
	_, err := NewSegment("", NewFixedJoint(""), nil)
	test.That(t, err, test.ShouldBeError, ErrEmptySegmentName)

	seg, err := NewSegment("link", NewFixedJoint(""), nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatial.PoseAlmostEqual(seg.Offset(), spatial.NewZeroPose()), test.ShouldBeTrue)
}

func TestSegmentTransform(t *testing.T) {
	j, err := NewRotationalJoint("j", r3.Vector{Z: 1})
	test.That(t, err, test.ShouldBeNil)
	seg, err := NewSegment("link", j, spatial.NewPoseFromPoint(r3.Vector{X: 1}))
	test.That(t, err, test.ShouldBeNil)

	// the offset is applied first, so the joint does not move the segment origin
	pose, err := seg.Transform([]Input{{math.Pi / 2}})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatial.R3VectorAlmostEqual(pose.Point(), r3.Vector{X: 1}, 1e-12), test.ShouldBeTrue)
	test.That(t, pose.Orientation().EulerAngles().Yaw, test.ShouldAlmostEqual, math.Pi/2)

	_, err = seg.Transform(nil)
	test.That(t, errors.Is(err, ErrDimensionMismatch), test.ShouldBeTrue)
	_, err = seg.Transform([]Input{{0}, {0}})
	test.That(t, errors.Is(err, ErrDimensionMismatch), test.ShouldBeTrue)
}
