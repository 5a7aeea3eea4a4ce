package referenceframe

import (
	"fmt"

	spatial "go.viam.com/kinchain/spatialmath"
)

// ComputePose takes a chain and a list of joint angles in radians, one per movable joint, and computes the pose of
// the end of the chain relative to its base.
func ComputePose(c *Chain, jointValues []float64) (spatial.Pose, error) {
	return c.Transform(FloatsToInputs(jointValues))
}

// Transform computes the pose of the last segment's distal frame relative to the base of the chain.
// inputs must contain exactly one value per movable joint; nothing is evaluated otherwise.
func (c *Chain) Transform(inputs []Input) (spatial.Pose, error) {
	return c.TransformToSegment(inputs, len(c.segments)-1)
}

// TransformToSegment computes the pose of the distal frame of the segment at segmentIdx relative to the base of the
// chain. The full joint vector is required even though joints past the segment do not contribute.
func (c *Chain) TransformToSegment(inputs []Input, segmentIdx int) (spatial.Pose, error) {
	if len(inputs) != c.DoF() {
		return nil, NewIncorrectDoFError(c.name, len(inputs), c.DoF())
	}
	if segmentIdx < 0 || segmentIdx >= len(c.segments) {
		return nil, NewSegmentIndexError(c.name, segmentIdx, len(c.segments))
	}
	composed := spatial.NewZeroPose()
	posIdx := 0
	for _, seg := range c.segments[:segmentIdx+1] {
		composed, posIdx = seg.compose(composed, inputs, posIdx)
	}
	return composed, nil
}

// SegmentPoses computes the pose of every segment's distal frame relative to the base of the chain, in chain order.
// The last entry equals the result of Transform.
func (c *Chain) SegmentPoses(inputs []Input) ([]spatial.Pose, error) {
	if len(inputs) != c.DoF() {
		return nil, NewIncorrectDoFError(c.name, len(inputs), c.DoF())
	}
	poses := make([]spatial.Pose, 0, len(c.segments))
	composed := spatial.NewZeroPose()
	posIdx := 0
	for _, seg := range c.segments {
		composed, posIdx = seg.compose(composed, inputs, posIdx)
		poses = append(poses, composed)
	}
	return poses, nil
}

// compose right-multiplies the accumulated pose by the segment's offset and then, for a rotational joint, by the
// rotation of inputs[posIdx] about the joint axis. It returns the new pose and the index of the next unconsumed
// input. Callers have already checked the input count.
func (s Segment) compose(acc spatial.Pose, inputs []Input, posIdx int) (spatial.Pose, int) {
	acc = spatial.Compose(acc, s.offset)
	switch s.joint.jType {
	case FixedJoint:
		return acc, posIdx
	case RotationalJoint:
		return spatial.Compose(acc, s.joint.rotation(inputs[posIdx].Value)), posIdx + 1
	}
	// joints can only be built through NewFixedJoint and NewRotationalJoint
	panic(fmt.Sprintf("segment %q has unknown joint type %d", s.name, int(s.joint.jType)))
}
