package referenceframe

import (
	"github.com/pkg/errors"
)

// Chain is an ordered sequence of segments describing one serial manipulator, base to tip.
// A Chain is never mutated after construction and may be shared by any number of goroutines.
type Chain struct {
	name       string
	segments   []Segment
	jointNames []string
}

// NewChain builds a chain from segments given in composition order, base first. Segment names must be non-empty and
// unique, and so must the names of the rotational joints, which become the chain's joint names.
func NewChain(name string, segments ...Segment) (*Chain, error) {
	if len(segments) == 0 {
		return nil, errors.Wrapf(ErrEmptyChain, "chain %q", name)
	}
	seenSegments := make(map[string]bool, len(segments))
	seenJoints := make(map[string]bool, len(segments))
	jointNames := make([]string, 0, len(segments))
	for i, seg := range segments {
		if seg.name == "" {
			return nil, errors.Wrapf(ErrEmptySegmentName, "chain %q segment %d", name, i)
		}
		if seenSegments[seg.name] {
			return nil, NewDuplicateNameError("segment", seg.name)
		}
		seenSegments[seg.name] = true

		if seg.joint.jType != RotationalJoint {
			continue
		}
		if seg.joint.name == "" {
			return nil, errors.Errorf("chain %q: movable joint of segment %q has no name", name, seg.name)
		}
		if seenJoints[seg.joint.name] {
			return nil, NewDuplicateNameError("joint", seg.joint.name)
		}
		seenJoints[seg.joint.name] = true
		jointNames = append(jointNames, seg.joint.name)
	}

	c := &Chain{name: name, jointNames: jointNames}
	c.segments = append(c.segments, segments...)
	return c, nil
}

// Name returns the name of the chain.
func (c *Chain) Name() string {
	return c.name
}

// DoF returns the number of movable joints, which is the number of joint values Transform expects.
func (c *Chain) DoF() int {
	return len(c.jointNames)
}

// JointNames returns the names of the movable joints in chain order.
func (c *Chain) JointNames() []string {
	names := make([]string, len(c.jointNames))
	copy(names, c.jointNames)
	return names
}

// NumSegments returns the number of segments in the chain.
func (c *Chain) NumSegments() int {
	return len(c.segments)
}

// Segment returns the segment at index idx, base first.
func (c *Chain) Segment(idx int) (Segment, error) {
	if idx < 0 || idx >= len(c.segments) {
		return Segment{}, NewSegmentIndexError(c.name, idx, len(c.segments))
	}
	return c.segments[idx], nil
}

// Segments returns a copy of the segments in chain order.
func (c *Chain) Segments() []Segment {
	segs := make([]Segment, len(c.segments))
	copy(segs, c.segments)
	return segs
}

// AlmostEquals returns true if the only difference between this chain and another is floating point imprecision.
func (c *Chain) AlmostEquals(other *Chain) bool {
	if other == nil || c.name != other.name || len(c.segments) != len(other.segments) {
		return false
	}
	for idx, seg := range c.segments {
		if !seg.AlmostEquals(other.segments[idx]) {
			return false
		}
	}
	return true
}
