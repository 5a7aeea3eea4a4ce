package referenceframe

import (
	"github.com/pkg/errors"
)

// OOBErrString is a string that all OOB errors should contain, so that they can be checked for distinct from other
// limit errors.
const OOBErrString = "input out of bounds"

var (
	// ErrDimensionMismatch is returned when the number of joint values does not match the number of movable joints.
	ErrDimensionMismatch = errors.New("joint value count does not match chain degrees of freedom")

	// ErrEmptyChain is returned when a chain is built without any segments.
	ErrEmptyChain = errors.New("chain must contain at least one segment")

	// ErrEmptySegmentName is returned when a segment is given an empty name.
	ErrEmptySegmentName = errors.New("segment name must not be empty")

	// ErrZeroAxis is returned when a rotational joint is declared about the zero vector.
	ErrZeroAxis = errors.New("cannot use zero vector as rotation axis")

	// ErrInvalidLimits is returned when joint limits are malformed.
	ErrInvalidLimits = errors.New("invalid joint limits")
)

// NewIncorrectDoFError returns an error indicating that the given number of joint values does not match the
// number of movable joints of the named chain or segment.
func NewIncorrectDoFError(name string, actual, expected int) error {
	return errors.Wrapf(ErrDimensionMismatch, "%q: given %d joint values, expected %d", name, actual, expected)
}

// NewDuplicateNameError returns an error indicating that a name appears twice in a chain.
func NewDuplicateNameError(kind, name string) error {
	return errors.Errorf("duplicate %s name %q", kind, name)
}

// NewUnknownJointTypeError returns an error for a joint type string that is neither fixed nor rotational.
func NewUnknownJointTypeError(jType string) error {
	return errors.Errorf("unsupported joint type %q, supported types are fixed and rotational", jType)
}

// NewSegmentIndexError returns an error for a segment index outside of a chain.
func NewSegmentIndexError(chain string, idx, numSegments int) error {
	return errors.Errorf("chain %q: segment index %d out of range [0, %d)", chain, idx, numSegments)
}

// NewInvalidLimitError returns an error describing a malformed limit entry of one joint.
func NewInvalidLimitError(joint int, reason string) error {
	return errors.Wrapf(ErrInvalidLimits, "joint %d: %s", joint, reason)
}
