package referenceframe

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/kinchain/utils"
)

// Limit represents the range of motion of one joint.
type Limit struct {
	Min float64
	Max float64
}

func limitsAlmostEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	const epsilon = 1e-5
	for idx, x := range a {
		if !utils.Float64AlmostEqual(x, b[idx], epsilon) {
			return false
		}
	}

	return true
}

// JointLimits holds four parallel sequences indexed like the movable joints of a chain: lower and upper position
// bounds, and symmetric speed and acceleration bounds. JointLimits are immutable; forward kinematics never consults
// them, checking joint values against them is up to the caller.
type JointLimits struct {
	lower    []float64
	upper    []float64
	maxSpeed []float64
	maxAccel []float64
}

// NewJointLimits validates and copies the given bounds. All four slices must have the same length, every value must
// be finite, lower must not exceed upper, and speed and acceleration bounds must be non-negative.
func NewJointLimits(lower, upper, maxSpeed, maxAccel []float64) (*JointLimits, error) {
	n := len(lower)
	if len(upper) != n || len(maxSpeed) != n || len(maxAccel) != n {
		return nil, errors.Wrapf(ErrInvalidLimits, "mismatched lengths: lower %d, upper %d, speed %d, acceleration %d",
			n, len(upper), len(maxSpeed), len(maxAccel))
	}
	var errAll error
	for i := 0; i < n; i++ {
		for _, v := range []float64{lower[i], upper[i], maxSpeed[i], maxAccel[i]} {
			if !utils.IsFinite(v) {
				multierr.AppendInto(&errAll, NewInvalidLimitError(i, "bounds must be finite"))
				break
			}
		}
		if lower[i] > upper[i] {
			multierr.AppendInto(&errAll, NewInvalidLimitError(i, "lower bound exceeds upper bound"))
		}
		if maxSpeed[i] < 0 {
			multierr.AppendInto(&errAll, NewInvalidLimitError(i, "speed bound is negative"))
		}
		if maxAccel[i] < 0 {
			multierr.AppendInto(&errAll, NewInvalidLimitError(i, "acceleration bound is negative"))
		}
	}
	if errAll != nil {
		return nil, errAll
	}
	return &JointLimits{
		lower:    copyFloats(lower),
		upper:    copyFloats(upper),
		maxSpeed: copyFloats(maxSpeed),
		maxAccel: copyFloats(maxAccel),
	}, nil
}

func copyFloats(f []float64) []float64 {
	out := make([]float64, len(f))
	copy(out, f)
	return out
}

// Len returns the number of joints the limits describe.
func (jl *JointLimits) Len() int {
	return len(jl.lower)
}

// Lower returns the lower position bounds.
func (jl *JointLimits) Lower() []float64 {
	return copyFloats(jl.lower)
}

// Upper returns the upper position bounds.
func (jl *JointLimits) Upper() []float64 {
	return copyFloats(jl.upper)
}

// MaxSpeed returns the symmetric speed bounds.
func (jl *JointLimits) MaxSpeed() []float64 {
	return copyFloats(jl.maxSpeed)
}

// MaxAccel returns the symmetric acceleration bounds.
func (jl *JointLimits) MaxAccel() []float64 {
	return copyFloats(jl.maxAccel)
}

// Positions returns the position bounds as one Limit per joint.
func (jl *JointLimits) Positions() []Limit {
	limits := make([]Limit, 0, len(jl.lower))
	for i := range jl.lower {
		limits = append(limits, Limit{Min: jl.lower[i], Max: jl.upper[i]})
	}
	return limits
}

// CheckChain returns an error if the limits do not describe exactly the movable joints of the chain.
func (jl *JointLimits) CheckChain(c *Chain) error {
	if jl.Len() != c.DoF() {
		return errors.Wrapf(ErrInvalidLimits, "chain %q has %d movable joints but limits describe %d", c.Name(), c.DoF(), jl.Len())
	}
	return nil
}

// CheckPositions returns an error naming every joint value outside of its position bounds.
func (jl *JointLimits) CheckPositions(inputs []Input) error {
	if len(inputs) != jl.Len() {
		return NewIncorrectDoFError("limits", len(inputs), jl.Len())
	}
	var errAll error
	for i, in := range inputs {
		if in.Value < jl.lower[i] || in.Value > jl.upper[i] {
			multierr.AppendInto(&errAll, errors.Errorf("joint %d: %.5f %s [%.5f, %.5f]", i, in.Value, OOBErrString, jl.lower[i], jl.upper[i]))
		}
	}
	return errAll
}

// CheckVelocities returns an error naming every joint speed whose magnitude exceeds its bound.
func (jl *JointLimits) CheckVelocities(velocities []float64) error {
	return checkSymmetric("speed", velocities, jl.maxSpeed)
}

// CheckAccelerations returns an error naming every joint acceleration whose magnitude exceeds its bound.
func (jl *JointLimits) CheckAccelerations(accelerations []float64) error {
	return checkSymmetric("acceleration", accelerations, jl.maxAccel)
}

func checkSymmetric(kind string, values, bounds []float64) error {
	if len(values) != len(bounds) {
		return NewIncorrectDoFError(kind+" limits", len(values), len(bounds))
	}
	var errAll error
	for i, v := range values {
		if math.Abs(v) > bounds[i] {
			multierr.AppendInto(&errAll, errors.Errorf("joint %d: %s %.5f exceeds bound %.5f", i, kind, v, bounds[i]))
		}
	}
	return errAll
}

// RandomInputs will produce a list of valid, in-bounds inputs, one per joint.
func (jl *JointLimits) RandomInputs(rSeed *rand.Rand) []Input {
	if rSeed == nil {
		//nolint:gosec
		rSeed = rand.New(rand.NewSource(1))
	}
	pos := make([]Input, 0, jl.Len())
	for i := range jl.lower {
		jRange := jl.upper[i] - jl.lower[i]
		pos = append(pos, Input{rSeed.Float64()*jRange + jl.lower[i]})
	}
	return pos
}

// Midpoint returns the inputs halfway between the lower and upper bound of every joint.
func (jl *JointLimits) Midpoint() []Input {
	mid := make([]float64, jl.Len())
	floats.AddTo(mid, jl.lower, jl.upper)
	floats.Scale(0.5, mid)
	return FloatsToInputs(mid)
}

// AlmostEqual returns if the other limits are the same up to floating point imprecision.
func (jl *JointLimits) AlmostEqual(other *JointLimits) bool {
	return other != nil &&
		limitsAlmostEqual(jl.lower, other.lower) &&
		limitsAlmostEqual(jl.upper, other.upper) &&
		limitsAlmostEqual(jl.maxSpeed, other.maxSpeed) &&
		limitsAlmostEqual(jl.maxAccel, other.maxAccel)
}
