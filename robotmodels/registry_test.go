package robotmodels

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"golang.org/x/sync/errgroup"

	"go.viam.com/kinchain/referenceframe"
	spatial "go.viam.com/kinchain/spatialmath"
)

var testJointVectors = [][]float64{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0.785, 0, -1.571, 0, 0.785, 0},
	{0, -0.785, -2.967, -1.571, 2.967, -0.785, 0},
	{0, 0.785, 0, -0.817, 0, 0.785, 0},
}

type goldenPose struct {
	rotation    [3][3]float64
	translation r3.Vector
}

// goldenPoses are the end effector poses at testJointVectors, computed by composing 4x4 homogeneous matrices.
var goldenPoses = map[RobotModel][]goldenPose{
	Iiwa: {
		{
			rotation:    [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			translation: r3.Vector{X: 0, Y: 0, Z: 1.266},
		},
		{
			rotation: [3][3]float64{
				{-0.999999824381, 0, 0.000592653555},
				{0, 1, 0},
				{-0.000592653555, 0, -0.999999824381},
			},
			translation: r3.Vector{X: 0.565702464048, Y: 0, Z: 0.214167632803},
		},
		{
			rotation: [3][3]float64{
				{-0.969695058904, -0.243815345399, -0.015670675984},
				{-0.243815345399, 0.969819733068, -0.001939767915},
				{0.015670675984, 0.001939767915, -0.999875325835},
			},
			translation: r3.Vector{X: -0.563300632811, Y: -0.069727208652, Z: 0.218481557518},
		},
		{
			rotation: [3][3]float64{
				{-0.728550632633, 0, 0.684991953011},
				{0, 1, 0},
				{-0.684991953011, 0, -0.728550632633},
			},
			translation: r3.Vector{X: 0.768844340477, Y: 0, Z: 0.518678484045},
		},
	},
	Sawyer: {
		{
			rotation: [3][3]float64{
				{1.857664e-06, -1.021438e-05, 0.999999999946},
				{-0.984808898787, -0.173641679529, 5.5802e-08},
				{0.173641679519, -0.984808898734, -1.0381781e-05},
			},
			translation: r3.Vector{X: 1.01549955443, Y: 0.160301378818, Z: 0.316996403031},
		},
		{
			rotation: [3][3]float64{
				{-0.000171783985, 0.00097459436, 0.999999510328},
				{-0.984808899425, -0.173641675911, 5.5801e-08},
				{0.173641590938, -0.984808417182, 0.000989618058},
			},
			translation: r3.Vector{X: 0.781127244456, Y: 0.160300517921, Z: 0.317414767413},
		},
		{
			rotation: [3][3]float64{
				{0.237666351627, 0.056213513365, 0.96971890062},
				{-0.955391702525, -0.166673514182, 0.243816805035},
				{0.175332256164, -0.984408441951, 0.01409323821},
			},
			translation: r3.Vector{X: 0.718834949915, Y: 0.59290325477, Z: 0.343382706955},
		},
		{
			rotation: [3][3]float64{
				{0.118743854407, -0.673449894083, 0.729633563647},
				{-0.984808462623, -0.173644153214, -9.373e-07},
				{0.126697233541, -0.718549196795, -0.683838330893},
			},
			translation: r3.Vector{X: 0.861885352088, Y: 0.160300814567, Z: -0.044910369129},
		},
	},
}

func TestModelNames(t *testing.T) {
	test.That(t, AllModels(), test.ShouldResemble, []RobotModel{Sawyer, Iiwa})
	for _, m := range AllModels() {
		parsed, err := ModelFromName(m.String())
		test.That(t, err, test.ShouldBeNil)
		test.That(t, parsed, test.ShouldEqual, m)
	}
	m, err := ModelFromName("IIWA")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m, test.ShouldEqual, Iiwa)

	_, err = ModelFromName("ur5e")
	test.That(t, errors.Is(err, ErrUnknownModel), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "ur5e")
}

func TestUnknownModel(t *testing.T) {
	bogus := RobotModel(42)
	test.That(t, bogus.String(), test.ShouldEqual, "unknown")

	c, err := Chain(bogus)
	test.That(t, c, test.ShouldBeNil)
	test.That(t, errors.Is(err, ErrUnknownModel), test.ShouldBeTrue)

	l, err := Limits(bogus)
	test.That(t, l, test.ShouldBeNil)
	test.That(t, errors.Is(err, ErrUnknownModel), test.ShouldBeTrue)

	_, err = Spec(RobotModel(-1))
	test.That(t, errors.Is(err, ErrUnknownModel), test.ShouldBeTrue)
}

func TestChainsAndLimits(t *testing.T) {
	for _, m := range AllModels() {
		t.Run(m.String(), func(t *testing.T) {
			c, err := Chain(m)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, c.Name(), test.ShouldEqual, m.String())
			test.That(t, c.DoF(), test.ShouldEqual, 7)
			test.That(t, c.NumSegments(), test.ShouldEqual, 9)
			test.That(t, len(c.JointNames()), test.ShouldEqual, c.DoF())

			again, err := Chain(m)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, c.AlmostEquals(again), test.ShouldBeTrue)

			limits, err := Limits(m)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, limits.Len(), test.ShouldEqual, c.DoF())
			test.That(t, limits.CheckChain(c), test.ShouldBeNil)
			for i, l := range limits.Positions() {
				test.That(t, l.Min, test.ShouldBeLessThanOrEqualTo, l.Max)
				test.That(t, limits.MaxSpeed()[i], test.ShouldBeGreaterThanOrEqualTo, 0)
				test.That(t, limits.MaxAccel()[i], test.ShouldBeGreaterThanOrEqualTo, 0)
			}
			test.That(t, limits.CheckPositions(limits.Midpoint()), test.ShouldBeNil)

			otherLimits, err := Limits(m)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, limits.AlmostEqual(otherLimits), test.ShouldBeTrue)
		})
	}
}

func TestSpecIsFresh(t *testing.T) {
	cfg, err := Spec(Iiwa)
	test.That(t, err, test.ShouldBeNil)
	cfg.Segments = cfg.Segments[:1]
	cfg.Limits.Lower[0] = 100

	cfg, err = Spec(Iiwa)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(cfg.Segments), test.ShouldEqual, 9)
	test.That(t, cfg.Limits.Lower[0], test.ShouldEqual, -2.96705972839)
}

func TestIiwaAccelerationIsTwiceSawyer(t *testing.T) {
	iiwa, err := Limits(Iiwa)
	test.That(t, err, test.ShouldBeNil)
	sawyer, err := Limits(Sawyer)
	test.That(t, err, test.ShouldBeNil)
	for i, a := range iiwa.MaxAccel() {
		test.That(t, a, test.ShouldEqual, 2*sawyer.MaxAccel()[i])
	}
}

func TestGoldenPoses(t *testing.T) {
	for _, m := range AllModels() {
		c, err := Chain(m)
		test.That(t, err, test.ShouldBeNil)
		for i, q := range testJointVectors {
			pose, err := referenceframe.ComputePose(c, q)
			test.That(t, err, test.ShouldBeNil)

			expected := goldenPoses[m][i]
			test.That(t, spatial.R3VectorAlmostEqual(pose.Point(), expected.translation, 1e-9), test.ShouldBeTrue)
			rm := pose.Orientation().RotationMatrix()
			for row := 0; row < 3; row++ {
				for col := 0; col < 3; col++ {
					test.That(t, rm.At(row, col), test.ShouldAlmostEqual, expected.rotation[row][col], 1e-9)
				}
			}
		}
	}
}

// homogeneousFromSpec evaluates a model by multiplying 4x4 matrices built straight from its literal specification.
func homogeneousFromSpec(cfg *referenceframe.ModelConfig, q []float64) mgl64.Mat4 {
	m := mgl64.Ident4()
	posIdx := 0
	for _, seg := range cfg.Segments {
		tr := seg.Offset.Translation
		m = m.Mul4(mgl64.Translate3D(tr.X, tr.Y, tr.Z))
		if ea := seg.Offset.RPY; ea != nil {
			m = m.Mul4(mgl64.HomogRotate3DZ(ea.Yaw)).Mul4(mgl64.HomogRotate3DY(ea.Pitch)).Mul4(mgl64.HomogRotate3DX(ea.Roll))
		}
		if seg.Joint.Type == referenceframe.RotationalJoint.String() {
			axis := seg.Joint.Axis
			m = m.Mul4(mgl64.HomogRotate3D(q[posIdx], mgl64.Vec3{axis.X, axis.Y, axis.Z}))
			posIdx++
		}
	}
	return m
}

func TestAgainstHomogeneousMatrices(t *testing.T) {
	for _, m := range AllModels() {
		cfg, err := Spec(m)
		test.That(t, err, test.ShouldBeNil)
		c, err := Chain(m)
		test.That(t, err, test.ShouldBeNil)
		limits, err := Limits(m)
		test.That(t, err, test.ShouldBeNil)

		//nolint:gosec
		rSeed := rand.New(rand.NewSource(3))
		vectors := append([][]float64{}, testJointVectors...)
		vectors = append(vectors, referenceframe.InputsToFloats(limits.Midpoint()))
		for i := 0; i < 20; i++ {
			vectors = append(vectors, referenceframe.InputsToFloats(limits.RandomInputs(rSeed)))
		}
		for _, q := range vectors {
			pose, err := referenceframe.ComputePose(c, q)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, spatial.Mat4AlmostEqual(spatial.PoseToMat4(pose), homogeneousFromSpec(cfg, q), 1e-9), test.ShouldBeTrue)
		}
	}
}

func TestZeroVectorIsFixedComposition(t *testing.T) {
	for _, m := range AllModels() {
		c, err := Chain(m)
		test.That(t, err, test.ShouldBeNil)

		expected := spatial.NewZeroPose()
		for _, seg := range c.Segments() {
			expected = spatial.Compose(expected, seg.Offset())
		}
		pose, err := c.Transform(make([]referenceframe.Input, c.DoF()))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, pose.Point(), test.ShouldResemble, expected.Point())
		test.That(t, pose.Orientation().Quaternion(), test.ShouldResemble, expected.Orientation().Quaternion())
	}
}

func TestDimensionMismatch(t *testing.T) {
	for _, m := range AllModels() {
		c, err := Chain(m)
		test.That(t, err, test.ShouldBeNil)
		for _, n := range []int{c.DoF() - 1, c.DoF() + 1} {
			pose, err := referenceframe.ComputePose(c, make([]float64, n))
			test.That(t, pose, test.ShouldBeNil)
			test.That(t, errors.Is(err, referenceframe.ErrDimensionMismatch), test.ShouldBeTrue)
		}
	}
}

func TestOrderSensitivity(t *testing.T) {
	cfg, err := Spec(Iiwa)
	test.That(t, err, test.ShouldBeNil)
	cfg.Segments[2].Joint.Axis = r3.Vector{X: 1}
	cfg.Segments[4].Joint.Axis = r3.Vector{Y: 1}
	a, err := cfg.ParseChain()
	test.That(t, err, test.ShouldBeNil)

	cfg.Segments[2].Joint.Axis, cfg.Segments[4].Joint.Axis = cfg.Segments[4].Joint.Axis, cfg.Segments[2].Joint.Axis
	b, err := cfg.ParseChain()
	test.That(t, err, test.ShouldBeNil)

	q := testJointVectors[1]
	poseA, err := referenceframe.ComputePose(a, q)
	test.That(t, err, test.ShouldBeNil)
	poseB, err := referenceframe.ComputePose(b, q)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatial.PoseAlmostEqual(poseA, poseB), test.ShouldBeFalse)
}

func TestConcurrentEvaluation(t *testing.T) {
	c, err := Chain(Sawyer)
	test.That(t, err, test.ShouldBeNil)

	results := make([]spatial.Pose, 64)
	var g errgroup.Group
	for i := range results {
		i := i
		g.Go(func() error {
			pose, err := referenceframe.ComputePose(c, testJointVectors[i%len(testJointVectors)])
			results[i] = pose
			return err
		})
	}
	test.That(t, g.Wait(), test.ShouldBeNil)
	for i, pose := range results {
		expected, err := referenceframe.ComputePose(c, testJointVectors[i%len(testJointVectors)])
		test.That(t, err, test.ShouldBeNil)
		test.That(t, pose.Point(), test.ShouldResemble, expected.Point())
		test.That(t, pose.Orientation().Quaternion(), test.ShouldResemble, expected.Orientation().Quaternion())
	}
}
