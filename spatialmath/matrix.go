package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"go.viam.com/kinchain/utils"
)

// PoseToMat4 returns the homogeneous 4x4 matrix of a pose: the rotation in the upper left 3x3 block and the
// translation in the last column.
func PoseToMat4(p Pose) mgl64.Mat4 {
	rm := p.Orientation().RotationMatrix()
	pt := p.Point()
	return mgl64.Mat4FromCols(
		mgl64.Vec4{rm.At(0, 0), rm.At(1, 0), rm.At(2, 0), 0},
		mgl64.Vec4{rm.At(0, 1), rm.At(1, 1), rm.At(2, 1), 0},
		mgl64.Vec4{rm.At(0, 2), rm.At(1, 2), rm.At(2, 2), 0},
		mgl64.Vec4{pt.X, pt.Y, pt.Z, 1},
	)
}

// NewPoseFromMat4 builds a pose from a homogeneous 4x4 matrix. The upper left 3x3 block must be a rotation.
func NewPoseFromMat4(m mgl64.Mat4) Pose {
	rm := &RotationMatrix{[9]float64{
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
		m.At(2, 0), m.At(2, 1), m.At(2, 2),
	}}
	t := m.Col(3)
	return NewPose(r3.Vector{X: t[0], Y: t[1], Z: t[2]}, rm)
}

// Mat4AlmostEqual returns whether every entry of a and b differs by at most epsilon. Unlike
// mgl64.Mat4.ApproxEqualThreshold the tolerance is absolute, so entries that are zero up to rounding compare equal.
func Mat4AlmostEqual(a, b mgl64.Mat4, epsilon float64) bool {
	for i := range a {
		if !utils.Float64AlmostEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}
