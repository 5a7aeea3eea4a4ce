package robotmodels

import "go.viam.com/kinchain/referenceframe"

// iiwaPi is the value of pi the iiwa description was authored with.
const iiwaPi = 3.14159265359

// iiwaConfig describes the KUKA LBR iiwa 7 R800. Each offset locates a joint origin in the frame of the previous
// link; every joint turns about its local Z axis.
func iiwaConfig() *referenceframe.ModelConfig {
	return &referenceframe.ModelConfig{
		Name: Iiwa.String(),
		Segments: []referenceframe.SegmentConfig{
			{Name: "iiwa_link_0", Joint: fixed(), Offset: offset(0, 0, 0.15, nil)},
			{Name: "iiwa_link_1", Joint: rotationalZ("iiwa_joint_1")},
			{Name: "iiwa_link_2", Joint: rotationalZ("iiwa_joint_2"), Offset: offset(0, 0, 0.19, rpy(iiwaPi/2, 0, iiwaPi))},
			{Name: "iiwa_link_3", Joint: rotationalZ("iiwa_joint_3"), Offset: offset(0, 0.21, 0, rpy(iiwaPi/2, 0, iiwaPi))},
			{Name: "iiwa_link_4", Joint: rotationalZ("iiwa_joint_4"), Offset: offset(0, 0, 0.19, rpy(iiwaPi/2, 0, 0))},
			{Name: "iiwa_link_5", Joint: rotationalZ("iiwa_joint_5"), Offset: offset(0, 0.21, 0, rpy(-iiwaPi/2, iiwaPi, 0))},
			{Name: "iiwa_link_6", Joint: rotationalZ("iiwa_joint_6"), Offset: offset(0, 0.0607, 0.19, rpy(iiwaPi/2, 0, 0))},
			{Name: "iiwa_link_7", Joint: rotationalZ("iiwa_joint_7"), Offset: offset(0, 0.081, 0.0607, rpy(-iiwaPi/2, iiwaPi, 0))},
			{Name: "iiwa_link_ee", Joint: fixed(), Offset: offset(0, 0, 0.045, nil)},
		},
		Limits: referenceframe.LimitsConfig{
			Lower: []float64{
				-2.96705972839, -2.09439510239, -2.96705972839, -2.09439510239,
				-2.96705972839, -2.09439510239, -3.05432619099,
			},
			Upper: []float64{
				2.96705972839, 2.09439510239, 2.96705972839, 2.09439510239,
				2.96705972839, 2.09439510239, 3.05432619099,
			},
			MaxSpeed: []float64{10, 10, 10, 10, 10, 10, 10},
			// twice the Sawyer values
			MaxAccel: []float64{16, 16, 16, 16, 20, 20, 20},
		},
	}
}
