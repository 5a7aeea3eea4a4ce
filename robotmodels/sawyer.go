package robotmodels

import "go.viam.com/kinchain/referenceframe"

func sawyerConfig() *referenceframe.ModelConfig {
	return &referenceframe.ModelConfig{
		Name: Sawyer.String(),
		Segments: []referenceframe.SegmentConfig{
			{Name: "right_arm_base_link", Joint: fixed()},
			{Name: "right_l0", Joint: rotationalZ("right_j0"), Offset: offset(0, 0, 0.08, nil)},
			{Name: "right_l1", Joint: rotationalZ("right_j1"), Offset: offset(0.081, 0.05, 0.237, rpy(-1.5708, 1.5708, 0))},
			{Name: "right_l2", Joint: rotationalZ("right_j2"), Offset: offset(0, -0.14, 0.1425, rpy(1.5708, 0, 0))},
			{Name: "right_l3", Joint: rotationalZ("right_j3"), Offset: offset(0, -0.042, 0.26, rpy(-1.5708, 0, 0))},
			{Name: "right_l4", Joint: rotationalZ("right_j4"), Offset: offset(0, -0.125, -0.1265, rpy(1.5708, 0, 0))},
			{Name: "right_l5", Joint: rotationalZ("right_j5"), Offset: offset(0, 0.031, 0.275, rpy(-1.5708, 0, 0))},
			{Name: "right_l6", Joint: rotationalZ("right_j6"), Offset: offset(0, -0.11, 0.1053, rpy(-1.5708, -0.17453, 3.1416))},
			{Name: "right_hand", Joint: fixed(), Offset: offset(0, 0, 0.0245, rpy(0, 0, 1.5708))},
		},
		Limits: referenceframe.LimitsConfig{
			Lower:    []float64{-3.0503, -3.8095, -3.0426, -3.0439, -2.9761, -2.9761, -4.7124},
			Upper:    []float64{3.0503, 2.2736, 3.0426, 3.0439, 2.9761, 2.9761, 4.7124},
			MaxSpeed: []float64{1.74, 1.328, 1.957, 1.957, 3.485, 3.485, 4.545},
			MaxAccel: []float64{8, 8, 8, 8, 10, 10, 10},
		},
	}
}
