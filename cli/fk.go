package cli

import (
	"fmt"
	"strings"

	"github.com/edaniels/golog"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"go.viam.com/kinchain/referenceframe"
	"go.viam.com/kinchain/robotmodels"
	spatial "go.viam.com/kinchain/spatialmath"
)

// ForwardKinematicsAction computes the pose of a robot model for every joint vector given on the command line and
// prints each as a homogeneous matrix followed by its point and orientation.
func ForwardKinematicsAction(c *cli.Context, logger golog.Logger) error {
	model, err := modelFromContext(c)
	if err != nil {
		return err
	}
	var rawVectors []string
	if c.IsSet(jointsFlag) {
		rawVectors = append(rawVectors, c.String(jointsFlag))
	}
	rawVectors = append(rawVectors, c.Args().Slice()...)
	if len(rawVectors) == 0 {
		return errors.Errorf("no joint values given, use --%s or positional arguments", jointsFlag)
	}

	vectors := make([][]float64, 0, len(rawVectors))
	for _, raw := range rawVectors {
		v, err := parseJointVector(raw)
		if err != nil {
			return err
		}
		vectors = append(vectors, v)
	}

	chain, err := robotmodels.Chain(model)
	if err != nil {
		return err
	}
	limits, err := robotmodels.Limits(model)
	if err != nil {
		return err
	}
	segmentIdx := c.Int(segmentFlag)
	switch {
	case segmentIdx == -1:
		segmentIdx = chain.NumSegments() - 1
	case segmentIdx < 0:
		return errors.Errorf("--%s must be a segment index in [0, %d) or -1, got %d", segmentFlag, chain.NumSegments(), segmentIdx)
	}

	poses := make([]spatial.Pose, len(vectors))
	var g errgroup.Group
	for i, v := range vectors {
		i, v := i, v
		g.Go(func() error {
			inputs := referenceframe.FloatsToInputs(v)
			pose, err := chain.TransformToSegment(inputs, segmentIdx)
			if err != nil {
				return err
			}
			if err := limits.CheckPositions(inputs); err != nil {
				logger.Warnw("joint values outside of limits", "model", model.String(), "joints", v, "error", err)
			}
			poses[i] = pose
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Debugw("computed poses", "model", model.String(), "segment", segmentIdx, "count", len(poses))

	seg, err := chain.Segment(segmentIdx)
	if err != nil {
		return err
	}
	for i, pose := range poses {
		fmt.Fprintf(c.App.Writer, "%s %s joints %s\n", model, seg.Name(), formatFloats(vectors[i]))
		fmt.Fprintln(c.App.Writer, matrixTable(pose))
		fmt.Fprintln(c.App.Writer, spatial.PrettyPrint(pose))
	}
	return nil
}

// matrixTable renders the homogeneous transform of a pose.
func matrixTable(pose spatial.Pose) string {
	m := spatial.PoseToMat4(pose)
	t := table.NewWriter()
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	for row := 0; row < 4; row++ {
		cells := make(table.Row, 0, 4)
		for col := 0; col < 4; col++ {
			cells = append(cells, fmt.Sprintf("% .6f", m.At(row, col)))
		}
		t.AppendRow(cells)
	}
	return strings.TrimRight(t.Render(), "\n")
}
