package cli

import (
	"fmt"

	"github.com/edaniels/golog"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"go.viam.com/kinchain/referenceframe"
	"go.viam.com/kinchain/robotmodels"
	"go.viam.com/kinchain/utils"
)

// ModelsAction prints every supported robot model with its degrees of freedom.
func ModelsAction(c *cli.Context, logger golog.Logger) error {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Model", "DoF", "Segments", "Joints"})
	for _, m := range robotmodels.AllModels() {
		chain, err := robotmodels.Chain(m)
		if err != nil {
			return err
		}
		logger.Debugw("built chain", "model", m.String(), "segments", chain.NumSegments())
		t.AppendRow(table.Row{m.String(), chain.DoF(), chain.NumSegments(), fmt.Sprint(chain.JointNames())})
	}
	fmt.Fprintln(c.App.Writer, t.Render())
	return nil
}

// ChainAction prints the segments of a robot model, or its specification as JSON.
func ChainAction(c *cli.Context, logger golog.Logger) error {
	model, err := modelFromContext(c)
	if err != nil {
		return err
	}
	if c.Bool(jsonFlag) {
		cfg, err := robotmodels.Spec(model)
		if err != nil {
			return err
		}
		return printJSON(c.App.Writer, cfg)
	}

	chain, err := robotmodels.Chain(model)
	if err != nil {
		return err
	}
	logger.Debugw("printing chain", "model", model.String(), "dof", chain.DoF())
	fmt.Fprintln(c.App.Writer, chainTable(chain))
	return nil
}

// chainTable renders one row per segment, with columns of name, joint, axis, translation and orientation.
func chainTable(chain *referenceframe.Chain) string {
	t := table.NewWriter()
	t.SetTitle(chain.Name())
	t.AppendHeader(table.Row{"#", "Segment", "Joint", "Type", "Axis", "Translation", "Orientation"})
	for i, seg := range chain.Segments() {
		joint := seg.Joint()
		axis := ""
		if joint.Type() == referenceframe.RotationalJoint {
			a := joint.Axis()
			axis = fmt.Sprintf("X:%g, Y:%g, Z:%g", a.X, a.Y, a.Z)
		}
		tra := seg.Offset().Point()
		ori := seg.Offset().Orientation().EulerAngles()
		t.AppendRow(table.Row{
			i,
			seg.Name(),
			joint.Name(),
			joint.Type().String(),
			axis,
			fmt.Sprintf("X:%.4f, Y:%.4f, Z:%.4f", tra.X, tra.Y, tra.Z),
			fmt.Sprintf(
				"Roll:%.2f, Pitch:%.2f, Yaw:%.2f",
				utils.RadToDeg(ori.Roll),
				utils.RadToDeg(ori.Pitch),
				utils.RadToDeg(ori.Yaw),
			),
		})
	}
	return t.Render()
}

// LimitsAction prints the joint limits of a robot model.
func LimitsAction(c *cli.Context, logger golog.Logger) error {
	model, err := modelFromContext(c)
	if err != nil {
		return err
	}
	chain, err := robotmodels.Chain(model)
	if err != nil {
		return err
	}
	limits, err := robotmodels.Limits(model)
	if err != nil {
		return err
	}
	logger.Debugw("printing limits", "model", model.String(), "joints", limits.Len())

	t := table.NewWriter()
	t.SetTitle(model.String())
	t.AppendHeader(table.Row{"Joint", "Lower", "Upper", "Max speed", "Max accel"})
	names := chain.JointNames()
	speeds := limits.MaxSpeed()
	accels := limits.MaxAccel()
	for i, l := range limits.Positions() {
		t.AppendRow(table.Row{names[i], l.Min, l.Max, speeds[i], accels[i]})
	}
	fmt.Fprintln(c.App.Writer, t.Render())
	return nil
}
