// Package cli contains the kinchain command line tool for inspecting robot models and evaluating their forward
// kinematics.
package cli

import (
	"io"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"
)

const (
	// Flags.
	modelFlag   = "model"
	jsonFlag    = "json"
	jointsFlag  = "joints"
	segmentFlag = "segment"
	debugFlag   = "debug"
)

// NewApp returns a new app with the kinchain commands, Writer set to out, and ErrWriter set to errOut. Commands log
// to logger unless --debug is given, in which case they log to a debug logger.
func NewApp(out, errOut io.Writer, logger golog.Logger) *cli.App {
	modelFlagDef := &cli.StringFlag{
		Name:     modelFlag,
		Aliases:  []string{"m"},
		Usage:    "robot model, one of the names printed by `models`",
		Required: true,
	}
	return &cli.App{
		Name:            "kinchain",
		Usage:           "inspect robot arm models and compute their forward kinematics",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    debugFlag,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(debugFlag) {
				logger = golog.NewDebugLogger("kinchain")
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "models",
				Usage: "list the supported robot models",
				Action: func(c *cli.Context) error {
					return ModelsAction(c, logger)
				},
			},
			{
				Name:      "chain",
				Usage:     "print the segments of a robot model",
				UsageText: "kinchain chain --model <model> [--json]",
				Flags: []cli.Flag{
					modelFlagDef,
					&cli.BoolFlag{
						Name:  jsonFlag,
						Usage: "print the model specification as JSON",
					},
				},
				Action: func(c *cli.Context) error {
					return ChainAction(c, logger)
				},
			},
			{
				Name:      "limits",
				Usage:     "print the joint limits of a robot model",
				UsageText: "kinchain limits --model <model>",
				Flags:     []cli.Flag{modelFlagDef},
				Action: func(c *cli.Context) error {
					return LimitsAction(c, logger)
				},
			},
			{
				Name:  "fk",
				Usage: "compute the pose of a robot model for one or more joint vectors",
				UsageText: "kinchain fk --model <model> [--segment <index>] --joints q1,q2,... [q1,q2,... ...]\n\n" +
					"Joint values are in radians. Every positional argument is one more joint vector; " +
					"all vectors are evaluated concurrently and printed in the order given.",
				Flags: []cli.Flag{
					modelFlagDef,
					&cli.StringFlag{
						Name:    jointsFlag,
						Aliases: []string{"q"},
						Usage:   "comma separated joint values in radians, one per movable joint",
					},
					&cli.IntFlag{
						Name:  segmentFlag,
						Usage: "index of the segment whose pose to compute, -1 for the end of the chain",
						Value: -1,
					},
				},
				Action: func(c *cli.Context) error {
					return ForwardKinematicsAction(c, logger)
				},
			},
		},
	}
}
