package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/kinchain/robotmodels"
)

// modelFromContext returns the robot model named by the --model flag.
func modelFromContext(c *cli.Context) (robotmodels.RobotModel, error) {
	model, err := robotmodels.ModelFromName(c.String(modelFlag))
	if err != nil {
		names := make([]string, 0, len(robotmodels.AllModels()))
		for _, m := range robotmodels.AllModels() {
			names = append(names, m.String())
		}
		return 0, errors.Wrapf(err, "supported models are %s", strings.Join(names, ", "))
	}
	return model, nil
}

// parseJointVector parses a comma separated list of joint values.
func parseJointVector(raw string) ([]float64, error) {
	fields := strings.Split(raw, ",")
	values := make([]float64, 0, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			return nil, errors.Errorf("joint vector %q: value %d is empty", raw, i)
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "joint vector %q: value %d", raw, i)
		}
		values = append(values, v)
	}
	return values, nil
}

func formatFloats(values []float64) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
