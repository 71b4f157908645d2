package cli

import (
	"fmt"

	"github.com/robot-models/robot-models/convert"
	"github.com/robot-models/robot-models/internal/config"
	"github.com/robot-models/robot-models/internal/doctor"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the models installation",
	Long: `Check that the models root and mesh-bearing robots exist, that every robot
has exactly one description file, that robot.yaml manifests are valid, and
that a URDF to SDF converter is available.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc := newLocator()

		var opts doctor.Options
		if conv, err := convert.Lookup(config.Get(config.KeyConverter)); err != nil {
			opts.ConverterErr = err
		} else {
			opts.ConverterName = conv.Binary
		}

		report := doctor.Check(cmd.OutOrStdout(), loc, opts)
		if !report.OK() {
			return fmt.Errorf("%d check(s) failed", report.Failures)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
