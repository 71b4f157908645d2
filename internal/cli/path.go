package cli

import (
	"fmt"

	"github.com/robot-models/robot-models/models"
	"github.com/spf13/cobra"
)

var pathFormat string

var pathCmd = &cobra.Command{
	Use:   "path <robot>",
	Short: "Print the path of a robot's description file",
	Long: `Print the path of a robot's description file in the requested format.

When the stored format differs from --format, the converted description is
written to a temporary file. That file is not removed; delete it when done.

  robot-models path panda              # stored URDF
  robot-models path panda --format sdf # converted, temporary`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := models.ParseFormat(pathFormat)
		if err != nil {
			return err
		}

		p, err := newLocator().ModelPath(args[0], format)
		if err != nil {
			return err
		}
		if p.Temporary() {
			fmt.Fprintf(cmd.ErrOrStderr(), "Converted to a temporary file; remove it when done.\n")
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.Path())
		return nil
	},
}

func init() {
	pathCmd.Flags().StringVar(&pathFormat, "format", "urdf", "Description format (urdf, sdf)")
	rootCmd.AddCommand(pathCmd)
}
