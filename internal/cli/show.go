package cli

import (
	"fmt"
	"io"

	"github.com/robot-models/robot-models/models"
	"github.com/spf13/cobra"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show <robot>",
	Short: "Print a robot's description",
	Long: `Print a robot's description in the requested format. URDF-stored robots
can be shown as SDF when gz or ign is available; SDF cannot be shown as URDF.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := models.ParseFormat(showFormat)
		if err != nil {
			return err
		}

		f, err := newLocator().ModelFile(args[0], format)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := io.Copy(cmd.OutOrStdout(), f); err != nil {
			return fmt.Errorf("writing %s description: %w", args[0], err)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "urdf", "Description format (urdf, sdf)")
	rootCmd.AddCommand(showCmd)
}
