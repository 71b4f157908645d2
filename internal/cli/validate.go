package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/robot-models/robot-models/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <robot|file>",
	Short: "Validate a robot.yaml manifest",
	Long: `Validate a robot.yaml manifest against the embedded schema. The argument is
either a path to a manifest file or the name of an installed robot. Installed
robots are also checked against their directory name and stored format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, result, err := validateTarget(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !result.Valid {
			fmt.Fprintf(out, "%s: %s\n", path, result.Summary())
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "  %s [%s]\n", issue, issue.Keyword)
			}
			return fmt.Errorf("%s is invalid", path)
		}
		if len(result.Mismatches) > 0 {
			for _, mismatch := range result.Mismatches {
				fmt.Fprintf(out, "%s: %s\n", path, mismatch)
			}
			return fmt.Errorf("%s does not match its robot", path)
		}

		fmt.Fprintf(out, "%s: valid\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validateTarget validates an existing manifest file as-is. Anything else
// names a robot under the models root, whose manifest is also cross-checked
// against the installed description.
func validateTarget(arg string) (string, *manifest.ValidationResult, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		result, err := manifest.ValidateFile(arg)
		return arg, result, err
	}

	loc := newLocator()
	dir := filepath.Join(loc.Root(), arg)
	stored, err := loc.ResolveModelFile(arg)
	if err != nil {
		logger.Debug("skipping format cross-check", "robot", arg, "err", err)
		stored = ""
	}
	result, err := manifest.CheckInstalled(dir, stored)
	return filepath.Join(dir, manifest.FileName), result, err
}
