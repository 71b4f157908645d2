package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var envExport bool

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the simulator resource path",
	Long: `Print the simulator resource path variable with the models root and the
mesh-bearing robot directories appended to its current value.

  eval "$(robot-models env --export)"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc := newLocator()
		if err := loc.ConfigureEnvironment(); err != nil {
			return err
		}

		name := loc.ResourceEnvVar()
		value := os.Getenv(name)
		if envExport {
			fmt.Fprintf(cmd.OutOrStdout(), "export %s=%s\n", name, shellQuote(value))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, value)
		return nil
	},
}

func init() {
	envCmd.Flags().BoolVar(&envExport, "export", false, "Print a shell export statement")
	rootCmd.AddCommand(envCmd)
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
