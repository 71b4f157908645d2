package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/robot-models/robot-models/convert"
	"github.com/robot-models/robot-models/internal/branding"
	"github.com/robot-models/robot-models/internal/config"
	"github.com/robot-models/robot-models/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootFlag    string
	verboseFlag bool

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: branding.CLIName()})
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` locates the robot description files (URDF or SDF) installed under
a models root, converts URDF to SDF on request, and prints the simulator
resource path needed to find their meshes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		return configureLogger(config.Get(config.KeyLogLevel), verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Models root directory (overrides "+branding.EnvVar(config.KeyRoot)+" and config)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// configureLogger applies the configured level; --verbose forces debug.
func configureLogger(level string, verbose bool) error {
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return nil
	}
	if level == "" {
		return nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", config.KeyLogLevel, level, err)
	}
	logger.SetLevel(lvl)
	return nil
}

// newLocator builds a Locator from the config file, environment and flags.
// A missing converter is not an error here; conversions report it when needed.
func newLocator() *models.Locator {
	s := config.Current()

	root := s.Root
	if rootFlag != "" {
		root = rootFlag
	}

	opts := []models.Option{
		models.WithRoot(root),
		models.WithResourceEnvVar(s.ResourceEnvVar),
		models.WithMeshModels(s.MeshModels),
		models.WithTempDir(s.TempDir),
		models.WithLogger(logger),
	}

	conv, err := convert.Lookup(s.Converter)
	if err != nil {
		logger.Debug("converter unavailable", "err", err)
	} else {
		logger.Debug("using converter", "binary", conv.Binary)
		opts = append(opts, models.WithConverter(conv))
	}

	return models.New(opts...)
}
