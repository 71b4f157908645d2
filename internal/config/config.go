package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/robot-models/robot-models/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognised configuration keys.
const (
	KeyRoot           = "root"
	KeyResourceEnvVar = "resource_env_var"
	KeyMeshModels     = "mesh_models"
	KeyConverter      = "converter"
	KeyTempDir        = "temp_dir"
	KeyLogLevel       = "log_level"
)

// Keys lists every recognised key, in display order.
var Keys = []string{KeyRoot, KeyResourceEnvVar, KeyMeshModels, KeyConverter, KeyTempDir, KeyLogLevel}

// Settings is the resolved configuration.
type Settings struct {
	// Root overrides the installation root. Empty means the executable-relative default.
	Root string
	// ResourceEnvVar is the simulator resource path variable.
	ResourceEnvVar string
	// MeshModels are the robots appended to the resource path.
	MeshModels []string
	// Converter names the gz/ign binary. Empty means probe PATH.
	Converter string
	// TempDir holds converted temporary files. Empty means os.TempDir().
	TempDir string
	// LogLevel is a charmbracelet/log level name.
	LogLevel string
}

// Dir returns the path to the config directory (~/.robot-models/).
// ROBOT_MODELS_HOME overrides it.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.robot-models/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyResourceEnvVar, branding.ResourceEnvVar())
	viper.SetDefault(KeyMeshModels, branding.MeshModels())
	viper.SetDefault(KeyLogLevel, "warn")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetStringSlice returns a list value. A plain string from the environment is
// split on whitespace.
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}

// IsKnown reports whether key is a recognised configuration key.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Current folds the config file, environment and defaults into Settings.
// Load must have been called.
func Current() Settings {
	return Settings{
		Root:           Get(KeyRoot),
		ResourceEnvVar: Get(KeyResourceEnvVar),
		MeshModels:     GetStringSlice(KeyMeshModels),
		Converter:      Get(KeyConverter),
		TempDir:        Get(KeyTempDir),
		LogLevel:       Get(KeyLogLevel),
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
