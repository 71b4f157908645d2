// Package branding provides compile-time identity values for the CLI.
//
// Packagers edit branding.yaml in this directory before building; Go's
// //go:embed bakes it into the binary. Hard-coded defaults apply to any key
// the file leaves out.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string   `yaml:"cli_name"`
	DisplayName    string   `yaml:"display_name"`
	Description    string   `yaml:"description"`
	HomeDir        string   `yaml:"home_dir"`
	EnvPrefix      string   `yaml:"env_prefix"`
	GoModule       string   `yaml:"go_module"`
	ResourceEnvVar string   `yaml:"resource_env_var"`
	MeshModels     []string `yaml:"mesh_models"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:        "robot-models",
			DisplayName:    "Robot Models",
			Description:    "Locate packaged robot description files for simulation",
			HomeDir:        ".robot-models",
			EnvPrefix:      "ROBOT_MODELS",
			GoModule:       "github.com/robot-models/robot-models",
			ResourceEnvVar: "IGN_GAZEBO_RESOURCE_PATH",
			MeshModels:     []string{"panda", "iCubGazeboV2_5", "iCubGazeboSimpleCollisionsV2_5"},
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "robot-models").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".robot-models").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "ROBOT_MODELS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// ResourceEnvVar returns the default simulator resource path variable.
func ResourceEnvVar() string { load(); return defaults.ResourceEnvVar }

// MeshModels returns a copy of the default mesh-bearing robot list.
func MeshModels() []string {
	load()
	return append([]string(nil), defaults.MeshModels...)
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("ROOT") → "ROBOT_MODELS_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
