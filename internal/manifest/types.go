package manifest

// FileName is the metadata file looked up in each robot directory.
const FileName = "robot.yaml"

// Description formats a manifest may declare.
const (
	FormatURDF = "urdf"
	FormatSDF  = "sdf"
)

// RobotManifest describes an installed robot.
type RobotManifest struct {
	Name        string   `yaml:"name" json:"name"`
	Version     string   `yaml:"version" json:"version"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Format      string   `yaml:"format,omitempty" json:"format,omitempty"`
	Meshes      bool     `yaml:"meshes,omitempty" json:"meshes,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	License     string   `yaml:"license,omitempty" json:"license,omitempty"`
	Authors     []Author `yaml:"authors,omitempty" json:"authors,omitempty"`
}

// Author credits a maintainer of the robot model.
type Author struct {
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
}
