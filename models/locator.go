package models

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultResourceEnvVar is the simulator resource path variable that
// ConfigureEnvironment appends to.
const DefaultResourceEnvVar = "IGN_GAZEBO_RESOURCE_PATH"

// DefaultMeshModels lists the robots whose directories must be on the
// simulator resource path so their mesh files resolve.
var DefaultMeshModels = []string{
	"panda",
	"iCubGazeboV2_5",
	"iCubGazeboSimpleCollisionsV2_5",
}

// Converter turns URDF text into SDF text.
type Converter interface {
	Convert(urdf string) (string, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(urdf string) (string, error)

// Convert calls f(urdf).
func (f ConverterFunc) Convert(urdf string) (string, error) { return f(urdf) }

// Locator resolves robot names to description files under an installation root.
type Locator struct {
	root       string
	converter  Converter
	tempDir    string
	envVar     string
	meshModels []string
	logger     *log.Logger
}

// Option configures a Locator.
type Option func(*Locator)

// WithRoot sets the installation root. Defaults to RootPath().
func WithRoot(dir string) Option {
	return func(l *Locator) {
		if dir != "" {
			l.root = dir
		}
	}
}

// WithConverter enables URDF to SDF conversion. A nil converter leaves
// conversion unavailable.
func WithConverter(c Converter) Option {
	return func(l *Locator) {
		l.converter = c
	}
}

// WithTempDir sets the directory for converted temporary files.
// Defaults to os.TempDir().
func WithTempDir(dir string) Option {
	return func(l *Locator) {
		l.tempDir = dir
	}
}

// WithResourceEnvVar sets the variable ConfigureEnvironment appends to.
func WithResourceEnvVar(name string) Option {
	return func(l *Locator) {
		if name != "" {
			l.envVar = name
		}
	}
}

// WithMeshModels replaces the list of mesh-bearing robots.
func WithMeshModels(names []string) Option {
	return func(l *Locator) {
		l.meshModels = append([]string(nil), names...)
	}
}

// WithLogger sets a logger for debug output. If not set, logging is disabled.
func WithLogger(logger *log.Logger) Option {
	return func(l *Locator) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Locator. The root is made absolute and normalised to end in
// a separator; its existence is not checked.
func New(opts ...Option) *Locator {
	l := &Locator{
		envVar:     DefaultResourceEnvVar,
		meshModels: append([]string(nil), DefaultMeshModels...),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.root == "" {
		l.root = RootPath()
	}
	if abs, err := filepath.Abs(l.root); err == nil {
		l.root = abs
	}
	l.root = withTrailingSeparator(l.root)
	if l.tempDir == "" {
		l.tempDir = os.TempDir()
	}
	return l
}

// Root returns the installation root with a trailing separator.
func (l *Locator) Root() string { return l.root }

// ResourceEnvVar returns the name of the simulator resource path variable.
func (l *Locator) ResourceEnvVar() string { return l.envVar }

// MeshModels returns a copy of the mesh-bearing robot list.
func (l *Locator) MeshModels() []string { return append([]string(nil), l.meshModels...) }

// CanConvert reports whether a converter is configured.
func (l *Locator) CanConvert() bool { return l.converter != nil }

// robotDir returns the directory of a robot under the root.
func (l *Locator) robotDir(name string) string {
	return filepath.Join(l.root, name)
}
