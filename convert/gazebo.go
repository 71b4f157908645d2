package convert

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/robot-models/robot-models/models"
)

// DefaultBinaries are the simulator tools probed by Lookup, in order.
var DefaultBinaries = []string{"gz", "ign"}

// Gazebo converts URDF to SDF with `<Binary> sdf -p <file>`.
type Gazebo struct {
	// Binary is the absolute path of the gz or ign executable.
	Binary string

	// TempDir holds the intermediate URDF file. Defaults to os.TempDir().
	TempDir string
}

// Ensure Gazebo implements models.Converter.
var _ models.Converter = (*Gazebo)(nil)

// Lookup returns a Gazebo converter for the first available binary. When
// binary is non-empty it is the only candidate. The returned error wraps
// models.ErrConversionUnavailable when no tool is found.
func Lookup(binary string) (*Gazebo, error) {
	candidates := DefaultBinaries
	if binary != "" {
		candidates = []string{binary}
	}

	for _, name := range candidates {
		path, err := exec.LookPath(name)
		if err == nil {
			return &Gazebo{Binary: path}, nil
		}
	}
	return nil, fmt.Errorf("%w: none of %s found in PATH", models.ErrConversionUnavailable, strings.Join(candidates, ", "))
}

// Convert writes urdf to a temporary file, runs the tool on it and returns
// the SDF it prints.
func (g *Gazebo) Convert(urdf string) (string, error) {
	dir := g.TempDir
	if dir == "" {
		dir = os.TempDir()
	}

	in, err := os.CreateTemp(dir, "convert-*.urdf")
	if err != nil {
		return "", fmt.Errorf("creating converter input: %w", err)
	}
	defer os.Remove(in.Name())

	if _, err := in.WriteString(urdf); err != nil {
		in.Close()
		return "", fmt.Errorf("writing converter input: %w", err)
	}
	if err := in.Close(); err != nil {
		return "", fmt.Errorf("closing converter input: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(g.Binary, "sdf", "-p", in.Name())
	cmd.Dir = filepath.Dir(in.Name())
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s sdf -p: %w\n%s", filepath.Base(g.Binary), err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return "", fmt.Errorf("%s sdf -p produced no output", filepath.Base(g.Binary))
	}
	return stdout.String(), nil
}
