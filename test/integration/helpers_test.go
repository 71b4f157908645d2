//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testResourceVar = "ROBOT_MODELS_IT_RESOURCE_PATH"

// setupInstall lays out a synthetic models root shaped like a packaged
// release: the three mesh-bearing robots, one SDF-only robot, and the
// interpreter cache the packager leaves behind.
func setupInstall(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	writeFile(t, filepath.Join(root, "panda", "urdf", "panda.urdf"), pandaURDF)
	writeFile(t, filepath.Join(root, "panda", "meshes", "visual", "link0.dae"), "<COLLADA/>")
	writeFile(t, filepath.Join(root, "panda", "robot.yaml"), `name: panda
version: "1.0.0"
description: Franka Emika Panda
format: urdf
meshes: true
`)

	for _, name := range []string{"iCubGazeboV2_5", "iCubGazeboSimpleCollisionsV2_5"} {
		writeFile(t, filepath.Join(root, name, name+".urdf"), `<robot name="`+name+`"><link name="root_link"/></robot>`)
		writeFile(t, filepath.Join(root, name, "meshes", "sim_sea_2-5_root_link_prt.stl"), "solid root")
	}

	writeFile(t, filepath.Join(root, "ground_plane", "model.sdf"), `<?xml version="1.0"?>
<sdf version="1.7"><model name="ground_plane"><static>true</static></model></sdf>
`)
	writeFile(t, filepath.Join(root, "__pycache__", "__init__.cpython-311.pyc"), "")

	return root
}

const pandaURDF = `<?xml version="1.0"?>
<robot name="panda">
  <link name="panda_link0">
    <inertial>
      <mass value="2.9"/>
      <inertia ixx="0.1" ixy="0" ixz="0" iyy="0.1" iyz="0" izz="0.1"/>
    </inertial>
  </link>
</robot>
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
