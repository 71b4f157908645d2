package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	testURDF = `<?xml version="1.0"?>
<robot name="arm">
  <link name="base_link"/>
</robot>
`
	testSDF = `<?xml version="1.0"?>
<sdf version="1.7">
  <model name="ground"/>
</sdf>
`
)

// writeFile creates path (and its parents) with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// setupRoot builds an installation root with:
//
//	arm/             urdf/arm.urdf + meshes
//	ground/          ground.sdf
//	__pycache__/     reserved, ignored
//	README.md        plain file, ignored
func setupRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "arm", "urdf", "arm.urdf"), testURDF)
	writeFile(t, filepath.Join(root, "arm", "meshes", "base.stl"), "solid base\nendsolid base\n")
	writeFile(t, filepath.Join(root, "arm", "model.config"), "<model><name>arm</name></model>\n")
	writeFile(t, filepath.Join(root, "ground", "ground.sdf"), testSDF)
	writeFile(t, filepath.Join(root, "__pycache__", "stale.urdf"), testURDF)
	writeFile(t, filepath.Join(root, "README.md"), "# models\n")

	return root
}

// upperConverter is a deterministic stand-in for a real URDF to SDF tool.
var upperConverter = ConverterFunc(func(urdf string) (string, error) {
	return "<sdf>" + strings.ToUpper(urdf) + "</sdf>", nil
})
