package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

const testResourceVar = "ROBOT_MODELS_CLI_TEST_RESOURCE_PATH"

// testEnv isolates a CLI run: a synthetic models root, an empty config home,
// and a PATH with no converter on it.
type testEnv struct {
	Root    string
	Home    string
	TempDir string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		Root:    t.TempDir(),
		Home:    t.TempDir(),
		TempDir: t.TempDir(),
	}

	writeFile(t, filepath.Join(env.Root, "arm", "urdf", "arm.urdf"), "<robot name=\"arm\"/>\n")
	writeFile(t, filepath.Join(env.Root, "arm", "meshes", "base.stl"), "solid base")
	writeFile(t, filepath.Join(env.Root, "arm", "robot.yaml"), `name: arm
version: "1.2.0"
description: Two-link test arm
format: urdf
meshes: true
tags: [test]
`)
	writeFile(t, filepath.Join(env.Root, "ground", "ground.sdf"), `<sdf version="1.7"/>`)
	writeFile(t, filepath.Join(env.Root, "__pycache__", "stale.urdf"), "<robot/>")

	t.Setenv("ROBOT_MODELS_HOME", env.Home)
	t.Setenv("ROBOT_MODELS_ROOT", env.Root)
	t.Setenv("ROBOT_MODELS_TEMP_DIR", env.TempDir)
	t.Setenv("ROBOT_MODELS_MESH_MODELS", "arm")
	t.Setenv("ROBOT_MODELS_RESOURCE_ENV_VAR", testResourceVar)
	t.Setenv("ROBOT_MODELS_CONVERTER", "")
	t.Setenv("PATH", t.TempDir())

	return env
}

// installFakeGz puts a gz stand-in on PATH that wraps its input in <sdf>.
func installFakeGz(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\necho \"<sdf>\"\nwhile IFS= read -r line || [ -n \"$line\" ]; do echo \"$line\"; done < \"$3\"\necho \"</sdf>\"\n"
	if err := os.WriteFile(filepath.Join(dir, "gz"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	rootFlag, verboseFlag = "", false
	listConstraint, listJSON = "", false
	pathFormat, showFormat = "urdf", "urdf"
	envExport, describeJSON = false, false
	versionShort, versionJSON = false, false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
