package models

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveModelFile(t *testing.T) {
	root := setupRoot(t)
	loc := New(WithRoot(root))

	tests := []struct {
		robot string
		want  string
	}{
		{"arm", filepath.Join(root, "arm", "urdf", "arm.urdf")},
		{"ground", filepath.Join(root, "ground", "ground.sdf")},
	}

	for _, tt := range tests {
		t.Run(tt.robot, func(t *testing.T) {
			got, err := loc.ResolveModelFile(tt.robot)
			if err != nil {
				t.Fatalf("ResolveModelFile(%q): %v", tt.robot, err)
			}
			if !filepath.IsAbs(got) {
				t.Errorf("ResolveModelFile(%q) = %q, want absolute path", tt.robot, got)
			}
			if got != tt.want {
				t.Errorf("ResolveModelFile(%q) = %q, want %q", tt.robot, got, tt.want)
			}
		})
	}
}

func TestResolveModelFile_EveryListedRobot(t *testing.T) {
	loc := New(WithRoot(setupRoot(t)))

	names, err := loc.ListRobots()
	if err != nil {
		t.Fatalf("ListRobots: %v", err)
	}
	for _, name := range names {
		path, err := loc.ResolveModelFile(name)
		if err != nil {
			t.Errorf("ResolveModelFile(%q): %v", name, err)
			continue
		}
		if !strings.HasSuffix(path, ExtURDF) && !strings.HasSuffix(path, ExtSDF) {
			t.Errorf("ResolveModelFile(%q) = %q, want .urdf or .sdf", name, path)
		}
	}
}

func TestResolveModelFile_UnknownRobot(t *testing.T) {
	loc := New(WithRoot(setupRoot(t)))

	for _, name := range []string{"nonexistent", "__pycache__", "README.md"} {
		_, err := loc.ResolveModelFile(name)
		if !errors.Is(err, ErrUnknownRobot) {
			t.Errorf("ResolveModelFile(%q) error = %v, want ErrUnknownRobot", name, err)
		}
	}
}

func TestResolveModelFile_TwoURDFFiles(t *testing.T) {
	root := setupRoot(t)
	writeFile(t, filepath.Join(root, "arm", "robots", "arm_v2.urdf"), testURDF)

	_, err := New(WithRoot(root)).ResolveModelFile("arm")
	if !errors.Is(err, ErrAmbiguousModel) {
		t.Fatalf("ResolveModelFile error = %v, want ErrAmbiguousModel", err)
	}

	var merr *Error
	if !errors.As(err, &merr) {
		t.Fatalf("error %v is not *Error", err)
	}
	if merr.Robot != "arm" {
		t.Errorf("Error.Robot = %q, want %q", merr.Robot, "arm")
	}
	if len(merr.Matches) != 2 {
		t.Errorf("Error.Matches = %v, want 2 entries", merr.Matches)
	}
}

func TestResolveModelFile_NoModelFile(t *testing.T) {
	root := setupRoot(t)
	writeFile(t, filepath.Join(root, "empty", "meshes", "part.dae"), "<COLLADA/>")

	_, err := New(WithRoot(root)).ResolveModelFile("empty")
	if !errors.Is(err, ErrAmbiguousModel) {
		t.Fatalf("ResolveModelFile error = %v, want ErrAmbiguousModel", err)
	}

	var merr *Error
	if errors.As(err, &merr) && len(merr.Matches) != 0 {
		t.Errorf("Error.Matches = %v, want none", merr.Matches)
	}
}

func TestResolveModelFile_IgnoresAuxiliaryFiles(t *testing.T) {
	root := setupRoot(t)
	writeFile(t, filepath.Join(root, "ground", "robot.yaml"), "name: ground\n")
	writeFile(t, filepath.Join(root, "ground", "ground.sdf.bak"), testSDF)
	writeFile(t, filepath.Join(root, "ground", "notes.urdfx"), "")

	got, err := New(WithRoot(root)).ResolveModelFile("ground")
	if err != nil {
		t.Fatalf("ResolveModelFile: %v", err)
	}
	if filepath.Base(got) != "ground.sdf" {
		t.Errorf("ResolveModelFile = %q, want ground.sdf", got)
	}
}

func TestResolveModelFile_Deterministic(t *testing.T) {
	loc := New(WithRoot(setupRoot(t)))

	first, err := loc.ResolveModelFile("arm")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := loc.ResolveModelFile("arm")
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("ResolveModelFile returned %q then %q", first, again)
		}
	}
}

func TestResolveModelFile_SymlinkedDirectoryWithModelExtension(t *testing.T) {
	root := setupRoot(t)
	other := filepath.Join(t.TempDir(), "other")
	if err := os.MkdirAll(other, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(other, filepath.Join(root, "arm", "link.sdf")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := New(WithRoot(root)).ResolveModelFile("arm")
	if err != nil {
		t.Fatalf("ResolveModelFile: %v", err)
	}
	if want := filepath.Join(root, "arm", "urdf", "arm.urdf"); got != want {
		t.Errorf("ResolveModelFile = %q, want %q", got, want)
	}
}

func TestResolveModelFile_SkipsUnreadableSubdirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	root := setupRoot(t)
	locked := filepath.Join(root, "arm", "private")
	writeFile(t, filepath.Join(locked, "hidden.urdf"), testURDF)
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	got, err := New(WithRoot(root)).ResolveModelFile("arm")
	if err != nil {
		t.Fatalf("ResolveModelFile: %v", err)
	}
	if filepath.Base(got) != "arm.urdf" {
		t.Errorf("ResolveModelFile = %q, want arm.urdf", got)
	}
}

func TestResolveModelFile_DirectoryRemoved(t *testing.T) {
	root := setupRoot(t)
	loc := New(WithRoot(root))
	dir := filepath.Join(root, "arm")
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}

	// The directory vanished after the catalog lookup.
	_, err := loc.resolveIn("arm", dir)
	if !errors.Is(err, ErrMissingDirectory) {
		t.Fatalf("resolveIn error = %v, want ErrMissingDirectory", err)
	}
	var merr *Error
	if !errors.As(err, &merr) || merr.Path != dir {
		t.Errorf("error = %#v, want *Error with Path %q", err, dir)
	}
}
