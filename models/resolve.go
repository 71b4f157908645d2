package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// ResolveModelFile returns the absolute path of the single description file
// stored for the named robot.
//
// It fails with ErrUnknownRobot if the name is not in the catalog,
// ErrMissingDirectory if the robot directory vanished, and ErrAmbiguousModel
// unless the recursive scan finds exactly one ".urdf" or ".sdf" file.
func (l *Locator) ResolveModelFile(name string) (string, error) {
	known, err := l.HasRobot(name)
	if err != nil {
		return "", err
	}
	if !known {
		return "", &Error{Kind: ErrUnknownRobot, Robot: name}
	}

	dir := l.robotDir(name)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", &Error{Kind: ErrMissingDirectory, Robot: name, Path: dir, Err: err}
	}

	return l.resolveIn(name, dir)
}

// resolveIn scans an existing robot directory for its description file.
func (l *Locator) resolveIn(name, dir string) (string, error) {
	// WalkDir does not descend into a symlinked root.
	if fi, err := os.Lstat(dir); err == nil && fi.Mode()&fs.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			dir = resolved
		}
	}

	matches, err := findModelFiles(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", &Error{Kind: ErrMissingDirectory, Robot: name, Path: dir, Err: err}
	}
	if err != nil {
		return "", fmt.Errorf("models: scanning robot %q in %s: %w", name, dir, err)
	}
	if len(matches) != 1 {
		return "", &Error{Kind: ErrAmbiguousModel, Robot: name, Path: dir, Matches: matches}
	}

	l.logger.Debug("resolved model file", "robot", name, "path", matches[0])
	return matches[0], nil
}

// findModelFiles walks dir and returns every description file below it, sorted.
// Unreadable subdirectories are skipped. Symlinks to directories are neither
// followed nor counted, whatever their name.
func findModelFiles(dir string) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path != dir && d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() || !isModelFile(d.Name()) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				return nil
			}
		}
		matches = append(matches, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(matches)
	return matches, nil
}
