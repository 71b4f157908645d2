package models

import (
	"os"
	"path/filepath"
)

// PathListSeparator joins entries of the simulator resource path variable.
const PathListSeparator = ":"

// AppendPathList returns the new value of a path-list variable after adding
// entry. If the variable is unset the entry becomes the whole value.
// Existing entries are never inspected or deduplicated.
func AppendPathList(current string, set bool, entry string) string {
	if !set {
		return entry
	}
	return current + PathListSeparator + entry
}

// ResourcePathEntries returns, in order, the directories ConfigureEnvironment
// appends: the installation root, then each mesh-bearing robot directory.
func (l *Locator) ResourcePathEntries() ([]string, error) {
	root := filepath.Clean(l.root)
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, &Error{Kind: ErrRootNotFound, Path: root, Err: err}
	}

	entries := []string{root}
	for _, name := range l.meshModels {
		dir := l.robotDir(name)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return nil, &Error{Kind: ErrModelPathNotFound, Robot: name, Path: dir, Err: err}
		}
		entries = append(entries, dir)
	}
	return entries, nil
}

// ConfigureEnvironment appends the installation root and the mesh-bearing
// robot directories to the simulator resource path variable.
//
// Call it once at startup. It always appends, so a second call duplicates
// every entry. Nothing is modified if a directory is missing.
func (l *Locator) ConfigureEnvironment() error {
	entries, err := l.ResourcePathEntries()
	if err != nil {
		return err
	}

	value, set := os.LookupEnv(l.envVar)
	for _, entry := range entries {
		value = AppendPathList(value, set, entry)
		set = true
	}
	if err := os.Setenv(l.envVar, value); err != nil {
		return err
	}

	l.logger.Debug("configured simulator environment", "var", l.envVar, "entries", len(entries))
	return nil
}
