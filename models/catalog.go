package models

import (
	"os"
	"slices"
	"strings"
)

// ListRobots returns the names of the robots installed under the root: every
// immediate subdirectory whose name does not start with ReservedPrefix.
// The result is sorted.
func (l *Locator) ListRobots() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, &Error{Kind: ErrRootNotFound, Path: l.root, Err: err}
	}

	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ReservedPrefix) {
			continue
		}
		if !e.IsDir() {
			// Follow symlinked robot directories.
			info, err := os.Stat(l.robotDir(e.Name()))
			if err != nil || !info.IsDir() {
				continue
			}
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

// HasRobot reports whether name is in the catalog.
func (l *Locator) HasRobot(name string) (bool, error) {
	names, err := l.ListRobots()
	if err != nil {
		return false, err
	}
	_, found := slices.BinarySearch(names, name)
	return found, nil
}
