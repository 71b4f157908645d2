package models

import (
	"os"
	"path/filepath"
	"strings"
)

// ModelsDirName is the directory, next to the executable, that holds the
// installed robots.
const ModelsDirName = "models"

// ReservedPrefix marks root subdirectories that are not robots.
const ReservedPrefix = "__"

// RootPath returns the default installation root: the models directory next
// to the running executable, with a trailing separator. It performs no
// validation; a missing root surfaces later as ErrRootNotFound or a read error.
func RootPath() string {
	exe, err := os.Executable()
	if err != nil {
		return withTrailingSeparator(ModelsDirName)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return withTrailingSeparator(filepath.Join(filepath.Dir(exe), ModelsDirName))
}

func withTrailingSeparator(dir string) string {
	sep := string(filepath.Separator)
	if strings.HasSuffix(dir, sep) {
		return dir
	}
	return dir + sep
}
