package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a robot description format.
type Format int

// Supported description formats.
const (
	FormatURDF Format = iota + 1
	FormatSDF
)

// File extensions of the supported formats.
const (
	ExtURDF = ".urdf"
	ExtSDF  = ".sdf"
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatURDF:
		return "urdf"
	case FormatSDF:
		return "sdf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file extension of the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatURDF:
		return ExtURDF
	case FormatSDF:
		return ExtSDF
	default:
		return ""
	}
}

// ParseFormat parses "urdf" or "sdf" (case-insensitive, optional leading dot).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "urdf":
		return FormatURDF, nil
	case "sdf":
		return FormatSDF, nil
	default:
		return 0, fmt.Errorf("unknown model format %q: supported formats are %q and %q", s, "urdf", "sdf")
	}
}

// formatOf returns the format implied by a file name's extension.
func formatOf(path string) (Format, bool) {
	switch {
	case strings.HasSuffix(path, ExtURDF):
		return FormatURDF, true
	case strings.HasSuffix(path, ExtSDF):
		return FormatSDF, true
	default:
		return 0, false
	}
}

// isModelFile returns true if the file name carries a description-file extension.
func isModelFile(name string) bool {
	_, ok := formatOf(name)
	return ok
}

// Shape is the representation a caller wants a resource in.
type Shape int

// Resource shapes.
const (
	ShapePath Shape = iota + 1
	ShapeFile
	ShapeText
)

func (s Shape) String() string {
	switch s {
	case ShapePath:
		return "path"
	case ShapeFile:
		return "file"
	case ShapeText:
		return "text"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// tempPattern builds the os.CreateTemp pattern for a converted copy of stored:
// the stored base name without its extension, a random part, then the target
// extension.
func tempPattern(stored string, target Format) string {
	base := filepath.Base(stored)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "*" + target.Ext()
}
