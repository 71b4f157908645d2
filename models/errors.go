package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds returned by the locator.
// Use errors.Is() to check for a kind and errors.As() with *Error for context.
var (
	// ErrUnknownRobot indicates the robot name is not in the catalog.
	ErrUnknownRobot = errors.New("models: unknown robot")

	// ErrMissingDirectory indicates a catalog-listed robot has no directory on disk.
	ErrMissingDirectory = errors.New("models: robot directory missing")

	// ErrAmbiguousModel indicates zero or several description files were found
	// where exactly one is required.
	ErrAmbiguousModel = errors.New("models: expected exactly one model file")

	// ErrUnsupportedStoredFormat indicates the stored file is neither URDF nor SDF.
	ErrUnsupportedStoredFormat = errors.New("models: unsupported stored model format")

	// ErrConversionUnavailable indicates a URDF to SDF conversion was needed
	// but no converter is configured.
	ErrConversionUnavailable = errors.New("models: URDF to SDF conversion unavailable")

	// ErrUnsupportedConversion indicates an SDF to URDF conversion was requested.
	ErrUnsupportedConversion = errors.New("models: SDF to URDF conversion is not supported")

	// ErrRootNotFound indicates the installation root does not exist.
	ErrRootNotFound = errors.New("models: installation root not found")

	// ErrModelPathNotFound indicates a mesh-bearing robot directory does not exist.
	ErrModelPathNotFound = errors.New("models: model path not found")
)

// Error carries the context of a failed lookup. It unwraps to one of the
// sentinel kinds above.
type Error struct {
	// Kind is the sentinel error describing the failure.
	Kind error

	// Robot is the requested robot name, if any.
	Robot string

	// Path is the path that was being inspected, if any.
	Path string

	// Matches lists the description files found when Kind is ErrAmbiguousModel.
	Matches []string

	// Err is an underlying cause, e.g. a converter failure.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Robot != "" {
		fmt.Fprintf(&b, ": robot %q", e.Robot)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, ": %s", e.Path)
	}
	if errors.Is(e.Kind, ErrAmbiguousModel) {
		fmt.Fprintf(&b, ": found %d %v", len(e.Matches), e.Matches)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns both the kind and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
