package models

import (
	"fmt"
	"io"
	"os"
)

// request is a single resource lookup after the stored file is known.
type request struct {
	robot  string
	stored string
	shape  Shape
	want   Format
}

// route identifies a dispatch table entry.
type route struct {
	stored Format
	shape  Shape
	want   Format
}

type handler func(l *Locator, req request) (Resource, error)

// routes is the complete dispatch table. Every (stored, shape, want)
// combination of the supported formats and shapes has an entry. It is filled
// in init because the conversion handlers re-enter Resource.
var routes map[route]handler

func init() {
	routes = map[route]handler{
		{FormatURDF, ShapePath, FormatURDF}: storedPath,
		{FormatURDF, ShapeFile, FormatURDF}: storedFile,
		{FormatURDF, ShapeText, FormatURDF}: storedText,
		{FormatURDF, ShapeText, FormatSDF}:  convertedText,
		{FormatURDF, ShapePath, FormatSDF}:  convertedPath,
		{FormatURDF, ShapeFile, FormatSDF}:  convertedFile,

		{FormatSDF, ShapePath, FormatSDF}:  storedPath,
		{FormatSDF, ShapeFile, FormatSDF}:  storedFile,
		{FormatSDF, ShapeText, FormatSDF}:  storedText,
		{FormatSDF, ShapePath, FormatURDF}: rejectConversion,
		{FormatSDF, ShapeFile, FormatURDF}: rejectConversion,
		{FormatSDF, ShapeText, FormatURDF}: rejectConversion,
	}
}

// Resource resolves the named robot and returns its description in the
// requested shape and format. See ModelPath, ModelFile and ModelText for
// typed variants.
func (l *Locator) Resource(name string, shape Shape, want Format) (Resource, error) {
	stored, err := l.ResolveModelFile(name)
	if err != nil {
		return nil, err
	}

	storedFormat, ok := formatOf(stored)
	if !ok {
		return nil, &Error{Kind: ErrUnsupportedStoredFormat, Robot: name, Path: stored}
	}

	h, ok := routes[route{storedFormat, shape, want}]
	if !ok {
		return nil, fmt.Errorf("models: no resource route for %s stored as %s, requested as %s %s", name, storedFormat, want, shape)
	}

	l.logger.Debug("dispatching resource", "robot", name, "stored", storedFormat, "shape", shape, "format", want)
	return h(l, request{robot: name, stored: stored, shape: shape, want: want})
}

// ModelPath returns a path to the robot description in the given format.
// A converted description is written to a temporary file owned by the caller;
// call Remove on the result when done.
func (l *Locator) ModelPath(name string, format Format) (*PathResource, error) {
	r, err := l.Resource(name, ShapePath, format)
	if err != nil {
		return nil, err
	}
	return r.(*PathResource), nil
}

// ModelFile returns an open file holding the robot description in the given
// format. The caller must Close it; closing deletes any temporary file.
func (l *Locator) ModelFile(name string, format Format) (*ScopedFile, error) {
	r, err := l.Resource(name, ShapeFile, format)
	if err != nil {
		return nil, err
	}
	return r.(*ScopedFile), nil
}

// ModelText returns the robot description in the given format as a string.
func (l *Locator) ModelText(name string, format Format) (string, error) {
	r, err := l.Resource(name, ShapeText, format)
	if err != nil {
		return "", err
	}
	return string(r.(Text)), nil
}

func storedPath(_ *Locator, req request) (Resource, error) {
	return &PathResource{path: req.stored}, nil
}

func storedFile(_ *Locator, req request) (Resource, error) {
	f, err := os.Open(req.stored)
	if err != nil {
		return nil, fmt.Errorf("opening model file %s: %w", req.stored, err)
	}
	return &ScopedFile{File: f}, nil
}

func storedText(_ *Locator, req request) (Resource, error) {
	data, err := os.ReadFile(req.stored)
	if err != nil {
		return nil, fmt.Errorf("reading model file %s: %w", req.stored, err)
	}
	return Text(data), nil
}

func rejectConversion(_ *Locator, req request) (Resource, error) {
	return nil, &Error{Kind: ErrUnsupportedConversion, Robot: req.robot, Path: req.stored}
}

// convertedText runs the converter over the stored URDF text.
func convertedText(l *Locator, req request) (Resource, error) {
	if l.converter == nil {
		return nil, &Error{Kind: ErrConversionUnavailable, Robot: req.robot}
	}
	urdf, err := storedText(l, req)
	if err != nil {
		return nil, err
	}
	sdf, err := l.converter.Convert(string(urdf.(Text)))
	if err != nil {
		return nil, fmt.Errorf("converting %s to %s: %w", req.stored, req.want, err)
	}
	return Text(sdf), nil
}

// convertedPath writes the converted text to a temporary file and returns
// its path. The caller owns the file.
func convertedPath(l *Locator, req request) (Resource, error) {
	f, err := l.writeConverted(req)
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("closing temporary model file: %w", err)
	}
	l.logger.Debug("created temporary model file", "robot", req.robot, "path", f.Name(), "owner", "caller")
	return &PathResource{path: f.Name(), temporary: true}, nil
}

// convertedFile writes the converted text to a temporary file and returns it
// open and rewound. Closing the result removes the file.
func convertedFile(l *Locator, req request) (Resource, error) {
	f, err := l.writeConverted(req)
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("rewinding temporary model file: %w", err)
	}
	l.logger.Debug("created temporary model file", "robot", req.robot, "path", f.Name(), "owner", "handle")
	return &ScopedFile{File: f, temporary: true}, nil
}

// writeConverted fetches the converted text through a (text, want) request
// and writes it to a fresh temporary file, which is returned open.
func (l *Locator) writeConverted(req request) (*os.File, error) {
	if l.converter == nil {
		return nil, &Error{Kind: ErrConversionUnavailable, Robot: req.robot}
	}
	text, err := l.ModelText(req.robot, req.want)
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp(l.tempDir, tempPattern(req.stored, req.want))
	if err != nil {
		return nil, fmt.Errorf("creating temporary model file: %w", err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("writing temporary model file: %w", err)
	}
	return f, nil
}
