package models

import (
	"errors"
	"io/fs"
	"os"
)

// Resource is a resolved robot description in one of three shapes:
// Text, *PathResource or *ScopedFile.
type Resource interface {
	Shape() Shape
}

// Text is a description held in memory.
type Text string

// Shape returns ShapeText.
func (Text) Shape() Shape { return ShapeText }

// String returns the text.
func (t Text) String() string { return string(t) }

// PathResource is a description on disk. A temporary path holds converted
// content and is owned by the caller, who must call Remove when done.
// Remove on a stored (non-temporary) path does nothing.
type PathResource struct {
	path      string
	temporary bool
}

// Shape returns ShapePath.
func (*PathResource) Shape() Shape { return ShapePath }

// Path returns the file path.
func (p *PathResource) Path() string { return p.path }

// Temporary reports whether the file was created for this request.
func (p *PathResource) Temporary() bool { return p.temporary }

// String returns the file path.
func (p *PathResource) String() string { return p.path }

// Remove deletes a temporary file. Removing twice is not an error.
func (p *PathResource) Remove() error {
	if !p.temporary {
		return nil
	}
	if err := os.Remove(p.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ScopedFile is an open, readable description. The caller must Close it.
// When the file is a temporary conversion result, Close also deletes it.
type ScopedFile struct {
	*os.File
	temporary bool
}

// Shape returns ShapeFile.
func (*ScopedFile) Shape() Shape { return ShapeFile }

// Temporary reports whether the backing file is deleted on Close.
func (f *ScopedFile) Temporary() bool { return f.temporary }

// Close closes the file and, for temporary files, removes it from disk.
func (f *ScopedFile) Close() error {
	err := f.File.Close()
	if !f.temporary {
		return err
	}
	if rmErr := os.Remove(f.File.Name()); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		return errors.Join(err, rmErr)
	}
	return err
}
