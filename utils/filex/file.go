// File: file.go
// Title: Single-Owner File Handle
// Description: Implements the File type: temp-file creation, explicit
//              ownership transfer, rename/remove, content access, and
//              append/truncate writes with coded errors.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package filex

import (
	"os"

	sverror "github.com/mbertram/sview/core/error"
)

// File references a file on disk. When temp is set the handle owns the
// file's removal; exactly one handle holds that duty at a time.
type File struct {
	path string
	temp bool
}

// Open returns a handle for an existing (or to-be-created) path. The handle
// does not own removal of the file.
func Open(path string) *File {
	return &File{path: path}
}

// CreateTemp creates a file in the OS temp directory with the given name
// pattern and returns a handle that owns its removal. Failure yields an
// error coded CodeTempFileFailed.
func CreateTemp(pattern string) (*File, error) {
	f, err := os.CreateTemp("", pattern+".*")
	if err != nil {
		return nil, sverror.Wrap(err, "creating temp file").
			WithCode(sverror.CodeTempFileFailed).
			WithOperation("filex.CreateTemp")
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return nil, sverror.Wrap(err, "closing temp file").
			WithCode(sverror.CodeTempFileFailed).
			WithOperation("filex.CreateTemp").
			WithDetail("path", path)
	}
	return &File{path: path, temp: true}, nil
}

// Path returns the path the handle references. Empty for an inert handle.
func (f *File) Path() string {
	return f.path
}

// IsTemp reports whether the handle currently owns the file's removal.
func (f *File) IsTemp() bool {
	return f.temp
}

// Handoff transfers ownership to a new handle. The receiver becomes inert:
// its path is cleared and it no longer removes the file. Only the returned
// handle cleans up.
func (f *File) Handoff() *File {
	owner := &File{path: f.path, temp: f.temp}
	f.path = ""
	f.temp = false
	return owner
}

// Rename moves the file to destination. An existing file at destination is
// never clobbered; that case yields CodeFileExists. On success the handle
// follows the file to its new path and releases the temp-cleanup duty: a
// renamed file is a kept file.
//
// The existence check and the rename are not atomic.
func (f *File) Rename(destination string) error {
	if f.path == "" {
		return sverror.NewCode(sverror.CodeNoFilePath).WithOperation("filex.Rename")
	}
	if Exists(destination) {
		return sverror.NewCode(sverror.CodeFileExists).
			WithOperation("filex.Rename").
			WithDetail("destination", destination)
	}
	if err := os.Rename(f.path, destination); err != nil {
		return sverror.Wrap(err, "renaming file").
			WithCode(sverror.CodeFileWrite).
			WithOperation("filex.Rename").
			WithDetail("destination", destination)
	}
	f.path = destination
	f.temp = false
	return nil
}

// Remove deletes the file and releases the temp-cleanup duty. A missing
// file yields CodeFileNotFound.
func (f *File) Remove() error {
	f.temp = false
	if f.path == "" {
		return sverror.NewCode(sverror.CodeNoFilePath).WithOperation("filex.Remove")
	}
	if err := os.Remove(f.path); err != nil {
		if os.IsNotExist(err) {
			return sverror.NewCode(sverror.CodeFileNotFound).
				WithOperation("filex.Remove").
				WithDetail("path", f.path)
		}
		return sverror.Wrap(err, "removing file").
			WithCode(sverror.CodeFileWrite).
			WithOperation("filex.Remove").
			WithDetail("path", f.path)
	}
	return nil
}

// Append writes data to the end of the file, creating it if needed.
func (f *File) Append(data []byte) error {
	return f.write(data, os.O_WRONLY|os.O_CREATE|os.O_APPEND, "filex.Append")
}

// Truncate replaces the file's content with data, creating it if needed.
func (f *File) Truncate(data []byte) error {
	return f.write(data, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, "filex.Truncate")
}

func (f *File) write(data []byte, flags int, op string) error {
	if f.path == "" {
		return sverror.NewCode(sverror.CodeNoFilePath).WithOperation(op)
	}
	file, err := os.OpenFile(f.path, flags, 0o644)
	if err != nil {
		return sverror.Wrap(err, "opening file for writing").
			WithCode(sverror.CodeFileOpen).
			WithOperation(op).
			WithDetail("path", f.path)
	}
	_, werr := file.Write(data)
	cerr := file.Close()
	if werr != nil {
		return sverror.Wrap(werr, "writing to file").
			WithCode(sverror.CodeFileWrite).
			WithOperation(op).
			WithDetail("path", f.path)
	}
	if cerr != nil {
		return sverror.Wrap(cerr, "closing file after write").
			WithCode(sverror.CodeFileWrite).
			WithOperation(op).
			WithDetail("path", f.path)
	}
	return nil
}

// Contents reads the whole file. Failure yields CodeFileOpen.
func (f *File) Contents() (string, error) {
	if f.path == "" {
		return "", sverror.NewCode(sverror.CodeNoFilePath).WithOperation("filex.Contents")
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", sverror.Wrap(err, "reading file").
			WithCode(sverror.CodeFileOpen).
			WithOperation("filex.Contents").
			WithDetail("path", f.path)
	}
	return string(data), nil
}

// Verify checks that the handle references an existing file: CodeNoFilePath
// when no path is set, CodeFileNotFound when nothing exists at the path.
func (f *File) Verify() error {
	if f.path == "" {
		return sverror.NewCode(sverror.CodeNoFilePath).WithOperation("filex.Verify")
	}
	if !Exists(f.path) {
		return sverror.NewCode(sverror.CodeFileNotFound).
			WithOperation("filex.Verify").
			WithDetail("path", f.path)
	}
	return nil
}

// Cleanup removes the file iff the handle still owns it as a temp file.
// Safe to defer unconditionally; a non-owning handle is a no-op.
func (f *File) Cleanup() error {
	if !f.temp {
		return nil
	}
	return f.Remove()
}
