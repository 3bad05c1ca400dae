// File: file_test.go
// Title: Unit Tests for Single-Owner File Handle
// Description: Tests temp-file lifecycle, ownership transfer, rename
//              refusal on existing targets, writes, and coded failures.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial test implementation

package filex

import (
	"path/filepath"
	"strings"
	"testing"

	sverror "github.com/mbertram/sview/core/error"
)

func TestCreateTemp(t *testing.T) {
	f, err := CreateTemp("filex-test")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer f.Cleanup()

	if !f.IsTemp() {
		t.Error("IsTemp() = false; want true")
	}
	if !strings.Contains(filepath.Base(f.Path()), "filex-test") {
		t.Errorf("Path() = %q; want pattern in name", f.Path())
	}
	if !IsFile(f.Path()) {
		t.Errorf("temp file %q does not exist", f.Path())
	}
}

func TestCleanupRemovesTemp(t *testing.T) {
	f, err := CreateTemp("filex-test")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	path := f.Path()

	if err := f.Cleanup(); err != nil {
		t.Fatalf("Cleanup error: %v", err)
	}
	if Exists(path) {
		t.Errorf("file %q still exists after Cleanup", path)
	}
	// A second Cleanup is a no-op, not an error.
	if err := f.Cleanup(); err != nil {
		t.Errorf("second Cleanup error: %v", err)
	}
}

func TestHandoff(t *testing.T) {
	f, err := CreateTemp("filex-test")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	path := f.Path()

	owner := f.Handoff()
	defer owner.Cleanup()

	if f.IsTemp() || f.Path() != "" {
		t.Error("source handle still owns the file after Handoff")
	}
	if !owner.IsTemp() || owner.Path() != path {
		t.Error("new handle did not receive ownership")
	}

	// The source's Cleanup must not remove the file.
	if err := f.Cleanup(); err != nil {
		t.Errorf("inert Cleanup error: %v", err)
	}
	if !Exists(path) {
		t.Error("file removed through inert handle")
	}
}

func TestAppendAndContents(t *testing.T) {
	f, err := CreateTemp("filex-test")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer f.Cleanup()

	if err := f.Append([]byte("abc")); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := f.Append([]byte(" 123")); err != nil {
		t.Fatalf("second Append error: %v", err)
	}

	got, err := f.Contents()
	if err != nil {
		t.Fatalf("Contents error: %v", err)
	}
	if got != "abc 123" {
		t.Errorf("Contents() = %q; want %q", got, "abc 123")
	}
}

func TestTruncate(t *testing.T) {
	f, err := CreateTemp("filex-test")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer f.Cleanup()

	if err := f.Append([]byte("old content")); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := f.Truncate([]byte("new")); err != nil {
		t.Fatalf("Truncate error: %v", err)
	}

	got, err := f.Contents()
	if err != nil {
		t.Fatalf("Contents error: %v", err)
	}
	if got != "new" {
		t.Errorf("Contents() = %q; want %q", got, "new")
	}
}

func TestRenameRefusesExistingTarget(t *testing.T) {
	f, err := CreateTemp("filex-test")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer f.Cleanup()

	blocker, err := CreateTemp("filex-blocker")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer blocker.Cleanup()

	err = f.Rename(blocker.Path())
	if !sverror.HasCode(err, sverror.CodeFileExists) {
		t.Errorf("Rename onto existing = %v; want code %v", err, sverror.CodeFileExists)
	}
	// The refused rename must leave ownership untouched.
	if !f.IsTemp() {
		t.Error("handle lost temp ownership after refused Rename")
	}
}

func TestRenameReleasesOwnership(t *testing.T) {
	f, err := CreateTemp("filex-test")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}

	dst := filepath.Join(t.TempDir(), "kept.txt")
	if err := f.Rename(dst); err != nil {
		t.Fatalf("Rename error: %v", err)
	}

	if f.Path() != dst {
		t.Errorf("Path() = %q; want %q", f.Path(), dst)
	}
	if f.IsTemp() {
		t.Error("renamed file still owned as temp; want released")
	}
	if err := f.Cleanup(); err != nil {
		t.Errorf("Cleanup error: %v", err)
	}
	if !Exists(dst) {
		t.Error("kept file removed by Cleanup")
	}
}

func TestRemove(t *testing.T) {
	f, err := CreateTemp("filex-test")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	path := f.Path()

	if err := f.Remove(); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if Exists(path) {
		t.Error("file still exists after Remove")
	}

	err = f.Remove()
	if !sverror.HasCode(err, sverror.CodeFileNotFound) {
		t.Errorf("second Remove = %v; want code %v", err, sverror.CodeFileNotFound)
	}
}

func TestVerify(t *testing.T) {
	var inert File
	if err := inert.Verify(); !sverror.HasCode(err, sverror.CodeNoFilePath) {
		t.Errorf("Verify on pathless handle = %v; want code %v", err, sverror.CodeNoFilePath)
	}

	ghost := Open(filepath.Join(t.TempDir(), "missing.txt"))
	if err := ghost.Verify(); !sverror.HasCode(err, sverror.CodeFileNotFound) {
		t.Errorf("Verify on missing file = %v; want code %v", err, sverror.CodeFileNotFound)
	}

	f, err := CreateTemp("filex-test")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer f.Cleanup()
	if err := f.Verify(); err != nil {
		t.Errorf("Verify on existing file = %v; want nil", err)
	}
}

func TestOpenDoesNotOwn(t *testing.T) {
	f, err := CreateTemp("filex-test")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer f.Cleanup()

	ref := Open(f.Path())
	if ref.IsTemp() {
		t.Error("Open handle claims temp ownership")
	}
	if err := ref.Cleanup(); err != nil {
		t.Errorf("Cleanup on non-owner error: %v", err)
	}
	if !Exists(f.Path()) {
		t.Error("non-owning Cleanup removed the file")
	}
}
