// File: error_test.go
// Title: Unit Tests for Core Error Type
// Description: Tests error construction, wrapping, code/severity carrying,
//              unwrapping, and helper predicates.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial test implementation

package error

import (
	goerrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something broke")

	if err.Error() != "something broke" {
		t.Errorf("Error() = %q; want %q", err.Error(), "something broke")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v; want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() is zero; want set")
	}
}

func TestNewCode(t *testing.T) {
	err := NewCode(CodeFileWrite)

	if err.Error() != "error writing to file" {
		t.Errorf("Error() = %q; want code message", err.Error())
	}
	if err.Code() != CodeFileWrite {
		t.Errorf("Code() = %v; want %v", err.Code(), CodeFileWrite)
	}
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v; want %v (from code mapping)", err.Severity(), SeverityHigh)
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	err := New("missing").WithCode(CodeParameterNotFound)

	if err.Code() != CodeParameterNotFound {
		t.Errorf("Code() = %v; want %v", err.Code(), CodeParameterNotFound)
	}
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityLow)
	}

	// An explicit severity survives a later WithCode.
	err2 := New("x").WithSeverity(SeverityHigh).WithCode(CodeParameterNotFound)
	if err2.Severity() != SeverityHigh {
		t.Errorf("explicit severity = %v; want %v", err2.Severity(), SeverityHigh)
	}
}

func TestWrap(t *testing.T) {
	base := NewCode(CodeFileNotFound).WithDetail("path", "/tmp/x")
	wrapped := Wrap(base, "loading settings")

	if wrapped.Code() != CodeFileNotFound {
		t.Errorf("wrapped Code() = %v; want preserved %v", wrapped.Code(), CodeFileNotFound)
	}
	if !strings.HasPrefix(wrapped.Error(), "loading settings: ") {
		t.Errorf("Error() = %q; want prefix %q", wrapped.Error(), "loading settings: ")
	}
	if wrapped.Details()["path"] != "/tmp/x" {
		t.Error("details not carried through Wrap")
	}
	if !goerrors.Is(wrapped, base) {
		t.Error("errors.Is(wrapped, base) = false; want true")
	}
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) != nil")
	}
}

func TestWrapForeignError(t *testing.T) {
	base := goerrors.New("disk on fire")
	wrapped := Wrap(base, "appending")

	if wrapped.Code() != CodeUnknown {
		t.Errorf("Code() = %v; want %v", wrapped.Code(), CodeUnknown)
	}
	if !goerrors.Is(wrapped, base) {
		t.Error("errors.Is through foreign cause = false; want true")
	}
	if wrapped.RootCause() != base {
		t.Errorf("RootCause() = %v; want base error", wrapped.RootCause())
	}
}

func TestHasCode(t *testing.T) {
	err := Wrap(NewCode(CodeParameterWrongType), "reading window length")

	if !HasCode(err, CodeParameterWrongType) {
		t.Error("HasCode = false; want true through the chain")
	}
	if HasCode(err, CodeFileExists) {
		t.Error("HasCode for unrelated code = true; want false")
	}
	if HasCode(nil, CodeUnknown) {
		t.Error("HasCode(nil) = true; want false")
	}
	if HasCode(goerrors.New("plain"), CodeUnknown) {
		t.Error("HasCode(plain error) = true; want false")
	}
}

func TestErrorsIsCode(t *testing.T) {
	err := Wrap(NewCode(CodeFileExists), "renaming output")

	if !goerrors.Is(err, CodeFileExists) {
		t.Error("errors.Is(err, CodeFileExists) = false; want true")
	}
	if goerrors.Is(err, CodeFileNotFound) {
		t.Error("errors.Is for unrelated code = true; want false")
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	if got := GetCode(NewCode(CodeNoFilePath)); got != CodeNoFilePath {
		t.Errorf("GetCode = %v; want %v", got, CodeNoFilePath)
	}
	if got := GetCode(goerrors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v; want %v", got, CodeUnknown)
	}
	if got := GetSeverity(NewCode(CodeTempFileFailed)); got != SeverityHigh {
		t.Errorf("GetSeverity = %v; want %v", got, SeverityHigh)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := NewCode(CodeFileOpen).WithOperation("filex.Append").WithDetail("path", "a.txt")

	data, jerr := err.MarshalJSON()
	if jerr != nil {
		t.Fatalf("MarshalJSON error: %v", jerr)
	}
	s := string(data)
	for _, want := range []string{`"code":"FILE_OPEN_FAILED"`, `"operation":"filex.Append"`, `"path":"a.txt"`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}
}
