package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrRootNotFound indicates the manual root directory does not exist
	ErrRootNotFound = errors.New("manual root not found")

	// ErrNotADirectory indicates the manual root is not a directory
	ErrNotADirectory = errors.New("manual root is not a directory")

	// ErrUnknownFormat indicates an unsupported output format name
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrUnknownManifestFormat indicates an unsupported manifest encoding
	ErrUnknownManifestFormat = errors.New("unknown manifest format")

	// ErrOutputExists indicates the output file exists and overwrite is off
	ErrOutputExists = errors.New("output file already exists")

	// ErrCloneFailed indicates the git source could not be cloned
	ErrCloneFailed = errors.New("clone failed")
)

// ScanError represents a filesystem read failure during assembly.
// Any scan failure is fatal; no partial output is returned.
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error for %s: %v", e.Dir, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewScanError creates a new ScanError
func NewScanError(dir string, err error) *ScanError {
	return &ScanError{Dir: dir, Err: err}
}

// SourceError represents a failure resolving the manual source
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s failed: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
