// Package output writes the assembled manual and its manifest.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/docfold/manualgen/internal/domain"
	"github.com/docfold/manualgen/internal/utils"
)

// Writer handles writing the assembled document
type Writer struct {
	force  bool
	dryRun bool
	stdout io.Writer
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Force  bool
	DryRun bool
	Stdout io.Writer // defaults to os.Stdout
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Writer{
		force:  opts.Force,
		dryRun: opts.DryRun,
		stdout: stdout,
	}
}

// Write saves the assembled document to path. "-" writes to stdout.
func (w *Writer) Write(path, content string) error {
	if path == "-" {
		if w.dryRun {
			return nil
		}
		_, err := io.WriteString(w.stdout, content)
		return err
	}

	if !w.force && utils.FileExists(path) {
		return fmt.Errorf("%w: %s", domain.ErrOutputExists, path)
	}

	if w.dryRun {
		return nil
	}

	if err := utils.EnsureDir(path); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(content), 0644)
}
