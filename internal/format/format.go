// Package format provides the built-in manual formatters. Formatters
// own everything the assembler core does not: reading item files,
// escaping display names, and the document wrapping structure.
package format

import (
	"fmt"

	"github.com/docfold/manualgen/internal/converter"
	"github.com/docfold/manualgen/internal/domain"
	"github.com/docfold/manualgen/internal/utils"
)

// Supported format names
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

// Document is a Formatter that also produces the document preamble and
// closing text around the assembled sections.
type Document interface {
	domain.Formatter
	// Start returns the document preamble, used as the assembly start text
	Start(title string) string
	// Finish returns the text appended after the last section
	Finish() string
}

// Options configures a formatter
type Options struct {
	Loader *converter.Loader
	Logger *utils.Logger
}

func (o *Options) defaults() {
	if o.Loader == nil {
		o.Loader = converter.NewLoader()
	}
	if o.Logger == nil {
		o.Logger = utils.NewNopLogger()
	}
}

// New creates the named formatter
func New(name string, opts Options) (Document, error) {
	opts.defaults()

	switch name {
	case FormatHTML:
		return NewHTML(opts), nil
	case FormatMarkdown:
		return NewMarkdown(opts), nil
	case FormatText:
		return NewText(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownFormat, name)
	}
}

// Extension returns the default output file extension for a format
func Extension(name string) string {
	switch name {
	case FormatHTML:
		return ".html"
	case FormatMarkdown:
		return ".md"
	case FormatText:
		return ".txt"
	default:
		return ""
	}
}

// Names returns the supported format names
func Names() []string {
	return []string{FormatHTML, FormatMarkdown, FormatText}
}
