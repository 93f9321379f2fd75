package format

import (
	"fmt"
	"strings"

	"github.com/docfold/manualgen/internal/converter"
	"github.com/docfold/manualgen/internal/domain"
	"github.com/docfold/manualgen/internal/utils"
)

// Text formats the manual as plain text with underlined headings, fit
// for a pager or help screen.
type Text struct {
	loader *converter.Loader
	logger *utils.Logger
	last   bool
}

// NewText creates the plain text formatter
func NewText(opts Options) *Text {
	opts.defaults()
	return &Text{
		loader: opts.Loader,
		logger: opts.Logger.WithComponent("format.text"),
	}
}

// Start returns the underlined document title
func (t *Text) Start(title string) string {
	return fmt.Sprintf("%s\n%s\n\n", title, strings.Repeat("=", len(title)))
}

// SectionStart records whether this is the final section
func (t *Text) SectionStart(out *strings.Builder, last bool) {
	t.last = last
}

// SectionName emits the underlined section heading
func (t *Text) SectionName(out *strings.Builder, name string, kind domain.ItemKind) {
	heading := name
	if kind != domain.KindRegular {
		heading = fmt.Sprintf("%s [%s]", name, kind)
	}
	fmt.Fprintf(out, "%s\n%s\n\n", heading, strings.Repeat("-", len(heading)))
}

// Item emits one manual entry with its file content indented below it
func (t *Text) Item(out *strings.Builder, name, path string, kind domain.ItemKind) {
	if name != "" {
		fmt.Fprintf(out, "%s\n", name)
	}

	content, err := t.loader.Load(path)
	if err != nil {
		t.logger.Warn().Err(err).Str("path", path).Msg("Failed to read item file")
		return
	}
	if content != "" {
		for _, line := range strings.Split(content, "\n") {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
	out.WriteString("\n")
}

// SectionEnd adds a trailing newline between sections
func (t *Text) SectionEnd(out *strings.Builder) {
	if !t.last {
		out.WriteString("\n")
	}
}

// Finish returns nothing
func (t *Text) Finish() string {
	return ""
}
