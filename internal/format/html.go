package format

import (
	"fmt"
	"html"
	"strings"

	"github.com/docfold/manualgen/internal/converter"
	"github.com/docfold/manualgen/internal/domain"
	"github.com/docfold/manualgen/internal/utils"
)

// HTML formats the manual as a standalone HTML page. Item files holding
// HTML are embedded as-is; everything else goes into an escaped <pre>.
type HTML struct {
	loader *converter.Loader
	logger *utils.Logger
	last   bool
}

// NewHTML creates the HTML formatter
func NewHTML(opts Options) *HTML {
	opts.defaults()
	return &HTML{
		loader: opts.Loader,
		logger: opts.Logger.WithComponent("format.html"),
	}
}

// Start returns the HTML preamble
func (h *HTML) Start(title string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(title))
	b.WriteString("<main class=\"manual\">\n")
	return b.String()
}

// SectionStart opens a section element
func (h *HTML) SectionStart(out *strings.Builder, last bool) {
	h.last = last
	out.WriteString("<section class=\"manual-section\">\n")
}

// SectionName emits the section heading
func (h *HTML) SectionName(out *strings.Builder, name string, kind domain.ItemKind) {
	fmt.Fprintf(out, "<h2 class=\"kind-%s\">%s</h2>\n", kind, html.EscapeString(name))
}

// Item emits one manual entry with its file content embedded
func (h *HTML) Item(out *strings.Builder, name, path string, kind domain.ItemKind) {
	fmt.Fprintf(out, "<article class=\"manual-item kind-%s\">\n", kind)
	if name != "" {
		fmt.Fprintf(out, "<h3>%s</h3>\n", html.EscapeString(name))
	}

	content, err := h.loader.Load(path)
	if err != nil {
		h.logger.Warn().Err(err).Str("path", path).Msg("Failed to read item file")
	} else if converter.IsHTML(path) {
		out.WriteString(content)
		out.WriteString("\n")
	} else if content != "" {
		fmt.Fprintf(out, "<pre>%s</pre>\n", html.EscapeString(content))
	}

	out.WriteString("</article>\n")
}

// SectionEnd closes the section, separating all but the last one
func (h *HTML) SectionEnd(out *strings.Builder) {
	out.WriteString("</section>\n")
	if !h.last {
		out.WriteString("<hr>\n")
	}
}

// Finish closes the document
func (h *HTML) Finish() string {
	return "</main>\n</body>\n</html>\n"
}
