package format

import (
	"fmt"
	"strings"

	"github.com/docfold/manualgen/internal/converter"
	"github.com/docfold/manualgen/internal/domain"
	"github.com/docfold/manualgen/internal/utils"
)

// Markdown formats the manual as a single Markdown document. HTML item
// files are converted to Markdown before embedding.
type Markdown struct {
	loader *converter.Loader
	logger *utils.Logger
	last   bool
}

// NewMarkdown creates the Markdown formatter
func NewMarkdown(opts Options) *Markdown {
	opts.defaults()
	return &Markdown{
		loader: opts.Loader,
		logger: opts.Logger.WithComponent("format.markdown"),
	}
}

// Start returns the document title heading
func (m *Markdown) Start(title string) string {
	return fmt.Sprintf("# %s\n\n", title)
}

// SectionStart records whether this is the final section
func (m *Markdown) SectionStart(out *strings.Builder, last bool) {
	m.last = last
}

// SectionName emits the section heading, tagging non-regular kinds
func (m *Markdown) SectionName(out *strings.Builder, name string, kind domain.ItemKind) {
	fmt.Fprintf(out, "## %s", name)
	if kind != domain.KindRegular {
		fmt.Fprintf(out, " (%s)", kind)
	}
	out.WriteString("\n\n")
}

// Item emits one manual entry with its file content embedded
func (m *Markdown) Item(out *strings.Builder, name, path string, kind domain.ItemKind) {
	if name != "" {
		fmt.Fprintf(out, "### %s", name)
		if kind != domain.KindRegular {
			fmt.Fprintf(out, " (%s)", kind)
		}
		out.WriteString("\n\n")
	}

	content, err := m.loader.LoadMarkdown(path)
	if err != nil {
		m.logger.Warn().Err(err).Str("path", path).Msg("Failed to read item file")
		return
	}
	if content != "" {
		out.WriteString(content)
		out.WriteString("\n\n")
	}
}

// SectionEnd separates all but the last section with a thematic break
func (m *Markdown) SectionEnd(out *strings.Builder) {
	if !m.last {
		out.WriteString("---\n\n")
	}
}

// Finish returns nothing; Markdown needs no closing text
func (m *Markdown) Finish() string {
	return ""
}
