package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docfold/manualgen/internal/domain"
)

// TestMarkdown_Document tests the assembled Markdown structure
func TestMarkdown_Document(t *testing.T) {
	root := buildTree(t, map[string]string{
		"a_basics/1_intro.md": "Welcome to the editor.",
		"T_tools/S_pencil.md": "Draws freehand lines.",
		"T_tools/X_grid.html": "<p>Aligns to the <strong>grid</strong>.</p>",
	})

	out := assembleWith(t, root, "Editor Manual", NewMarkdown(Options{}))

	assert.True(t, strings.HasPrefix(out, "# Editor Manual\n"))
	assert.Contains(t, out, "## Tools (tool)")
	assert.Contains(t, out, "## Basics")
	assert.NotContains(t, out, "## Basics (")
	assert.Contains(t, out, "### pencil (tool)")
	assert.Contains(t, out, "### grid (texture)")
	assert.Contains(t, out, "Welcome to the editor.")

	// HTML items are converted before embedding
	assert.Contains(t, out, "**grid**")
	assert.NotContains(t, out, "<strong>")

	// One separator between the two sections, none trailing
	assert.Equal(t, 1, strings.Count(out, "\n---\n"))
}

// TestMarkdown_EmptyItemName tests that unnamed items embed content only
func TestMarkdown_EmptyItemName(t *testing.T) {
	m := NewMarkdown(Options{})

	var out strings.Builder
	m.Item(&out, "", "/nonexistent", domain.KindRegular)
	assert.NotContains(t, out.String(), "###")
}

// TestMarkdown_Finish tests that Markdown has no closing text
func TestMarkdown_Finish(t *testing.T) {
	assert.Empty(t, NewMarkdown(Options{}).Finish())
}
