package converter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoader_Load tests reading item files
func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1_intro.txt")
	require.NoError(t, os.WriteFile(path, []byte("The editor.\n\n"), 0644))

	loader := NewLoader()
	content, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "The editor.", content)
}

// TestLoader_Load_Missing tests the error on a missing item file
func TestLoader_Load_Missing(t *testing.T) {
	loader := NewLoader()
	_, err := loader.Load(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

// TestLoader_LoadMarkdown tests markup handling per extension
func TestLoader_LoadMarkdown(t *testing.T) {
	dir := t.TempDir()

	mdPath := filepath.Join(dir, "1_intro.md")
	require.NoError(t, os.WriteFile(mdPath, []byte("# Intro\n"), 0644))

	htmlPath := filepath.Join(dir, "2_tools.html")
	require.NoError(t, os.WriteFile(htmlPath, []byte("<p>Pick a <em>tool</em>.</p>"), 0644))

	loader := NewLoader()

	md, err := loader.LoadMarkdown(mdPath)
	require.NoError(t, err)
	assert.Equal(t, "# Intro", md)

	converted, err := loader.LoadMarkdown(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, converted, "*tool*")
	assert.NotContains(t, converted, "<p>")
}
