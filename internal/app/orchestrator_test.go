package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/docfold/manualgen/internal/config"
	"github.com/docfold/manualgen/internal/domain"
	"github.com/docfold/manualgen/internal/source"
)

// writeManualTree builds a small but complete manual tree
func writeManualTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	basics := filepath.Join(root, "a_basics")
	require.NoError(t, os.MkdirAll(basics, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(basics, "1_intro.txt"), []byte("Welcome."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(basics, "2_saving.txt"), []byte("Ctrl+S."), 0644))

	tools := filepath.Join(root, "T_tools")
	require.NoError(t, os.MkdirAll(tools, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tools, "S_pencil.txt"), []byte("Draws."), 0644))

	return root
}

func testConfig(t *testing.T, root string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Manual.Root = root
	cfg.Manual.Title = "Editor Manual"
	cfg.Output.Path = filepath.Join(t.TempDir(), "manual.html")
	require.NoError(t, cfg.Validate())
	return cfg
}

// TestOrchestrator_Run tests a full assembly run
func TestOrchestrator_Run(t *testing.T) {
	root := writeManualTree(t)
	cfg := testConfig(t, root)

	orchestrator := NewOrchestrator(cfg, nil)
	result, err := orchestrator.Run(context.Background(), source.NewLocal(root))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Sections)
	assert.Equal(t, 3, result.Items)
	assert.Positive(t, result.Bytes)

	data, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "<h1>Editor Manual</h1>")
	assert.Contains(t, content, "Basics")
	assert.Contains(t, content, "Draws.")
	assert.Contains(t, content, "</html>")
}

// TestOrchestrator_Markdown tests the markdown pipeline end to end
func TestOrchestrator_Markdown(t *testing.T) {
	root := writeManualTree(t)
	cfg := testConfig(t, root)
	cfg.Output.Format = "markdown"
	cfg.Output.Path = filepath.Join(t.TempDir(), "manual.md")

	result, err := NewOrchestrator(cfg, nil).Run(context.Background(), source.NewLocal(root))
	require.NoError(t, err)

	data, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Editor Manual")
	assert.Contains(t, string(data), "## Tools (tool)")
}

// TestOrchestrator_Manifest tests manifest generation alongside output
func TestOrchestrator_Manifest(t *testing.T) {
	root := writeManualTree(t)
	cfg := testConfig(t, root)
	cfg.Output.Manifest = true
	cfg.Output.ManifestPath = filepath.Join(t.TempDir(), "manual.manifest.yaml")

	result, err := NewOrchestrator(cfg, nil).Run(context.Background(), source.NewLocal(root))
	require.NoError(t, err)
	require.Equal(t, cfg.Output.ManifestPath, result.ManifestPath)

	data, err := os.ReadFile(result.ManifestPath)
	require.NoError(t, err)

	var manifest domain.Manifest
	require.NoError(t, yaml.Unmarshal(data, &manifest))
	assert.Equal(t, 3, manifest.ItemCount)
	require.Len(t, manifest.Sections, 2)
	assert.Equal(t, "Tools", manifest.Sections[0].Name)
	assert.True(t, manifest.Sections[1].Last)
}

// TestOrchestrator_DryRun tests that dry runs write nothing
func TestOrchestrator_DryRun(t *testing.T) {
	root := writeManualTree(t)
	cfg := testConfig(t, root)
	cfg.Output.DryRun = true
	cfg.Output.Manifest = true

	result, err := NewOrchestrator(cfg, nil).Run(context.Background(), source.NewLocal(root))
	require.NoError(t, err)

	_, err = os.Stat(result.OutputPath)
	assert.True(t, os.IsNotExist(err))
}

// TestOrchestrator_StartTextOverride tests the literal start text option
func TestOrchestrator_StartTextOverride(t *testing.T) {
	root := writeManualTree(t)
	cfg := testConfig(t, root)
	cfg.Output.Format = "text"
	cfg.Output.Path = filepath.Join(t.TempDir(), "manual.txt")
	cfg.Manual.StartText = "CUSTOM HEADER\n"

	result, err := NewOrchestrator(cfg, nil).Run(context.Background(), source.NewLocal(root))
	require.NoError(t, err)

	data, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Contains(t, string(data), "CUSTOM HEADER")
	assert.NotContains(t, string(data), "Editor Manual")
}

// TestOrchestrator_MissingRoot tests source failure propagation
func TestOrchestrator_MissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	cfg := testConfig(t, missing)

	_, err := NewOrchestrator(cfg, nil).Run(context.Background(), source.NewLocal(missing))
	assert.ErrorIs(t, err, domain.ErrRootNotFound)
}
