package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestKindForChar tests the classification of kind characters
func TestKindForChar(t *testing.T) {
	tests := []struct {
		name string
		char rune
		want ItemKind
	}{
		{"uppercase S", 'S', KindTool},
		{"uppercase T", 'T', KindTool},
		{"uppercase X", 'X', KindTexture},
		{"lowercase s", 's', KindTool},
		{"lowercase t", 't', KindTool},
		{"lowercase x", 'x', KindTexture},
		{"other letter", 'A', KindRegular},
		{"digit", '1', KindRegular},
		{"underscore", '_', KindRegular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindForChar(tt.char))
		})
	}
}

// TestItemKind_String tests kind names
func TestItemKind_String(t *testing.T) {
	assert.Equal(t, "regular", KindRegular.String())
	assert.Equal(t, "tool", KindTool.String())
	assert.Equal(t, "texture", KindTexture.String())
}

// TestItemKind_Marshal tests kind serialization in manifests
func TestItemKind_Marshal(t *testing.T) {
	item := ManifestItem{Name: "pencil", Path: "/m/T_tools/S_pencil", Kind: KindTool}

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"tool"`)

	ydata, err := yaml.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(ydata), "kind: tool")
}
