package domain

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ItemKind classifies a manual section or item from the first character
// of its filename stem.
type ItemKind int

const (
	// KindRegular is any entry without a special kind char
	KindRegular ItemKind = iota
	// KindTool is an entry describing an editor tool (kind char S or T)
	KindTool
	// KindTexture is an entry describing a texture (kind char X)
	KindTexture
)

// KindForChar returns the ItemKind encoded by a stem's first character.
// The check is case-insensitive.
func KindForChar(c rune) ItemKind {
	switch c {
	case 'S', 's', 'T', 't':
		return KindTool
	case 'X', 'x':
		return KindTexture
	default:
		return KindRegular
	}
}

// String returns the kind name
func (k ItemKind) String() string {
	switch k {
	case KindTool:
		return "tool"
	case KindTexture:
		return "texture"
	default:
		return "regular"
	}
}

// MarshalYAML implements yaml.Marshaler so manifests carry the kind name
func (k ItemKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (k *ItemKind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return k.UnmarshalText([]byte(name))
}

// MarshalText implements encoding.TextMarshaler for JSON manifests
func (k ItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *ItemKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "regular":
		*k = KindRegular
	case "tool":
		*k = KindTool
	case "texture":
		*k = KindTexture
	default:
		return fmt.Errorf("unknown item kind %q", text)
	}
	return nil
}

// Section represents one top-level manual section backed by a directory
type Section struct {
	Path string
	Name string
	Kind ItemKind
}

// Item represents one manual entry backed by a file inside a section
type Item struct {
	Path string
	Name string
	Kind ItemKind
}

// Manifest is the machine-readable index of an assembled manual
type Manifest struct {
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	Root        string            `json:"root" yaml:"root"`
	Format      string            `json:"format" yaml:"format"`
	Sections    []ManifestSection `json:"sections" yaml:"sections"`
	ItemCount   int               `json:"item_count" yaml:"item_count"`
}

// ManifestSection is one section entry in a Manifest
type ManifestSection struct {
	Name  string         `json:"name" yaml:"name"`
	Kind  ItemKind       `json:"kind" yaml:"kind"`
	Last  bool           `json:"last" yaml:"last"`
	Items []ManifestItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// ManifestItem is one item entry in a ManifestSection
type ManifestItem struct {
	Name string   `json:"name" yaml:"name"`
	Path string   `json:"path" yaml:"path"`
	Kind ItemKind `json:"kind" yaml:"kind"`
}
