package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/docfold/manualgen/internal/domain"
	"github.com/docfold/manualgen/internal/utils"
)

// Manifest encodings
const (
	ManifestYAML = "yaml"
	ManifestJSON = "json"
)

// Recorder is a Formatter decorator that records the section and item
// structure as it is emitted, building a Manifest alongside whatever
// the wrapped formatter produces.
type Recorder struct {
	next     domain.Formatter
	manifest domain.Manifest
}

// NewRecorder wraps a formatter and records the manual structure
func NewRecorder(next domain.Formatter, root, format string) *Recorder {
	return &Recorder{
		next: next,
		manifest: domain.Manifest{
			Root:   root,
			Format: format,
		},
	}
}

// SectionStart opens a new manifest section and delegates
func (r *Recorder) SectionStart(out *strings.Builder, last bool) {
	r.manifest.Sections = append(r.manifest.Sections, domain.ManifestSection{Last: last})
	r.next.SectionStart(out, last)
}

// SectionName records the decoded section title and delegates
func (r *Recorder) SectionName(out *strings.Builder, name string, kind domain.ItemKind) {
	section := r.current()
	section.Name = name
	section.Kind = kind
	r.next.SectionName(out, name, kind)
}

// Item records one manual entry and delegates
func (r *Recorder) Item(out *strings.Builder, name, path string, kind domain.ItemKind) {
	section := r.current()
	section.Items = append(section.Items, domain.ManifestItem{
		Name: name,
		Path: path,
		Kind: kind,
	})
	r.manifest.ItemCount++
	r.next.Item(out, name, path, kind)
}

// SectionEnd delegates
func (r *Recorder) SectionEnd(out *strings.Builder) {
	r.next.SectionEnd(out)
}

func (r *Recorder) current() *domain.ManifestSection {
	return &r.manifest.Sections[len(r.manifest.Sections)-1]
}

// Manifest returns the recorded manifest
func (r *Recorder) Manifest() domain.Manifest {
	m := r.manifest
	m.GeneratedAt = time.Now().UTC()
	return m
}

// WriteManifest serializes the recorded manifest to path in the given
// encoding (yaml or json)
func (r *Recorder) WriteManifest(path, encoding string) error {
	manifest := r.Manifest()

	var data []byte
	var err error
	switch encoding {
	case ManifestYAML:
		data, err = yaml.Marshal(&manifest)
	case ManifestJSON:
		data, err = json.MarshalIndent(&manifest, "", "  ")
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownManifestFormat, encoding)
	}
	if err != nil {
		return err
	}

	if err := utils.EnsureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
