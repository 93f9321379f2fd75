// Package converter handles item file content: charset transcoding and
// conversion between markups when embedding.
package converter

import (
	"os"
	"strings"
)

// Loader reads item files for embedding into the assembled manual
type Loader struct{}

// NewLoader creates a new Loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads an item file and returns its content as UTF-8 text
func (l *Loader) Load(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	content, err := ToUTF8(raw)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(content), "\n"), nil
}

// LoadMarkdown reads an item file as Markdown, converting HTML items
func (l *Loader) LoadMarkdown(path string) (string, error) {
	content, err := l.Load(path)
	if err != nil {
		return "", err
	}

	if IsHTML(path) {
		return HTMLToMarkdown(content)
	}
	return content, nil
}
