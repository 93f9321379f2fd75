// Package manual implements the documentation manual assembler. It
// walks a two-level section/item tree, decodes the filename-encoded
// classification scheme, and drives a Formatter to build one output
// document.
package manual

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docfold/manualgen/internal/domain"
	"github.com/docfold/manualgen/internal/utils"
)

// Assembler performs one synchronous assembly pass over a manual tree.
// It owns the ordering rules and the callback protocol; reading item
// contents and emitting markup belong to the Formatter.
type Assembler struct {
	root            string
	decodeItemNames bool
	logger          *utils.Logger
}

// Options configures an Assembler
type Options struct {
	// Root is the manual root directory, one subdirectory per section
	Root string
	// DecodeItemNames applies the section title decoding (underscores
	// to spaces, capitalized first letter) to item names as well.
	// When false item names are the raw stem remainder.
	DecodeItemNames bool
	// Logger is optional
	Logger *utils.Logger
}

// New creates a new Assembler
func New(opts Options) *Assembler {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Assembler{
		root:            opts.Root,
		decodeItemNames: opts.DecodeItemNames,
		logger:          logger.WithComponent("assembler"),
	}
}

type sectionEntry struct {
	section domain.Section
	items   []domain.Item
}

// Assemble scans the manual tree and drives the formatter callbacks:
// per section, in lexicographic path order, SectionStart, SectionName,
// Item for each file in lexicographic path order, SectionEnd. The whole
// tree is scanned and sorted before the first callback runs, so the
// call order never depends on callback side effects.
//
// Any directory read failure aborts the assembly with no callbacks run
// and no partial output. An empty root yields startText unchanged.
func (a *Assembler) Assemble(startText string, f domain.Formatter) (string, error) {
	sections, err := a.scan()
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.WriteString(startText)

	last := len(sections) - 1
	for i, entry := range sections {
		f.SectionStart(&out, i == last)
		f.SectionName(&out, entry.section.Name, entry.section.Kind)
		for _, item := range entry.items {
			f.Item(&out, item.Name, item.Path, item.Kind)
		}
		f.SectionEnd(&out)
	}

	a.logger.Debug().
		Int("sections", len(sections)).
		Int("bytes", out.Len()).
		Msg("manual assembled")

	return out.String(), nil
}

// scan snapshots the full section and item ordering
func (a *Assembler) scan() ([]sectionEntry, error) {
	dirs, err := listSorted(a.root)
	if err != nil {
		return nil, err
	}

	sections := make([]sectionEntry, 0, len(dirs))
	for _, dir := range dirs {
		section := DecodeSection(dir)

		paths, err := listSorted(dir)
		if err != nil {
			return nil, err
		}

		items := make([]domain.Item, 0, len(paths))
		for _, path := range paths {
			kind, rest := DecodePath(path)
			name := rest
			if a.decodeItemNames {
				name = SectionTitle(rest)
			}
			items = append(items, domain.Item{
				Path: path,
				Name: name,
				Kind: kind,
			})
		}

		a.logger.WithSection(section.Name).Debug().
			Int("items", len(items)).
			Msg("section scanned")

		sections = append(sections, sectionEntry{section: section, items: items})
	}

	return sections, nil
}

// listSorted lists a directory and sorts the full entry paths
// lexicographically. Raw os.ReadDir order is storage dependent.
func listSorted(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, domain.NewScanError(dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
