package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/docfold/manualgen/internal/domain"
	"github.com/docfold/manualgen/internal/manual"
	"github.com/docfold/manualgen/internal/utils"
)

// DoctorReport summarizes the health of a manual source tree
type DoctorReport struct {
	Root     string
	Sections int
	Items    int
	Kinds    map[string]int
	Problems []string
}

// OK reports whether the tree can be assembled without defects
func (r *DoctorReport) OK() bool {
	return len(r.Problems) == 0
}

// RunDoctor validates a manual tree ahead of assembly. It reports the
// defects the assembler itself treats as unrecoverable: unreadable
// directories, undecodable stems, stray files at the section level.
func RunDoctor(root string, logger *utils.Logger) (*DoctorReport, error) {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	logger = logger.WithComponent("doctor")

	report := &DoctorReport{
		Root:  root,
		Kinds: map[string]int{},
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, domain.NewScanError(root, err)
	}

	names := make([]string, 0, len(entries))
	byName := make(map[string]os.DirEntry, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
		byName[entry.Name()] = entry
	}
	sort.Strings(names)

	for _, name := range names {
		entry := byName[name]
		path := filepath.Join(root, name)

		if !entry.IsDir() {
			report.Problems = append(report.Problems,
				fmt.Sprintf("%s: not a directory, every section must be one", path))
			continue
		}

		stem := utils.Stem(path)
		if stem == "" {
			report.Problems = append(report.Problems,
				fmt.Sprintf("%s: empty filename stem", path))
			continue
		}

		kind, rest := manual.DecodeStem(stem)
		if manual.SectionTitle(rest) == "" {
			report.Problems = append(report.Problems,
				fmt.Sprintf("%s: section name has no alphabetic characters", path))
			continue
		}

		report.Sections++
		report.Kinds[kind.String()]++
		logger.Debug().Str("section", manual.SectionTitle(rest)).Msg("Section checked")

		items, err := os.ReadDir(path)
		if err != nil {
			report.Problems = append(report.Problems,
				fmt.Sprintf("%s: unreadable section directory: %v", path, err))
			continue
		}

		for _, item := range items {
			itemPath := filepath.Join(path, item.Name())
			if item.IsDir() {
				report.Problems = append(report.Problems,
					fmt.Sprintf("%s: nested directory, items must be files", itemPath))
				continue
			}

			itemStem := utils.Stem(itemPath)
			if itemStem == "" {
				report.Problems = append(report.Problems,
					fmt.Sprintf("%s: empty filename stem", itemPath))
				continue
			}

			itemKind, itemRest := manual.DecodeStem(itemStem)
			if itemRest == "" {
				report.Problems = append(report.Problems,
					fmt.Sprintf("%s: item name has no alphabetic characters", itemPath))
				continue
			}

			report.Items++
			report.Kinds[itemKind.String()]++
		}
	}

	return report, nil
}
