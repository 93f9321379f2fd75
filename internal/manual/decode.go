package manual

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/docfold/manualgen/internal/domain"
	"github.com/docfold/manualgen/internal/utils"
)

// DecodeStem splits a filename stem into its classification and the raw
// display text. The first character encodes the kind; when it encodes
// Tool or Texture it is consumed, otherwise the display text covers the
// whole stem. Leading non-alphabetic characters (ordering digits,
// separators) are skipped.
//
// A malformed stem is a defect in the manual source tree, not a runtime
// condition: an empty stem panics. Run doctor to find such entries
// before assembling.
func DecodeStem(stem string) (domain.ItemKind, string) {
	runes := []rune(stem)
	if len(runes) == 0 {
		panic("manual entry has an empty filename stem")
	}

	kind := domain.KindForChar(runes[0])
	rest := runes
	if kind != domain.KindRegular {
		rest = runes[1:]
	}

	for i, c := range rest {
		if unicode.IsLetter(c) {
			return kind, string(rest[i:])
		}
	}
	return kind, ""
}

// DecodePath decodes the stem of the final element of path
func DecodePath(path string) (domain.ItemKind, string) {
	return DecodeStem(utils.Stem(path))
}

// SectionTitle turns raw display text into a section title: underscores
// become spaces and the first letter is capitalized.
func SectionTitle(rest string) string {
	runes := []rune(strings.ReplaceAll(rest, "_", " "))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// DecodeSection decodes a section directory path into a Section. A
// section whose stem yields no display text violates the manual tree's
// naming convention and panics.
func DecodeSection(path string) domain.Section {
	kind, rest := DecodePath(path)
	title := SectionTitle(rest)
	if title == "" {
		panic(fmt.Sprintf("manual section %q has no decodable name", path))
	}
	return domain.Section{
		Path: path,
		Name: title,
		Kind: kind,
	}
}
