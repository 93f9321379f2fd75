package domain

import (
	"context"
	"strings"
)

// Formatter receives the assembly callbacks that turn the scanned manual
// tree into a target markup. Implementations own escaping, content
// embedding, and any wrapping structure; the assembler never reads file
// contents itself.
type Formatter interface {
	// SectionStart is invoked once per section before its content.
	// last is true for the final section in sorted order.
	SectionStart(out *strings.Builder, last bool)
	// SectionName is invoked once per section with the decoded title
	SectionName(out *strings.Builder, name string, kind ItemKind)
	// Item is invoked once per item file, in sorted order. path is the
	// raw file path so the formatter can embed its contents.
	Item(out *strings.Builder, name, path string, kind ItemKind)
	// SectionEnd is invoked once per section after all its items
	SectionEnd(out *strings.Builder)
}

// FormatterFuncs adapts plain functions to the Formatter interface.
// Nil fields are skipped.
type FormatterFuncs struct {
	OnSectionStart func(out *strings.Builder, last bool)
	OnSectionName  func(out *strings.Builder, name string, kind ItemKind)
	OnItem         func(out *strings.Builder, name, path string, kind ItemKind)
	OnSectionEnd   func(out *strings.Builder)
}

func (f FormatterFuncs) SectionStart(out *strings.Builder, last bool) {
	if f.OnSectionStart != nil {
		f.OnSectionStart(out, last)
	}
}

func (f FormatterFuncs) SectionName(out *strings.Builder, name string, kind ItemKind) {
	if f.OnSectionName != nil {
		f.OnSectionName(out, name, kind)
	}
}

func (f FormatterFuncs) Item(out *strings.Builder, name, path string, kind ItemKind) {
	if f.OnItem != nil {
		f.OnItem(out, name, path, kind)
	}
}

func (f FormatterFuncs) SectionEnd(out *strings.Builder) {
	if f.OnSectionEnd != nil {
		f.OnSectionEnd(out)
	}
}

// Source resolves the manual root directory before assembly. Git-backed
// sources clone into a temp dir; Cleanup removes it.
type Source interface {
	// Name returns the source name
	Name() string
	// Resolve returns the local path of the manual root
	Resolve(ctx context.Context) (string, error)
	// Cleanup releases anything Resolve created
	Cleanup() error
}
