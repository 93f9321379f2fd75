// Package app wires sources, the assembler, formatters, and output
// into the manualgen commands.
package app

import (
	"context"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/docfold/manualgen/internal/config"
	"github.com/docfold/manualgen/internal/domain"
	"github.com/docfold/manualgen/internal/format"
	"github.com/docfold/manualgen/internal/manual"
	"github.com/docfold/manualgen/internal/output"
	"github.com/docfold/manualgen/internal/utils"
)

// Orchestrator runs one assembly end to end
type Orchestrator struct {
	cfg    *config.Config
	logger *utils.Logger
}

// NewOrchestrator creates a new orchestrator
func NewOrchestrator(cfg *config.Config, logger *utils.Logger) *Orchestrator {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Orchestrator{
		cfg:    cfg,
		logger: logger.WithComponent("orchestrator"),
	}
}

// Result summarizes one assembly run
type Result struct {
	OutputPath   string
	ManifestPath string
	Sections     int
	Items        int
	Bytes        int
}

// Run resolves the source, assembles the manual, and writes the
// document and optional manifest
func (o *Orchestrator) Run(ctx context.Context, src domain.Source) (*Result, error) {
	root, err := src.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := src.Cleanup(); err != nil {
			o.logger.Warn().Err(err).Msg("Source cleanup failed")
		}
	}()

	doc, err := format.New(o.cfg.Output.Format, format.Options{Logger: o.logger})
	if err != nil {
		return nil, err
	}

	recorder := output.NewRecorder(doc, root, o.cfg.Output.Format)

	var formatter domain.Formatter = recorder
	var bar *progressbar.ProgressBar
	if o.cfg.Output.Progress {
		bar = utils.NewProgressBar(-1, utils.DescAssembling)
		formatter = &progressFormatter{next: formatter, bar: bar}
	}

	assembler := manual.New(manual.Options{
		Root:            root,
		DecodeItemNames: o.cfg.Manual.DecodeItemNames,
		Logger:          o.logger,
	})

	startText := o.cfg.Manual.StartText
	if startText == "" {
		startText = doc.Start(o.cfg.Manual.Title)
	}

	assembled, err := assembler.Assemble(startText, formatter)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return nil, err
	}
	assembled += doc.Finish()

	outPath := o.cfg.Output.Path
	if outPath == "" {
		outPath = "manual" + format.Extension(o.cfg.Output.Format)
	}

	writer := output.NewWriter(output.WriterOptions{
		Force:  o.cfg.Output.Force,
		DryRun: o.cfg.Output.DryRun,
	})
	if err := writer.Write(outPath, assembled); err != nil {
		return nil, err
	}

	manifest := recorder.Manifest()
	result := &Result{
		OutputPath: outPath,
		Sections:   len(manifest.Sections),
		Items:      manifest.ItemCount,
		Bytes:      len(assembled),
	}

	if o.cfg.Output.Manifest {
		manifestPath := o.cfg.Output.ManifestPath
		if manifestPath == "" {
			manifestPath = "manual.manifest." + o.cfg.Output.ManifestFormat
		}
		if !o.cfg.Output.DryRun {
			if err := recorder.WriteManifest(manifestPath, o.cfg.Output.ManifestFormat); err != nil {
				return nil, err
			}
		}
		result.ManifestPath = manifestPath
	}

	o.logger.Info().
		Str("output", result.OutputPath).
		Int("sections", result.Sections).
		Int("items", result.Items).
		Msg("Manual assembled")

	return result, nil
}

// progressFormatter advances a progress bar once per finished section
type progressFormatter struct {
	next domain.Formatter
	bar  *progressbar.ProgressBar
}

func (p *progressFormatter) SectionStart(out *strings.Builder, last bool) {
	p.next.SectionStart(out, last)
}

func (p *progressFormatter) SectionName(out *strings.Builder, name string, kind domain.ItemKind) {
	p.next.SectionName(out, name, kind)
}

func (p *progressFormatter) Item(out *strings.Builder, name, path string, kind domain.ItemKind) {
	p.next.Item(out, name, path, kind)
}

func (p *progressFormatter) SectionEnd(out *strings.Builder) {
	p.next.SectionEnd(out)
	_ = p.bar.Add(1)
}
