package staffmap

import (
	"fmt"
	"io"

	"github.com/tsawler/staffmap/extract"
	"github.com/tsawler/staffmap/glyphs"
	"github.com/tsawler/staffmap/grid"
	"github.com/tsawler/staffmap/model"
	"github.com/tsawler/staffmap/svgdoc"
)

// Builder provides a fluent interface for configuring and running an
// index build. Each configuration method returns a new Builder instance,
// making chains safe to share and reuse.
type Builder struct {
	// Source (exactly one is set)
	filename string
	source   io.Reader

	// Configuration
	cfg model.Config
}

// clone creates a copy of the Builder so chain methods stay immutable.
func (b *Builder) clone() *Builder {
	return &Builder{
		filename: b.filename,
		source:   b.source,
		cfg:      b.cfg,
	}
}

// WithConfig replaces the build configuration. Zero-valued tuning fields
// are filled from the defaults so partial configs stay usable.
func (b *Builder) WithConfig(cfg model.Config) *Builder {
	nb := b.clone()
	nb.cfg = fillDefaults(cfg)
	return nb
}

func fillDefaults(cfg model.Config) model.Config {
	def := model.DefaultConfig()
	if cfg.UnitsPerPixel == 0 {
		cfg.UnitsPerPixel = def.UnitsPerPixel
	}
	if cfg.GlyphViewport == 0 {
		cfg.GlyphViewport = def.GlyphViewport
	}
	if cfg.KeyAccidentalMargin == 0 {
		cfg.KeyAccidentalMargin = def.KeyAccidentalMargin
	}
	if cfg.AccidentalOverlap == 0 {
		cfg.AccidentalOverlap = def.AccidentalOverlap
	}
	if cfg.BottomMargin == 0 {
		cfg.BottomMargin = def.BottomMargin
	}
	return cfg
}

// Build parses the page and assembles the spatial index. Warnings
// accumulate across every stage and are returned even on success;
// a non-nil error means the page violated a structural assumption and
// no index was built.
func (b *Builder) Build() (*grid.Index, []Warning, error) {
	doc, err := b.parse()
	if err != nil {
		return nil, nil, err
	}

	warnings := append([]Warning(nil), doc.Warnings()...)

	table, tableWarnings := glyphs.BuildTable(doc.Symbols)
	warnings = append(warnings, tableWarnings...)

	corrector := glyphs.NewCorrector(table, b.cfg, doc.OffsetX, doc.OffsetY)

	walker := extract.NewWalker(doc, corrector, b.cfg)
	res := walker.Walk()
	warnings = append(warnings, corrector.Warnings()...)
	warnings = append(warnings, walker.Warnings()...)

	ix := grid.New(res, b.cfg, doc.ViewBox.Right())
	return ix, warnings, nil
}

func (b *Builder) parse() (*svgdoc.Document, error) {
	if b.source != nil {
		return svgdoc.Parse(b.source)
	}
	if b.filename == "" {
		return nil, fmt.Errorf("no source specified")
	}
	return svgdoc.Open(b.filename)
}
