package spellcards

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/alnah/go-spellcards/internal/assets"
	"github.com/alnah/go-spellcards/internal/fileutil"
	"github.com/alnah/go-spellcards/internal/pipeline"
	"github.com/alnah/go-spellcards/internal/render"
	"github.com/alnah/go-spellcards/internal/source"
)

// Generator turns record sources into a printable card deck.
// A Generator is not safe for concurrent use; the PDF backend holds one
// browser.
type Generator struct {
	cfg          generatorConfig
	logger       *zap.Logger
	loader       assets.AssetLoader
	pdfConverter pdfConverter
}

// New creates a Generator. Returns assets.ErrInvalidBasePath (as
// ErrInvalidAssetPath) if WithTemplateDir names a missing directory.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg:    generatorConfig{timeout: defaultTimeout},
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.loader == nil {
		resolver, err := assets.NewAssetResolver(g.cfg.templateDir)
		if err != nil {
			return nil, err
		}
		g.loader = resolver
		g.logger.Debug("templates resolved",
			zap.String("templateDir", g.cfg.templateDir),
			zap.Bool("custom", resolver.HasCustomLoader()))
	}

	// Browser starts lazily on the first PDF.
	if g.pdfConverter == nil {
		g.pdfConverter = newRodConverter(g.cfg.timeout)
	}

	return g, nil
}

// Build runs load, filter, sort, format and render, and returns the deck
// without writing it.
func (g *Generator) Build(ctx context.Context, in Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	format, layout, name, err := g.validateInput(in)
	if err != nil {
		return nil, err
	}

	records, err := source.LoadAll(ctx, in.Files)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("records loaded",
		zap.Strings("files", in.Files),
		zap.Int("records", records.Len()))

	deckRecords, err := records.Filter(in.Class)
	if err != nil {
		return nil, fmt.Errorf("filtering by class %q: %w", in.Class, err)
	}
	if err := deckRecords.SortByLevel(); err != nil {
		return nil, fmt.Errorf("sorting by level: %w", err)
	}
	g.logger.Debug("records selected",
		zap.String("class", in.Class),
		zap.Int("records", deckRecords.Len()))
	if deckRecords.Len() == 0 {
		g.logger.Warn("no records match class, deck will be empty", zap.String("class", in.Class))
	}

	if err := pipeline.FormatCollection(ctx, formatterFor(format), deckRecords); err != nil {
		return nil, fmt.Errorf("formatting card text: %w", err)
	}

	renderer, err := render.New(environmentFor(format, g.loader), layout)
	if err != nil {
		return nil, err
	}
	deck, err := renderer.Render(ctx, deckRecords)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("deck rendered",
		zap.String("format", string(format)),
		zap.Int("cards", len(deck.Cards)),
		zap.Int("pages", len(deck.Pages)))

	content := []byte(deck.Document)
	if format == FormatPDF {
		// The printer opens the deck from a temp dir.
		doc, err := pipeline.ResolveAssetRefs(deck.Document, assetDir(in))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
		}
		content, err = g.pdfConverter.ToPDF(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("printing PDF: %w", err)
		}
	}

	return &Result{
		Name:    name,
		Format:  format,
		Records: deckRecords.Len(),
		Pages:   len(deck.Pages),
		Content: content,
	}, nil
}

// Generate builds the deck and writes it to in.OutputDir as
// "<class>.<ext>" or "All.<ext>".
func (g *Generator) Generate(ctx context.Context, in Input) (*Result, error) {
	result, err := g.Build(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := in.OutputDir
	if dir == "" {
		dir = "."
	}
	result.Path = filepath.Join(dir, result.Name)
	if err := fileutil.WriteFile(result.Path, result.Content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	g.logger.Debug("deck written", zap.String("path", result.Path), zap.Int("bytes", len(result.Content)))

	return result, nil
}

// Close releases resources (headless Chrome browser).
func (g *Generator) Close() error {
	if g.pdfConverter != nil {
		return g.pdfConverter.Close()
	}
	return nil
}

// validateInput resolves defaults and checks everything that can fail
// before any source is read.
func (g *Generator) validateInput(in Input) (Format, Layout, string, error) {
	format := in.Format
	if format == "" {
		format = DefaultFormat
	}
	if err := format.Validate(); err != nil {
		return "", Layout{}, "", err
	}

	layout := DefaultLayout()
	if in.Layout != nil {
		layout = *in.Layout
	}
	if err := layout.Validate(); err != nil {
		return "", Layout{}, "", err
	}

	name, err := OutputName(in.Class, format)
	if err != nil {
		return "", Layout{}, "", err
	}
	if len(in.Files) == 0 {
		return "", Layout{}, "", ErrNoSources
	}
	return format, layout, name, nil
}

// assetDir returns the base for relative references in card text.
func assetDir(in Input) string {
	if in.AssetDir != "" {
		return in.AssetDir
	}
	return filepath.Dir(in.Files[0])
}

// formatterFor returns the text rules matching the template set of f.
func formatterFor(f Format) pipeline.Formatter {
	if f == FormatTeX {
		return pipeline.NewLaTeXFormatter()
	}
	return pipeline.NewHTMLFormatter()
}

// environmentFor returns the template environment for f.
func environmentFor(f Format, loader assets.AssetLoader) render.Environment {
	if f == FormatTeX {
		return render.TeXEnvironment(loader)
	}
	return render.HTMLEnvironment(loader)
}
