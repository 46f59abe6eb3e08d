package spellcards

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-spellcards/internal/assets"
	"github.com/alnah/go-spellcards/internal/render"
)

// Format names an output format.
type Format string

// Output format constants.
const (
	FormatTeX  Format = "tex"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// DefaultFormat is used when Input.Format is empty.
const DefaultFormat = FormatTeX

// AllDeckName is the output base name when no class filter is set.
const AllDeckName = "All"

// formats lists the supported formats in display order.
var formats = []Format{FormatTeX, FormatHTML, FormatPDF}

// Formats returns the supported output formats.
func Formats() []Format {
	return append([]Format(nil), formats...)
}

// ParseFormat resolves a format name, case-insensitively.
// An empty name yields DefaultFormat.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultFormat, nil
	}
	f := Format(name)
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// Validate reports whether f is a supported format.
func (f Format) Validate() error {
	for _, known := range formats {
		if f == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (available: tex, html, pdf)", ErrUnknownFormat, string(f))
}

// Extension returns the file extension for f, with the leading dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// TemplateSet returns the name of the template set used to render f.
// PDF is printed from the HTML deck.
func (f Format) TemplateSet() string {
	if f == FormatTeX {
		return assets.TeXTemplateSet
	}
	return assets.HTMLTemplateSet
}

// OutputName returns the output file name for a deck: "<class>.<ext>",
// or "All.<ext>" when class is empty.
func OutputName(class string, f Format) (string, error) {
	if err := ValidateClass(class); err != nil {
		return "", err
	}
	base := class
	if base == "" {
		base = AllDeckName
	}
	return base + f.Extension(), nil
}

// ValidateClass rejects class names that cannot be used as a file name.
func ValidateClass(class string) error {
	if class == "." || class == ".." || strings.ContainsAny(class, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidClass, class)
	}
	return nil
}

// Layout controls how cards are padded and sliced into pages.
type Layout = render.Layout

// DefaultLayout returns the layout with nine cards per page out of every
// ten records.
func DefaultLayout() Layout {
	return render.DefaultLayout()
}

// AssetLoader loads card, page and deck templates by set and name.
type AssetLoader = assets.AssetLoader

// Input describes one deck to generate.
type Input struct {
	Files     []string // record sources, merged in order
	Class     string   // category filter; empty keeps every record
	Format    Format   // empty means DefaultFormat
	OutputDir string   // used by Generate; empty means current directory
	Layout    *Layout  // nil means DefaultLayout
	AssetDir  string   // base of relative image paths in PDF decks; empty means the first file's directory
}

// Result describes a generated deck.
type Result struct {
	Path    string // output path; set by Generate only
	Name    string // output file name
	Format  Format
	Records int    // records after filtering
	Pages   int    // rendered pages
	Content []byte // deck document (LaTeX, HTML or PDF bytes)
}

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	timeout     time.Duration
	templateDir string
}

// defaultTimeout bounds the PDF page load when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF page load timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("spellcards: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}

// WithLogger sets the diagnostics logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithTemplateDir loads templates from dir/templates/<set>/, falling back
// to the embedded templates for any file dir lacks.
func WithTemplateDir(dir string) Option {
	return func(g *Generator) {
		g.cfg.templateDir = dir
	}
}

// WithAssetLoader replaces the template loader. Takes precedence over
// WithTemplateDir.
func WithAssetLoader(l AssetLoader) Option {
	return func(g *Generator) {
		g.loader = l
	}
}

// withPDFConverter injects the PDF backend (tests only).
func withPDFConverter(c pdfConverter) Option {
	return func(g *Generator) {
		g.pdfConverter = c
	}
}
