package spellcards

import (
	"errors"

	"github.com/alnah/go-spellcards/internal/assets"
	"github.com/alnah/go-spellcards/internal/render"
	"github.com/alnah/go-spellcards/internal/source"
	"github.com/alnah/go-spellcards/internal/spell"
)

// Sentinel errors for library operations.
var (
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrInvalidClass   = errors.New("invalid character class")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)

// Errors raised by the generation stages, re-exported so callers can match
// them with errors.Is without importing internal packages.
var (
	// Loading.
	ErrNoSources         = source.ErrNoSources
	ErrReadSource        = source.ErrRead
	ErrParseSource       = source.ErrParse
	ErrUnsupportedSource = source.ErrUnsupportedFormat

	// Records.
	ErrInvalidRecord = spell.ErrInvalidRecord
	ErrMissingField  = spell.ErrMissingField
	ErrInvalidLevel  = spell.ErrInvalidLevel

	// Templates and layout.
	ErrTemplateNotFound      = assets.ErrTemplateNotFound
	ErrTemplateSetNotFound   = assets.ErrTemplateSetNotFound
	ErrIncompleteTemplateSet = assets.ErrIncompleteTemplateSet
	ErrInvalidAssetPath      = assets.ErrInvalidBasePath
	ErrTemplateParse         = render.ErrTemplateParse
	ErrTemplateExecute       = render.ErrTemplateExecute
	ErrInvalidLayout         = render.ErrInvalidLayout
)
