package main

import (
	"errors"
	"os"

	spellcards "github.com/alnah/go-spellcards"
	"github.com/alnah/go-spellcards/internal/assets"
	"github.com/alnah/go-spellcards/internal/config"
)

// Exit codes for the spellcards CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Deck written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, layout or templates
	ExitIO      = 3 // Unreadable or malformed records, unwritable output
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, spellcards.ErrBrowserConnect) ||
		errors.Is(err, spellcards.ErrPageCreate) ||
		errors.Is(err, spellcards.ErrPageLoad) ||
		errors.Is(err, spellcards.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Usage/config/template errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, spellcards.ErrUnknownFormat) ||
		errors.Is(err, spellcards.ErrInvalidClass) ||
		errors.Is(err, spellcards.ErrInvalidLayout) ||
		errors.Is(err, spellcards.ErrInvalidAssetPath) ||
		errors.Is(err, spellcards.ErrTemplateNotFound) ||
		errors.Is(err, spellcards.ErrTemplateSetNotFound) ||
		errors.Is(err, spellcards.ErrIncompleteTemplateSet) ||
		errors.Is(err, spellcards.ErrTemplateParse) ||
		errors.Is(err, spellcards.ErrTemplateExecute) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	// I/O and record errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, spellcards.ErrNoSources) ||
		errors.Is(err, spellcards.ErrReadSource) ||
		errors.Is(err, spellcards.ErrParseSource) ||
		errors.Is(err, spellcards.ErrUnsupportedSource) ||
		errors.Is(err, spellcards.ErrInvalidRecord) ||
		errors.Is(err, spellcards.ErrMissingField) ||
		errors.Is(err, spellcards.ErrInvalidLevel) ||
		errors.Is(err, spellcards.ErrWriteOutput) ||
		errors.Is(err, assets.ErrAssetExists) {
		return ExitIO
	}

	return ExitGeneral
}
