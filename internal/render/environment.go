package render

import (
	"github.com/alnah/go-spellcards/internal/assets"
)

// MissingKeyError makes a template fail on a field the record lacks.
const MissingKeyError = "error"

// Environment is the template configuration shared by the three templates
// of a deck.
type Environment struct {
	LeftDelim  string
	RightDelim string
	MissingKey string             // text/template missingkey option
	Loader     assets.AssetLoader // where templates come from
	Set        string             // template set name
}

// TeXEnvironment returns the environment for LaTeX decks. Actions use the
// \VAR{ } delimiters so plain braces stay literal LaTeX.
func TeXEnvironment(loader assets.AssetLoader) Environment {
	return Environment{
		LeftDelim:  `\VAR{`,
		RightDelim: `}`,
		MissingKey: MissingKeyError,
		Loader:     loader,
		Set:        assets.TeXTemplateSet,
	}
}

// HTMLEnvironment returns the environment for HTML decks.
func HTMLEnvironment(loader assets.AssetLoader) Environment {
	return Environment{
		LeftDelim:  "{{",
		RightDelim: "}}",
		MissingKey: MissingKeyError,
		Loader:     loader,
		Set:        assets.HTMLTemplateSet,
	}
}
