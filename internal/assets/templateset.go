package assets

import (
	"errors"
	"fmt"
)

// Template names every set must provide.
const (
	CardTemplate = "card"
	PageTemplate = "page"
	DeckTemplate = "deck"
)

// TemplateExt is the file extension of template files.
const TemplateExt = ".tmpl"

// Built-in template set names.
const (
	TeXTemplateSet  = "tex"
	HTMLTemplateSet = "html"
)

// TemplateNames lists the templates of a set in render order.
var TemplateNames = []string{CardTemplate, PageTemplate, DeckTemplate}

// TemplateSet holds the three templates that make up a deck.
type TemplateSet struct {
	Name string // Set identifier, e.g. "tex"
	Card string // Rendered once per record
	Page string // Rendered once per page slice
	Deck string // Wraps all pages
}

// LoadTemplateSet loads card, page and deck templates of a set through loader.
// Returns ErrTemplateSetNotFound if none exist and ErrIncompleteTemplateSet
// if only some do.
func LoadTemplateSet(loader AssetLoader, name string) (*TemplateSet, error) {
	contents := make(map[string]string, len(TemplateNames))
	var missing []string

	for _, tmpl := range TemplateNames {
		content, err := loader.LoadTemplate(name, tmpl)
		if errors.Is(err, ErrTemplateNotFound) {
			missing = append(missing, tmpl+TemplateExt)
			continue
		}
		if err != nil {
			return nil, err
		}
		contents[tmpl] = content
	}

	switch len(missing) {
	case 0:
	case len(TemplateNames):
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	default:
		return nil, fmt.Errorf("%w: %q missing %v", ErrIncompleteTemplateSet, name, missing)
	}

	return &TemplateSet{
		Name: name,
		Card: contents[CardTemplate],
		Page: contents[PageTemplate],
		Deck: contents[DeckTemplate],
	}, nil
}
