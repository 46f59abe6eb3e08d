package render

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/alnah/go-spellcards/internal/assets"
	"github.com/alnah/go-spellcards/internal/spell"
)

// Sentinel errors for rendering.
var (
	ErrTemplateParse   = errors.New("failed to parse template")
	ErrTemplateExecute = errors.New("failed to execute template")
)

// Template variable names seen by the page and deck templates.
const (
	PageCardsVar   = "c"
	DeckContentVar = "content"
)

// Deck is the result of a render.
type Deck struct {
	Cards    []string // one block per record, unpadded
	Pages    []string // rendered pages in order
	Document string   // final document
}

// Renderer renders decks from one parsed template set.
type Renderer struct {
	layout Layout
	card   *template.Template
	page   *template.Template
	deck   *template.Template
}

// New loads the template set named by env and parses it.
func New(env Environment, layout Layout) (*Renderer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if env.Loader == nil {
		env.Loader = assets.NewEmbeddedLoader()
	}

	ts, err := assets.LoadTemplateSet(env.Loader, env.Set)
	if err != nil {
		return nil, err
	}

	r := &Renderer{layout: layout}
	if r.card, err = parse(env, assets.CardTemplate, ts.Card); err != nil {
		return nil, err
	}
	if r.page, err = parse(env, assets.PageTemplate, ts.Page); err != nil {
		return nil, err
	}
	if r.deck, err = parse(env, assets.DeckTemplate, ts.Deck); err != nil {
		return nil, err
	}
	return r, nil
}

func parse(env Environment, name, src string) (*template.Template, error) {
	t := template.New(name).Delims(env.LeftDelim, env.RightDelim).Funcs(funcMap())
	if env.MissingKey != "" {
		t = t.Option("missingkey=" + env.MissingKey)
	}
	t, err := t.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrTemplateParse, env.Set, name, err)
	}
	return t, nil
}

// Layout returns the layout the renderer paginates with.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// RenderCard renders one record through the card template. The template
// sees every record field plus title.
func (r *Renderer) RenderCard(s *spell.Spell) (string, error) {
	out, err := execute(r.card, s.TemplateData())
	if err != nil {
		return "", fmt.Errorf("card %q: %w", s.Name, err)
	}
	return out, nil
}

// RenderPage renders one page slice.
func (r *Renderer) RenderPage(cards []string) (string, error) {
	return execute(r.page, map[string]any{PageCardsVar: cards})
}

// RenderDeck wraps the concatenated pages.
func (r *Renderer) RenderDeck(content string) (string, error) {
	return execute(r.deck, map[string]any{DeckContentVar: content})
}

// Render renders every record of c in order, paginates and wraps the
// result. An empty collection renders the deck template with no pages.
func (r *Renderer) Render(ctx context.Context, c *spell.Collection) (*Deck, error) {
	deck := &Deck{Cards: make([]string, 0, c.Len())}

	for _, s := range c.Spells() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		card, err := r.RenderCard(s)
		if err != nil {
			return nil, err
		}
		deck.Cards = append(deck.Cards, card)
	}

	var content strings.Builder
	for i, slice := range r.layout.Paginate(deck.Cards) {
		page, err := r.RenderPage(slice)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		deck.Pages = append(deck.Pages, page)
		content.WriteString(page)
	}

	doc, err := r.RenderDeck(content.String())
	if err != nil {
		return nil, fmt.Errorf("deck: %w", err)
	}
	deck.Document = doc
	return deck, nil
}

func execute(t *template.Template, data any) (string, error) {
	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateExecute, err)
	}
	return buf.String(), nil
}
