package pipeline

import (
	"context"
	"fmt"

	"github.com/alnah/go-spellcards/internal/spell"
)

// Formatter rewrites one text field of a record.
type Formatter interface {
	Format(ctx context.Context, text string) (string, error)
}

// LaTeXFormatter applies its rules and nothing else.
type LaTeXFormatter struct {
	Rules Rules
}

// NewLaTeXFormatter returns a formatter with the LaTeX rule set.
func NewLaTeXFormatter() *LaTeXFormatter {
	return &LaTeXFormatter{Rules: LaTeXRules()}
}

// Format applies the rules in order.
func (f *LaTeXFormatter) Format(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.Rules.Apply(text), nil
}

// HTMLFormatter applies its rules, converts the result from Markdown and
// resolves bold placeholders.
type HTMLFormatter struct {
	Rules     Rules
	Converter HTMLConverter
}

// NewHTMLFormatter returns a formatter with the HTML rule set and a
// goldmark converter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{Rules: HTMLRules(), Converter: NewGoldmarkConverter()}
}

// Format applies the rules, then converts to HTML.
func (f *HTMLFormatter) Format(ctx context.Context, text string) (string, error) {
	out, err := f.Converter.ToHTML(ctx, f.Rules.Apply(text))
	if err != nil {
		return "", err
	}
	return ConvertBoldPlaceholders(out), nil
}

// FormatSpell rewrites the text field, and text_card when present, of s in
// place. Other fields are not touched.
func FormatSpell(ctx context.Context, f Formatter, s *spell.Spell) error {
	if _, ok := s.Fields[spell.FieldText]; !ok {
		return fmt.Errorf("%w: %q has no %q", spell.ErrMissingField, s.Name, spell.FieldText)
	}

	for _, key := range []string{spell.FieldText, spell.FieldTextCard} {
		if _, ok := s.Fields[key]; !ok {
			continue
		}
		text, ok := s.StringField(key)
		if !ok {
			return fmt.Errorf("%w: %q field %q is not a string", spell.ErrMissingField, s.Name, key)
		}
		formatted, err := f.Format(ctx, text)
		if err != nil {
			return fmt.Errorf("formatting %q of %q: %w", key, s.Name, err)
		}
		s.Fields[key] = formatted
	}
	return nil
}

// FormatCollection formats every record of c in order.
func FormatCollection(ctx context.Context, f Formatter, c *spell.Collection) error {
	for _, s := range c.Spells() {
		if err := FormatSpell(ctx, f, s); err != nil {
			return err
		}
	}
	return nil
}
