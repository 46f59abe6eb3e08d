// Package spellcards turns spell records into printable card decks.
//
// # Quick Start
//
// Create a generator, generate a deck, and close when done:
//
//	gen, err := spellcards.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	result, err := gen.Generate(ctx, spellcards.Input{
//	    Files: []string{"spells_german/spells.json"},
//	    Class: "Magier",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Created", result.Path) // Magier.tex
//
// Build runs the same pipeline and returns the document without writing it.
//
// # Pipeline
//
//  1. Load: JSON, YAML, TOML or SQLite sources, merged in order. A later
//     record with the same name replaces the earlier one.
//  2. Filter: keep records whose classes contain Input.Class exactly.
//  3. Sort: stable, by ascending level.
//  4. Format: regex rules mark *bold* text, dice expressions (2W6+3) and
//     distances (10 m). HTML decks also run through Goldmark.
//  5. Render: card, page and deck templates, with the layout padding and
//     slicing cards into pages.
//  6. Output: LaTeX or HTML as rendered, or PDF printed by headless Chrome.
//
// # Layout
//
// DefaultLayout pads the cards with ten blanks and starts a page every ten
// cards, showing nine. The tenth card of each group is not rendered; pass
// Input.Layout with SliceWidth 10 to show it.
//
// # Templates
//
// Embedded templates cover every format. WithTemplateDir points at a
// directory holding templates/<set>/{card,page,deck}.tmpl; any missing
// file falls back to the embedded one. LaTeX templates use \VAR{ } as
// action delimiters, HTML templates use {{ }}.
//
// # Browser Requirements
//
// Only FormatPDF needs Chrome. go-rod downloads Chromium on first use
// unless ROD_BROWSER_BIN names an installed browser.
package spellcards
