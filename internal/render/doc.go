// Package render turns formatted spell records into a deck document.
//
// A Renderer owns one template set (card, page, deck) parsed with the
// delimiters of its Environment. Rendering runs in three passes:
//
//  1. every record becomes a card block through the card template
//  2. the blocks are padded and cut into pages according to a Layout
//  3. the concatenated pages are wrapped by the deck template
//
// Templates run with missingkey=error, so a template that names a field a
// record does not have fails the whole render.
package render
