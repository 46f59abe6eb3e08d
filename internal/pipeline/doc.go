// Package pipeline implements the text formatting stage applied to spell
// records before rendering.
//
// Two rule sets exist:
//   - LaTeX rules rewrite bold spans, dice notation and unit spacing into
//     LaTeX markup.
//   - HTML rules emit placeholders for bold spans; the text is then converted
//     from Markdown with Goldmark and the placeholders become <strong> tags.
//
// Only the text and text_card fields of a record are rewritten.
//
// ResolveAssetRefs rewrites relative image and link references in a
// rendered HTML deck to absolute file URLs, so the deck can be printed
// from a temporary directory.
package pipeline
