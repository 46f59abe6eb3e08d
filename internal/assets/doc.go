// Package assets provides the card, page and deck templates used to render
// spell decks.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in sets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// The built-in sets are "tex" (LaTeX source, \VAR{ } delimiters) and
// "html" ({{ }} delimiters, also used for PDF output).
//
// AssetResolver falls back per template: a custom directory holding only
// card.tmpl keeps the embedded page and deck templates.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {set}/
//	        ├── card.tmpl   # one record
//	        ├── page.tmpl   # one page of cards
//	        └── deck.tmpl   # whole document
//
// ExportTemplateSet writes an embedded set in this layout.
//
// # Security
//
// Names are validated to prevent path traversal. FilesystemLoader resolves
// symlinks and verifies paths stay within basePath.
package assets
