// Package source reads spell record collections from files.
//
// The decoder is picked from the file extension:
//
//	.json                  JSON object, one member per record
//	.yaml .yml             YAML mapping, one key per record
//	.toml                  TOML document, one table per record
//	.db .sqlite .sqlite3   SQLite database with a "spells" table
//
// Every decoder keeps the order in which records appear in the source,
// which the merge step relies on for its ordering guarantees.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-spellcards/internal/spell"
	"github.com/alnah/go-spellcards/internal/yamlutil"
)

// Sentinel errors for source operations.
var (
	ErrNoSources         = errors.New("no record sources given")
	ErrRead              = errors.New("failed to read record source")
	ErrParse             = errors.New("failed to parse record source")
	ErrUnsupportedFormat = errors.New("unsupported record source format")
)

// Kind identifies a source decoder.
type Kind string

// Source kinds.
const (
	KindJSON   Kind = "json"
	KindYAML   Kind = "yaml"
	KindTOML   Kind = "toml"
	KindSQLite Kind = "sqlite"
)

// KindFor returns the decoder kind for a path based on its extension.
func KindFor(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return KindJSON, nil
	case ".yaml", ".yml":
		return KindYAML, nil
	case ".toml":
		return KindTOML, nil
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q (use .json, .yaml, .yml, .toml, .db, .sqlite or .sqlite3)", ErrUnsupportedFormat, path)
	}
}

// Load reads one source into a collection.
func Load(ctx context.Context, path string) (*spell.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind, err := KindFor(path)
	if err != nil {
		return nil, err
	}

	if kind == KindSQLite {
		return loadSQLite(ctx, path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- source paths are user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	var entries []yamlutil.Entry
	switch kind {
	case KindJSON:
		entries, err = decodeJSON(data)
	case KindTOML:
		entries, err = decodeTOML(data)
	default:
		entries, err = yamlutil.UnmarshalOrdered(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	return collect(path, entries)
}

// LoadAll reads every source in order and merges them. A record in a later
// source replaces the same-named record of an earlier one.
func LoadAll(ctx context.Context, paths []string) (*spell.Collection, error) {
	if len(paths) == 0 {
		return nil, ErrNoSources
	}

	merged := spell.NewCollection()
	for _, path := range paths {
		c, err := Load(ctx, path)
		if err != nil {
			return nil, err
		}
		merged.Merge(c)
	}
	return merged, nil
}

// collect turns decoded entries into a collection.
func collect(path string, entries []yamlutil.Entry) (*spell.Collection, error) {
	c := spell.NewCollection()
	for _, e := range entries {
		s, err := spell.New(e.Key, e.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
		}
		c.Put(s)
	}
	return c, nil
}
