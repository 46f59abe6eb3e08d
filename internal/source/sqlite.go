package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/alnah/go-spellcards/internal/spell"
	"github.com/alnah/go-spellcards/internal/yamlutil"
)

// recordQuery reads records in insertion order. The record column holds
// one JSON object per spell.
const recordQuery = `SELECT name, record FROM spells ORDER BY rowid`

// loadSQLite reads a spells table from a database file opened read-only.
func loadSQLite(ctx context.Context, path string) (*spell.Collection, error) {
	// sql.Open is lazy and "mode=ro" would report a missing file as a
	// generic open failure, so check it first.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrRead, path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, recordQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	defer rows.Close()

	var entries []yamlutil.Entry
	for rows.Next() {
		var name, record string
		if err := rows.Scan(&name, &record); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
		}

		fields, err := decodeJSONObject([]byte(record))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: record %q: %v", ErrParse, path, name, err)
		}
		entries = append(entries, yamlutil.Entry{Key: name, Value: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	return collect(path, entries)
}
