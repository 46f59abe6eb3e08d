package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/alnah/go-spellcards/internal/yamlutil"
)

// decodeJSON decodes a JSON object and keeps the order of its top-level
// keys. A repeated key yields one entry per occurrence, so the collection
// ends up with the last value at the first position.
func decodeJSON(data []byte) ([]yamlutil.Entry, error) {
	if len(data) > yamlutil.MaxDocumentSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", yamlutil.ErrInputTooLarge, len(data), yamlutil.MaxDocumentSize)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: got %v", yamlutil.ErrNotMapping, tok)
	}

	var entries []yamlutil.Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("record %q: %w", key, err)
		}
		entries = append(entries, yamlutil.Entry{Key: key, Value: jsonValue(value)})
	}

	// Closing brace, then nothing but whitespace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected data after top-level object: %v", tok)
	}
	return entries, nil
}

// decodeJSONObject decodes one JSON object into a field map.
func decodeJSONObject(data []byte) (map[string]any, error) {
	entries, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]any, len(entries))
	for _, e := range entries {
		fields[e.Key] = e.Value
	}
	return fields, nil
}

// jsonValue replaces json.Number with int64 when the number is integral
// in its literal form, and float64 otherwise.
func jsonValue(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		for k, item := range val {
			val[k] = jsonValue(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = jsonValue(item)
		}
		return val
	default:
		return v
	}
}
