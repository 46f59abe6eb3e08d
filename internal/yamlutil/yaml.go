// Package yamlutil wraps YAML parsing to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits config input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

// MaxDocumentSize limits record documents, which are much larger than configs (default 32MB).
var MaxDocumentSize = 32 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrNotMapping     = errors.New("yamlutil: document is not a mapping")
)

// Entry is one key of an ordered mapping.
type Entry struct {
	Key   string
	Value any
}

func validateInput(data []byte, v any, limit int) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > limit {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), limit)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v, MaxInputSize); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalOrdered decodes a top-level mapping and keeps its key order.
// Nested mappings are returned as map[string]any since only the top level
// needs ordering. A repeated top-level key yields one entry per occurrence;
// a repeated nested key keeps its last value.
func UnmarshalOrdered(data []byte) ([]Entry, error) {
	var doc any
	if err := validateInput(data, &doc, MaxDocumentSize); err != nil {
		return nil, err
	}
	opts := []yaml.DecodeOption{yaml.UseOrderedMap(), yaml.AllowDuplicateMapKey()}
	if err := yaml.UnmarshalWithOptions(data, &doc, opts...); err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}

	top, ok := doc.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, doc)
	}

	entries := make([]Entry, 0, len(top))
	for _, item := range top {
		entries = append(entries, Entry{
			Key:   fmt.Sprint(item.Key),
			Value: normalize(item.Value),
		})
	}
	return entries, nil
}

// normalize converts ordered maps below the top level into plain maps.
func normalize(v any) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		m := make(map[string]any, len(val))
		for _, item := range val {
			m[fmt.Sprint(item.Key)] = normalize(item.Value)
		}
		return m
	case map[string]any:
		for k, item := range val {
			val[k] = normalize(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = normalize(item)
		}
		return val
	default:
		return v
	}
}
