// Package spell holds the spell record model and the ordered record
// collection the loader builds: merge, category filter and level sort.
package spell

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for record lookups.
var (
	ErrInvalidRecord = errors.New("record is not a mapping")
	ErrMissingField  = errors.New("record missing required field")
	ErrInvalidLevel  = errors.New("invalid level")
)

// Well-known record fields.
const (
	FieldLevel    = "level"
	FieldClasses  = "classes"
	FieldText     = "text"
	FieldTextCard = "text_card"

	// FieldTitle is the template variable holding the record name.
	FieldTitle = "title"
)

// Spell is one named record. Fields holds every key of the source record,
// including the well-known ones, so templates see all of them.
type Spell struct {
	Name   string
	Fields map[string]any
}

// New builds a Spell from a decoded record value.
// Returns ErrInvalidRecord if value is not a mapping.
func New(name string, value any) (*Spell, error) {
	fields, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T", ErrInvalidRecord, name, value)
	}
	return &Spell{Name: name, Fields: fields}, nil
}

// Level returns the record's level.
// Integral floats are accepted since JSON does not distinguish them.
func (s *Spell) Level() (int, error) {
	v, ok := s.Fields[FieldLevel]
	if !ok {
		return 0, fmt.Errorf("%w: %q has no %q", ErrMissingField, s.Name, FieldLevel)
	}

	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%w: %q has level %d", ErrInvalidLevel, s.Name, n)
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%w: %q has level %v", ErrInvalidLevel, s.Name, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %q has level of type %T", ErrInvalidLevel, s.Name, v)
	}
}

// Classes returns the record's category tags.
// A single string is read as one tag; non-string list items are skipped.
func (s *Spell) Classes() ([]string, error) {
	v, ok := s.Fields[FieldClasses]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no %q", ErrMissingField, s.Name, FieldClasses)
	}

	switch c := v.(type) {
	case string:
		return []string{c}, nil
	case []string:
		return c, nil
	case []any:
		classes := make([]string, 0, len(c))
		for _, item := range c {
			if str, ok := item.(string); ok {
				classes = append(classes, str)
			}
		}
		return classes, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q has classes of type %T", ErrMissingField, s.Name, v)
	}
}

// HasClass reports whether class is one of the record's tags.
func (s *Spell) HasClass(class string) (bool, error) {
	classes, err := s.Classes()
	if err != nil {
		return false, err
	}
	for _, c := range classes {
		if c == class {
			return true, nil
		}
	}
	return false, nil
}

// StringField returns a string field and whether it is present as a string.
func (s *Spell) StringField(key string) (string, bool) {
	str, ok := s.Fields[key].(string)
	return str, ok
}

// TemplateData returns the variables a card template receives: every
// record field plus the name under "title". The name wins over a record
// field called "title".
func (s *Spell) TemplateData() map[string]any {
	data := make(map[string]any, len(s.Fields)+1)
	for k, v := range s.Fields {
		data[k] = v
	}
	data[FieldTitle] = s.Name
	return data
}
