package spell

import (
	"cmp"
	"slices"
)

// Collection is an insertion-ordered mapping from record name to Spell.
type Collection struct {
	names  []string
	byName map[string]*Spell
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{byName: make(map[string]*Spell)}
}

// Put stores s under its name. A record with the same name is replaced
// but keeps the position of the first insertion.
func (c *Collection) Put(s *Spell) {
	if _, exists := c.byName[s.Name]; !exists {
		c.names = append(c.names, s.Name)
	}
	c.byName[s.Name] = s
}

// Merge puts every record of other into c, in other's order.
func (c *Collection) Merge(other *Collection) {
	for _, s := range other.Spells() {
		c.Put(s)
	}
}

// Get returns the record stored under name.
func (c *Collection) Get(name string) (*Spell, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.names)
}

// Names returns record names in collection order.
func (c *Collection) Names() []string {
	return slices.Clone(c.names)
}

// Spells returns records in collection order.
func (c *Collection) Spells() []*Spell {
	spells := make([]*Spell, 0, len(c.names))
	for _, name := range c.names {
		spells = append(spells, c.byName[name])
	}
	return spells
}

// Filter returns the records tagged with class. An empty class returns
// every record. No match yields an empty collection, not an error.
// Returns ErrMissingField if a record has no classes.
func (c *Collection) Filter(class string) (*Collection, error) {
	out := NewCollection()
	for _, s := range c.Spells() {
		if class == "" {
			out.Put(s)
			continue
		}
		ok, err := s.HasClass(class)
		if err != nil {
			return nil, err
		}
		if ok {
			out.Put(s)
		}
	}
	return out, nil
}

// SortByLevel orders records by ascending level. The sort is stable so
// records of equal level keep their collection order.
// Returns ErrMissingField or ErrInvalidLevel without reordering anything.
func (c *Collection) SortByLevel() error {
	levels := make(map[string]int, len(c.names))
	for _, s := range c.Spells() {
		level, err := s.Level()
		if err != nil {
			return err
		}
		levels[s.Name] = level
	}

	slices.SortStableFunc(c.names, func(a, b string) int {
		return cmp.Compare(levels[a], levels[b])
	})
	return nil
}
