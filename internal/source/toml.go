package source

import (
	"github.com/BurntSushi/toml"

	"github.com/alnah/go-spellcards/internal/yamlutil"
)

// decodeTOML decodes a TOML document. Top-level keys keep the order in
// which they first appear, taken from the decoder metadata.
func decodeTOML(data []byte) ([]yamlutil.Entry, error) {
	var doc map[string]any
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(doc))
	entries := make([]yamlutil.Entry, 0, len(doc))
	for _, key := range md.Keys() {
		if len(key) == 0 || seen[key[0]] {
			continue
		}
		seen[key[0]] = true
		entries = append(entries, yamlutil.Entry{Key: key[0], Value: doc[key[0]]})
	}
	return entries, nil
}
