package assets

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-spellcards/internal/fileutil"
)

// ExportTemplateSet writes the embedded templates of set to
// {dir}/templates/{set}/ so they can be edited and loaded back with a
// FilesystemLoader. Existing files are never overwritten.
// Returns the written paths in render order.
func ExportTemplateSet(dir, set string) ([]string, error) {
	ts, err := LoadTemplateSet(NewEmbeddedLoader(), set)
	if err != nil {
		return nil, err
	}

	contents := map[string]string{
		CardTemplate: ts.Card,
		PageTemplate: ts.Page,
		DeckTemplate: ts.Deck,
	}

	targetDir := filepath.Join(dir, "templates", set)
	paths := make([]string, 0, len(TemplateNames))
	for _, name := range TemplateNames {
		p := filepath.Join(targetDir, name+TemplateExt)
		if fileutil.FileExists(p) {
			return nil, fmt.Errorf("%w: %s", ErrAssetExists, p)
		}
		paths = append(paths, p)
	}

	for _, name := range TemplateNames {
		p := filepath.Join(targetDir, name+TemplateExt)
		if err := fileutil.WriteFile(p, []byte(contents[name])); err != nil {
			return nil, err
		}
	}
	return paths, nil
}
