package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed templates
var templates embed.FS

// EmbeddedLoader loads templates compiled into the binary.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads templates/{set}/{name}.tmpl from embedded assets.
func (e *EmbeddedLoader) LoadTemplate(set, name string) (string, error) {
	if err := validateNames(set, name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile(path.Join("templates", set, name+TemplateExt))
	if err != nil {
		return "", fmt.Errorf("%w: %s/%s", ErrTemplateNotFound, set, name)
	}

	return string(content), nil
}

// EmbeddedTemplateSets returns the names of the built-in template sets, sorted.
func EmbeddedTemplateSets() []string {
	entries, err := fs.ReadDir(templates, "templates")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
