package pipeline

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// ResolveAssetRefs rewrites relative img[src] and a[href] values of an
// HTML document to file:// URLs under baseDir, so the document can be
// opened from another directory. URLs, anchors, absolute paths and paths
// escaping baseDir are left as they are. An empty baseDir returns doc
// unchanged.
func ResolveAssetRefs(doc, baseDir string) (string, error) {
	if baseDir == "" {
		return doc, nil
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", baseDir, err)
	}

	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("parsing HTML deck: %w", err)
	}

	if !resolveRefs(root, absBase) {
		return doc, nil
	}

	var buf strings.Builder
	if err := html.Render(&buf, root); err != nil {
		return "", fmt.Errorf("rendering HTML deck: %w", err)
	}
	return buf.String(), nil
}

// resolveRefs walks the tree and reports whether anything changed.
func resolveRefs(n *html.Node, base string) bool {
	changed := false
	if n.Type == html.ElementNode {
		switch n.Data {
		case "img":
			changed = resolveAttr(n, "src", base)
		case "a":
			changed = resolveAttr(n, "href", base)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if resolveRefs(c, base) {
			changed = true
		}
	}
	return changed
}

func resolveAttr(n *html.Node, key, base string) bool {
	for i, attr := range n.Attr {
		if attr.Key != key || !isLocalRef(attr.Val) {
			continue
		}
		target := filepath.Join(base, filepath.FromSlash(attr.Val))
		if !within(target, base) {
			continue
		}
		n.Attr[i].Val = (&url.URL{Scheme: "file", Path: filepath.ToSlash(target)}).String()
		return true
	}
	return false
}

// isLocalRef reports whether ref is a relative file path.
func isLocalRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}
	if u, err := url.Parse(ref); err != nil || u.Scheme != "" {
		return false
	}
	return !filepath.IsAbs(ref)
}

// within reports whether path is base or below it.
func within(path, base string) bool {
	rel, err := filepath.Rel(base, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
