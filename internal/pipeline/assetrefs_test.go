package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestResolveAssetRefs - Relative references in printed decks
// ---------------------------------------------------------------------------

func TestResolveAssetRefs(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	fileURL := func(rel string) string {
		return (&url.URL{Scheme: "file", Path: filepath.ToSlash(filepath.Join(base, rel))}).String()
	}

	tests := []struct {
		name     string
		body     string
		want     string
		wantKept string
	}{
		{
			name: "relative image",
			body: `<img src="icons/feuer.png" alt="Feuer">`,
			want: `src="` + fileURL("icons/feuer.png") + `"`,
		},
		{
			name: "relative link",
			body: `<a href="regeln.html">Regeln</a>`,
			want: `href="` + fileURL("regeln.html") + `"`,
		},
		{
			name:     "http URL",
			body:     `<img src="https://example.com/a.png">`,
			wantKept: `src="https://example.com/a.png"`,
		},
		{
			name:     "data URL",
			body:     `<img src="data:image/png;base64,AAAA">`,
			wantKept: `src="data:image/png;base64,AAAA"`,
		},
		{
			name:     "anchor",
			body:     `<a href="#feuerball">Feuerball</a>`,
			wantKept: `href="#feuerball"`,
		},
		{
			name:     "protocol relative",
			body:     `<img src="//cdn.example.com/a.png">`,
			wantKept: `src="//cdn.example.com/a.png"`,
		},
		{
			name:     "escapes base",
			body:     `<img src="../../etc/passwd">`,
			wantKept: `src="../../etc/passwd"`,
		},
		{
			name:     "absolute path",
			body:     `<img src="` + filepath.ToSlash(filepath.Join(base, "a.png")) + `">`,
			wantKept: `src="` + filepath.ToSlash(filepath.Join(base, "a.png")) + `"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := "<!DOCTYPE html><html><head></head><body>" + tt.body + "</body></html>"
			got, err := ResolveAssetRefs(doc, base)
			if err != nil {
				t.Fatalf("ResolveAssetRefs() error: %v", err)
			}
			if tt.want != "" && !strings.Contains(got, tt.want) {
				t.Errorf("ResolveAssetRefs() = %q, want it to contain %q", got, tt.want)
			}
			if tt.wantKept != "" && (got != doc || !strings.Contains(got, tt.wantKept)) {
				t.Errorf("ResolveAssetRefs() = %q, want the document unchanged", got)
			}
		})
	}
}

func TestResolveAssetRefs_EmptyBase(t *testing.T) {
	t.Parallel()

	doc := `<html><body><img src="a.png"></body></html>`
	got, err := ResolveAssetRefs(doc, "")
	if err != nil {
		t.Fatalf("ResolveAssetRefs() error: %v", err)
	}
	if got != doc {
		t.Errorf("ResolveAssetRefs() = %q, want unchanged", got)
	}
}

func TestIsLocalRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref  string
		want bool
	}{
		{ref: "a.png", want: true},
		{ref: "img/a.png", want: true},
		{ref: "./a.png", want: true},
		{ref: "", want: false},
		{ref: "#x", want: false},
		{ref: "mailto:a@b.c", want: false},
		{ref: "file:///tmp/a.png", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()

			if got := isLocalRef(tt.ref); got != tt.want {
				t.Errorf("isLocalRef(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}
