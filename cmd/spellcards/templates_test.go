package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-spellcards/internal/assets"
)

func TestRunTemplates_List(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(nil)
	if err := runTemplates([]string{"list"}, env); err != nil {
		t.Fatalf("runTemplates(list) error: %v", err)
	}
	if got := stdout.String(); got != "html\ntex\n" {
		t.Errorf("list output = %q, want %q", got, "html\ntex\n")
	}
}

func TestRunTemplates_Export(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  []string
		wantSet string
	}{
		{name: "default is tex", format: nil, wantSet: "tex"},
		{name: "html", format: []string{"--format", "html"}, wantSet: "html"},
		{name: "pdf uses html templates", format: []string{"-f", "pdf"}, wantSet: "html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			env, stdout, _ := testEnv(nil)

			args := append([]string{"export", dir}, tt.format...)
			if err := runTemplates(args, env); err != nil {
				t.Fatalf("runTemplates(export) error: %v", err)
			}

			for _, name := range assets.TemplateNames {
				p := filepath.Join(dir, "templates", tt.wantSet, name+assets.TemplateExt)
				if _, err := os.Stat(p); err != nil {
					t.Errorf("missing exported template %s: %v", p, err)
				}
			}
			if got := strings.Count(stdout.String(), "Created "); got != len(assets.TemplateNames) {
				t.Errorf("Created lines = %d, want %d", got, len(assets.TemplateNames))
			}
		})
	}
}

func TestRunTemplates_ExportRefusesOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env, _, _ := testEnv(nil)

	if err := runTemplates([]string{"export", dir}, env); err != nil {
		t.Fatalf("first export error: %v", err)
	}
	if err := runTemplates([]string{"export", dir}, env); !errors.Is(err, assets.ErrAssetExists) {
		t.Errorf("second export error = %v, want ErrAssetExists", err)
	}
}

func TestRunTemplates_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "no subcommand", args: nil},
		{name: "unknown subcommand", args: []string{"delete"}},
		{name: "export without dir", args: []string{"export"}},
		{name: "export with two dirs", args: []string{"export", "a", "b"}},
		{name: "export unknown flag", args: []string{"export", "--nope", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := testEnv(nil)
			if err := runTemplates(tt.args, env); !errors.Is(err, ErrUsage) {
				t.Errorf("runTemplates(%v) error = %v, want ErrUsage", tt.args, err)
			}
		})
	}
}
