package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	spellcards "github.com/alnah/go-spellcards"
	"github.com/alnah/go-spellcards/internal/config"
)

// writeFile writes content to dir/name and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestMergeFlags - Config precedence
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	base := func() *config.Config {
		cfg := config.DefaultConfig()
		cfg.Input.Files = []string{"config.json"}
		cfg.Filter.Class = "Magier"
		cfg.Output.Format = "html"
		cfg.Layout.Padding = 5
		return cfg
	}

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "no flags keeps config",
			args: nil,
			check: func(t *testing.T, cfg *config.Config) {
				if diff := cmp.Diff(base(), cfg); diff != "" {
					t.Errorf("config changed (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "files replace config files",
			args: []string{"a.json", "b.json"},
			check: func(t *testing.T, cfg *config.Config) {
				if diff := cmp.Diff([]string{"a.json", "b.json"}, cfg.Input.Files); diff != "" {
					t.Errorf("files mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "explicit empty class clears the filter",
			args: []string{"--characterclass", ""},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Filter.Class != "" {
					t.Errorf("class = %q, want empty", cfg.Filter.Class)
				}
			},
		},
		{
			name: "explicit zero padding wins",
			args: []string{"--padding", "0", "--page-step", "9", "--slice-width", "9"},
			check: func(t *testing.T, cfg *config.Config) {
				want := config.LayoutConfig{Padding: 0, PageStep: 9, SliceWidth: 9}
				if diff := cmp.Diff(want, cfg.Layout); diff != "" {
					t.Errorf("layout mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "output flags",
			args: []string{"-f", "pdf", "-o", "out", "--template-dir", "tmpl", "-t", "1m"},
			check: func(t *testing.T, cfg *config.Config) {
				got := []string{cfg.Output.Format, cfg.Output.Dir, cfg.Templates.Dir, cfg.PDF.Timeout}
				if diff := cmp.Diff([]string{"pdf", "out", "tmpl", "1m"}, got); diff != "" {
					t.Errorf("output mismatch (-want +got):\n%s", diff)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := parseBuildFlags(tt.args)
			if err != nil {
				t.Fatalf("parseBuildFlags() error: %v", err)
			}
			cfg := base()
			mergeFlags(f, cfg)
			tt.check(t, cfg)
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunBuild - Input handed to the generator
// ---------------------------------------------------------------------------

func TestRunBuild_DefaultInput(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{}
	env, _, _ := testEnv(gen)

	if err := runBuild(context.Background(), nil, env); err != nil {
		t.Fatalf("runBuild() error: %v", err)
	}

	want := spellcards.Input{
		Files:  []string{config.DefaultSpellFile},
		Format: spellcards.FormatTeX,
		Layout: &spellcards.Layout{Padding: 10, PageStep: 10, SliceWidth: 9},
	}
	if diff := cmp.Diff(want, gen.input); diff != "" {
		t.Errorf("Input mismatch (-want +got):\n%s", diff)
	}
	if !gen.closed {
		t.Error("generator not closed")
	}
}

func TestRunBuild_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "decks.yaml", `input:
  files: [base.json, extra.toml]
filter:
  class: Druide
output:
  format: html
layout:
  sliceWidth: 10
`)

	gen := &fakeGenerator{}
	env, _, _ := testEnv(gen)

	args := []string{"--config", cfgPath, "-cc", "Barde"}
	if err := runBuild(context.Background(), args, env); err != nil {
		t.Fatalf("runBuild() error: %v", err)
	}

	if diff := cmp.Diff([]string{"base.json", "extra.toml"}, gen.input.Files); diff != "" {
		t.Errorf("Files mismatch (-want +got):\n%s", diff)
	}
	if gen.input.Class != "Barde" {
		t.Errorf("Class = %q, want the flag value Barde", gen.input.Class)
	}
	if gen.input.Format != spellcards.FormatHTML {
		t.Errorf("Format = %q, want html from config", gen.input.Format)
	}
	if gen.input.Layout.SliceWidth != 10 || gen.input.Layout.Padding != 10 {
		t.Errorf("Layout = %+v, want config slice width over default padding", *gen.input.Layout)
	}
}

func TestRunBuild_Quiet(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(&fakeGenerator{})
	if err := runBuild(context.Background(), []string{"-q", "a.json"}, env); err != nil {
		t.Fatalf("runBuild() error: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing with --quiet", stdout)
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_EndToEnd - Real generator, LaTeX output
// ---------------------------------------------------------------------------

func TestRunMain_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeFile(t, dir, "base.json", `{
  "Feuerball": {"level": 3, "classes": ["Magier"], "text": "8W6 Schaden in 6 m Radius."},
  "Schild": {"level": 1, "classes": ["Magier"], "text": "Alt."}
}`)
	second := writeFile(t, dir, "extra.yaml", "Schild:\n  level: 1\n  classes: [Magier]\n  text: Neu.\n")
	outDir := filepath.Join(dir, "out")

	env, stdout, stderr := testEnv(nil)
	env.NewGenerator = DefaultEnv().NewGenerator

	args := []string{"spellcards", "--spellfile", first, second, "-cc", "Magier", "-o", outDir}
	if code := runMain(context.Background(), args, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "Magier.tex"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	doc := string(data)
	if !strings.Contains(doc, `\textbf{8W6} Schaden in 6~m Radius.`) {
		t.Error("formatted text missing from deck")
	}
	if !strings.Contains(doc, "Neu.") || strings.Contains(doc, "Alt.") {
		t.Error("later source did not replace the earlier record")
	}
	if strings.Index(doc, "{Schild}") > strings.Index(doc, "{Feuerball}") {
		t.Error("cards not in level order")
	}
	if !strings.Contains(stdout.String(), "Created "+filepath.Join(outDir, "Magier.tex")) {
		t.Errorf("stdout = %q, want a Created line", stdout)
	}
}

func TestRunMain_EndToEnd_NoMatches(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "spells.json", `{"Licht": {"level": 0, "classes": ["Kleriker"], "text": "x"}}`)

	env, stdout, stderr := testEnv(nil)
	env.NewGenerator = DefaultEnv().NewGenerator

	args := []string{"spellcards", path, "-cc", "Druide", "-o", dir}
	if code := runMain(context.Background(), args, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "Druide.tex")); err != nil {
		t.Errorf("empty deck not written: %v", err)
	}
	if !strings.Contains(stdout.String(), "no matching records") {
		t.Errorf("stdout = %q, want an empty-deck notice", stdout)
	}
}
