package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	spellcards "github.com/alnah/go-spellcards"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake generator and environment
// ---------------------------------------------------------------------------

// fakeGenerator records the input it receives.
type fakeGenerator struct {
	input  spellcards.Input
	called bool
	closed bool
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, in spellcards.Input) (*spellcards.Result, error) {
	f.called = true
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	name, _ := spellcards.OutputName(in.Class, in.Format)
	return &spellcards.Result{
		Path:    filepath.Join(in.OutputDir, name),
		Name:    name,
		Format:  in.Format,
		Records: 2,
		Pages:   1,
	}, nil
}

func (f *fakeGenerator) Close() error {
	f.closed = true
	return nil
}

// testEnv returns an environment writing to buffers and using gen.
func testEnv(gen Generator) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{
		Stdout: stdout,
		Stderr: stderr,
		NewGenerator: func(...spellcards.Option) (Generator, error) {
			return gen, nil
		},
	}, stdout, stderr
}

// ---------------------------------------------------------------------------
// TestRunMain - Dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		genErr     error
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "version command",
			args:       []string{"spellcards", "version"},
			wantCode:   ExitSuccess,
			wantStdout: "spellcards dev",
		},
		{
			name:       "version flag",
			args:       []string{"spellcards", "--version"},
			wantCode:   ExitSuccess,
			wantStdout: "spellcards dev",
		},
		{
			name:       "help",
			args:       []string{"spellcards", "help"},
			wantCode:   ExitSuccess,
			wantStdout: "Usage: spellcards",
		},
		{
			name:       "help flag",
			args:       []string{"spellcards", "-h"},
			wantCode:   ExitSuccess,
			wantStdout: "--characterclass",
		},
		{
			name:       "help for unknown command",
			args:       []string{"spellcards", "help", "nope"},
			wantCode:   ExitUsage,
			wantStderr: "unknown command",
		},
		{
			name:       "unknown flag",
			args:       []string{"spellcards", "--nope"},
			wantCode:   ExitUsage,
			wantStderr: "invalid usage",
		},
		{
			name:       "unknown format",
			args:       []string{"spellcards", "--format", "docx", "a.json"},
			wantCode:   ExitUsage,
			wantStderr: "output.format",
		},
		{
			name:       "success",
			args:       []string{"spellcards", "-cc", "Magier", "a.json"},
			wantCode:   ExitSuccess,
			wantStdout: "Created Magier.tex",
		},
		{
			name:       "browser error with hint",
			args:       []string{"spellcards", "--format", "pdf", "a.json"},
			genErr:     spellcards.ErrBrowserConnect,
			wantCode:   ExitBrowser,
			wantStderr: "hint:",
		},
		{
			name:       "unsupported source with hint",
			args:       []string{"spellcards", "a.csv"},
			genErr:     spellcards.ErrUnsupportedSource,
			wantCode:   ExitIO,
			wantStderr: ".toml",
		},
		{
			name:       "missing config with hint",
			args:       []string{"spellcards", "--config", "surely-missing-config-name", "a.json"},
			wantCode:   ExitUsage,
			wantStderr: "use --config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(&fakeGenerator{err: tt.genErr})
			code := runMain(context.Background(), tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestConfigName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"--config", "decks"}, want: "decks"},
		{args: []string{"-c", "decks"}, want: "decks"},
		{args: []string{"--config=decks"}, want: "decks"},
		{args: []string{"--config"}, want: ""},
		{args: []string{"a.json"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			if got := configName(tt.args); got != tt.want {
				t.Errorf("configName(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantHint bool
	}{
		{name: "browser", err: spellcards.ErrBrowserConnect, wantHint: true},
		{name: "page load", err: spellcards.ErrPageLoad, wantHint: true},
		{name: "write", err: spellcards.ErrWriteOutput, wantHint: true},
		{name: "template set", err: spellcards.ErrTemplateSetNotFound, wantHint: true},
		{name: "incomplete set", err: spellcards.ErrIncompleteTemplateSet, wantHint: true},
		{name: "template execute", err: spellcards.ErrTemplateExecute, wantHint: true},
		{name: "missing field", err: spellcards.ErrMissingField, wantHint: true},
		{name: "plain", err: errors.New("boom"), wantHint: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err, "")
			if (got != "") != tt.wantHint {
				t.Errorf("hintFor(%v) = %q, want hint: %v", tt.err, got, tt.wantHint)
			}
		})
	}
}
