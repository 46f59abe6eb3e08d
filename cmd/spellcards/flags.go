package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command lines.
var ErrUsage = errors.New("invalid usage")

// classFlag is the long name of the category filter. The short form -cc
// predates pflag and is rewritten before parsing.
const (
	classFlag      = "characterclass"
	legacyClassArg = "-cc"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	help    bool
}

// layoutFlags holds pagination flags.
type layoutFlags struct {
	padding    int
	pageStep   int
	sliceWidth int
}

// buildFlags holds all flags of the default command.
type buildFlags struct {
	common      commonFlags
	spellFiles  []string
	class       string
	format      string
	outputDir   string
	templateDir string
	timeout     string
	layout      layoutFlags
	version     bool

	// changed reports whether a flag was set on the command line.
	changed func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug diagnostics")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
}

// addLayoutFlags adds pagination flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.IntVar(&f.padding, "padding", 0, "blank cards appended after the last card")
	fs.IntVar(&f.pageStep, "page-step", 0, "cards between page starts")
	fs.IntVar(&f.sliceWidth, "slice-width", 0, "cards shown per page")
}

// rewriteLegacyArgs turns "-cc X" and "-cc=X" into their --characterclass
// form. Arguments after "--" are left alone.
func rewriteLegacyArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		switch {
		case arg == legacyClassArg:
			out = append(out, "--"+classFlag)
		case strings.HasPrefix(arg, legacyClassArg+"="):
			out = append(out, "--"+classFlag+strings.TrimPrefix(arg, legacyClassArg))
		default:
			out = append(out, arg)
		}
	}
	return out
}

// parseBuildFlags parses the default command. Positional arguments are
// appended to --spellfile, so "--spellfile a.json b.json" reads both.
func parseBuildFlags(args []string) (*buildFlags, error) {
	fs := flag.NewFlagSet("spellcards", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &buildFlags{}

	fs.StringSliceVar(&f.spellFiles, "spellfile", nil, "record files (json, yaml, toml, sqlite)")
	fs.StringVar(&f.class, classFlag, "", "only cards of this class (alias -cc)")
	fs.StringVarP(&f.format, "format", "f", "", "output format: tex, html, pdf")
	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "output directory")
	fs.StringVar(&f.templateDir, "template-dir", "", "custom template directory")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF page load timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.version, "version", false, "show version")

	addCommonFlags(fs, &f.common)
	addLayoutFlags(fs, &f.layout)

	if err := fs.Parse(rewriteLegacyArgs(args)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	f.spellFiles = append(f.spellFiles, fs.Args()...)
	f.changed = fs.Changed
	return f, nil
}
