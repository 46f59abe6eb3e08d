package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	spellcards "github.com/alnah/go-spellcards"
	"github.com/alnah/go-spellcards/internal/assets"
)

// runTemplates dispatches the templates subcommands.
func runTemplates(args []string, env *Environment) error {
	if len(args) == 0 {
		printTemplatesUsage(env.Stderr)
		return fmt.Errorf("%w: templates needs a subcommand", ErrUsage)
	}

	switch args[0] {
	case "list":
		return runTemplatesList(env.Stdout)
	case "export":
		return runTemplatesExport(args[1:], env)
	case "help", "-h", "--help":
		printTemplatesUsage(env.Stdout)
		return nil
	default:
		return fmt.Errorf("%w: unknown templates subcommand %q", ErrUsage, args[0])
	}
}

// runTemplatesList prints the embedded template set names.
func runTemplatesList(w io.Writer) error {
	for _, set := range assets.EmbeddedTemplateSets() {
		fmt.Fprintln(w, set)
	}
	return nil
}

// runTemplatesExport writes the embedded set for a format into
// <dir>/templates/<set>/.
func runTemplatesExport(args []string, env *Environment) error {
	fs := flag.NewFlagSet("templates export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		formatName string
		common     commonFlags
	)
	fs.StringVarP(&formatName, "format", "f", "", "output format whose templates to export")
	addCommonFlags(fs, &common)

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if common.help {
		printTemplatesUsage(env.Stdout)
		return nil
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: templates export needs exactly one directory", ErrUsage)
	}

	format, err := spellcards.ParseFormat(formatName)
	if err != nil {
		return err
	}

	paths, err := assets.ExportTemplateSet(fs.Arg(0), format.TemplateSet())
	if err != nil {
		return err
	}

	r := newReporter(env.Stdout, common.quiet, common.verbose)
	for _, p := range paths {
		r.wrote(p)
	}
	return nil
}
