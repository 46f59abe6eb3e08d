package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	spellcards "github.com/alnah/go-spellcards"
	"github.com/alnah/go-spellcards/internal/config"
)

// runBuild generates one deck from flags, an optional config file and
// built-in defaults, in increasing order of precedence.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseBuildFlags(args)
	if err != nil {
		return err
	}
	if flags.common.help {
		printBuildUsage(env.Stdout)
		return nil
	}
	if flags.version {
		printVersion(env.Stdout)
		return nil
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := spellcards.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	timeout, err := cfg.PDF.TimeoutDuration()
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.verbose, flags.common.quiet)
	defer func() { _ = logger.Sync() }()
	undo := setMaxProcs(logger)
	defer undo()

	gen, err := env.NewGenerator(
		spellcards.WithLogger(logger),
		spellcards.WithTimeout(timeout),
		spellcards.WithTemplateDir(cfg.Templates.Dir),
	)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := gen.Close(); cerr != nil {
			logger.Warn("closing generator", zap.Error(cerr))
		}
	}()

	layout := cfg.Layout.RenderLayout()
	in := spellcards.Input{
		Files:     cfg.Input.Files,
		Class:     cfg.Filter.Class,
		Format:    format,
		OutputDir: cfg.Output.Dir,
		Layout:    &layout,
	}
	logger.Debug("generating deck",
		zap.Strings("files", in.Files),
		zap.String("class", in.Class),
		zap.String("format", string(in.Format)),
		zap.Int("padding", layout.Padding),
		zap.Int("pageStep", layout.PageStep),
		zap.Int("sliceWidth", layout.SliceWidth))

	start := time.Now()
	result, err := gen.Generate(ctx, in)
	if err != nil {
		return err
	}

	newReporter(env.Stdout, flags.common.quiet, flags.common.verbose).created(result, time.Since(start))
	return nil
}

// loadConfig loads the named config, or the defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// mergeFlags overrides config values with flags set on the command line.
func mergeFlags(f *buildFlags, cfg *config.Config) {
	changed := f.changed
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if len(f.spellFiles) > 0 {
		cfg.Input.Files = f.spellFiles
	}
	if changed(classFlag) {
		cfg.Filter.Class = f.class
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("output-dir") {
		cfg.Output.Dir = f.outputDir
	}
	if changed("template-dir") {
		cfg.Templates.Dir = f.templateDir
	}
	if changed("timeout") {
		cfg.PDF.Timeout = f.timeout
	}
	if changed("padding") {
		cfg.Layout.Padding = f.layout.padding
	}
	if changed("page-step") {
		cfg.Layout.PageStep = f.layout.pageStep
	}
	if changed("slice-width") {
		cfg.Layout.SliceWidth = f.layout.sliceWidth
	}
}

// printVersion prints the program version.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "spellcards %s\n", Version)
}
