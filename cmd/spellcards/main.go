package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	spellcards "github.com/alnah/go-spellcards"
	"github.com/alnah/go-spellcards/internal/assets"
	"github.com/alnah/go-spellcards/internal/config"
	"github.com/alnah/go-spellcards/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain runs the command line and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	err := dispatch(ctx, args, env)
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, configName(args)))
	return exitCodeFor(err)
}

// dispatch routes to a subcommand. Anything else builds a deck.
func dispatch(ctx context.Context, args []string, env *Environment) error {
	if len(args) > 0 {
		switch args[0] {
		case "templates":
			return runTemplates(args[1:], env)
		case "version":
			printVersion(env.Stdout)
			return nil
		case "help":
			return runHelp(args[1:], env.Stdout)
		}
	}
	return runBuild(ctx, args, env)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, cfgName string) string {
	switch {
	case errors.Is(err, spellcards.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, spellcards.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(cfgName))
	case errors.Is(err, spellcards.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, spellcards.ErrTemplateSetNotFound):
		return hints.ForTemplateSetNotFound(assets.EmbeddedTemplateSets())
	case errors.Is(err, spellcards.ErrIncompleteTemplateSet):
		return hints.ForIncompleteTemplateSet()
	case errors.Is(err, spellcards.ErrTemplateExecute):
		return hints.ForTemplateExecute()
	case errors.Is(err, spellcards.ErrMissingField):
		return hints.ForMissingField()
	case errors.Is(err, spellcards.ErrUnsupportedSource):
		return hints.ForUnsupportedSource()
	}
	return ""
}

// configName extracts the --config value for hints, without failing on
// otherwise invalid arguments.
func configName(args []string) string {
	for i, arg := range args {
		if (arg == "--config" || arg == "-c") && i+1 < len(args) {
			return args[i+1]
		}
		if name, ok := strings.CutPrefix(arg, "--config="); ok {
			return name
		}
	}
	return ""
}
