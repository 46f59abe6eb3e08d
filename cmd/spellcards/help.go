package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: spellcards [flags] [spellfile...]")
	fmt.Fprintln(w, "       spellcards <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate printable spell card decks from spell records.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  templates  List or export the built-in templates")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'spellcards --help' for the deck flags.")
}

// printBuildUsage prints usage for the default command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: spellcards [flags] [spellfile...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write <class>.<ext>, or All.<ext> without a class, to the output directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "      --spellfile <path>       Record file; repeatable, later files win")
	fmt.Fprintln(w, "                               (json, yaml, yml, toml, db, sqlite, sqlite3)")
	fmt.Fprintln(w, "      --characterclass <s>     Only cards of this class (alias -cc)")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -f, --format <s>             tex (default), html or pdf")
	fmt.Fprintln(w, "  -o, --output-dir <dir>       Output directory (default: current)")
	fmt.Fprintln(w, "      --template-dir <dir>     Custom templates in <dir>/templates/<set>/")
	fmt.Fprintln(w, "  -t, --timeout <d>            PDF page load timeout (default: 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "      --padding <n>            Blank cards after the last card (default: 10)")
	fmt.Fprintln(w, "      --page-step <n>          Cards between page starts (default: 10)")
	fmt.Fprintln(w, "      --slice-width <n>        Cards per page (default: 9)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show debug diagnostics")
	fmt.Fprintln(w, "      --version                Show version")
	fmt.Fprintln(w, "  -h, --help                   Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  spellcards -cc Magier")
	fmt.Fprintln(w, "  spellcards --spellfile base.json extra.yaml --format pdf -o decks")
}

// printTemplatesUsage prints usage for the templates command.
func printTemplatesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: spellcards templates <list|export> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list                  List built-in template sets")
	fmt.Fprintln(w, "  export <dir>          Write a template set to <dir>/templates/<set>/")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --format <s>      Format whose templates to export (default: tex)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pass the same <dir> to --template-dir after editing.")
}

// runHelp prints help for a command.
func runHelp(args []string, w io.Writer) error {
	if len(args) == 0 {
		printUsage(w)
		return nil
	}
	switch args[0] {
	case "build":
		printBuildUsage(w)
	case "templates":
		printTemplatesUsage(w)
	case "version":
		fmt.Fprintln(w, "Usage: spellcards version")
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
