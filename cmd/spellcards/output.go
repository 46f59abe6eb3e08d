package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	spellcards "github.com/alnah/go-spellcards"
)

// reporter prints user-facing status lines. Colors follow fatih/color,
// which disables them for NO_COLOR and non-terminal output.
type reporter struct {
	w       io.Writer
	quiet   bool
	verbose bool
	ok      *color.Color
	warn    *color.Color
}

func newReporter(w io.Writer, quiet, verbose bool) *reporter {
	return &reporter{
		w:       w,
		quiet:   quiet,
		verbose: verbose,
		ok:      color.New(color.FgGreen, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
	}
}

// created reports a written deck.
func (r *reporter) created(res *spellcards.Result, elapsed time.Duration) {
	if r.quiet {
		return
	}

	label := r.ok
	if res.Records == 0 {
		label = r.warn
	}
	label.Fprint(r.w, "Created")
	fmt.Fprintf(r.w, " %s", res.Path)

	switch {
	case res.Records == 0:
		fmt.Fprint(r.w, " (no matching records)")
	case r.verbose:
		fmt.Fprintf(r.w, " (%d records, %d pages, %s)", res.Records, res.Pages, elapsed.Round(time.Millisecond))
	}
	fmt.Fprintln(r.w)
}

// wrote reports a file written by a helper command.
func (r *reporter) wrote(path string) {
	if r.quiet {
		return
	}
	r.ok.Fprint(r.w, "Created")
	fmt.Fprintf(r.w, " %s\n", path)
}
