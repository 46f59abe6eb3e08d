package pipeline

import (
	"regexp"
	"strings"
)

// Bold placeholders use Unicode Private Use Area characters. They pass
// through Goldmark unchanged (no WithUnsafe needed) and are turned into
// <strong> tags after HTML generation.
const (
	BoldStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	BoldEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

// space matches Unicode whitespace, including the no-break spaces that
// RE2's \s leaves out.
const space = `[\s\x{1c}-\x{1f}\x{85}\p{Z}]`

// Precompiled patterns shared by both rule sets.
var (
	// *span* with no space right inside the markers; the span may be empty.
	boldPattern = regexp.MustCompile(`\*([^* ](?:[^*]*[^* ])?)?\*`)

	// Dice notation such as W20, 2W6 or 3W8 +2, after whitespace or "(".
	dicePattern = regexp.MustCompile(`(` + space + `|\()([0-9]*W(?:4|6|8|10|12|20)(?:` + space + `*\+[0-9]+)?)`)

	// A number followed by the metre abbreviation.
	unitPattern = regexp.MustCompile(`([0-9]+)` + space + `m`)
)

// Rule is one ordered text substitution.
// Replacement uses regexp.Expand syntax ($1, ${1}).
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply runs the rule over text.
func (r Rule) Apply(text string) string {
	return r.Pattern.ReplaceAllString(text, r.Replacement)
}

// Rules is an ordered rule list. Each rule sees the output of the previous one.
type Rules []Rule

// Apply runs every rule in order.
func (rs Rules) Apply(text string) string {
	for _, r := range rs {
		text = r.Apply(text)
	}
	return text
}

// LaTeXRules returns the substitutions for LaTeX output.
func LaTeXRules() Rules {
	return Rules{
		{Name: "bold", Pattern: boldPattern, Replacement: `\textbf{${1}}`},
		{Name: "dice", Pattern: dicePattern, Replacement: `${1}\textbf{${2}}`},
		{Name: "unit", Pattern: unitPattern, Replacement: `${1}~m`},
	}
}

// HTMLRules returns the substitutions for HTML output. Bold spans become
// placeholders so the Markdown converter leaves them alone; the unit space
// becomes a literal no-break space.
func HTMLRules() Rules {
	return Rules{
		{Name: "bold", Pattern: boldPattern, Replacement: BoldStartPlaceholder + "${1}" + BoldEndPlaceholder},
		{Name: "dice", Pattern: dicePattern, Replacement: "${1}" + BoldStartPlaceholder + "${2}" + BoldEndPlaceholder},
		{Name: "unit", Pattern: unitPattern, Replacement: "${1}\u00a0m"},
	}
}

// ConvertBoldPlaceholders converts placeholder markers to <strong> tags.
// Called after Goldmark HTML conversion.
func ConvertBoldPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, BoldStartPlaceholder, "<strong>"),
		BoldEndPlaceholder, "</strong>",
	)
}
