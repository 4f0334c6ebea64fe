// Package tokens rewrites the backslash shortcuts typed in proof line
// inputs into logic symbols.
package tokens

import "strings"

type Token struct {
	Pattern     string
	Replacement string
}

// Table is applied in order, one replacement per entry.
var Table = []Token{
	{Pattern: `\and`, Replacement: "∧"},
	{Pattern: `\or`, Replacement: "∨"},
	{Pattern: `\implies`, Replacement: "→"},
	{Pattern: `\not`, Replacement: "¬"},
	{Pattern: `\iff`, Replacement: "↔"},
	{Pattern: `\contradiction`, Replacement: "⊥"},
}

// Substitute replaces the first occurrence of every pattern in Table.
func Substitute(input string) string {
	for _, t := range Table {
		input = strings.Replace(input, t.Pattern, t.Replacement, 1)
	}
	return input
}
