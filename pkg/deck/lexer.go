// Package deck reads SPICE-style netlist decks back into a circuit graph.
//
// The dialect is the one the circuit package generates: "*" comment lines,
// one component card per line, and a trailing ".end" directive. Reading is
// lenient: cards with unknown element letters become generic components and
// malformed cards are skipped, both reported as warnings rather than
// failing the whole deck.
package deck

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// deckLexer tokenizes netlist decks. Rule order matters: comments and
// directives must win over the catch-all word rule.
var deckLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - SPICE style (* to end of line)
	{Name: "Comment", Pattern: `\*[^\n]*`},

	// Directives (.end, .tran, ...)
	{Name: "Directive", Pattern: `\.[A-Za-z]+`},

	// Any other whitespace-delimited field, including value expressions
	// such as "SIN(0V" and "1kHz)"
	{Name: "Word", Pattern: `[^\s]+`},

	// Line structure is significant in a deck
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})
