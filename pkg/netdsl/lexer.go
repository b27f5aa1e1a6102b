// Package netdsl parses the .otnet netlist format: a small text DSL
// declaring components with sided pins and the nets connecting them. It is
// the hand-editable input surface in front of the layout and routing core.
package netdsl

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// NetLexer defines the lexical structure for .otnet files.
// Keywords are plain identifiers; the grammar matches them literally.
var NetLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// String literals with escape sequences
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	// Numbers (pin numbers are kept as strings after capture)
	{Name: "Int", Pattern: `[0-9]+`},

	// Identifiers: component refs, net ids, keywords
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_\-]*`},

	// Punctuation
	{Name: "Dot", Pattern: `\.`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
})
