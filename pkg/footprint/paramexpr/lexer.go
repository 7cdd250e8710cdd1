package paramexpr

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenises parameter override files. Newlines and semicolons both
// end an assignment.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Sep", Pattern: `[\n;]+`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Float", Pattern: `[-+]?[0-9]*\.[0-9]+([eE][-+]?[0-9]+)?`},
	{Name: "Int", Pattern: `[-+]?[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_\-]*`},

	{Name: "Dot", Pattern: `\.`},
	{Name: "Equals", Pattern: `=`},
})
