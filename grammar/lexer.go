package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var VastLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `#[^\n]*`, nil},

		// Quoted strings keep Verilog literals such as 8'hff intact
		{"String", `"(\\.|[^"\\])*"`, nil},

		// Plain integers (line numbers, signed flags written as 0/1)
		{"Number", `-?[0-9]+`, nil},

		// Node kinds, attribute names and the words true, false and None
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Punctuation
		{"Punct", `[()\[\]=,]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
