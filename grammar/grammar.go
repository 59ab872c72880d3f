// Package grammar parses .vast files, the S-expression dump of a Verilog
// syntax tree:
//
//	(Source description=(Description definitions=[
//	  (ModuleDef name="top" line=1 items=[])
//	]))
package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type File struct {
	Pos   lexer.Position
	Nodes []*Node `@@*`
}

type Node struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Kind   string  `"(" @Ident`
	Attrs  []*Attr `@@* ")"`
}

type Attr struct {
	Pos   lexer.Position
	Name  string `@Ident "="`
	Value *Value `@@`
}

type Value struct {
	Pos   lexer.Position
	Node  *Node   `  @@`
	List  *List   `| @@`
	Str   *string `| @String`
	Int   *int64  `| @Number`
	Ident *string `| @Ident`
}

type List struct {
	Pos   lexer.Position
	Items []*Value `"[" ( @@ ","? )* "]"`
}

// Attr returns the attribute called name, or nil.
func (n *Node) Attr(name string) *Attr {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// IsNone reports whether the value is the None word.
func (v *Value) IsNone() bool {
	return v == nil || (v.Ident != nil && *v.Ident == "None")
}

// Bool returns the truth value of true, false, 0 and 1.
func (v *Value) Bool() (bool, bool) {
	switch {
	case v == nil:
		return false, false
	case v.Ident != nil && *v.Ident == "true":
		return true, true
	case v.Ident != nil && *v.Ident == "false":
		return false, true
	case v.Int != nil && (*v.Int == 0 || *v.Int == 1):
		return *v.Int == 1, true
	}
	return false, false
}
