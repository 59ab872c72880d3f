package codegen

import (
	"strings"

	"v2sc/internal/layout"
)

// fieldsOf builds template fields from key/value pairs.
func fieldsOf(kv ...interface{}) layout.Fields {
	f := make(layout.Fields, len(kv)/2+1)
	for i := 0; i+1 < len(kv); i += 2 {
		f[kv[i].(string)] = kv[i+1]
	}
	return f
}

// escape terminates an escaped identifier with the space the language
// requires after it.
func escape(name string) string {
	if strings.HasPrefix(name, `\`) {
		return name + " "
	}
	return name
}

// delParen removes one pair of parentheses enclosing the whole text. Text
// such as "(a).b()" whose first parenthesis closes early is left alone.
func delParen(s string) string {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return s
	}
	if closingParen(s) != len(s)-1 {
		return s
	}
	return s[1 : len(s)-1]
}

// closingParen returns the index of the parenthesis closing s[0], skipping
// string literals, or -1.
func closingParen(s string) int {
	depth := 0
	quoted := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quoted {
			switch c {
			case '\\':
				i++
			case '"':
				quoted = false
			}
			continue
		}
		switch c {
		case '"':
			quoted = true
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// delSpace removes all whitespace.
func delSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// alignAssign indents the continuation lines of a multi-line assignment so
// they start two columns right of the first '='.
func alignAssign(text string) string {
	head, tail, found := strings.Cut(text, "\n")
	if !found {
		return text
	}
	p := strings.Index(head, "=")
	if p < 0 {
		return text
	}
	return head + "\n" + layout.Indent(strings.Repeat(" ", p+2), tail)
}
