package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelParen(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"(a + b)", "a + b"},
		{"((a))", "(a)"},
		{"(a) + (b)", "(a) + (b)"},
		{"(a).range(1, 0)", "(a).range(1, 0)"},
		{`(")")`, `")"`},
		{`("(" + a)`, `"(" + a`},
		{"a", "a"},
		{"()", ""},
		{"(", "("},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, delParen(tt.in), "delParen(%q)", tt.in)
	}
}

func TestDelSpace(t *testing.T) {
	assert.Equal(t, "W-1", delSpace(" W - 1 "))
	assert.Equal(t, "a+b", delSpace("a +\n\tb"))
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "plain", escape("plain"))
	assert.Equal(t, `\a+b `, escape(`\a+b`))
}

func TestAlignAssign(t *testing.T) {
	assert.Equal(t, "x = a;", alignAssign("x = a;"))
	assert.Equal(t, "sum = (a ?\n      b : c);", alignAssign("sum = (a ?\nb : c);"))
	assert.Equal(t, "no\nequals", alignAssign("no\nequals"))
	assert.Equal(t, "x = {a,\n\n    b};", alignAssign("x = {a,\n\nb};"), "blank lines stay empty")
	assert.Equal(t, "x = {a,\n  \n    b};", alignAssign("x = {a,\n  \nb};"))
}
