package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"
	"v2sc/internal/ast"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := New(DefaultOptions(), nil)
	require.NoError(t, err)
	return g
}

func render(t *testing.T, n ast.Node) string {
	t.Helper()
	text, err := newTestGenerator(t).Render(n)
	require.NoError(t, err)
	return text
}

func project(t *testing.T, n ast.Node, ctx Context) (string, bool) {
	t.Helper()
	text, ok, err := newTestGenerator(t).Project(n, ctx)
	require.NoError(t, err)
	return text, ok
}

func id(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

func ic(value string) *ast.IntConst { return &ast.IntConst{Value: value} }

func bin(op ast.OpKind, left, right ast.Node) *ast.Operator {
	return &ast.Operator{Op: op, Left: left, Right: right}
}

func un(op ast.OpKind, right ast.Node) *ast.UnaryOperator {
	return &ast.UnaryOperator{Op: op, Right: right}
}

func rng(msb, lsb ast.Node) *ast.Width { return &ast.Width{MSB: msb, LSB: lsb} }

func lv(n ast.Node) *ast.Lvalue { return &ast.Lvalue{Var: n} }

func rv(n ast.Node) *ast.Rvalue { return &ast.Rvalue{Var: n} }

func sens(name, typ string) *ast.Sens { return &ast.Sens{Sig: id(name), Type: typ} }

func param(name string, value ast.Node) *ast.Decl {
	return &ast.Decl{List: []ast.Node{&ast.Parameter{Name: name, Value: rv(value)}}}
}
