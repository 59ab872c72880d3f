package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChildrenSkipsNilFields(t *testing.T) {
	op := &Operator{Op: PLUS, Left: &Identifier{Name: "a"}}
	children := Children(op)
	assert.Len(t, children, 1)

	var nilIdent *Identifier
	assert.True(t, IsNil(nilIdent))
	assert.Nil(t, Children(nilIdent))
}

func TestInspectOrder(t *testing.T) {
	tree := &Assign{
		Left: &Lvalue{Var: &Identifier{Name: "y"}},
		Right: &Rvalue{Var: &Operator{
			Op:    AND,
			Left:  &Identifier{Name: "a"},
			Right: &Pointer{Var: &Identifier{Name: "b"}, Ptr: &IntConst{Value: "0"}},
		}},
	}

	var names []string
	Inspect(tree, func(n Node) bool {
		if id, ok := n.(*Identifier); ok {
			names = append(names, id.Name)
		}
		return true
	})
	assert.Equal(t, []string{"y", "a", "b"}, names)
}

func TestInspectPrunes(t *testing.T) {
	tree := &SensList{List: []*Sens{
		{Sig: &Identifier{Name: "CLK"}, Type: "posedge"},
		{Sig: &Identifier{Name: "RSTX"}, Type: "negedge"},
	}}

	count := 0
	Inspect(tree, func(n Node) bool {
		count++
		_, isSens := n.(*Sens)
		return !isSens
	})
	assert.Equal(t, 3, count)
}
