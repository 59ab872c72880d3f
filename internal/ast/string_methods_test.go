package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeTypeStrings(t *testing.T) {
	for i := 1; i < len(nodeTypeNames); i++ {
		nodeType := NodeType(i)
		str := nodeType.String()
		assert.NotEqual(t, "Illegal", str, "NodeType %d has no name", i)

		back, ok := LookupNodeType(str)
		require.True(t, ok, str)
		assert.Equal(t, nodeType, back)
	}

	assert.Equal(t, "Illegal", NodeType(-1).String())
	assert.Equal(t, "Illegal", NodeType(len(nodeTypeNames)).String())
}

func TestNewCoversEveryKind(t *testing.T) {
	for i := 1; i < len(nodeTypeNames); i++ {
		nodeType := NodeType(i)
		if nodeType == OPERATOR || nodeType == UNARY_OPERATOR {
			continue
		}
		n, ok := New(nodeType.String())
		require.True(t, ok, nodeType.String())
		assert.Equal(t, nodeType, n.NodeType())
	}

	_, ok := New("Operator")
	assert.False(t, ok, "operators are created by their operator name")
	_, ok = New("Bogus")
	assert.False(t, ok)
}

func TestNewOperators(t *testing.T) {
	n, ok := New("Plus")
	require.True(t, ok)
	op, isOp := n.(*Operator)
	require.True(t, isOp)
	assert.Equal(t, PLUS, op.Op)
	assert.Equal(t, "Plus", KindName(n))

	n, ok = New("Uxnor")
	require.True(t, ok)
	un, isUnary := n.(*UnaryOperator)
	require.True(t, isUnary)
	assert.Equal(t, UXNOR, un.Op)
	assert.Equal(t, UNARY_OPERATOR, n.NodeType())
}

func TestSourceLine(t *testing.T) {
	id := &Identifier{Pos: Position{Line: 4}}
	assert.Equal(t, 4, id.SourceLine())

	id.Lineno = 17
	assert.Equal(t, 17, id.SourceLine())
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "top.vast:3:7", Position{Filename: "top.vast", Line: 3, Column: 7}.String())
	assert.Equal(t, "3:7", Position{Line: 3, Column: 7}.String())
}
