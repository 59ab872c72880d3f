package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorOrders(t *testing.T) {
	tests := []struct {
		op    OpKind
		order int
		mark  string
	}{
		{UMINUS, 0, "-"},
		{UNAND, 0, "~&"},
		{POWER, 1, "**"},
		{TIMES, 2, "*"},
		{MOD, 2, "%"},
		{PLUS, 3, "+"},
		{SRA, 4, ">>>"},
		{LESS_EQ, 5, "<="},
		{NOT_EQL, 6, "!=="},
		{XNOR, 7, "~^"},
		{OR, 8, "|"},
		{LAND, 9, "&&"},
		{LOR, 10, "||"},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.order, tt.op.Order())
			assert.Equal(t, tt.mark, tt.op.Mark())
		})
	}
}

func TestOperatorOrderIsMonotonic(t *testing.T) {
	// Binary kinds are declared from tightest to loosest binding.
	prev := 0
	for op := POWER; op <= LOR; op++ {
		assert.GreaterOrEqual(t, op.Order(), prev, op.String())
		prev = op.Order()
	}
}

func TestMandatoryParens(t *testing.T) {
	mandatory := []OpKind{SLL, SRL, SRA, LESS_THAN, GREATER_THAN, LESS_EQ, GREATER_EQ, EQ, NOT_EQ, EQL, NOT_EQL}
	for _, op := range mandatory {
		assert.True(t, op.Mandatory(), op.String())
		assert.True(t, MandatoryParens(&Operator{Op: op}), op.String())
	}

	optional := []OpKind{PLUS, TIMES, POWER, AND, OR, XOR, LAND, LOR, UMINUS, UNOT}
	for _, op := range optional {
		assert.False(t, op.Mandatory(), op.String())
	}

	assert.False(t, MandatoryParens(&Identifier{Name: "a"}))
}

func TestOrderOf(t *testing.T) {
	order, ok := OrderOf(&Operator{Op: MINUS})
	assert.True(t, ok)
	assert.Equal(t, 3, order)

	order, ok = OrderOf(&UnaryOperator{Op: ULNOT})
	assert.True(t, ok)
	assert.Equal(t, 0, order)

	_, ok = OrderOf(&IntConst{Value: "1"})
	assert.False(t, ok)
}

func TestLookupOp(t *testing.T) {
	op, ok := LookupOp("GreaterEq")
	assert.True(t, ok)
	assert.Equal(t, GREATER_EQ, op)
	assert.False(t, op.IsUnary())

	op, ok = LookupOp("Unor")
	assert.True(t, ok)
	assert.True(t, op.IsUnary())

	_, ok = LookupOp("Illegal")
	assert.False(t, ok)
	assert.Equal(t, -1, OpKind(999).Order())
}
