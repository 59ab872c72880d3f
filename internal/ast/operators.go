package ast

import mapset "github.com/deckarep/golang-set"

type OpKind int

const (
	OP_ILLEGAL OpKind = iota

	// Unary, reductions included
	UPLUS
	UMINUS
	ULNOT
	UNOT
	UAND
	UNAND
	UOR
	UNOR
	UXOR
	UXNOR

	// Binary
	POWER
	TIMES
	DIVIDE
	MOD
	PLUS
	MINUS
	SLL
	SRL
	SLA
	SRA
	LESS_THAN
	GREATER_THAN
	LESS_EQ
	GREATER_EQ
	EQ
	NOT_EQ
	EQL
	NOT_EQL
	AND
	XOR
	XNOR
	OR
	LAND
	LOR
)

type opInfo struct {
	name  string
	mark  string
	order int
}

// opTable follows Verilog precedence: a lower order binds tighter.
var opTable = [...]opInfo{
	OP_ILLEGAL:   {"Illegal", "", -1},
	UPLUS:        {"Uplus", "+", 0},
	UMINUS:       {"Uminus", "-", 0},
	ULNOT:        {"Ulnot", "!", 0},
	UNOT:         {"Unot", "~", 0},
	UAND:         {"Uand", "&", 0},
	UNAND:        {"Unand", "~&", 0},
	UOR:          {"Uor", "|", 0},
	UNOR:         {"Unor", "~|", 0},
	UXOR:         {"Uxor", "^", 0},
	UXNOR:        {"Uxnor", "~^", 0},
	POWER:        {"Power", "**", 1},
	TIMES:        {"Times", "*", 2},
	DIVIDE:       {"Divide", "/", 2},
	MOD:          {"Mod", "%", 2},
	PLUS:         {"Plus", "+", 3},
	MINUS:        {"Minus", "-", 3},
	SLL:          {"Sll", "<<", 4},
	SRL:          {"Srl", ">>", 4},
	SLA:          {"Sla", "<<<", 4},
	SRA:          {"Sra", ">>>", 4},
	LESS_THAN:    {"LessThan", "<", 5},
	GREATER_THAN: {"GreaterThan", ">", 5},
	LESS_EQ:      {"LessEq", "<=", 5},
	GREATER_EQ:   {"GreaterEq", ">=", 5},
	EQ:           {"Eq", "==", 6},
	NOT_EQ:       {"NotEq", "!=", 6},
	EQL:          {"Eql", "===", 6},
	NOT_EQL:      {"NotEql", "!==", 6},
	AND:          {"And", "&", 7},
	XOR:          {"Xor", "^", 7},
	XNOR:         {"Xnor", "~^", 7},
	OR:           {"Or", "|", 8},
	LAND:         {"Land", "&&", 9},
	LOR:          {"Lor", "||", 10},
}

// mandatoryParens holds the operators whose parentheses are never elided:
// shifts, relations and equalities bind differently in C++ than in Verilog.
var mandatoryParens = mapset.NewSet(SLL, SRL, SLA, SRA,
	LESS_THAN, GREATER_THAN, LESS_EQ, GREATER_EQ,
	EQ, NOT_EQ, EQL, NOT_EQL)

func (op OpKind) valid() bool {
	return op > OP_ILLEGAL && int(op) < len(opTable)
}

func (op OpKind) String() string {
	if !op.valid() {
		return "Illegal"
	}
	return opTable[op].name
}

// Mark is the Verilog token of the operator.
func (op OpKind) Mark() string {
	if !op.valid() {
		return ""
	}
	return opTable[op].mark
}

// Order is the precedence rank of the operator, -1 for an invalid kind.
func (op OpKind) Order() int {
	if !op.valid() {
		return -1
	}
	return opTable[op].order
}

func (op OpKind) IsUnary() bool {
	return op >= UPLUS && op <= UXNOR
}

// Mandatory reports whether an operand built from op keeps its parentheses.
func (op OpKind) Mandatory() bool {
	return mandatoryParens.Contains(op)
}

// LookupOp maps an operator class name such as "Plus" to its kind.
func LookupOp(name string) (OpKind, bool) {
	for i := range opTable {
		op := OpKind(i)
		if op.valid() && opTable[i].name == name {
			return op, true
		}
	}
	return OP_ILLEGAL, false
}

// OrderOf returns the precedence rank of an operator node. Nodes that are
// not operators have no rank.
func OrderOf(n Node) (int, bool) {
	switch n := n.(type) {
	case *Operator:
		return n.Op.Order(), true
	case *UnaryOperator:
		return n.Op.Order(), true
	}
	return 0, false
}

// MandatoryParens reports whether n is an operator node whose parentheses
// must survive in the rendered text.
func MandatoryParens(n Node) bool {
	switch n := n.(type) {
	case *Operator:
		return n.Op.Mandatory()
	case *UnaryOperator:
		return n.Op.Mandatory()
	}
	return false
}
