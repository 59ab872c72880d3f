package ast

// Identifier references a named object, optionally through a hierarchy.
// Example: top.u0.count
type Identifier struct {
	Pos    Position         `vast:"-"`
	Lineno int              `vast:"line"`
	Name   string           `vast:"name"`
	Scope  *IdentifierScope `vast:"scope"`
}

// IntConst keeps the literal exactly as written in the source.
// Example: 8'hFF, 'b1010, 42
type IntConst struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Value  string   `vast:"value"`
}

type FloatConst struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Value  string   `vast:"value"`
}

// StringConst holds the text between the quotes.
type StringConst struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Value  string   `vast:"value"`
}

// Concat is a right-hand side concatenation {a, b}.
type Concat struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	List   []Node   `vast:"list"`
}

// LConcat is a concatenation used as an assignment target.
type LConcat struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	List   []Node   `vast:"list"`
}

// Repeat is a replication {times{value}}.
type Repeat struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Value  Node     `vast:"value"`
	Times  Node     `vast:"times"`
}

// Partselect is a bit range select var[msb:lsb].
type Partselect struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Var    Node     `vast:"var"`
	MSB    Node     `vast:"msb"`
	LSB    Node     `vast:"lsb"`
}

// Pointer is a bit or element select var[ptr].
type Pointer struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Var    Node     `vast:"var"`
	Ptr    Node     `vast:"ptr"`
}

type Lvalue struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Var    Node     `vast:"var"`
}

type Rvalue struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Var    Node     `vast:"var"`
}

// Operator is a binary operation. Op selects one of the binary OpKinds.
// Example: a + b
type Operator struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Op     OpKind   `vast:"-"`
	Left   Node     `vast:"left"`
	Right  Node     `vast:"right"`
}

// UnaryOperator is a prefix operation, reductions included.
// Example: ~a, &bus
type UnaryOperator struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Op     OpKind   `vast:"-"`
	Right  Node     `vast:"right"`
}

// Cond is the ternary operator.
type Cond struct {
	Pos        Position `vast:"-"`
	Lineno     int      `vast:"line"`
	Cond       Node     `vast:"cond"`
	TrueValue  Node     `vast:"true_value"`
	FalseValue Node     `vast:"false_value"`
}

type FunctionCall struct {
	Pos    Position    `vast:"-"`
	Lineno int         `vast:"line"`
	Name   *Identifier `vast:"name"`
	Args   []Node      `vast:"args"`
}

// SystemCall is a $-prefixed builtin. Syscall omits the dollar sign.
// Example: $display("%d", x)
type SystemCall struct {
	Pos     Position `vast:"-"`
	Lineno  int      `vast:"line"`
	Syscall string   `vast:"syscall"`
	Args    []Node   `vast:"args"`
}

type IdentifierScopeLabel struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
	Loop   Node     `vast:"loop"`
}

type IdentifierScope struct {
	Pos       Position                `vast:"-"`
	Lineno    int                     `vast:"line"`
	LabelList []*IdentifierScopeLabel `vast:"labellist"`
}
