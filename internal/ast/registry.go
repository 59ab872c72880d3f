package ast

import "sort"

// constructors creates an empty node per class name. Operator classes
// are handled by New through the operator table.
var constructors = map[NodeType]func() Node{
	SOURCE:                   func() Node { return &Source{} },
	DESCRIPTION:              func() Node { return &Description{} },
	MODULE_DEF:               func() Node { return &ModuleDef{} },
	PARAMLIST:                func() Node { return &Paramlist{} },
	PORTLIST:                 func() Node { return &Portlist{} },
	PORT:                     func() Node { return &Port{} },
	IOPORT:                   func() Node { return &Ioport{} },
	WIDTH:                    func() Node { return &Width{} },
	LENGTH:                   func() Node { return &Length{} },
	IDENTIFIER:               func() Node { return &Identifier{} },
	INT_CONST:                func() Node { return &IntConst{} },
	FLOAT_CONST:              func() Node { return &FloatConst{} },
	STRING_CONST:             func() Node { return &StringConst{} },
	INPUT:                    func() Node { return &Input{} },
	OUTPUT:                   func() Node { return &Output{} },
	INOUT:                    func() Node { return &Inout{} },
	TRI:                      func() Node { return &Tri{} },
	WIRE:                     func() Node { return &Wire{} },
	REG:                      func() Node { return &Reg{} },
	WIRE_ARRAY:               func() Node { return &WireArray{} },
	REG_ARRAY:                func() Node { return &RegArray{} },
	INTEGER:                  func() Node { return &Integer{} },
	REAL:                     func() Node { return &Real{} },
	GENVAR:                   func() Node { return &Genvar{} },
	PARAMETER:                func() Node { return &Parameter{} },
	LOCALPARAM:               func() Node { return &Localparam{} },
	DECL:                     func() Node { return &Decl{} },
	CONCAT:                   func() Node { return &Concat{} },
	LCONCAT:                  func() Node { return &LConcat{} },
	REPEAT:                   func() Node { return &Repeat{} },
	PARTSELECT:               func() Node { return &Partselect{} },
	POINTER:                  func() Node { return &Pointer{} },
	LVALUE:                   func() Node { return &Lvalue{} },
	RVALUE:                   func() Node { return &Rvalue{} },
	COND:                     func() Node { return &Cond{} },
	FUNCTION_CALL:            func() Node { return &FunctionCall{} },
	SYSTEM_CALL:              func() Node { return &SystemCall{} },
	IDENTIFIER_SCOPE_LABEL:   func() Node { return &IdentifierScopeLabel{} },
	IDENTIFIER_SCOPE:         func() Node { return &IdentifierScope{} },
	ASSIGN:                   func() Node { return &Assign{} },
	ALWAYS:                   func() Node { return &Always{} },
	INITIAL:                  func() Node { return &Initial{} },
	SENS_LIST:                func() Node { return &SensList{} },
	SENS:                     func() Node { return &Sens{} },
	SUBSTITUTION:             func() Node { return &Substitution{} },
	BLOCKING_SUBSTITUTION:    func() Node { return &BlockingSubstitution{} },
	NONBLOCKING_SUBSTITUTION: func() Node { return &NonblockingSubstitution{} },
	IF_STATEMENT:             func() Node { return &IfStatement{} },
	FOR_STATEMENT:            func() Node { return &ForStatement{} },
	WHILE_STATEMENT:          func() Node { return &WhileStatement{} },
	CASE_STATEMENT:           func() Node { return &CaseStatement{} },
	CASEX_STATEMENT:          func() Node { return &CasexStatement{} },
	CASE:                     func() Node { return &Case{} },
	BLOCK:                    func() Node { return &Block{} },
	PARALLEL_BLOCK:           func() Node { return &ParallelBlock{} },
	EVENT_STATEMENT:          func() Node { return &EventStatement{} },
	WAIT_STATEMENT:           func() Node { return &WaitStatement{} },
	FOREVER_STATEMENT:        func() Node { return &ForeverStatement{} },
	DELAY_STATEMENT:          func() Node { return &DelayStatement{} },
	DISABLE:                  func() Node { return &Disable{} },
	SINGLE_STATEMENT:         func() Node { return &SingleStatement{} },
	INSTANCE_LIST:            func() Node { return &InstanceList{} },
	INSTANCE:                 func() Node { return &Instance{} },
	PARAM_ARG:                func() Node { return &ParamArg{} },
	PORT_ARG:                 func() Node { return &PortArg{} },
	GENERATE_STATEMENT:       func() Node { return &GenerateStatement{} },
	FUNCTION:                 func() Node { return &Function{} },
	TASK:                     func() Node { return &Task{} },
	TASK_CALL:                func() Node { return &TaskCall{} },
	PRAGMA:                   func() Node { return &Pragma{} },
	PRAGMA_ENTRY:             func() Node { return &PragmaEntry{} },
	EMBEDDED_CODE:            func() Node { return &EmbeddedCode{} },
}

// New returns an empty node for a class name. Operator class names such as
// "Plus" or "Uminus" yield an Operator or UnaryOperator with Op set.
func New(name string) (Node, bool) {
	if op, ok := LookupOp(name); ok {
		if op.IsUnary() {
			return &UnaryOperator{Op: op}, true
		}
		return &Operator{Op: op}, true
	}
	t, ok := LookupNodeType(name)
	if !ok {
		return nil, false
	}
	mk, ok := constructors[t]
	if !ok {
		return nil, false
	}
	return mk(), true
}

// KindName is the class name of a node: the operator name for operators,
// the node type name otherwise.
func KindName(n Node) string {
	switch n := n.(type) {
	case *Operator:
		return n.Op.String()
	case *UnaryOperator:
		return n.Op.String()
	}
	return n.NodeType().String()
}

// KindNames lists every class name New accepts.
func KindNames() []string {
	var names []string
	for t := range constructors {
		names = append(names, t.String())
	}
	for i := range opTable {
		if op := OpKind(i); op.valid() {
			names = append(names, op.String())
		}
	}
	sort.Strings(names)
	return names
}
