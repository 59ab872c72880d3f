package ast

type NodeType int

const (
	ILLEGAL NodeType = iota

	// Top level
	SOURCE
	DESCRIPTION
	MODULE_DEF
	PARAMLIST
	PORTLIST
	PORT
	IOPORT

	// Ranges
	WIDTH
	LENGTH

	// Leaves
	IDENTIFIER
	INT_CONST
	FLOAT_CONST
	STRING_CONST

	// Variables and constants
	INPUT
	OUTPUT
	INOUT
	TRI
	WIRE
	REG
	WIRE_ARRAY
	REG_ARRAY
	INTEGER
	REAL
	GENVAR
	PARAMETER
	LOCALPARAM
	DECL

	// Expressions
	CONCAT
	LCONCAT
	REPEAT
	PARTSELECT
	POINTER
	LVALUE
	RVALUE
	OPERATOR
	UNARY_OPERATOR
	COND
	FUNCTION_CALL
	SYSTEM_CALL
	IDENTIFIER_SCOPE_LABEL
	IDENTIFIER_SCOPE

	// Processes
	ASSIGN
	ALWAYS
	INITIAL
	SENS_LIST
	SENS

	// Statements
	SUBSTITUTION
	BLOCKING_SUBSTITUTION
	NONBLOCKING_SUBSTITUTION
	IF_STATEMENT
	FOR_STATEMENT
	WHILE_STATEMENT
	CASE_STATEMENT
	CASEX_STATEMENT
	CASE
	BLOCK
	PARALLEL_BLOCK
	EVENT_STATEMENT
	WAIT_STATEMENT
	FOREVER_STATEMENT
	DELAY_STATEMENT
	DISABLE
	SINGLE_STATEMENT

	// Hierarchy
	INSTANCE_LIST
	INSTANCE
	PARAM_ARG
	PORT_ARG
	GENERATE_STATEMENT

	// Subprograms
	FUNCTION
	TASK
	TASK_CALL

	// Misc
	PRAGMA
	PRAGMA_ENTRY
	EMBEDDED_CODE
)

// nodeTypeNames holds the syntax tree class name of every kind. The names
// double as template asset names and as the kind keywords of tree files.
var nodeTypeNames = [...]string{
	ILLEGAL:                  "Illegal",
	SOURCE:                   "Source",
	DESCRIPTION:              "Description",
	MODULE_DEF:               "ModuleDef",
	PARAMLIST:                "Paramlist",
	PORTLIST:                 "Portlist",
	PORT:                     "Port",
	IOPORT:                   "Ioport",
	WIDTH:                    "Width",
	LENGTH:                   "Length",
	IDENTIFIER:               "Identifier",
	INT_CONST:                "IntConst",
	FLOAT_CONST:              "FloatConst",
	STRING_CONST:             "StringConst",
	INPUT:                    "Input",
	OUTPUT:                   "Output",
	INOUT:                    "Inout",
	TRI:                      "Tri",
	WIRE:                     "Wire",
	REG:                      "Reg",
	WIRE_ARRAY:               "WireArray",
	REG_ARRAY:                "RegArray",
	INTEGER:                  "Integer",
	REAL:                     "Real",
	GENVAR:                   "Genvar",
	PARAMETER:                "Parameter",
	LOCALPARAM:               "Localparam",
	DECL:                     "Decl",
	CONCAT:                   "Concat",
	LCONCAT:                  "LConcat",
	REPEAT:                   "Repeat",
	PARTSELECT:               "Partselect",
	POINTER:                  "Pointer",
	LVALUE:                   "Lvalue",
	RVALUE:                   "Rvalue",
	OPERATOR:                 "Operator",
	UNARY_OPERATOR:           "UnaryOperator",
	COND:                     "Cond",
	FUNCTION_CALL:            "FunctionCall",
	SYSTEM_CALL:              "SystemCall",
	IDENTIFIER_SCOPE_LABEL:   "IdentifierScopeLabel",
	IDENTIFIER_SCOPE:         "IdentifierScope",
	ASSIGN:                   "Assign",
	ALWAYS:                   "Always",
	INITIAL:                  "Initial",
	SENS_LIST:                "SensList",
	SENS:                     "Sens",
	SUBSTITUTION:             "Substitution",
	BLOCKING_SUBSTITUTION:    "BlockingSubstitution",
	NONBLOCKING_SUBSTITUTION: "NonblockingSubstitution",
	IF_STATEMENT:             "IfStatement",
	FOR_STATEMENT:            "ForStatement",
	WHILE_STATEMENT:          "WhileStatement",
	CASE_STATEMENT:           "CaseStatement",
	CASEX_STATEMENT:          "CasexStatement",
	CASE:                     "Case",
	BLOCK:                    "Block",
	PARALLEL_BLOCK:           "ParallelBlock",
	EVENT_STATEMENT:          "EventStatement",
	WAIT_STATEMENT:           "WaitStatement",
	FOREVER_STATEMENT:        "ForeverStatement",
	DELAY_STATEMENT:          "DelayStatement",
	DISABLE:                  "Disable",
	SINGLE_STATEMENT:         "SingleStatement",
	INSTANCE_LIST:            "InstanceList",
	INSTANCE:                 "Instance",
	PARAM_ARG:                "ParamArg",
	PORT_ARG:                 "PortArg",
	GENERATE_STATEMENT:       "GenerateStatement",
	FUNCTION:                 "Function",
	TASK:                     "Task",
	TASK_CALL:                "TaskCall",
	PRAGMA:                   "Pragma",
	PRAGMA_ENTRY:             "PragmaEntry",
	EMBEDDED_CODE:            "EmbeddedCode",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) || nodeTypeNames[t] == "" {
		return "Illegal"
	}
	return nodeTypeNames[t]
}

// LookupNodeType maps a class name back to its kind.
func LookupNodeType(name string) (NodeType, bool) {
	for i, n := range nodeTypeNames {
		if n == name && NodeType(i) != ILLEGAL {
			return NodeType(i), true
		}
	}
	return ILLEGAL, false
}
