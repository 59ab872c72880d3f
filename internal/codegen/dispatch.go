package codegen

import (
	"v2sc/internal/ast"
	"v2sc/internal/errors"
)

// Context selects which view of a node is rendered. It is chosen by the
// caller at every recursion site.
type Context int

const (
	DefaultContext Context = iota
	ProcessContext
	DeclarationContext
	ArgumentContext
	ParameterContext
)

var contextNames = [...]string{
	DefaultContext:     "default",
	ProcessContext:     "process",
	DeclarationContext: "declaration",
	ArgumentContext:    "argument",
	ParameterContext:   "parameter",
}

func (c Context) String() string {
	if c < 0 || int(c) >= len(contextNames) {
		return "unknown"
	}
	return contextNames[c]
}

// ParseContext maps a view name back to its context.
func ParseContext(name string) (Context, bool) {
	for i, n := range contextNames {
		if n == name {
			return Context(i), true
		}
	}
	return DefaultContext, false
}

type handler func(w *walker, n ast.Node) (string, error)

// contextViews builds the per-context handler tables. Each table is
// independent: a kind missing from a table has no rendering in that
// context.
func contextViews() map[Context]map[ast.NodeType]handler {
	variable := func(w *walker, n ast.Node) (string, error) { return w.variable(n.(ast.Variable), "") }

	return map[Context]map[ast.NodeType]handler{
		ProcessContext: {
			ast.ALWAYS:             func(w *walker, n ast.Node) (string, error) { return w.alwaysProcess(n.(*ast.Always)) },
			ast.INITIAL:            func(w *walker, n ast.Node) (string, error) { return w.initialProcess(n.(*ast.Initial)) },
			ast.ASSIGN:             func(w *walker, n ast.Node) (string, error) { return w.assignProcess(n.(*ast.Assign)) },
			ast.INSTANCE_LIST:      func(w *walker, n ast.Node) (string, error) { return w.instanceListView(n.(*ast.InstanceList), ProcessContext) },
			ast.INSTANCE:           func(w *walker, n ast.Node) (string, error) { return w.instanceProcess(n.(*ast.Instance)) },
			ast.GENERATE_STATEMENT: func(w *walker, n ast.Node) (string, error) { return w.generateView(n.(*ast.GenerateStatement), ProcessContext) },
		},
		DeclarationContext: {
			ast.INPUT:              variable,
			ast.OUTPUT:             variable,
			ast.INOUT:              variable,
			ast.TRI:                variable,
			ast.WIRE:               variable,
			ast.REG:                variable,
			ast.WIRE_ARRAY:         variable,
			ast.REG_ARRAY:          variable,
			ast.INTEGER:            func(w *walker, n ast.Node) (string, error) { return w.integer(n.(*ast.Integer)) },
			ast.REAL:               func(w *walker, n ast.Node) (string, error) { return w.named(n, n.(*ast.Real).Name) },
			ast.GENVAR:             func(w *walker, n ast.Node) (string, error) { return w.named(n, n.(*ast.Genvar).Name) },
			ast.LOCALPARAM:         func(w *walker, n ast.Node) (string, error) { return w.localparam(n.(*ast.Localparam)) },
			ast.DECL:               func(w *walker, n ast.Node) (string, error) { return w.declView(n.(*ast.Decl), DeclarationContext) },
			ast.ALWAYS:             func(w *walker, n ast.Node) (string, error) { return w.always(n.(*ast.Always), "declaration") },
			ast.INITIAL:            func(w *walker, n ast.Node) (string, error) { return w.initial(n.(*ast.Initial), "declaration") },
			ast.ASSIGN:             func(w *walker, n ast.Node) (string, error) { return w.assignDeclaration(n.(*ast.Assign)) },
			ast.FUNCTION:           func(w *walker, n ast.Node) (string, error) { return w.function(n.(*ast.Function), "declaration") },
			ast.TASK:               func(w *walker, n ast.Node) (string, error) { return w.task(n.(*ast.Task), "declaration") },
			ast.INSTANCE_LIST:      func(w *walker, n ast.Node) (string, error) { return w.instanceListView(n.(*ast.InstanceList), DeclarationContext) },
			ast.GENERATE_STATEMENT: func(w *walker, n ast.Node) (string, error) { return w.generateView(n.(*ast.GenerateStatement), DeclarationContext) },
		},
		ArgumentContext: {
			ast.INPUT:  func(w *walker, n ast.Node) (string, error) { return w.variable(n.(ast.Variable), "argument") },
			ast.OUTPUT: func(w *walker, n ast.Node) (string, error) { return w.variable(n.(ast.Variable), "argument") },
			ast.INOUT:  func(w *walker, n ast.Node) (string, error) { return w.variable(n.(ast.Variable), "argument") },
			ast.DECL:   func(w *walker, n ast.Node) (string, error) { return w.declView(n.(*ast.Decl), ArgumentContext) },
		},
		ParameterContext: {
			ast.DECL:      func(w *walker, n ast.Node) (string, error) { return w.declView(n.(*ast.Decl), ParameterContext) },
			ast.PARAMLIST: func(w *walker, n ast.Node) (string, error) { return w.paramlistParameter(n.(*ast.Paramlist)) },
		},
	}
}

// project renders n in ctx. The default context always has a rendering;
// the other contexts consult their table only.
func (w *walker) project(ctx Context, n ast.Node) (string, bool, error) {
	if ast.IsNil(n) {
		return "", false, nil
	}
	if ctx == DefaultContext {
		text, err := w.visit(n)
		return text, err == nil, err
	}

	h, ok := w.g.views[ctx][n.NodeType()]
	if !ok {
		return "", false, nil
	}
	if err := w.enter(n); err != nil {
		return "", false, err
	}
	defer w.leave()

	text, err := h(w, n)
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

// visit renders n in the default context. A nil node renders as nothing.
func (w *walker) visit(n ast.Node) (string, error) {
	if ast.IsNil(n) {
		return "", nil
	}
	if err := w.enter(n); err != nil {
		return "", err
	}
	defer w.leave()

	switch n := n.(type) {
	// Structure
	case *ast.Source:
		return w.source(n)
	case *ast.Description:
		return w.description(n)
	case *ast.ModuleDef:
		return w.moduleDef(n)
	case *ast.Paramlist:
		return w.paramlist(n)
	case *ast.Portlist:
		return w.portlist(n)
	case *ast.Port:
		return w.port(n)
	case *ast.Ioport:
		return w.ioport(n)
	case *ast.Width:
		return w.width(n)
	case *ast.Length:
		return w.length(n)

	// Declarations
	case *ast.Input:
		return w.variable(n, "")
	case *ast.Output:
		return w.variable(n, "")
	case *ast.Inout:
		return w.variable(n, "")
	case *ast.Tri:
		return w.variable(n, "")
	case *ast.Wire:
		return w.variable(n, "")
	case *ast.Reg:
		return w.variable(n, "")
	case *ast.WireArray:
		return w.variable(n, "")
	case *ast.RegArray:
		return w.variable(n, "")
	case *ast.Integer:
		return w.integer(n)
	case *ast.Real:
		return w.named(n, n.Name)
	case *ast.Genvar:
		return w.named(n, n.Name)
	case *ast.Parameter:
		return w.parameter(n)
	case *ast.Localparam:
		return w.localparam(n)
	case *ast.Decl:
		return w.declView(n, DefaultContext)

	// Expressions
	case *ast.Identifier:
		return w.identifier(n)
	case *ast.IntConst:
		return w.emitKind(n, "", fieldsOf("value", n.Value))
	case *ast.FloatConst:
		return w.emitKind(n, "", fieldsOf("value", n.Value))
	case *ast.StringConst:
		return w.emitKind(n, "", fieldsOf("value", n.Value))
	case *ast.Concat:
		return w.concat(n, n.List)
	case *ast.LConcat:
		return w.concat(n, n.List)
	case *ast.Repeat:
		return w.repeat(n)
	case *ast.Partselect:
		return w.partselect(n)
	case *ast.Pointer:
		return w.pointer(n)
	case *ast.Lvalue:
		return w.value(n, n.Var)
	case *ast.Rvalue:
		return w.value(n, n.Var)
	case *ast.Operator:
		return w.operator(n)
	case *ast.UnaryOperator:
		return w.unaryOperator(n)
	case *ast.Cond:
		return w.cond(n)
	case *ast.FunctionCall:
		return w.functionCall(n)
	case *ast.SystemCall:
		return w.systemCall(n)
	case *ast.IdentifierScopeLabel:
		return w.scopeLabel(n)
	case *ast.IdentifierScope:
		return w.scope(n)

	// Processes
	case *ast.Assign:
		return w.assign(n)
	case *ast.Always:
		return w.always(n, "")
	case *ast.Initial:
		return w.initial(n, "")
	case *ast.SensList:
		return w.sensList(n, n.List)
	case *ast.Sens:
		return w.sens(n)

	// Statements
	case *ast.Substitution:
		return w.substitution(n, n.Left, n.Right, n.LDelay, n.RDelay)
	case *ast.BlockingSubstitution:
		return w.substitution(n, n.Left, n.Right, n.LDelay, n.RDelay)
	case *ast.NonblockingSubstitution:
		return w.substitution(n, n.Left, n.Right, n.LDelay, n.RDelay)
	case *ast.IfStatement:
		return w.ifStatement(n)
	case *ast.ForStatement:
		return w.forStatement(n)
	case *ast.WhileStatement:
		return w.whileStatement(n)
	case *ast.CaseStatement:
		return w.caseStatement(n, n.Comp, n.Caselist)
	case *ast.CasexStatement:
		return w.caseStatement(n, n.Comp, n.Caselist)
	case *ast.Case:
		return w.caseArm(n)
	case *ast.Block:
		return w.block(n, n.Statements, n.Scope)
	case *ast.ParallelBlock:
		return w.block(n, n.Statements, n.Scope)
	case *ast.EventStatement:
		return w.eventStatement(n)
	case *ast.WaitStatement:
		return w.waitStatement(n)
	case *ast.ForeverStatement:
		return w.foreverStatement(n)
	case *ast.DelayStatement:
		return w.delayStatement(n)
	case *ast.Disable:
		return w.emitKind(n, "", fieldsOf("dest", escape(n.Dest)))
	case *ast.SingleStatement:
		return w.singleStatement(n)

	// Hierarchy
	case *ast.InstanceList:
		return w.instanceListView(n, DefaultContext)
	case *ast.Instance:
		return w.instance(n)
	case *ast.ParamArg:
		return w.paramArg(n)
	case *ast.PortArg:
		return w.portArg(n)
	case *ast.GenerateStatement:
		return w.generateView(n, DefaultContext)
	case *ast.Function:
		return w.function(n, "")
	case *ast.Task:
		return w.task(n, "")
	case *ast.Pragma:
		return w.pragma(n)
	case *ast.PragmaEntry:
		return w.pragmaEntry(n)
	}

	return "", errors.NewRenderError(errors.UnsupportedNodeKind, n, "no default rendering")
}
