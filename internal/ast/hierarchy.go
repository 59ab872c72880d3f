package ast

// InstanceList is one instantiation statement, possibly naming several
// instances of the same module.
// Example: sub #(.W(8)) u0 (.a(x)), u1 (.a(y));
type InstanceList struct {
	Pos           Position    `vast:"-"`
	Lineno        int         `vast:"line"`
	Module        string      `vast:"module"`
	ParameterList []*ParamArg `vast:"parameterlist"`
	Instances     []*Instance `vast:"instances"`
}

type Instance struct {
	Pos           Position    `vast:"-"`
	Lineno        int         `vast:"line"`
	Module        string      `vast:"module"`
	Name          string      `vast:"name"`
	PortList      []*PortArg  `vast:"portlist"`
	ParameterList []*ParamArg `vast:"parameterlist"`
	Array         *Length     `vast:"array"`
}

// ParamArg is a parameter override. ParamName is empty for positional
// overrides.
type ParamArg struct {
	Pos       Position `vast:"-"`
	Lineno    int      `vast:"line"`
	ParamName string   `vast:"paramname"`
	ArgName   Node     `vast:"argname"`
}

// PortArg is a port connection. PortName is empty for positional
// connections.
type PortArg struct {
	Pos      Position `vast:"-"`
	Lineno   int      `vast:"line"`
	PortName string   `vast:"portname"`
	ArgName  Node     `vast:"argname"`
}

type GenerateStatement struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Items  []Node   `vast:"items"`
}

// Function is a Verilog function. Statement mixes the port declarations
// with the body statements, as the parser delivers them.
type Function struct {
	Pos       Position `vast:"-"`
	Lineno    int      `vast:"line"`
	Name      string   `vast:"name"`
	RetWidth  *Width   `vast:"retwidth"`
	Statement []Node   `vast:"statement"`
}

type Task struct {
	Pos       Position `vast:"-"`
	Lineno    int      `vast:"line"`
	Name      string   `vast:"name"`
	Statement []Node   `vast:"statement"`
}

type TaskCall struct {
	Pos    Position    `vast:"-"`
	Lineno int         `vast:"line"`
	Name   *Identifier `vast:"name"`
	Args   []Node      `vast:"args"`
}

type Pragma struct {
	Pos    Position     `vast:"-"`
	Lineno int          `vast:"line"`
	Entry  *PragmaEntry `vast:"entry"`
}

type PragmaEntry struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
	Value  Node     `vast:"value"`
}

// EmbeddedCode carries foreign text spliced into the tree.
type EmbeddedCode struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Code   string   `vast:"code"`
}
