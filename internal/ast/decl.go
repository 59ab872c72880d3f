package ast

// Variable is implemented by every declared net, register or port direction.
type Variable interface {
	Node
	VarName() string
	VarWidth() *Width
	IsSigned() bool
}

type Input struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
	Width  *Width   `vast:"width"`
	Signed bool     `vast:"signed"`
}

type Output struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
	Width  *Width   `vast:"width"`
	Signed bool     `vast:"signed"`
}

type Inout struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
	Width  *Width   `vast:"width"`
	Signed bool     `vast:"signed"`
}

type Tri struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
	Width  *Width   `vast:"width"`
	Signed bool     `vast:"signed"`
}

type Wire struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
	Width  *Width   `vast:"width"`
	Signed bool     `vast:"signed"`
}

type Reg struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
	Width  *Width   `vast:"width"`
	Signed bool     `vast:"signed"`
}

// WireArray is a net with an unpacked dimension.
// Example: wire [7:0] lanes [0:3];
type WireArray struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
	Width  *Width   `vast:"width"`
	Length *Length  `vast:"length"`
	Signed bool     `vast:"signed"`
}

// RegArray is a memory.
// Example: reg [31:0] mem [0:255];
type RegArray struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
	Width  *Width   `vast:"width"`
	Length *Length  `vast:"length"`
	Signed bool     `vast:"signed"`
}

type Integer struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
	Signed bool     `vast:"signed"`
}

type Real struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
}

type Genvar struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
}

// Parameter is an overridable module constant.
// Example: parameter WIDTH = 8
type Parameter struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
	Value  *Rvalue  `vast:"value"`
	Width  *Width   `vast:"width"`
	Signed bool     `vast:"signed"`
}

// Localparam is a module constant that cannot be overridden.
type Localparam struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
	Value  *Rvalue  `vast:"value"`
	Width  *Width   `vast:"width"`
	Signed bool     `vast:"signed"`
}

// Decl groups the items of one declaration statement.
// Example: input [7:0] a, b;
type Decl struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	List   []Node   `vast:"list"`
}

func (v *Input) VarName() string      { return v.Name }
func (v *Input) VarWidth() *Width     { return v.Width }
func (v *Input) IsSigned() bool       { return v.Signed }
func (v *Output) VarName() string     { return v.Name }
func (v *Output) VarWidth() *Width    { return v.Width }
func (v *Output) IsSigned() bool      { return v.Signed }
func (v *Inout) VarName() string      { return v.Name }
func (v *Inout) VarWidth() *Width     { return v.Width }
func (v *Inout) IsSigned() bool       { return v.Signed }
func (v *Tri) VarName() string        { return v.Name }
func (v *Tri) VarWidth() *Width       { return v.Width }
func (v *Tri) IsSigned() bool         { return v.Signed }
func (v *Wire) VarName() string       { return v.Name }
func (v *Wire) VarWidth() *Width      { return v.Width }
func (v *Wire) IsSigned() bool        { return v.Signed }
func (v *Reg) VarName() string        { return v.Name }
func (v *Reg) VarWidth() *Width       { return v.Width }
func (v *Reg) IsSigned() bool         { return v.Signed }
func (v *WireArray) VarName() string  { return v.Name }
func (v *WireArray) VarWidth() *Width { return v.Width }
func (v *WireArray) IsSigned() bool   { return v.Signed }
func (v *RegArray) VarName() string   { return v.Name }
func (v *RegArray) VarWidth() *Width  { return v.Width }
func (v *RegArray) IsSigned() bool    { return v.Signed }
