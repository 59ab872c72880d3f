package ast

import "fmt"

// Position is a location inside a loaded tree file.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Source is the root of a parsed design.
// Example: the whole contents of "counter.v"
type Source struct {
	Pos         Position     `vast:"-"`
	Lineno      int          `vast:"line"`
	Name        string       `vast:"name"`
	Description *Description `vast:"description"`
}

// Description lists the top level definitions of a source.
type Description struct {
	Pos         Position `vast:"-"`
	Lineno      int      `vast:"line"`
	Definitions []Node   `vast:"definitions"`
}

// ModuleDef is a single module declaration.
// Example: module counter #(parameter WIDTH = 8) (input CLK, ...); ... endmodule
type ModuleDef struct {
	Pos       Position   `vast:"-"`
	Lineno    int        `vast:"line"`
	Name      string     `vast:"name"`
	Paramlist *Paramlist `vast:"paramlist"`
	Portlist  *Portlist  `vast:"portlist"`
	Items     []Node     `vast:"items"`
}

// Paramlist is the #( ... ) header of a module. Params holds Decl nodes.
type Paramlist struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Params []Node   `vast:"params"`
}

// Portlist holds Port (non-ANSI) or Ioport (ANSI) entries.
type Portlist struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Ports  []Node   `vast:"ports"`
}

// Port is a bare port name of a non-ANSI header; its direction is
// declared among the module items.
type Port struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Name   string   `vast:"name"`
	Width  *Width   `vast:"width"`
}

// Ioport is an ANSI port: a direction plus an optional net or register.
// Example: output reg [7:0] count
type Ioport struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	First  Node     `vast:"first"`
	Second Node     `vast:"second"`
}

// Width is a [msb:lsb] packed range.
type Width struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	MSB    Node     `vast:"msb"`
	LSB    Node     `vast:"lsb"`
}

// Length is an unpacked [msb:lsb] range of an array or instance array.
type Length struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	MSB    Node     `vast:"msb"`
	LSB    Node     `vast:"lsb"`
}
