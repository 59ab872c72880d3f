package ast

// Assign is a continuous assignment.
// Example: assign y = a & b;
type Assign struct {
	Pos    Position        `vast:"-"`
	Lineno int             `vast:"line"`
	Left   *Lvalue         `vast:"left"`
	Right  *Rvalue         `vast:"right"`
	LDelay *DelayStatement `vast:"ldelay"`
	RDelay *DelayStatement `vast:"rdelay"`
}

// Always is a procedural block with a sensitivity list.
// Example: always @(posedge CLK or negedge RSTX) begin ... end
type Always struct {
	Pos       Position  `vast:"-"`
	Lineno    int       `vast:"line"`
	SensList  *SensList `vast:"sens_list"`
	Statement Node      `vast:"statement"`
}

type Initial struct {
	Pos       Position `vast:"-"`
	Lineno    int      `vast:"line"`
	Statement Node     `vast:"statement"`
}

type SensList struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	List   []*Sens  `vast:"list"`
}

// Sens is one sensitivity entry. Type is "posedge", "negedge", "level"
// or "all" for @*.
type Sens struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Sig    Node     `vast:"sig"`
	Type   string   `vast:"type"`
}

type Substitution struct {
	Pos    Position        `vast:"-"`
	Lineno int             `vast:"line"`
	Left   *Lvalue         `vast:"left"`
	Right  *Rvalue         `vast:"right"`
	LDelay *DelayStatement `vast:"ldelay"`
	RDelay *DelayStatement `vast:"rdelay"`
}

// BlockingSubstitution is a procedural a = b.
type BlockingSubstitution struct {
	Pos    Position        `vast:"-"`
	Lineno int             `vast:"line"`
	Left   *Lvalue         `vast:"left"`
	Right  *Rvalue         `vast:"right"`
	LDelay *DelayStatement `vast:"ldelay"`
	RDelay *DelayStatement `vast:"rdelay"`
}

// NonblockingSubstitution is a procedural a <= b.
type NonblockingSubstitution struct {
	Pos    Position        `vast:"-"`
	Lineno int             `vast:"line"`
	Left   *Lvalue         `vast:"left"`
	Right  *Rvalue         `vast:"right"`
	LDelay *DelayStatement `vast:"ldelay"`
	RDelay *DelayStatement `vast:"rdelay"`
}

type IfStatement struct {
	Pos            Position `vast:"-"`
	Lineno         int      `vast:"line"`
	Cond           Node     `vast:"cond"`
	TrueStatement  Node     `vast:"true_statement"`
	FalseStatement Node     `vast:"false_statement"`
}

type ForStatement struct {
	Pos       Position `vast:"-"`
	Lineno    int      `vast:"line"`
	Pre       Node     `vast:"pre"`
	Cond      Node     `vast:"cond"`
	Post      Node     `vast:"post"`
	Statement Node     `vast:"statement"`
}

type WhileStatement struct {
	Pos       Position `vast:"-"`
	Lineno    int      `vast:"line"`
	Cond      Node     `vast:"cond"`
	Statement Node     `vast:"statement"`
}

type CaseStatement struct {
	Pos      Position `vast:"-"`
	Lineno   int      `vast:"line"`
	Comp     Node     `vast:"comp"`
	Caselist []*Case  `vast:"caselist"`
}

type CasexStatement struct {
	Pos      Position `vast:"-"`
	Lineno   int      `vast:"line"`
	Comp     Node     `vast:"comp"`
	Caselist []*Case  `vast:"caselist"`
}

// Case is one arm of a case statement. A nil Cond is the default arm.
type Case struct {
	Pos       Position `vast:"-"`
	Lineno    int      `vast:"line"`
	Cond      []Node   `vast:"cond"`
	Statement Node     `vast:"statement"`
}

// Block is a begin/end sequence with an optional label.
type Block struct {
	Pos        Position `vast:"-"`
	Lineno     int      `vast:"line"`
	Statements []Node   `vast:"statements"`
	Scope      string   `vast:"scope"`
}

// ParallelBlock is a fork/join sequence.
type ParallelBlock struct {
	Pos        Position `vast:"-"`
	Lineno     int      `vast:"line"`
	Statements []Node   `vast:"statements"`
	Scope      string   `vast:"scope"`
}

// EventStatement waits on an event expression.
// Example: @(posedge CLK);
type EventStatement struct {
	Pos      Position  `vast:"-"`
	Lineno   int       `vast:"line"`
	SensList *SensList `vast:"senslist"`
}

// WaitStatement blocks until Cond holds.
// Example: wait (ready) x = 1;
type WaitStatement struct {
	Pos       Position `vast:"-"`
	Lineno    int      `vast:"line"`
	Cond      Node     `vast:"cond"`
	Statement Node     `vast:"statement"`
}

type ForeverStatement struct {
	Pos       Position `vast:"-"`
	Lineno    int      `vast:"line"`
	Statement Node     `vast:"statement"`
}

// DelayStatement is a #delay control.
type DelayStatement struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Delay  Node     `vast:"delay"`
}

type Disable struct {
	Pos    Position `vast:"-"`
	Lineno int      `vast:"line"`
	Dest   string   `vast:"dest"`
}

// SingleStatement wraps an expression used as a statement, typically a
// system or task call.
type SingleStatement struct {
	Pos       Position `vast:"-"`
	Lineno    int      `vast:"line"`
	Statement Node     `vast:"statement"`
}
