package ast

// Node is implemented by every syntax tree kind.
type Node interface {
	NodePos() Position
	NodeType() NodeType

	// SourceLine is the HDL source line the parser recorded, or the tree
	// file line when none was recorded.
	SourceLine() int
}

func sourceLine(lineno int, pos Position) int {
	if lineno > 0 {
		return lineno
	}
	return pos.Line
}

func (s *Source) NodePos() Position { return s.Pos }
func (s *Source) SourceLine() int   { return sourceLine(s.Lineno, s.Pos) }
func (*Source) NodeType() NodeType  { return SOURCE }

func (d *Description) NodePos() Position { return d.Pos }
func (d *Description) SourceLine() int   { return sourceLine(d.Lineno, d.Pos) }
func (*Description) NodeType() NodeType  { return DESCRIPTION }

func (md *ModuleDef) NodePos() Position { return md.Pos }
func (md *ModuleDef) SourceLine() int   { return sourceLine(md.Lineno, md.Pos) }
func (*ModuleDef) NodeType() NodeType   { return MODULE_DEF }

func (p *Paramlist) NodePos() Position { return p.Pos }
func (p *Paramlist) SourceLine() int   { return sourceLine(p.Lineno, p.Pos) }
func (*Paramlist) NodeType() NodeType  { return PARAMLIST }

func (p *Portlist) NodePos() Position { return p.Pos }
func (p *Portlist) SourceLine() int   { return sourceLine(p.Lineno, p.Pos) }
func (*Portlist) NodeType() NodeType  { return PORTLIST }

func (p *Port) NodePos() Position { return p.Pos }
func (p *Port) SourceLine() int   { return sourceLine(p.Lineno, p.Pos) }
func (*Port) NodeType() NodeType  { return PORT }

func (i *Ioport) NodePos() Position { return i.Pos }
func (i *Ioport) SourceLine() int   { return sourceLine(i.Lineno, i.Pos) }
func (*Ioport) NodeType() NodeType  { return IOPORT }

func (w *Width) NodePos() Position { return w.Pos }
func (w *Width) SourceLine() int   { return sourceLine(w.Lineno, w.Pos) }
func (*Width) NodeType() NodeType  { return WIDTH }

func (l *Length) NodePos() Position { return l.Pos }
func (l *Length) SourceLine() int   { return sourceLine(l.Lineno, l.Pos) }
func (*Length) NodeType() NodeType  { return LENGTH }

func (i *Identifier) NodePos() Position { return i.Pos }
func (i *Identifier) SourceLine() int   { return sourceLine(i.Lineno, i.Pos) }
func (*Identifier) NodeType() NodeType  { return IDENTIFIER }

func (ic *IntConst) NodePos() Position { return ic.Pos }
func (ic *IntConst) SourceLine() int   { return sourceLine(ic.Lineno, ic.Pos) }
func (*IntConst) NodeType() NodeType   { return INT_CONST }

func (fc *FloatConst) NodePos() Position { return fc.Pos }
func (fc *FloatConst) SourceLine() int   { return sourceLine(fc.Lineno, fc.Pos) }
func (*FloatConst) NodeType() NodeType   { return FLOAT_CONST }

func (sc *StringConst) NodePos() Position { return sc.Pos }
func (sc *StringConst) SourceLine() int   { return sourceLine(sc.Lineno, sc.Pos) }
func (*StringConst) NodeType() NodeType   { return STRING_CONST }

func (i *Input) NodePos() Position { return i.Pos }
func (i *Input) SourceLine() int   { return sourceLine(i.Lineno, i.Pos) }
func (*Input) NodeType() NodeType  { return INPUT }

func (o *Output) NodePos() Position { return o.Pos }
func (o *Output) SourceLine() int   { return sourceLine(o.Lineno, o.Pos) }
func (*Output) NodeType() NodeType  { return OUTPUT }

func (i *Inout) NodePos() Position { return i.Pos }
func (i *Inout) SourceLine() int   { return sourceLine(i.Lineno, i.Pos) }
func (*Inout) NodeType() NodeType  { return INOUT }

func (t *Tri) NodePos() Position { return t.Pos }
func (t *Tri) SourceLine() int   { return sourceLine(t.Lineno, t.Pos) }
func (*Tri) NodeType() NodeType  { return TRI }

func (w *Wire) NodePos() Position { return w.Pos }
func (w *Wire) SourceLine() int   { return sourceLine(w.Lineno, w.Pos) }
func (*Wire) NodeType() NodeType  { return WIRE }

func (r *Reg) NodePos() Position { return r.Pos }
func (r *Reg) SourceLine() int   { return sourceLine(r.Lineno, r.Pos) }
func (*Reg) NodeType() NodeType  { return REG }

func (wa *WireArray) NodePos() Position { return wa.Pos }
func (wa *WireArray) SourceLine() int   { return sourceLine(wa.Lineno, wa.Pos) }
func (*WireArray) NodeType() NodeType   { return WIRE_ARRAY }

func (ra *RegArray) NodePos() Position { return ra.Pos }
func (ra *RegArray) SourceLine() int   { return sourceLine(ra.Lineno, ra.Pos) }
func (*RegArray) NodeType() NodeType   { return REG_ARRAY }

func (i *Integer) NodePos() Position { return i.Pos }
func (i *Integer) SourceLine() int   { return sourceLine(i.Lineno, i.Pos) }
func (*Integer) NodeType() NodeType  { return INTEGER }

func (r *Real) NodePos() Position { return r.Pos }
func (r *Real) SourceLine() int   { return sourceLine(r.Lineno, r.Pos) }
func (*Real) NodeType() NodeType  { return REAL }

func (g *Genvar) NodePos() Position { return g.Pos }
func (g *Genvar) SourceLine() int   { return sourceLine(g.Lineno, g.Pos) }
func (*Genvar) NodeType() NodeType  { return GENVAR }

func (p *Parameter) NodePos() Position { return p.Pos }
func (p *Parameter) SourceLine() int   { return sourceLine(p.Lineno, p.Pos) }
func (*Parameter) NodeType() NodeType  { return PARAMETER }

func (l *Localparam) NodePos() Position { return l.Pos }
func (l *Localparam) SourceLine() int   { return sourceLine(l.Lineno, l.Pos) }
func (*Localparam) NodeType() NodeType  { return LOCALPARAM }

func (d *Decl) NodePos() Position { return d.Pos }
func (d *Decl) SourceLine() int   { return sourceLine(d.Lineno, d.Pos) }
func (*Decl) NodeType() NodeType  { return DECL }

func (c *Concat) NodePos() Position { return c.Pos }
func (c *Concat) SourceLine() int   { return sourceLine(c.Lineno, c.Pos) }
func (*Concat) NodeType() NodeType  { return CONCAT }

func (lc *LConcat) NodePos() Position { return lc.Pos }
func (lc *LConcat) SourceLine() int   { return sourceLine(lc.Lineno, lc.Pos) }
func (*LConcat) NodeType() NodeType   { return LCONCAT }

func (r *Repeat) NodePos() Position { return r.Pos }
func (r *Repeat) SourceLine() int   { return sourceLine(r.Lineno, r.Pos) }
func (*Repeat) NodeType() NodeType  { return REPEAT }

func (p *Partselect) NodePos() Position { return p.Pos }
func (p *Partselect) SourceLine() int   { return sourceLine(p.Lineno, p.Pos) }
func (*Partselect) NodeType() NodeType  { return PARTSELECT }

func (p *Pointer) NodePos() Position { return p.Pos }
func (p *Pointer) SourceLine() int   { return sourceLine(p.Lineno, p.Pos) }
func (*Pointer) NodeType() NodeType  { return POINTER }

func (l *Lvalue) NodePos() Position { return l.Pos }
func (l *Lvalue) SourceLine() int   { return sourceLine(l.Lineno, l.Pos) }
func (*Lvalue) NodeType() NodeType  { return LVALUE }

func (r *Rvalue) NodePos() Position { return r.Pos }
func (r *Rvalue) SourceLine() int   { return sourceLine(r.Lineno, r.Pos) }
func (*Rvalue) NodeType() NodeType  { return RVALUE }

func (o *Operator) NodePos() Position { return o.Pos }
func (o *Operator) SourceLine() int   { return sourceLine(o.Lineno, o.Pos) }
func (*Operator) NodeType() NodeType  { return OPERATOR }

func (uo *UnaryOperator) NodePos() Position { return uo.Pos }
func (uo *UnaryOperator) SourceLine() int   { return sourceLine(uo.Lineno, uo.Pos) }
func (*UnaryOperator) NodeType() NodeType   { return UNARY_OPERATOR }

func (c *Cond) NodePos() Position { return c.Pos }
func (c *Cond) SourceLine() int   { return sourceLine(c.Lineno, c.Pos) }
func (*Cond) NodeType() NodeType  { return COND }

func (fc *FunctionCall) NodePos() Position { return fc.Pos }
func (fc *FunctionCall) SourceLine() int   { return sourceLine(fc.Lineno, fc.Pos) }
func (*FunctionCall) NodeType() NodeType   { return FUNCTION_CALL }

func (sc *SystemCall) NodePos() Position { return sc.Pos }
func (sc *SystemCall) SourceLine() int   { return sourceLine(sc.Lineno, sc.Pos) }
func (*SystemCall) NodeType() NodeType   { return SYSTEM_CALL }

func (isl *IdentifierScopeLabel) NodePos() Position { return isl.Pos }
func (isl *IdentifierScopeLabel) SourceLine() int   { return sourceLine(isl.Lineno, isl.Pos) }
func (*IdentifierScopeLabel) NodeType() NodeType    { return IDENTIFIER_SCOPE_LABEL }

func (is *IdentifierScope) NodePos() Position { return is.Pos }
func (is *IdentifierScope) SourceLine() int   { return sourceLine(is.Lineno, is.Pos) }
func (*IdentifierScope) NodeType() NodeType   { return IDENTIFIER_SCOPE }

func (a *Assign) NodePos() Position { return a.Pos }
func (a *Assign) SourceLine() int   { return sourceLine(a.Lineno, a.Pos) }
func (*Assign) NodeType() NodeType  { return ASSIGN }

func (a *Always) NodePos() Position { return a.Pos }
func (a *Always) SourceLine() int   { return sourceLine(a.Lineno, a.Pos) }
func (*Always) NodeType() NodeType  { return ALWAYS }

func (i *Initial) NodePos() Position { return i.Pos }
func (i *Initial) SourceLine() int   { return sourceLine(i.Lineno, i.Pos) }
func (*Initial) NodeType() NodeType  { return INITIAL }

func (sl *SensList) NodePos() Position { return sl.Pos }
func (sl *SensList) SourceLine() int   { return sourceLine(sl.Lineno, sl.Pos) }
func (*SensList) NodeType() NodeType   { return SENS_LIST }

func (s *Sens) NodePos() Position { return s.Pos }
func (s *Sens) SourceLine() int   { return sourceLine(s.Lineno, s.Pos) }
func (*Sens) NodeType() NodeType  { return SENS }

func (s *Substitution) NodePos() Position { return s.Pos }
func (s *Substitution) SourceLine() int   { return sourceLine(s.Lineno, s.Pos) }
func (*Substitution) NodeType() NodeType  { return SUBSTITUTION }

func (bs *BlockingSubstitution) NodePos() Position { return bs.Pos }
func (bs *BlockingSubstitution) SourceLine() int   { return sourceLine(bs.Lineno, bs.Pos) }
func (*BlockingSubstitution) NodeType() NodeType   { return BLOCKING_SUBSTITUTION }

func (ns *NonblockingSubstitution) NodePos() Position { return ns.Pos }
func (ns *NonblockingSubstitution) SourceLine() int   { return sourceLine(ns.Lineno, ns.Pos) }
func (*NonblockingSubstitution) NodeType() NodeType   { return NONBLOCKING_SUBSTITUTION }

func (is *IfStatement) NodePos() Position { return is.Pos }
func (is *IfStatement) SourceLine() int   { return sourceLine(is.Lineno, is.Pos) }
func (*IfStatement) NodeType() NodeType   { return IF_STATEMENT }

func (fs *ForStatement) NodePos() Position { return fs.Pos }
func (fs *ForStatement) SourceLine() int   { return sourceLine(fs.Lineno, fs.Pos) }
func (*ForStatement) NodeType() NodeType   { return FOR_STATEMENT }

func (ws *WhileStatement) NodePos() Position { return ws.Pos }
func (ws *WhileStatement) SourceLine() int   { return sourceLine(ws.Lineno, ws.Pos) }
func (*WhileStatement) NodeType() NodeType   { return WHILE_STATEMENT }

func (cs *CaseStatement) NodePos() Position { return cs.Pos }
func (cs *CaseStatement) SourceLine() int   { return sourceLine(cs.Lineno, cs.Pos) }
func (*CaseStatement) NodeType() NodeType   { return CASE_STATEMENT }

func (cs *CasexStatement) NodePos() Position { return cs.Pos }
func (cs *CasexStatement) SourceLine() int   { return sourceLine(cs.Lineno, cs.Pos) }
func (*CasexStatement) NodeType() NodeType   { return CASEX_STATEMENT }

func (c *Case) NodePos() Position { return c.Pos }
func (c *Case) SourceLine() int   { return sourceLine(c.Lineno, c.Pos) }
func (*Case) NodeType() NodeType  { return CASE }

func (b *Block) NodePos() Position { return b.Pos }
func (b *Block) SourceLine() int   { return sourceLine(b.Lineno, b.Pos) }
func (*Block) NodeType() NodeType  { return BLOCK }

func (pb *ParallelBlock) NodePos() Position { return pb.Pos }
func (pb *ParallelBlock) SourceLine() int   { return sourceLine(pb.Lineno, pb.Pos) }
func (*ParallelBlock) NodeType() NodeType   { return PARALLEL_BLOCK }

func (es *EventStatement) NodePos() Position { return es.Pos }
func (es *EventStatement) SourceLine() int   { return sourceLine(es.Lineno, es.Pos) }
func (*EventStatement) NodeType() NodeType   { return EVENT_STATEMENT }

func (ws *WaitStatement) NodePos() Position { return ws.Pos }
func (ws *WaitStatement) SourceLine() int   { return sourceLine(ws.Lineno, ws.Pos) }
func (*WaitStatement) NodeType() NodeType   { return WAIT_STATEMENT }

func (fs *ForeverStatement) NodePos() Position { return fs.Pos }
func (fs *ForeverStatement) SourceLine() int   { return sourceLine(fs.Lineno, fs.Pos) }
func (*ForeverStatement) NodeType() NodeType   { return FOREVER_STATEMENT }

func (ds *DelayStatement) NodePos() Position { return ds.Pos }
func (ds *DelayStatement) SourceLine() int   { return sourceLine(ds.Lineno, ds.Pos) }
func (*DelayStatement) NodeType() NodeType   { return DELAY_STATEMENT }

func (d *Disable) NodePos() Position { return d.Pos }
func (d *Disable) SourceLine() int   { return sourceLine(d.Lineno, d.Pos) }
func (*Disable) NodeType() NodeType  { return DISABLE }

func (ss *SingleStatement) NodePos() Position { return ss.Pos }
func (ss *SingleStatement) SourceLine() int   { return sourceLine(ss.Lineno, ss.Pos) }
func (*SingleStatement) NodeType() NodeType   { return SINGLE_STATEMENT }

func (il *InstanceList) NodePos() Position { return il.Pos }
func (il *InstanceList) SourceLine() int   { return sourceLine(il.Lineno, il.Pos) }
func (*InstanceList) NodeType() NodeType   { return INSTANCE_LIST }

func (i *Instance) NodePos() Position { return i.Pos }
func (i *Instance) SourceLine() int   { return sourceLine(i.Lineno, i.Pos) }
func (*Instance) NodeType() NodeType  { return INSTANCE }

func (pa *ParamArg) NodePos() Position { return pa.Pos }
func (pa *ParamArg) SourceLine() int   { return sourceLine(pa.Lineno, pa.Pos) }
func (*ParamArg) NodeType() NodeType   { return PARAM_ARG }

func (pa *PortArg) NodePos() Position { return pa.Pos }
func (pa *PortArg) SourceLine() int   { return sourceLine(pa.Lineno, pa.Pos) }
func (*PortArg) NodeType() NodeType   { return PORT_ARG }

func (gs *GenerateStatement) NodePos() Position { return gs.Pos }
func (gs *GenerateStatement) SourceLine() int   { return sourceLine(gs.Lineno, gs.Pos) }
func (*GenerateStatement) NodeType() NodeType   { return GENERATE_STATEMENT }

func (f *Function) NodePos() Position { return f.Pos }
func (f *Function) SourceLine() int   { return sourceLine(f.Lineno, f.Pos) }
func (*Function) NodeType() NodeType  { return FUNCTION }

func (t *Task) NodePos() Position { return t.Pos }
func (t *Task) SourceLine() int   { return sourceLine(t.Lineno, t.Pos) }
func (*Task) NodeType() NodeType  { return TASK }

func (tc *TaskCall) NodePos() Position { return tc.Pos }
func (tc *TaskCall) SourceLine() int   { return sourceLine(tc.Lineno, tc.Pos) }
func (*TaskCall) NodeType() NodeType   { return TASK_CALL }

func (p *Pragma) NodePos() Position { return p.Pos }
func (p *Pragma) SourceLine() int   { return sourceLine(p.Lineno, p.Pos) }
func (*Pragma) NodeType() NodeType  { return PRAGMA }

func (pe *PragmaEntry) NodePos() Position { return pe.Pos }
func (pe *PragmaEntry) SourceLine() int   { return sourceLine(pe.Lineno, pe.Pos) }
func (*PragmaEntry) NodeType() NodeType   { return PRAGMA_ENTRY }

func (ec *EmbeddedCode) NodePos() Position { return ec.Pos }
func (ec *EmbeddedCode) SourceLine() int   { return sourceLine(ec.Lineno, ec.Pos) }
func (*EmbeddedCode) NodeType() NodeType   { return EMBEDDED_CODE }
