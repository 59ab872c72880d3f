package codegen

import (
	"fmt"

	"v2sc/internal/ast"
	"v2sc/internal/layout"
)

// Sensitivity entry types.
const (
	SensPosedge = "posedge"
	SensNegedge = "negedge"
	SensLevel   = "level"
	SensAll     = "all"
)

// Triggers is a sensitivity list partitioned into the clock edge, the
// asynchronous reset and everything else.
type Triggers struct {
	Clock *ast.Sens
	Reset *ast.Sens
	Other []*ast.Sens
}

// SplitTriggers partitions list. The first entry whose signal is the plain
// identifier clock becomes the clock, the first named reset becomes the
// reset; all other entries stay in Other in their original order.
func SplitTriggers(list *ast.SensList, clock, reset string) Triggers {
	var t Triggers
	if list == nil {
		return t
	}
	for _, s := range list.List {
		name, ok := plainSignal(s)
		switch {
		case ok && name == clock && t.Clock == nil:
			t.Clock = s
		case ok && name == reset && t.Reset == nil:
			t.Reset = s
		default:
			t.Other = append(t.Other, s)
		}
	}
	return t
}

func plainSignal(s *ast.Sens) (string, bool) {
	if s == nil {
		return "", false
	}
	id, ok := s.Sig.(*ast.Identifier)
	if !ok || id == nil || id.Scope != nil {
		return "", false
	}
	return id.Name, true
}

// ResetActive is the reset level passed to async_reset_signal_is: a
// falling edge reset is active low.
func ResetActive(s *ast.Sens) bool {
	return s == nil || s.Type != SensNegedge
}

func (w *walker) sens(n *ast.Sens) (string, error) {
	sig, err := w.visit(n.Sig)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"sig": delParen(sig), "type": n.Type})
}

func (w *walker) sensList(n ast.Node, list []*ast.Sens) (string, error) {
	texts, err := w.sensTexts(list, nil)
	if err != nil {
		return "", err
	}
	return w.emit(n, layout.Fields{"list": texts}, "senslist")
}

// sensTexts renders sensitivity entries. An "all" entry expands to the
// signals read by body, or is dropped when there is no body.
func (w *walker) sensTexts(list []*ast.Sens, body ast.Node) ([]string, error) {
	var texts []string
	for _, s := range list {
		if s == nil {
			continue
		}
		if s.Type == SensAll || ast.IsNil(s.Sig) {
			if ast.IsNil(body) {
				continue
			}
			reads, err := w.readTexts(body)
			if err != nil {
				return nil, err
			}
			texts = append(texts, reads...)
			continue
		}
		text, err := w.visit(s)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// processFields renders the trigger fields of an always block. A reset is
// only split off when the block also has a clock.
func (w *walker) processFields(n *ast.Always) (layout.Fields, error) {
	t := SplitTriggers(n.SensList, w.g.opts.ClockName, w.g.opts.ResetName)
	fields := layout.Fields{
		"name":       processName("always", n),
		"clock_sens": "",
		"reset_sens": "",
		"sens_list":  "",
	}

	other := t.Other
	if t.Clock == nil {
		other = nil
		if n.SensList != nil {
			other = n.SensList.List
		}
	} else {
		clock, err := w.visit(t.Clock)
		if err != nil {
			return nil, err
		}
		fields["clock_sens"] = clock
		if t.Reset != nil {
			sig, err := w.visit(t.Reset.Sig)
			if err != nil {
				return nil, err
			}
			fields["reset_sens"] = fmt.Sprintf("%s, %t", delParen(sig), ResetActive(t.Reset))
		}
	}

	texts, err := w.sensTexts(other, n.Statement)
	if err != nil {
		return nil, err
	}
	if len(texts) > 0 {
		list, err := w.emit(n.SensList, layout.Fields{"list": dedupe(texts)}, "senslist")
		if err != nil {
			return nil, err
		}
		fields["sens_list"] = list
	}
	return fields, nil
}

func processName(prefix string, n ast.Node) string {
	return fmt.Sprintf("%s_at_line_%d", prefix, n.SourceLine())
}

// always renders the member function of an always block. A block without
// any trigger runs as a thread and loops forever.
func (w *walker) always(n *ast.Always, view string) (string, error) {
	fields, err := w.processFields(n)
	if err != nil {
		return "", err
	}
	body, err := w.braced(n.Statement)
	if err != nil {
		return "", err
	}
	if fields["clock_sens"] == "" && fields["sens_list"] == "" {
		body = bracedText(w.g.tab, "while (true) "+body)
	}
	return w.emitKind(n, view, layout.Fields{"name": fields["name"], "statement": body})
}

func (w *walker) alwaysProcess(n *ast.Always) (string, error) {
	fields, err := w.processFields(n)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "process", fields)
}

func (w *walker) initial(n *ast.Initial, view string) (string, error) {
	body, err := w.braced(n.Statement)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, view, layout.Fields{"name": processName("initial", n), "statement": body})
}

func (w *walker) initialProcess(n *ast.Initial) (string, error) {
	return w.emitKind(n, "process", layout.Fields{"name": processName("initial", n)})
}

func (w *walker) assign(n *ast.Assign) (string, error) {
	left, err := w.visit(n.Left)
	if err != nil {
		return "", err
	}
	right, err := w.visit(n.Right)
	if err != nil {
		return "", err
	}
	text, err := w.emitKind(n, "", layout.Fields{"left": left, "right": right})
	if err != nil {
		return "", err
	}
	return alignAssign(text), nil
}

func (w *walker) assignDeclaration(n *ast.Assign) (string, error) {
	stmt, err := w.assign(n)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "declaration", layout.Fields{"name": processName("assign", n), "statement": stmt})
}

func (w *walker) assignProcess(n *ast.Assign) (string, error) {
	reads, err := w.readTexts(n)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "process", layout.Fields{"name": processName("assign", n), "sensitivity": reads})
}

// readTexts renders the read set of body.
func (w *walker) readTexts(body ast.Node) ([]string, error) {
	ids := w.readSet(body)
	texts := make([]string, 0, len(ids))
	for _, id := range ids {
		text, err := w.visit(id)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// readSet returns the unscoped identifiers read by body in first-read
// order. Assignment targets, constants and called function names are
// left out; the indices of a target are reads.
func (w *walker) readSet(body ast.Node) []*ast.Identifier {
	written := map[string]bool{}
	ast.Inspect(body, func(n ast.Node) bool {
		if lv, ok := n.(*ast.Lvalue); ok {
			for _, id := range targets(lv.Var) {
				written[id.Name] = true
			}
		}
		return true
	})

	seen := map[string]bool{}
	var reads []*ast.Identifier
	var collect func(ast.Node) bool
	collect = func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Lvalue:
			for _, idx := range indices(n.Var) {
				ast.Inspect(idx, collect)
			}
			return false
		case *ast.FunctionCall:
			for _, arg := range n.Args {
				ast.Inspect(arg, collect)
			}
			return false
		case *ast.Identifier:
			if n.Scope == nil && !written[n.Name] && !w.isConstant(n.Name) && !seen[n.Name] {
				seen[n.Name] = true
				reads = append(reads, n)
			}
			return false
		}
		return true
	}
	ast.Inspect(body, collect)
	return reads
}

// targets returns the identifiers written through an assignment target.
func targets(n ast.Node) []*ast.Identifier {
	switch n := n.(type) {
	case *ast.Identifier:
		return []*ast.Identifier{n}
	case *ast.Pointer:
		return targets(n.Var)
	case *ast.Partselect:
		return targets(n.Var)
	case *ast.LConcat:
		var out []*ast.Identifier
		for _, item := range n.List {
			out = append(out, targets(item)...)
		}
		return out
	case *ast.Concat:
		var out []*ast.Identifier
		for _, item := range n.List {
			out = append(out, targets(item)...)
		}
		return out
	}
	return nil
}

// indices returns the index expressions of an assignment target.
func indices(n ast.Node) []ast.Node {
	switch n := n.(type) {
	case *ast.Pointer:
		return append(indices(n.Var), n.Ptr)
	case *ast.Partselect:
		return append(indices(n.Var), n.MSB, n.LSB)
	case *ast.LConcat:
		var out []ast.Node
		for _, item := range n.List {
			out = append(out, indices(item)...)
		}
		return out
	case *ast.Concat:
		var out []ast.Node
		for _, item := range n.List {
			out = append(out, indices(item)...)
		}
		return out
	}
	return nil
}

func dedupe(texts []string) []string {
	seen := make(map[string]bool, len(texts))
	out := texts[:0:0]
	for _, t := range texts {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
