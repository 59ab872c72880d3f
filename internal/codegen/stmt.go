package codegen

import (
	"strings"

	"v2sc/internal/ast"
	"v2sc/internal/layout"
)

func (w *walker) substitution(n ast.Node, left *ast.Lvalue, right *ast.Rvalue, ldelay, rdelay *ast.DelayStatement) (string, error) {
	l, err := w.visit(left)
	if err != nil {
		return "", err
	}
	r, err := w.visit(right)
	if err != nil {
		return "", err
	}
	ld, err := w.visit(ldelay)
	if err != nil {
		return "", err
	}
	rd, err := w.visit(rdelay)
	if err != nil {
		return "", err
	}

	text, err := w.emitKind(n, "", layout.Fields{
		"left":   l,
		"right":  r,
		"ldelay": ld,
		"rdelay": rd,
	})
	if err != nil {
		return "", err
	}
	return alignAssign(text), nil
}

func (w *walker) ifStatement(n *ast.IfStatement) (string, error) {
	cond, err := w.visit(n.Cond)
	if err != nil {
		return "", err
	}
	t, err := w.visit(n.TrueStatement)
	if err != nil {
		return "", err
	}
	f, err := w.visit(n.FalseStatement)
	if err != nil {
		return "", err
	}
	if t == "" {
		t = ";"
	}
	return w.emitKind(n, "", layout.Fields{
		"cond":            delParen(cond),
		"true_statement":  t,
		"false_statement": f,
	})
}

func (w *walker) forStatement(n *ast.ForStatement) (string, error) {
	pre, err := w.visit(n.Pre)
	if err != nil {
		return "", err
	}
	cond, err := w.visit(n.Cond)
	if err != nil {
		return "", err
	}
	post, err := w.visit(n.Post)
	if err != nil {
		return "", err
	}
	body, err := w.visit(n.Statement)
	if err != nil {
		return "", err
	}
	if pre == "" {
		pre = ";"
	}
	return w.emitKind(n, "", layout.Fields{
		"pre":       pre,
		"cond":      delParen(cond),
		"post":      strings.TrimSuffix(post, ";"),
		"statement": orEmpty(body),
	})
}

func (w *walker) whileStatement(n *ast.WhileStatement) (string, error) {
	cond, err := w.visit(n.Cond)
	if err != nil {
		return "", err
	}
	body, err := w.visit(n.Statement)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"cond": delParen(cond), "statement": orEmpty(body)})
}

func (w *walker) caseStatement(n ast.Node, comp ast.Node, caselist []*ast.Case) (string, error) {
	c, err := w.visit(comp)
	if err != nil {
		return "", err
	}
	arms := make([]string, 0, len(caselist))
	for _, arm := range caselist {
		text, err := w.visit(arm)
		if err != nil {
			return "", err
		}
		arms = append(arms, text)
	}
	return w.emitKind(n, "", layout.Fields{
		"comp":     delParen(c),
		"caselist": w.indentAll(arms),
	})
}

// caseArm renders one arm. An arm without conditions is the default arm.
func (w *walker) caseArm(n *ast.Case) (string, error) {
	conds := []string{"default"}
	if len(n.Cond) > 0 {
		texts, err := w.visitAll(n.Cond)
		if err != nil {
			return "", err
		}
		conds = conds[:0]
		for _, t := range texts {
			conds = append(conds, delParen(t))
		}
	}
	body, err := w.visit(n.Statement)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"condlist": conds, "statement": orEmpty(body)})
}

// block renders a sequential or parallel block with its statements one
// level deeper.
func (w *walker) block(n ast.Node, statements []ast.Node, scope string) (string, error) {
	texts, err := w.visitAll(statements)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{
		"statements": w.indentAll(nonEmpty(texts)),
		"scope":      scope,
	})
}

// braced renders a process body as a block, wrapping a single statement
// in braces.
func (w *walker) braced(stmt ast.Node) (string, error) {
	text, err := w.visit(stmt)
	if err != nil {
		return "", err
	}
	switch stmt.(type) {
	case *ast.Block, *ast.ParallelBlock:
		return text, nil
	}
	return bracedText(w.g.tab, text), nil
}

func bracedText(tab, text string) string {
	if text == "" {
		return "{\n}"
	}
	return "{\n" + layout.Indent(tab, text) + "\n}"
}

func (w *walker) eventStatement(n *ast.EventStatement) (string, error) {
	var events []string
	if n.SensList != nil {
		for _, s := range n.SensList.List {
			if s == nil || ast.IsNil(s.Sig) {
				continue
			}
			sig, err := w.visit(s.Sig)
			if err != nil {
				return "", err
			}
			text, err := w.emit(s, layout.Fields{"sig": delParen(sig), "type": s.Type}, "sensevent")
			if err != nil {
				return "", err
			}
			events = append(events, text)
		}
	}
	return w.emitKind(n, "", layout.Fields{"events": events})
}

func (w *walker) waitStatement(n *ast.WaitStatement) (string, error) {
	cond, err := w.visit(n.Cond)
	if err != nil {
		return "", err
	}
	body, err := w.visit(n.Statement)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"cond": delParen(cond), "statement": body})
}

func (w *walker) foreverStatement(n *ast.ForeverStatement) (string, error) {
	body, err := w.visit(n.Statement)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"statement": orEmpty(body)})
}

func (w *walker) delayStatement(n *ast.DelayStatement) (string, error) {
	delay, err := w.visit(n.Delay)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"delay": delParen(delay)})
}

func (w *walker) singleStatement(n *ast.SingleStatement) (string, error) {
	text, err := w.visit(n.Statement)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"statement": strings.TrimSuffix(text, ";")})
}

// orEmpty turns a missing statement into the empty statement.
func orEmpty(text string) string {
	if text == "" {
		return ";"
	}
	return text
}
