package codegen

import (
	"strconv"
	"strings"

	"v2sc/internal/ast"
	"v2sc/internal/layout"
)

// variable renders a port, net or register declaration in a view. The
// width is "1" when no range is given.
func (w *walker) variable(v ast.Variable, view string) (string, error) {
	width, big, err := w.widthFields(v.VarWidth())
	if err != nil {
		return "", err
	}
	fields := layout.Fields{
		"name":   escape(v.VarName()),
		"width":  width,
		"big":    big,
		"signed": v.IsSigned(),
	}

	var length *ast.Length
	switch a := v.(type) {
	case *ast.WireArray:
		length = a.Length
	case *ast.RegArray:
		length = a.Length
	}
	if length != nil {
		n, err := w.resolveLength(length)
		if err != nil {
			return "", err
		}
		fields["length"] = strconv.FormatInt(n, 10)
	}

	return w.emitKind(v, view, fields)
}

func (w *walker) integer(n *ast.Integer) (string, error) {
	return w.emitKind(n, "", layout.Fields{"name": escape(n.Name), "signed": n.Signed})
}

// named renders kinds whose only field is their name.
func (w *walker) named(n ast.Node, name string) (string, error) {
	return w.emitKind(n, "", layout.Fields{"name": escape(name)})
}

func (w *walker) parameter(n *ast.Parameter) (string, error) {
	return w.constant(n, n.Name, n.Value, n.Width, n.Signed)
}

func (w *walker) localparam(n *ast.Localparam) (string, error) {
	return w.constant(n, n.Name, n.Value, n.Width, n.Signed)
}

// constant renders a parameter or local parameter. The width stays empty
// when no range is given or the value is a string literal.
func (w *walker) constant(n ast.Node, name string, value *ast.Rvalue, r *ast.Width, signed bool) (string, error) {
	text, err := w.visit(value)
	if err != nil {
		return "", err
	}

	width, big := "", false
	if r != nil && !isQuoted(text) {
		if width, big, err = w.widthFields(r); err != nil {
			return "", err
		}
	}

	return w.emitKind(n, "", layout.Fields{
		"name":   escape(name),
		"value":  text,
		"width":  width,
		"big":    big,
		"signed": signed,
	})
}

func isQuoted(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}

// declView renders the items of a declaration statement. The default and
// declaration views skip parameters, the argument view keeps only port
// directions and the parameter view keeps only parameters.
func (w *walker) declView(n *ast.Decl, ctx Context) (string, error) {
	var items []string
	for _, item := range n.List {
		_, isParam := item.(*ast.Parameter)

		var (
			text string
			ok   bool
			err  error
		)
		switch ctx {
		case DefaultContext, DeclarationContext:
			if isParam {
				continue
			}
			text, ok, err = w.project(ctx, item)
		case ArgumentContext:
			if !isPortDirection(item) {
				continue
			}
			text, ok, err = w.project(ArgumentContext, item)
		case ParameterContext:
			if !isParam {
				continue
			}
			text, ok, err = w.project(DefaultContext, item)
		}
		if err != nil {
			return "", err
		}
		if ok && text != "" {
			items = append(items, text)
		}
	}

	view := ""
	if ctx != DefaultContext {
		view = ctx.String()
	}
	return w.emitKind(n, view, layout.Fields{"items": items})
}

func isPortDirection(n ast.Node) bool {
	switch n.NodeType() {
	case ast.INPUT, ast.OUTPUT, ast.INOUT:
		return true
	}
	return false
}

func (w *walker) paramlist(n *ast.Paramlist) (string, error) {
	params, err := w.visitAll(n.Params)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"params": nonEmpty(params)})
}

// paramlistParameter renders the header parameters. The list usually
// holds declaration statements, but bare parameters are accepted too.
func (w *walker) paramlistParameter(n *ast.Paramlist) (string, error) {
	var params []string
	for _, p := range n.Params {
		var (
			text string
			ok   = true
			err  error
		)
		if _, bare := p.(*ast.Parameter); bare {
			text, err = w.visit(p)
		} else {
			text, ok, err = w.project(ParameterContext, p)
		}
		if err != nil {
			return "", err
		}
		if ok && text != "" {
			params = append(params, text)
		}
	}
	return w.emitKind(n, "parameter", layout.Fields{"params": params})
}

func (w *walker) portlist(n *ast.Portlist) (string, error) {
	ports, err := w.visitAll(n.Ports)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"ports": nonEmpty(ports)})
}

func (w *walker) port(n *ast.Port) (string, error) {
	width, big, err := w.widthFields(n.Width)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"name": escape(n.Name), "width": width, "big": big})
}

func (w *walker) ioport(n *ast.Ioport) (string, error) {
	first, err := w.visit(n.First)
	if err != nil {
		return "", err
	}
	second, err := w.visit(n.Second)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"first": first, "second": second})
}

func nonEmpty(texts []string) []string {
	out := texts[:0:0]
	for _, t := range texts {
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	return out
}
