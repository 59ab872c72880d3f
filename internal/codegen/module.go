package codegen

import (
	"strconv"

	"golang.org/x/sync/errgroup"
	"v2sc/internal/ast"
	"v2sc/internal/layout"
)

func (w *walker) source(n *ast.Source) (string, error) {
	desc, err := w.visit(n.Description)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"description": desc})
}

// description renders the top level definitions. With more than one
// worker the definitions are rendered concurrently; the output and the
// reported error do not depend on scheduling.
func (w *walker) description(n *ast.Description) (string, error) {
	defs := make([]string, len(n.Definitions))
	errs := make([]error, len(n.Definitions))

	if workers := w.g.opts.Workers; workers > 1 && len(n.Definitions) > 1 {
		var g errgroup.Group
		g.SetLimit(workers)
		for i, def := range n.Definitions {
			i, def := i, def
			child := w.fork()
			g.Go(func() error {
				defs[i], errs[i] = child.visit(def)
				return errs[i]
			})
		}
		_ = g.Wait()
		log.Debugf("rendered %d definitions with %d workers", len(defs), workers)
	} else {
		for i, def := range n.Definitions {
			if defs[i], errs[i] = w.visit(def); errs[i] != nil {
				break
			}
		}
	}

	for _, err := range errs {
		if err != nil {
			return "", err
		}
	}
	return w.emitKind(n, "", layout.Fields{"definitions": nonEmpty(defs)})
}

// moduleDef assembles a module from the views of its items. Parameters of
// the header and of the body are both visible to width folding.
func (w *walker) moduleDef(n *ast.ModuleDef) (string, error) {
	var header []ast.Node
	if n.Paramlist != nil {
		header = n.Paramlist.Params
	}
	mw := w.withConstants(header, n.Items)
	log.Debugf("module %s: %d items, %d constants", n.Name, len(n.Items), len(mw.consts))

	portlist, err := mw.visit(n.Portlist)
	if err != nil {
		return "", err
	}

	var parameters []string
	if n.Paramlist != nil {
		text, ok, err := mw.project(ParameterContext, n.Paramlist)
		if err != nil {
			return "", err
		}
		if ok && text != "" {
			parameters = append(parameters, text)
		}
	}
	inline, err := mw.projectAll(ParameterContext, n.Items)
	if err != nil {
		return "", err
	}
	parameters = append(parameters, inline...)

	declarations, err := mw.projectAll(DeclarationContext, n.Items)
	if err != nil {
		return "", err
	}
	processes, err := mw.projectAll(ProcessContext, n.Items)
	if err != nil {
		return "", err
	}
	items, err := mw.visitAll(n.Items)
	if err != nil {
		return "", err
	}

	return mw.emitKind(n, "", layout.Fields{
		"modulename":      escape(n.Name),
		"portlist":        layout.Indent(w.g.tab, portlist),
		"parameters":      parameters,
		"declarationlist": declarations,
		"processlist":     processes,
		"items":           mw.indentAll(nonEmpty(items)),
	})
}

// instanceListView renders the instances of an instantiation statement.
// Parameter overrides of the statement apply to instances without their
// own.
func (w *walker) instanceListView(n *ast.InstanceList, ctx Context) (string, error) {
	var instances []string
	for _, inst := range n.Instances {
		if inst == nil {
			continue
		}
		var (
			text string
			err  error
		)
		if ctx == ProcessContext {
			params := inst.ParameterList
			if len(params) == 0 {
				params = n.ParameterList
			}
			if err = w.enter(inst); err != nil {
				return "", err
			}
			text, err = w.instanceProcessWith(inst, params)
			w.leave()
		} else {
			text, err = w.visit(inst)
		}
		if err != nil {
			return "", err
		}
		instances = append(instances, text)
	}

	view := ""
	if ctx != DefaultContext {
		view = ctx.String()
	}
	return w.emitKind(n, view, layout.Fields{"instances": instances})
}

func (w *walker) instance(n *ast.Instance) (string, error) {
	array, err := w.arrayLength(n)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{
		"module": escape(n.Module),
		"name":   escape(n.Name),
		"array":  array,
	})
}

func (w *walker) arrayLength(n *ast.Instance) (string, error) {
	if n.Array == nil {
		return "", nil
	}
	length, err := w.resolveLength(n.Array)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(length, 10), nil
}

func (w *walker) instanceProcess(n *ast.Instance) (string, error) {
	return w.instanceProcessWith(n, n.ParameterList)
}

// instanceProcessWith renders the construction of an instance and its
// port bindings. Ports are bound by name when any connection is named.
// Unconnected ports are skipped.
func (w *walker) instanceProcessWith(n *ast.Instance, paramArgs []*ast.ParamArg) (string, error) {
	params := make([]string, 0, len(paramArgs))
	for _, p := range paramArgs {
		text, err := w.visit(p)
		if err != nil {
			return "", err
		}
		params = append(params, text)
	}

	named := false
	ports := make([]string, 0, len(n.PortList))
	for _, p := range n.PortList {
		if p == nil || ast.IsNil(p.ArgName) {
			continue
		}
		if p.PortName != "" {
			named = true
		}
		text, err := w.visit(p)
		if err != nil {
			return "", err
		}
		ports = append(ports, text)
	}

	array, err := w.arrayLength(n)
	if err != nil {
		return "", err
	}

	return w.emitKind(n, "process", layout.Fields{
		"module": escape(n.Module),
		"name":   escape(n.Name),
		"array":  array,
		"params": params,
		"named":  named,
		"ports":  ports,
	})
}

func (w *walker) paramArg(n *ast.ParamArg) (string, error) {
	arg, err := w.visit(n.ArgName)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"paramname": n.ParamName, "argname": delParen(arg)})
}

func (w *walker) portArg(n *ast.PortArg) (string, error) {
	arg, err := w.visit(n.ArgName)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"portname": escape(n.PortName), "argname": delParen(arg)})
}

// generateView renders the items of a generate region in ctx.
func (w *walker) generateView(n *ast.GenerateStatement, ctx Context) (string, error) {
	var (
		items []string
		err   error
	)
	view := ""
	if ctx == DefaultContext {
		var texts []string
		if texts, err = w.visitAll(n.Items); err != nil {
			return "", err
		}
		items = nonEmpty(texts)
	} else {
		view = ctx.String()
		if items, err = w.projectAll(ctx, n.Items); err != nil {
			return "", err
		}
	}
	return w.emitKind(n, view, layout.Fields{"items": items})
}

func (w *walker) function(n *ast.Function, view string) (string, error) {
	args, stmts, err := w.subprogram(n.Statement)
	if err != nil {
		return "", err
	}
	width, big, err := w.widthFields(n.RetWidth)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, view, layout.Fields{
		"name":       escape(n.Name),
		"width":      width,
		"big":        big,
		"signed":     false,
		"arguments":  args,
		"statements": stmts,
	})
}

func (w *walker) task(n *ast.Task, view string) (string, error) {
	args, stmts, err := w.subprogram(n.Statement)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, view, layout.Fields{
		"name":       escape(n.Name),
		"arguments":  args,
		"statements": stmts,
	})
}

// subprogram splits the items of a function or task into the argument
// list and the indented body. Port declarations become arguments; other
// declarations stay in the body.
func (w *walker) subprogram(items []ast.Node) ([]string, []string, error) {
	args, err := w.projectAll(ArgumentContext, items)
	if err != nil {
		return nil, nil, err
	}

	var body []string
	for _, item := range items {
		if d, ok := item.(*ast.Decl); ok {
			locals := &ast.Decl{Pos: d.Pos, Lineno: d.Lineno}
			for _, v := range d.List {
				if !isPortDirection(v) {
					locals.List = append(locals.List, v)
				}
			}
			if len(locals.List) == 0 {
				continue
			}
			item = locals
		}
		text, err := w.visit(item)
		if err != nil {
			return nil, nil, err
		}
		if text != "" {
			body = append(body, text)
		}
	}
	return args, w.indentAll(body), nil
}

func (w *walker) pragma(n *ast.Pragma) (string, error) {
	entry, err := w.visit(n.Entry)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"entry": entry})
}

func (w *walker) pragmaEntry(n *ast.PragmaEntry) (string, error) {
	value, err := w.visit(n.Value)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"name": n.Name, "value": value})
}
