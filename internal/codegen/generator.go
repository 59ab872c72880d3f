// Package codegen renders Verilog syntax trees as SystemC source text.
//
// A Generator is built once from Options and a template set and is then
// safe for concurrent use: every Render call walks the tree with its own
// walker, which carries the recursion depth and the constants visible to
// width folding.
package codegen

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/tliron/commonlog"
	"v2sc/internal/ast"
	"v2sc/internal/errors"
	"v2sc/internal/layout"
)

var log = commonlog.GetLogger("v2sc.codegen")

const (
	DefaultIndentSize = 4
	DefaultClockName  = "CLK"
	DefaultResetName  = "RSTX"
	DefaultMaxDepth   = 1000
)

// Options configure a Generator.
type Options struct {
	IndentSize int    // spaces per nesting level
	ClockName  string // signal treated as the clock of clocked blocks
	ResetName  string // signal treated as the asynchronous reset
	MaxDepth   int    // recursion limit, 0 means DefaultMaxDepth
	Workers    int    // module definitions rendered concurrently, <= 1 is sequential
}

func DefaultOptions() Options {
	return Options{
		IndentSize: DefaultIndentSize,
		ClockName:  DefaultClockName,
		ResetName:  DefaultResetName,
		MaxDepth:   DefaultMaxDepth,
		Workers:    1,
	}
}

// Generator renders syntax trees. It holds no per-render state.
type Generator struct {
	opts      Options
	templates *layout.Set
	tab       string
	views     map[Context]map[ast.NodeType]handler
}

// New creates a generator. A nil template set selects the builtin assets.
func New(opts Options, templates *layout.Set) (*Generator, error) {
	if opts.IndentSize < 0 {
		return nil, fmt.Errorf("indent size must not be negative, got %d", opts.IndentSize)
	}
	if opts.ClockName == "" || opts.ResetName == "" {
		return nil, fmt.Errorf("clock and reset names must be set")
	}
	if opts.ClockName == opts.ResetName {
		return nil, fmt.Errorf("clock and reset share the name %q", opts.ClockName)
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if templates == nil {
		var err error
		if templates, err = layout.Builtin(); err != nil {
			return nil, err
		}
	}

	return &Generator{
		opts:      opts,
		templates: templates,
		tab:       strings.Repeat(" ", opts.IndentSize),
		views:     contextViews(),
	}, nil
}

func (g *Generator) Options() Options { return g.opts }

// Render renders node in the default context.
func (g *Generator) Render(node ast.Node) (string, error) {
	return g.newWalker().visit(node)
}

// Project renders node in ctx. ok is false when the kind has no rendering
// in that context, which is not an error.
func (g *Generator) Project(node ast.Node, ctx Context) (text string, ok bool, err error) {
	return g.newWalker().project(ctx, node)
}

func (g *Generator) newWalker() *walker {
	return &walker{g: g}
}

// walker carries the state of one render call.
type walker struct {
	g      *Generator
	depth  int
	consts map[string]ast.Node
}

// fork returns an independent walker at the same position, for rendering
// a subtree on another goroutine.
func (w *walker) fork() *walker {
	return &walker{g: w.g, depth: w.depth, consts: w.consts}
}

func (w *walker) enter(n ast.Node) error {
	w.depth++
	if w.depth > w.g.opts.MaxDepth {
		return errors.NewRenderError(errors.NestingTooDeep, n, "more than %d levels", w.g.opts.MaxDepth)
	}
	return nil
}

func (w *walker) leave() { w.depth-- }

// emit renders the first existing asset of names with fields.
func (w *walker) emit(n ast.Node, fields layout.Fields, names ...string) (string, error) {
	fields["tab"] = w.g.tab
	text, err := w.g.templates.Render(fields, names...)
	if err == nil {
		return text, nil
	}
	var missing *layout.MissingAssetError
	if stderrors.As(err, &missing) {
		return "", errors.NewRenderError(errors.MissingTemplateAsset, n, "%s", strings.Join(missing.Names, " or "))
	}
	return "", errors.NewRenderError(errors.TemplateExecution, n, "").Wrap(err)
}

// emitKind renders the asset of n's kind in a view.
func (w *walker) emitKind(n ast.Node, view string, fields layout.Fields) (string, error) {
	return w.emit(n, fields, layout.AssetName(ast.KindName(n), view))
}

// visitAll renders every node in the default context.
func (w *walker) visitAll(nodes []ast.Node) ([]string, error) {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		text, err := w.visit(n)
		if err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, nil
}

// projectAll renders every node in ctx, keeping only non-empty renderings.
func (w *walker) projectAll(ctx Context, nodes []ast.Node) ([]string, error) {
	var out []string
	for _, n := range nodes {
		text, ok, err := w.project(ctx, n)
		if err != nil {
			return nil, err
		}
		if ok && strings.TrimSpace(text) != "" {
			out = append(out, text)
		}
	}
	return out, nil
}

// indentAll indents every entry by one level.
func (w *walker) indentAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = layout.Indent(w.g.tab, t)
	}
	return out
}
