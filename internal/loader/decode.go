package loader

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2/lexer"
	"v2sc/grammar"
	"v2sc/internal/ast"
	"v2sc/internal/errors"
)

const includeKind = "Include"

var (
	nodeInterface = reflect.TypeOf((*ast.Node)(nil)).Elem()
	positionType  = reflect.TypeOf(ast.Position{})
)

var fieldCache sync.Map // reflect.Type -> map[string]int

// fieldsOf maps the attribute names of a node struct to field indices.
func fieldsOf(t reflect.Type) map[string]int {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(map[string]int)
	}
	fields := map[string]int{}
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("vast")
		if tag == "" || tag == "-" {
			continue
		}
		fields[tag] = i
	}
	fieldCache.Store(t, fields)
	return fields
}

func attrNames(fields map[string]int) []string {
	var names []string
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func position(p lexer.Position) ast.Position {
	return ast.Position{Filename: p.Filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

type decoder struct {
	loader   *Loader
	filename string
}

func (d *decoder) node(gn *grammar.Node) (ast.Node, error) {
	pos := position(gn.Pos)
	if gn.Kind == includeKind {
		return nil, errors.NewLoadError(errors.ErrorInvalidAttribute, pos,
			"Include is only allowed in the definitions of a Description")
	}

	n, ok := ast.New(gn.Kind)
	if !ok {
		return nil, errors.UnknownNodeKind(gn.Kind, pos, ast.KindNames())
	}

	v := reflect.ValueOf(n).Elem()
	if f := v.FieldByName("Pos"); f.IsValid() && f.Type() == positionType {
		f.Set(reflect.ValueOf(pos))
	}

	fields := fieldsOf(v.Type())
	for _, attr := range gn.Attrs {
		index, ok := fields[attr.Name]
		if !ok {
			return nil, errors.UnknownAttribute(gn.Kind, attr.Name, position(attr.Pos), attrNames(fields))
		}
		allowInclude := gn.Kind == ast.DESCRIPTION.String() && attr.Name == "definitions"
		if err := d.assign(v.Field(index), gn.Kind, attr, allowInclude); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (d *decoder) assign(dst reflect.Value, kind string, attr *grammar.Attr, allowInclude bool) error {
	val := attr.Value
	pos := position(attr.Pos)
	bad := func(want string) error {
		return errors.NewLoadError(errors.ErrorInvalidAttribute, pos,
			"%s.%s expects %s, got %s", kind, attr.Name, want, describe(val))
	}

	switch dst.Kind() {
	case reflect.String:
		s, ok, err := d.text(val, pos)
		if err != nil {
			return err
		}
		if !ok {
			return bad("a string")
		}
		dst.SetString(s)

	case reflect.Int:
		if val.IsNone() {
			return nil
		}
		if val.Int == nil {
			return bad("an integer")
		}
		dst.SetInt(*val.Int)

	case reflect.Bool:
		if val.IsNone() {
			return nil
		}
		b, ok := val.Bool()
		if !ok {
			return bad("true or false")
		}
		dst.SetBool(b)

	case reflect.Interface, reflect.Ptr:
		if val.IsNone() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		if val.Node == nil {
			return bad("a node")
		}
		n, err := d.node(val.Node)
		if err != nil {
			return err
		}
		rv := reflect.ValueOf(n)
		if !rv.Type().AssignableTo(dst.Type()) {
			return bad(typeName(dst.Type()))
		}
		dst.Set(rv)

	case reflect.Slice:
		if val.IsNone() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		if val.List == nil {
			return bad("a list")
		}
		elem := dst.Type().Elem()
		out := reflect.MakeSlice(dst.Type(), 0, len(val.List.Items))
		for _, item := range val.List.Items {
			if item.IsNone() {
				continue
			}
			if item.Node == nil {
				return errors.NewLoadError(errors.ErrorInvalidAttribute, position(item.Pos),
					"%s.%s expects a list of nodes, got %s", kind, attr.Name, describe(item))
			}
			if allowInclude && item.Node.Kind == includeKind {
				defs, err := d.expandInclude(item.Node)
				if err != nil {
					return err
				}
				for _, def := range defs {
					out = reflect.Append(out, reflect.ValueOf(def))
				}
				continue
			}
			n, err := d.node(item.Node)
			if err != nil {
				return err
			}
			rv := reflect.ValueOf(n)
			if !rv.Type().AssignableTo(elem) {
				return errors.NewLoadError(errors.ErrorInvalidAttribute, position(item.Pos),
					"%s.%s expects a list of %s, got %s", kind, attr.Name, typeName(elem), item.Node.Kind)
			}
			out = reflect.Append(out, rv)
		}
		dst.Set(out)

	default:
		return bad("a supported value")
	}
	return nil
}

// text reads a string attribute. Quoted strings go through macro
// expansion, bare words and integers are taken literally.
func (d *decoder) text(val *grammar.Value, pos ast.Position) (string, bool, error) {
	switch {
	case val.IsNone():
		return "", true, nil
	case val.Str != nil:
		s, err := d.expand(*val.Str, pos)
		return s, err == nil, err
	case val.Ident != nil:
		return *val.Ident, true, nil
	case val.Int != nil:
		return strconv.FormatInt(*val.Int, 10), true, nil
	}
	return "", false, nil
}

// expand replaces a whole-value macro reference such as "`WIDTH".
func (d *decoder) expand(s string, pos ast.Position) (string, error) {
	name, ok := strings.CutPrefix(s, "`")
	if !ok || name == "" || strings.ContainsAny(name, " \t\n`") {
		return s, nil
	}
	value, ok := d.loader.opts.Defines[name]
	if !ok {
		return "", errors.NewLoadError(errors.ErrorUndefinedMacro, pos, "macro '%s' is not defined", name)
	}
	if value == "" {
		value = "1"
	}
	return value, nil
}

func (d *decoder) expandInclude(gn *grammar.Node) ([]ast.Node, error) {
	pos := position(gn.Pos)
	attr := gn.Attr("file")
	if attr == nil || len(gn.Attrs) != 1 {
		return nil, errors.NewLoadError(errors.ErrorInvalidAttribute, pos, "Include takes exactly one attribute, file")
	}
	name, ok, err := d.text(attr.Value, pos)
	if err != nil {
		return nil, err
	}
	if !ok || name == "" {
		return nil, errors.NewLoadError(errors.ErrorInvalidAttribute, position(attr.Pos), "Include.file expects a file name")
	}
	return d.loader.include(d.filename, name, pos)
}

func describe(v *grammar.Value) string {
	switch {
	case v == nil:
		return "nothing"
	case v.IsNone():
		return "None"
	case v.Node != nil:
		return v.Node.Kind
	case v.List != nil:
		return "a list"
	case v.Str != nil:
		return strconv.Quote(*v.Str)
	case v.Int != nil:
		return strconv.FormatInt(*v.Int, 10)
	case v.Ident != nil:
		return *v.Ident
	}
	return "nothing"
}

func typeName(t reflect.Type) string {
	if t == nodeInterface {
		return "a node"
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
