package loader

import (
	"reflect"

	"v2sc/grammar"
	"v2sc/internal/ast"
)

// Encode converts a syntax tree back into its tree file form. Zero valued
// attributes are left out, so decoding the result yields an equal tree.
func Encode(n ast.Node) *grammar.Node {
	if ast.IsNil(n) {
		return nil
	}
	out := &grammar.Node{Kind: ast.KindName(n)}

	v := reflect.ValueOf(n).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("vast")
		if tag == "" || tag == "-" {
			continue
		}
		if val := encodeValue(v.Field(i)); val != nil {
			out.Attrs = append(out.Attrs, &grammar.Attr{Name: tag, Value: val})
		}
	}
	return out
}

func encodeValue(f reflect.Value) *grammar.Value {
	switch f.Kind() {
	case reflect.String:
		if s := f.String(); s != "" {
			return &grammar.Value{Str: &s}
		}
	case reflect.Int:
		if i := f.Int(); i != 0 {
			return &grammar.Value{Int: &i}
		}
	case reflect.Bool:
		if f.Bool() {
			word := "true"
			return &grammar.Value{Ident: &word}
		}
	case reflect.Interface, reflect.Ptr:
		if n, ok := f.Interface().(ast.Node); ok && !ast.IsNil(n) {
			return &grammar.Value{Node: Encode(n)}
		}
	case reflect.Slice:
		if f.Len() == 0 {
			return nil
		}
		list := &grammar.List{}
		for j := 0; j < f.Len(); j++ {
			if n, ok := f.Index(j).Interface().(ast.Node); ok && !ast.IsNil(n) {
				list.Items = append(list.Items, &grammar.Value{Node: Encode(n)})
			}
		}
		return &grammar.Value{List: list}
	}
	return nil
}
