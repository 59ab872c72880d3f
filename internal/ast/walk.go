package ast

import "reflect"

var nodeInterface = reflect.TypeOf((*Node)(nil)).Elem()

// IsNil reports whether n is nil or a typed nil pointer.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Children returns the direct child nodes of n in field order.
func Children(n Node) []Node {
	if IsNil(n) {
		return nil
	}
	v := reflect.ValueOf(n).Elem()
	if v.Kind() != reflect.Struct {
		return nil
	}

	var out []Node
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.Slice {
			for j := 0; j < f.Len(); j++ {
				out = appendChild(out, f.Index(j))
			}
			continue
		}
		out = appendChild(out, f)
	}
	return out
}

func appendChild(out []Node, v reflect.Value) []Node {
	if !v.Type().Implements(nodeInterface) {
		return out
	}
	if (v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr) && v.IsNil() {
		return out
	}
	n, ok := v.Interface().(Node)
	if !ok || IsNil(n) {
		return out
	}
	return append(out, n)
}

// Inspect traverses the tree depth first in field order. The children of a
// node are skipped when f returns false for it.
func Inspect(n Node, f func(Node) bool) {
	if IsNil(n) || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}
