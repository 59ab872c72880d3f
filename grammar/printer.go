package grammar

import (
	"strconv"
	"strings"
)

func indent(level int) string {
	return strings.Repeat("  ", level)
}

func (f *File) String() string {
	var b strings.Builder
	for _, n := range f.Nodes {
		b.WriteString(n.StringWithIndent(0))
		b.WriteString("\n")
	}
	return b.String()
}

// String prints the node on one line.
func (n *Node) String() string {
	var b strings.Builder
	b.WriteString("(" + n.Kind)
	for _, a := range n.Attrs {
		b.WriteString(" " + a.Name + "=" + a.Value.String())
	}
	b.WriteString(")")
	return b.String()
}

// StringWithIndent prints the node with every list of nodes broken over
// indented lines.
func (n *Node) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString("(" + n.Kind)
	for _, a := range n.Attrs {
		b.WriteString(" " + a.Name + "=" + a.Value.StringWithIndent(level))
	}
	b.WriteString(")")
	return b.String()
}

func (v *Value) String() string {
	switch {
	case v == nil:
		return "None"
	case v.Node != nil:
		return v.Node.String()
	case v.List != nil:
		items := make([]string, len(v.List.Items))
		for i, item := range v.List.Items {
			items[i] = item.String()
		}
		return "[" + strings.Join(items, ", ") + "]"
	case v.Str != nil:
		return strconv.Quote(*v.Str)
	case v.Int != nil:
		return strconv.FormatInt(*v.Int, 10)
	case v.Ident != nil:
		return *v.Ident
	}
	return "None"
}

func (v *Value) StringWithIndent(level int) string {
	switch {
	case v == nil:
		return "None"
	case v.Node != nil:
		return v.Node.StringWithIndent(level)
	case v.List != nil && v.List.hasNodes():
		var b strings.Builder
		b.WriteString("[\n")
		for _, item := range v.List.Items {
			b.WriteString(indent(level+1) + item.StringWithIndent(level+1) + "\n")
		}
		b.WriteString(indent(level) + "]")
		return b.String()
	}
	return v.String()
}

func (l *List) hasNodes() bool {
	for _, item := range l.Items {
		if item != nil && item.Node != nil {
			return true
		}
	}
	return false
}
