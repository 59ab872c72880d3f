package layout

import (
	"strconv"
	"strings"
	"text/template"

	"v2sc/internal/ast"
)

var funcMap = template.FuncMap{
	"join":      strings.Join,
	"hasPrefix": strings.HasPrefix,
	"indent":    Indent,
	"cint":      CInt,
	"ctype":     CType,
	"ptype":     ParamType,
	"wrap":      Wrap,
}

// Indent prefixes every non-blank line of text.
func Indent(prefix, text string) string {
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			b.WriteString(prefix)
		}
		b.WriteString(line)
	}
	return b.String()
}

// CInt spells a Verilog integer literal as a C++ literal. Literals wider
// than 64 bits become sc_biguint string constructors; unknown digits are
// read as zero and the original spelling is kept in a comment.
func CInt(value string) string {
	lit, err := ast.ParseIntLiteral(value)
	if err != nil {
		return value
	}

	digits := lit.KnownDigits()
	var text string
	switch lit.Base {
	case 2:
		text = "0b" + digits
	case 8:
		text = "0" + strings.TrimLeft(digits, "0")
	case 16:
		text = "0x" + strings.ToUpper(digits)
	default:
		text = strings.TrimLeft(digits, "0")
		if text == "" {
			text = "0"
		}
	}

	if lit.Size > 64 {
		prefix := "0x"
		switch lit.Base {
		case 2:
			prefix = "0b"
		case 8:
			prefix = "0o"
		case 10:
			prefix = ""
		}
		text = "sc_biguint<" + strconv.Itoa(lit.Size) + ">(\"" + prefix + strings.ToUpper(digits) + "\")"
	}
	if lit.HasUnknown() {
		text += " /* " + value + " */"
	}
	return text
}

// CType is the SystemC value type of a width. A narrow unsigned single bit
// is bool, widths of 64 and above use the arbitrary precision types.
func CType(width string, big, signed bool) string {
	switch {
	case width == "":
		return "int"
	case width == "1" && !signed:
		return "bool"
	case big && signed:
		return "sc_bigint<" + width + ">"
	case big:
		return "sc_biguint<" + width + ">"
	case signed:
		return "sc_int<" + width + ">"
	default:
		return "sc_uint<" + width + ">"
	}
}

// ParamType is the C++ type of a static constant holding value.
func ParamType(width string, big, signed bool, value string) string {
	if strings.HasPrefix(value, "\"") {
		return "char* const"
	}
	if width == "" {
		return "int"
	}
	n, err := strconv.Atoi(width)
	switch {
	case err != nil:
		return "int"
	case big || n > 32:
		if signed {
			return "sc_dt::int64"
		}
		return "sc_dt::uint64"
	case signed:
		return "int"
	default:
		return "unsigned"
	}
}

// Wrap instantiates a template class, keeping the space C++03 needs
// between closing angle brackets.
func Wrap(class, arg string) string {
	if strings.HasSuffix(arg, ">") {
		return class + "<" + arg + " >"
	}
	return class + "<" + arg + ">"
}
