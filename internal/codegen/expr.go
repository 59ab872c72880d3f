package codegen

import (
	"strings"

	"v2sc/internal/ast"
	"v2sc/internal/errors"
	"v2sc/internal/layout"
)

// maxRepeatCopies bounds the replication count that is expanded inline.
const maxRepeatCopies = 4096

func (w *walker) identifier(n *ast.Identifier) (string, error) {
	scope, err := w.visit(n.Scope)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{
		"name":  escape(n.Name),
		"scope": strings.ReplaceAll(scope, ".", "::"),
	})
}

// operator renders a binary operator. The parentheses of an operand are
// elided when the operand binds at least as tightly as n on the left, or
// strictly tighter on the right; mandatory operands keep them.
func (w *walker) operator(n *ast.Operator) (string, error) {
	left, err := w.visit(n.Left)
	if err != nil {
		return "", err
	}
	right, err := w.visit(n.Right)
	if err != nil {
		return "", err
	}

	order := n.Op.Order()
	if lorder, ok := ast.OrderOf(n.Left); ok && !ast.MandatoryParens(n.Left) && lorder <= order {
		left = delParen(left)
	}
	if rorder, ok := ast.OrderOf(n.Right); ok && !ast.MandatoryParens(n.Right) && order > rorder {
		right = delParen(right)
	}

	return w.emit(n, layout.Fields{
		"left":  left,
		"right": right,
		"op":    n.Op.Mark(),
	}, layout.AssetName(n.Op.String(), ""), "operator")
}

// unaryOperator renders a prefix or reduction operator. Reductions render
// as member calls and keep the parentheses of their operand.
func (w *walker) unaryOperator(n *ast.UnaryOperator) (string, error) {
	right, err := w.visit(n.Right)
	if err != nil {
		return "", err
	}

	mark := n.Op.Mark()
	if isPrefixOp(n.Op) {
		if order, ok := ast.OrderOf(n.Right); ok && !ast.MandatoryParens(n.Right) && order <= n.Op.Order() {
			if stripped := delParen(right); !gluesSign(mark, stripped) {
				right = stripped
			}
		}
	}

	return w.emit(n, layout.Fields{
		"right": right,
		"op":    mark,
	}, layout.AssetName(n.Op.String(), ""), "unaryoperator")
}

func isPrefixOp(op ast.OpKind) bool {
	switch op {
	case ast.UPLUS, ast.UMINUS, ast.ULNOT, ast.UNOT:
		return true
	}
	return false
}

// gluesSign reports whether writing mark before operand would form "--"
// or "++".
func gluesSign(mark, operand string) bool {
	if mark != "-" && mark != "+" {
		return false
	}
	return strings.HasPrefix(operand, mark)
}

func (w *walker) cond(n *ast.Cond) (string, error) {
	cond, err := w.visit(n.Cond)
	if err != nil {
		return "", err
	}
	trueValue, err := w.visit(n.TrueValue)
	if err != nil {
		return "", err
	}
	falseValue, err := w.visit(n.FalseValue)
	if err != nil {
		return "", err
	}

	falseValue = delParen(falseValue)
	if _, nested := n.FalseValue.(*ast.Cond); nested {
		falseValue = "\n" + falseValue
	}

	return w.emitKind(n, "", layout.Fields{
		"cond":        delParen(cond),
		"true_value":  delParen(trueValue),
		"false_value": falseValue,
	})
}

func (w *walker) concat(n ast.Node, list []ast.Node) (string, error) {
	items, err := w.visitAll(list)
	if err != nil {
		return "", err
	}
	for i := range items {
		items[i] = delParen(items[i])
	}
	return w.emitKind(n, "", layout.Fields{"items": items})
}

// repeat expands a replication whose count folds to a small constant.
// Other counts are kept as a comment next to the value.
func (w *walker) repeat(n *ast.Repeat) (string, error) {
	value, err := w.visit(n.Value)
	if err != nil {
		return "", err
	}
	times, err := w.visit(n.Times)
	if err != nil {
		return "", err
	}
	value = delParen(value)

	// The count sets the bit width of the result, so it must fold.
	count, err := w.fold(n.Times)
	if err != nil {
		return "", err
	}
	if count < 1 || count > maxRepeatCopies {
		return "", errors.NewRenderError(errors.NonConstantWidthExpression, n,
			"replication count %d is outside 1..%d", count, maxRepeatCopies)
	}
	copies := make([]string, count)
	for i := range copies {
		copies[i] = value
	}

	return w.emitKind(n, "", layout.Fields{
		"value":  value,
		"times":  delParen(times),
		"copies": copies,
	})
}

func (w *walker) partselect(n *ast.Partselect) (string, error) {
	v, err := w.visit(n.Var)
	if err != nil {
		return "", err
	}
	msb, err := w.visit(n.MSB)
	if err != nil {
		return "", err
	}
	lsb, err := w.visit(n.LSB)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{
		"var": v,
		"msb": delSpace(delParen(msb)),
		"lsb": delSpace(delParen(lsb)),
	})
}

func (w *walker) pointer(n *ast.Pointer) (string, error) {
	v, err := w.visit(n.Var)
	if err != nil {
		return "", err
	}
	ptr, err := w.visit(n.Ptr)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"var": v, "ptr": delParen(ptr)})
}

// value renders an Lvalue or Rvalue wrapper.
func (w *walker) value(n, inner ast.Node) (string, error) {
	text, err := w.visit(inner)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"var": delParen(text)})
}

func (w *walker) functionCall(n *ast.FunctionCall) (string, error) {
	name, err := w.visit(n.Name)
	if err != nil {
		return "", err
	}
	args, err := w.argList(n.Args)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"name": name, "args": args})
}

func (w *walker) systemCall(n *ast.SystemCall) (string, error) {
	args, err := w.argList(n.Args)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"syscall": n.Syscall, "args": args})
}

func (w *walker) argList(list []ast.Node) ([]string, error) {
	args, err := w.visitAll(list)
	if err != nil {
		return nil, err
	}
	for i := range args {
		args[i] = delParen(args[i])
	}
	return args, nil
}

func (w *walker) scopeLabel(n *ast.IdentifierScopeLabel) (string, error) {
	loop, err := w.visit(n.Loop)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{"name": escape(n.Name), "loop": delParen(loop)})
}

func (w *walker) scope(n *ast.IdentifierScope) (string, error) {
	labels := make([]string, 0, len(n.LabelList))
	for _, l := range n.LabelList {
		text, err := w.visit(l)
		if err != nil {
			return "", err
		}
		labels = append(labels, text)
	}
	return w.emitKind(n, "", layout.Fields{"labellist": labels})
}
