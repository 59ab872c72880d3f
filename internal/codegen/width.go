package codegen

import (
	"math"
	"strconv"

	"v2sc/internal/ast"
	"v2sc/internal/errors"
	"v2sc/internal/layout"
)

// wideThreshold is the first width that needs the arbitrary precision
// SystemC types.
const wideThreshold = 64

// withConstants returns a walker that sees the parameters and local
// parameters declared by decls, in addition to the constants already in
// scope.
func (w *walker) withConstants(decls ...[]ast.Node) *walker {
	consts := make(map[string]ast.Node, len(w.consts))
	for k, v := range w.consts {
		consts[k] = v
	}
	for _, list := range decls {
		for _, item := range list {
			d, ok := item.(*ast.Decl)
			if !ok {
				continue
			}
			for _, c := range d.List {
				switch p := c.(type) {
				case *ast.Parameter:
					if p.Value != nil {
						consts[p.Name] = p.Value
					}
				case *ast.Localparam:
					if p.Value != nil {
						consts[p.Name] = p.Value
					}
				}
			}
		}
	}
	child := w.fork()
	child.consts = consts
	return child
}

// isConstant reports whether name is a parameter visible to folding.
func (w *walker) isConstant(name string) bool {
	_, ok := w.consts[name]
	return ok
}

// fold reduces a width expression to an integer. Literals, parameters
// (resolved recursively), arithmetic, shifts, bitwise operators and the
// conditional operator are supported.
func (w *walker) fold(n ast.Node) (int64, error) {
	return w.foldIn(n, map[string]bool{})
}

func (w *walker) foldIn(n ast.Node, resolving map[string]bool) (int64, error) {
	notConstant := func(format string, args ...interface{}) (int64, error) {
		return 0, errors.NewRenderError(errors.NonConstantWidthExpression, n, format, args...)
	}

	switch n := n.(type) {
	case *ast.IntConst:
		lit, err := ast.ParseIntLiteral(n.Value)
		if err != nil {
			return notConstant("%v", err)
		}
		v, err := lit.Value()
		if err != nil {
			return notConstant("%v", err)
		}
		return v, nil

	case *ast.Rvalue:
		return w.foldIn(n.Var, resolving)

	case *ast.Identifier:
		if n.Scope != nil {
			return notConstant("hierarchical reference %s", n.Name)
		}
		value, ok := w.consts[n.Name]
		if !ok {
			return notConstant("identifier %s is not a constant", n.Name)
		}
		if resolving[n.Name] {
			return notConstant("parameter %s depends on itself", n.Name)
		}
		resolving[n.Name] = true
		defer delete(resolving, n.Name)
		return w.foldIn(value, resolving)

	case *ast.UnaryOperator:
		v, err := w.foldIn(n.Right, resolving)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case ast.UPLUS:
			return v, nil
		case ast.UMINUS:
			if v == math.MinInt64 {
				return notConstant("-(%d) overflows 64 bits", v)
			}
			return -v, nil
		case ast.UNOT:
			return ^v, nil
		case ast.ULNOT:
			return boolInt(v == 0), nil
		}
		return notConstant("operator %s", n.Op.Mark())

	case *ast.Operator:
		l, err := w.foldIn(n.Left, resolving)
		if err != nil {
			return 0, err
		}
		r, err := w.foldIn(n.Right, resolving)
		if err != nil {
			return 0, err
		}
		return w.foldOp(n, l, r)

	case *ast.Cond:
		c, err := w.foldIn(n.Cond, resolving)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return w.foldIn(n.TrueValue, resolving)
		}
		return w.foldIn(n.FalseValue, resolving)
	}

	if ast.IsNil(n) {
		return 0, errors.NewRenderError(errors.NonConstantWidthExpression, nil, "missing bound")
	}
	return notConstant("%s is not a constant expression", ast.KindName(n))
}

func (w *walker) foldOp(n *ast.Operator, l, r int64) (int64, error) {
	overflow := func() (int64, error) {
		return 0, errors.NewRenderError(errors.NonConstantWidthExpression, n,
			"%d %s %d overflows 64 bits", l, n.Op.Mark(), r)
	}

	switch n.Op {
	case ast.PLUS:
		v, ok := addInt64(l, r)
		if !ok {
			return overflow()
		}
		return v, nil
	case ast.MINUS:
		v, ok := subInt64(l, r)
		if !ok {
			return overflow()
		}
		return v, nil
	case ast.TIMES:
		v, ok := mulInt64(l, r)
		if !ok {
			return overflow()
		}
		return v, nil
	case ast.DIVIDE, ast.MOD:
		if r == 0 {
			return 0, errors.NewRenderError(errors.NonConstantWidthExpression, n, "division by zero")
		}
		if l == math.MinInt64 && r == -1 {
			return overflow()
		}
		if n.Op == ast.DIVIDE {
			return l / r, nil
		}
		return l % r, nil
	case ast.POWER:
		if r < 0 {
			return 0, errors.NewRenderError(errors.NonConstantWidthExpression, n, "negative exponent %d", r)
		}
		v, ok := powInt64(l, r)
		if !ok {
			return overflow()
		}
		return v, nil
	case ast.SLL, ast.SLA, ast.SRL, ast.SRA:
		if r < 0 || r > 63 {
			return 0, errors.NewRenderError(errors.NonConstantWidthExpression, n, "shift count %d is out of range", r)
		}
		if n.Op == ast.SRL || n.Op == ast.SRA {
			return l >> uint(r), nil
		}
		v := l << uint(r)
		if v>>uint(r) != l {
			return overflow()
		}
		return v, nil
	case ast.AND:
		return l & r, nil
	case ast.OR:
		return l | r, nil
	case ast.XOR:
		return l ^ r, nil
	case ast.LESS_THAN:
		return boolInt(l < r), nil
	case ast.GREATER_THAN:
		return boolInt(l > r), nil
	case ast.LESS_EQ:
		return boolInt(l <= r), nil
	case ast.GREATER_EQ:
		return boolInt(l >= r), nil
	case ast.EQ, ast.EQL:
		return boolInt(l == r), nil
	case ast.NOT_EQ, ast.NOT_EQL:
		return boolInt(l != r), nil
	}
	return 0, errors.NewRenderError(errors.NonConstantWidthExpression, n, "operator %s", n.Op.Mark())
}

func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

func subInt64(a, b int64) (int64, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}
	return d, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// powInt64 raises base to a non-negative exponent by squaring.
func powInt64(base, exp int64) (int64, bool) {
	result := int64(1)
	for {
		if exp&1 == 1 {
			var ok bool
			if result, ok = mulInt64(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp == 0 {
			return result, true
		}
		var ok bool
		if base, ok = mulInt64(base, base); !ok {
			return 0, false
		}
	}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// resolveWidth folds a packed range to its bit count, msb - lsb + 1. An
// absent range is a single bit.
func (w *walker) resolveWidth(r *ast.Width) (int64, error) {
	if r == nil {
		return 1, nil
	}
	msb, err := w.fold(r.MSB)
	if err != nil {
		return 0, err
	}
	lsb, err := w.fold(r.LSB)
	if err != nil {
		return 0, err
	}
	width, ok := subInt64(msb, lsb)
	if ok {
		width, ok = addInt64(width, 1)
	}
	if !ok {
		return 0, errors.NewRenderError(errors.NonConstantWidthExpression, r, "[%d:%d] overflows 64 bits", msb, lsb)
	}
	if width < 0 {
		return 0, errors.NewRenderError(errors.NegativeWidth, r, "[%d:%d] gives %d bits", msb, lsb, width)
	}
	log.Debugf("resolved width [%d:%d] = %d", msb, lsb, width)
	return width, nil
}

// resolveLength folds an unpacked range to its element count. Ascending
// and descending ranges are both accepted.
func (w *walker) resolveLength(r *ast.Length) (int64, error) {
	msb, err := w.fold(r.MSB)
	if err != nil {
		return 0, err
	}
	lsb, err := w.fold(r.LSB)
	if err != nil {
		return 0, err
	}
	if msb < lsb {
		msb, lsb = lsb, msb
	}
	count, ok := subInt64(msb, lsb)
	if ok {
		count, ok = addInt64(count, 1)
	}
	if !ok {
		return 0, errors.NewRenderError(errors.NonConstantWidthExpression, r, "[%d:%d] overflows 64 bits", msb, lsb)
	}
	return count, nil
}

// widthFields resolves a declaration range into the width text and the
// wide flag used by the declaration assets.
func (w *walker) widthFields(r *ast.Width) (string, bool, error) {
	width, err := w.resolveWidth(r)
	if err != nil {
		return "", false, err
	}
	return strconv.FormatInt(width, 10), width >= wideThreshold, nil
}

func (w *walker) width(n *ast.Width) (string, error) {
	width, err := w.resolveWidth(n)
	if err != nil {
		return "", err
	}
	return w.emitRange(n, n.MSB, n.LSB, width)
}

func (w *walker) length(n *ast.Length) (string, error) {
	width, err := w.resolveLength(n)
	if err != nil {
		return "", err
	}
	return w.emitRange(n, n.MSB, n.LSB, width)
}

func (w *walker) emitRange(n, msbNode, lsbNode ast.Node, width int64) (string, error) {
	msb, err := w.visit(msbNode)
	if err != nil {
		return "", err
	}
	lsb, err := w.visit(lsbNode)
	if err != nil {
		return "", err
	}
	return w.emitKind(n, "", layout.Fields{
		"msb":   delParen(msb),
		"lsb":   delParen(lsb),
		"width": strconv.FormatInt(width, 10),
	})
}
