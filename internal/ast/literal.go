package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// IntLiteral is the decoded form of an IntConst value.
// Example: 8'shFF -> {Size: 8, Signed: true, Base: 16, Digits: "ff"}
type IntLiteral struct {
	Size   int
	Signed bool
	Base   int
	Digits string
}

// ParseIntLiteral decodes a Verilog integer literal. Underscores are dropped
// and digits are lower-cased; x, z and ? digits are kept.
func ParseIntLiteral(text string) (IntLiteral, error) {
	s := strings.TrimSpace(text)
	tick := strings.IndexByte(s, '\'')
	if tick < 0 {
		digits := strings.ReplaceAll(s, "_", "")
		if digits == "" || strings.Trim(digits, "0123456789") != "" {
			return IntLiteral{}, fmt.Errorf("malformed integer literal %q", text)
		}
		return IntLiteral{Base: 10, Digits: digits, Signed: true}, nil
	}

	lit := IntLiteral{}
	if size := strings.ReplaceAll(strings.TrimSpace(s[:tick]), "_", ""); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil || n <= 0 {
			return IntLiteral{}, fmt.Errorf("malformed literal size in %q", text)
		}
		lit.Size = n
	}

	rest := s[tick+1:]
	if rest != "" && (rest[0] == 's' || rest[0] == 'S') {
		lit.Signed = true
		rest = rest[1:]
	}
	if rest == "" {
		return IntLiteral{}, fmt.Errorf("missing base in %q", text)
	}
	switch rest[0] {
	case 'b', 'B':
		lit.Base = 2
	case 'o', 'O':
		lit.Base = 8
	case 'd', 'D':
		lit.Base = 10
	case 'h', 'H':
		lit.Base = 16
	default:
		return IntLiteral{}, fmt.Errorf("unknown base %q in %q", rest[0], text)
	}

	lit.Digits = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(rest[1:]), "_", ""))
	if lit.Digits == "" {
		return IntLiteral{}, fmt.Errorf("missing digits in %q", text)
	}
	for _, r := range lit.Digits {
		if r == 'x' || r == 'z' || r == '?' {
			continue
		}
		if d := digitValue(r); d < 0 || d >= lit.Base {
			return IntLiteral{}, fmt.Errorf("digit %q out of range for base %d in %q", r, lit.Base, text)
		}
	}
	return lit, nil
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	}
	return -1
}

// HasUnknown reports whether the literal carries x, z or ? digits.
func (l IntLiteral) HasUnknown() bool {
	return strings.ContainsAny(l.Digits, "xz?")
}

// Value returns the numeric value of a fully known literal.
func (l IntLiteral) Value() (int64, error) {
	if l.HasUnknown() {
		return 0, fmt.Errorf("literal has unknown digits %q", l.Digits)
	}
	v, err := strconv.ParseInt(l.Digits, l.Base, 64)
	if err != nil {
		return 0, fmt.Errorf("literal %q does not fit 64 bits", l.Digits)
	}
	return v, nil
}

// KnownDigits returns the digits with every unknown digit replaced by 0.
func (l IntLiteral) KnownDigits() string {
	return strings.Map(func(r rune) rune {
		if r == 'x' || r == 'z' || r == '?' {
			return '0'
		}
		return r
	}, l.Digits)
}
