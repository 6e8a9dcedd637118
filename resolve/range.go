package resolve

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a parsed allowed-range constraint. The corpus mostly declares
// single comparisons with an implicit operand (e.g. ">= 0"), but compound
// double-bound forms (e.g. "0 <= x <= 1") are accepted as well.
type Range struct {
	expr   string
	checks []rangeCheck
}

// rangeCheck is a single comparison against a literal bound. When flipped
// the bound is the left operand, i.e. 'bound op value'.
type rangeCheck struct {
	op      string
	bound   float64
	flipped bool
}

// ParseRange parses an allowed-range comparison expression.
func ParseRange(expr string) (*Range, error) {
	tokens, err := tokenizeRange(expr)
	if err != nil {
		return nil, err
	}

	r := &Range{expr: strings.TrimSpace(expr)}
	switch len(tokens) {
	case 2:
		// implicit operand: '>= 0'
		if tokens[0].kind != tokOp || tokens[1].kind != tokNum {
			return nil, fmt.Errorf("invalid range expression: '%s'", expr)
		}
		r.checks = append(r.checks, rangeCheck{op: tokens[0].text, bound: tokens[1].num})
	case 3:
		// named operand: 'x >= 0' or '0 <= x'
		switch {
		case tokens[0].kind == tokIdent && tokens[1].kind == tokOp && tokens[2].kind == tokNum:
			r.checks = append(r.checks, rangeCheck{op: tokens[1].text, bound: tokens[2].num})
		case tokens[0].kind == tokNum && tokens[1].kind == tokOp && tokens[2].kind == tokIdent:
			r.checks = append(r.checks, rangeCheck{op: tokens[1].text, bound: tokens[0].num, flipped: true})
		default:
			return nil, fmt.Errorf("invalid range expression: '%s'", expr)
		}
	case 5:
		// double bound: '0 <= x <= 1'
		if tokens[0].kind != tokNum || tokens[1].kind != tokOp || tokens[2].kind != tokIdent ||
			tokens[3].kind != tokOp || tokens[4].kind != tokNum {
			return nil, fmt.Errorf("invalid range expression: '%s'", expr)
		}
		r.checks = append(r.checks,
			rangeCheck{op: tokens[1].text, bound: tokens[0].num, flipped: true},
			rangeCheck{op: tokens[3].text, bound: tokens[4].num},
		)
	default:
		return nil, fmt.Errorf("invalid range expression: '%s'", expr)
	}
	return r, nil
}

// Contains checks if the value 'v' satisfies every comparison of the range.
func (r *Range) Contains(v float64) bool {
	for _, check := range r.checks {
		a, b := v, check.bound
		if check.flipped {
			a, b = b, a
		}
		if !compare(a, check.op, b) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer interface.
func (r *Range) String() string {
	return r.expr
}

func compare(a float64, op string, b float64) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	case "==":
		return a == b
	case "!=":
		return a != b
	}
	return false
}

type tokenKind int

const (
	tokOp tokenKind = iota
	tokNum
	tokIdent
)

type rangeToken struct {
	kind tokenKind
	text string
	num  float64
}

func tokenizeRange(expr string) ([]rangeToken, error) {
	var tokens []rangeToken
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '<' || c == '>' || c == '=' || c == '!':
			j := i + 1
			if j < len(expr) && expr[j] == '=' {
				j++
			}
			op := expr[i:j]
			if op == "=" || op == "!" {
				return nil, fmt.Errorf("invalid comparison operator in range expression: '%s'", expr)
			}
			tokens = append(tokens, rangeToken{kind: tokOp, text: op})
			i = j
		case c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+':
			j := i + 1
			for j < len(expr) && (expr[j] >= '0' && expr[j] <= '9' || expr[j] == '.' ||
				expr[j] == 'e' || expr[j] == 'E' ||
				((expr[j] == '-' || expr[j] == '+') && (expr[j-1] == 'e' || expr[j-1] == 'E'))) {
				j++
			}
			num, err := strconv.ParseFloat(expr[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number in range expression: '%s'", expr)
			}
			tokens = append(tokens, rangeToken{kind: tokNum, num: num})
			i = j
		case isIdentStart(c):
			j := i + 1
			for j < len(expr) && isIdentPart(expr[j]) {
				j++
			}
			tokens = append(tokens, rangeToken{kind: tokIdent, text: expr[i:j]})
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q in range expression: '%s'", c, expr)
		}
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty range expression")
	}
	return tokens, nil
}
