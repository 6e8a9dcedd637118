package resolve

import (
	"sort"
)

// builtins are the symbols never treated as free variables: the
// differential notation tokens and the function and constant names the
// numerical backends understand.
var builtins = map[string]struct{}{
	"d": {}, "dt": {},
	"exp": {}, "log": {}, "ln": {}, "sqrt": {}, "pow": {},
	"sin": {}, "cos": {}, "tan": {},
	"sinh": {}, "cosh": {}, "tanh": {},
	"abs": {}, "max": {}, "min": {},
	"pi": {}, "PI": {},
}

// FreeSymbols extracts the sorted set of free symbols referenced by the
// equation lines. Numeric literals (including the exponent notation, e.g.
// '6e-3') and builtin function names are skipped.
func FreeSymbols(lines []string) []string {
	return scanSymbols(lines)
}

func scanSymbols(lines []string) []string {
	set := map[string]struct{}{}
	for _, line := range lines {
		scanLine(line, set)
	}

	symbols := make([]string, 0, len(set))
	for symbol := range set {
		if _, ok := builtins[symbol]; ok {
			continue
		}
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func scanLine(line string, set map[string]struct{}) {
	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case isIdentStart(c):
			j := i + 1
			for j < len(line) && isIdentPart(line[j]) {
				j++
			}
			set[line[i:j]] = struct{}{}
			i = j
		case c >= '0' && c <= '9':
			i = skipNumber(line, i)
		default:
			i++
		}
	}
}

// skipNumber consumes a numeric literal starting at 'i', including the
// decimal point and a scientific exponent part.
func skipNumber(line string, i int) int {
	for i < len(line) && (line[i] >= '0' && line[i] <= '9' || line[i] == '.') {
		i++
	}
	if i < len(line) && (line[i] == 'e' || line[i] == 'E') {
		j := i + 1
		if j < len(line) && (line[j] == '+' || line[j] == '-') {
			j++
		}
		if j < len(line) && line[j] >= '0' && line[j] <= '9' {
			for j < len(line) && line[j] >= '0' && line[j] <= '9' {
				j++
			}
			return j
		}
	}
	return i
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

// assignedSymbols extracts the symbols appearing on the left-hand side of
// the equation lines. Lines without an assignment contribute nothing.
func assignedSymbols(lines []string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, line := range lines {
		idx := assignmentIndex(line)
		if idx < 0 {
			continue
		}
		scanLine(line[:idx], set)
	}
	return set
}

// assignmentIndex finds the position of the assignment '=' in the line,
// skipping the comparison operators '==', '<=', '>=' and '!='.
func assignmentIndex(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != '=' {
			continue
		}
		if i > 0 && (line[i-1] == '<' || line[i-1] == '>' || line[i-1] == '!' || line[i-1] == '=') {
			continue
		}
		if i+1 < len(line) && line[i+1] == '=' {
			i++
			continue
		}
		return i
	}
	return -1
}
