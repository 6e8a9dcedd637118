package namer

import (
	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
)

// Canonical converts the 'raw' name into its canonical 'snake_case' form.
// Variable entries whose names differ only in this canonical form are
// treated as synonyms of the same variable.
func Canonical(raw string) string {
	return strcase.ToSnake(raw)
}

// SameVariable checks if the two raw variable names address the same
// variable, i.e. if their canonical forms are equal.
func SameVariable(a, b string) bool {
	return Canonical(a) == Canonical(b)
}

// Pluralized returns the 'word' pluralized when 'n' differs from one.
// Used for diagnostics and registry statistics.
func Pluralized(word string, n int) string {
	if n == 1 {
		return word
	}
	return inflection.Plural(word)
}
