package resolve

import (
	"strings"

	"github.com/dynalabs/rategraph/log"
	"github.com/dynalabs/rategraph/template"
)

// applyEquations folds a single inheritance level's equation spec onto the
// accumulated equation set. A terminal spec replaces the set outright;
// a rewrite spec applies its replace pairs in declared order, then the
// removals and finally appends new lines. All operations are line-local
// literal substring substitutions; a pattern absent from every line is not
// an error.
func applyEquations(current []string, spec *template.EquationSpec, level string) []string {
	if spec == nil {
		return current
	}

	if spec.IsTerminal() {
		log.Debug3f("Level: '%s' replaces the equation set with %d lines", level, len(spec.Lines))
		return append([]string{}, spec.Lines...)
	}

	out := append([]string{}, current...)
	for _, pair := range spec.Replace {
		for i := range out {
			out[i] = strings.Replace(out[i], pair.Pattern, pair.Replacement, -1)
		}
		log.Debug3f("Level: '%s' replaced pattern: '%s' with: '%s'", level, pair.Pattern, pair.Replacement)
	}
	for _, pattern := range spec.Remove {
		for i := range out {
			out[i] = strings.Replace(out[i], pattern, "", -1)
		}
	}
	out = append(out, spec.Append...)
	return out
}
