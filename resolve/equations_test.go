package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dynalabs/rategraph/template"
)

// TestApplyEquations tests the equation set folding of a single
// inheritance level.
func TestApplyEquations(t *testing.T) {
	base := []string{"m_out = m_max / (1. + exp(r*V))"}

	t.Run("Nil", func(t *testing.T) {
		assert.Equal(t, base, applyEquations(base, nil, "level"))
	})

	t.Run("Terminal", func(t *testing.T) {
		spec := &template.EquationSpec{Lines: []string{"r = tanh(I_syn)"}}
		out := applyEquations(base, spec, "level")
		assert.Equal(t, []string{"r = tanh(I_syn)"}, out)
		// the inherited set stays untouched
		assert.Equal(t, []string{"m_out = m_max / (1. + exp(r*V))"}, base)
	})

	t.Run("ReplaceOrdered", func(t *testing.T) {
		spec := &template.EquationSpec{Replace: []template.ReplacePair{
			{Pattern: "A", Replacement: "B"},
			{Pattern: "B", Replacement: "C"},
		}}
		out := applyEquations([]string{"A"}, spec, "level")
		assert.Equal(t, []string{"C"}, out)
	})

	t.Run("ReplaceAbsentPattern", func(t *testing.T) {
		spec := &template.EquationSpec{Replace: []template.ReplacePair{
			{Pattern: "missing", Replacement: "anything"},
		}}
		assert.Equal(t, base, applyEquations(base, spec, "level"))
	})

	t.Run("RemoveAndAppend", func(t *testing.T) {
		spec := &template.EquationSpec{
			Remove: []string{" / (1. + exp(r*V))"},
			Append: []string{"d/dt * V = -V / tau"},
		}
		out := applyEquations(base, spec, "level")
		assert.Equal(t, []string{"m_out = m_max", "d/dt * V = -V / tau"}, out)
	})
}

// TestFreeSymbols tests the free symbol extraction from equation lines.
func TestFreeSymbols(t *testing.T) {
	t.Run("Builtins", func(t *testing.T) {
		symbols := FreeSymbols([]string{"d/dt * V = h/tau * m_in - 2./tau * V"})
		assert.Equal(t, []string{"V", "h", "m_in", "tau"}, symbols)
	})

	t.Run("ScientificNotation", func(t *testing.T) {
		symbols := FreeSymbols([]string{"m_out = 6e-3 * V + 1.5E+2"})
		assert.Equal(t, []string{"V", "m_out"}, symbols)
	})

	t.Run("Functions", func(t *testing.T) {
		symbols := FreeSymbols([]string{"r = m_max*tanh(I_syn)"})
		assert.Equal(t, []string{"I_syn", "m_max", "r"}, symbols)
	})
}

// TestAssignedSymbols tests the left-hand side symbol extraction.
func TestAssignedSymbols(t *testing.T) {
	assigned := assignedSymbols([]string{
		"d/dt * V = V_t",
		"m_out = m_max",
	})
	assert.Contains(t, assigned, "V")
	assert.Contains(t, assigned, "m_out")
	assert.NotContains(t, assigned, "V_t")
	assert.NotContains(t, assigned, "m_max")

	t.Run("Comparisons", func(t *testing.T) {
		assigned := assignedSymbols([]string{"x == y", "a <= b", "c != d"})
		assert.Empty(t, assigned)
	})
}
