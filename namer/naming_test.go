package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCanonical tests the canonical snake case conversion.
func TestCanonical(t *testing.T) {
	assert.Equal(t, "v_thr", Canonical("V_thr"))
	assert.Equal(t, "m_out", Canonical("m_out"))
	assert.Equal(t, "i_syn", Canonical("I_syn"))
}

// TestSameVariable tests the synonym variable name matching.
func TestSameVariable(t *testing.T) {
	assert.True(t, SameVariable("V_thr", "v_thr"))
	assert.True(t, SameVariable("I_syn", "i_syn"))
	assert.False(t, SameVariable("V_thr", "V_max"))
}

// TestPluralized tests the count based pluralization.
func TestPluralized(t *testing.T) {
	assert.Equal(t, "template", Pluralized("template", 1))
	assert.Equal(t, "templates", Pluralized("template", 2))
	assert.Equal(t, "templates", Pluralized("template", 0))
}
