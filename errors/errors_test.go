package errors

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynalabs/rategraph/errors/class"
)

// TestNew tests the classified error constructors.
func TestNew(t *testing.T) {
	err := New(class.TemplateNotFound, "template: 'PRO' is not registered")
	require.NotNil(t, err)

	assert.NotEqual(t, uuid.Nil, err.ID)
	assert.Equal(t, class.TemplateNotFound, err.Class())
	assert.Equal(t, "template: 'PRO' is not registered", err.Error())

	t.Run("Formatted", func(t *testing.T) {
		err := Newf(class.GraphPortNotFound, "path: '%s' doesn't resolve", "E/RateOp/r")
		assert.Equal(t, "path: 'E/RateOp/r' doesn't resolve", err.Error())
	})
}

// TestIsClass tests the error classification checks.
func TestIsClass(t *testing.T) {
	err := New(class.TemplateInheritanceCycle, "base chain revisits: 'A'")

	assert.True(t, IsClass(err, class.TemplateInheritanceCycle))
	assert.False(t, IsClass(err, class.TemplateNotFound))

	assert.True(t, IsMajor(err, class.MjrTemplate))
	assert.False(t, IsMajor(err, class.MjrGraph))

	t.Run("Unclassified", func(t *testing.T) {
		assert.False(t, IsClass(assert.AnError, class.TemplateNotFound))
		assert.False(t, IsMajor(assert.AnError, class.MjrTemplate))
	})
}

// TestWrapDetail tests the detail wrapping chain.
func TestWrapDetail(t *testing.T) {
	err := New(class.TemplateNotFound, "template: 'PRO' is not registered")

	err.SetDetail("base of template: 'JRPRO'")
	assert.Equal(t, "base of template: 'JRPRO'", err.Detail)

	err.WrapDetailf("file: '%s'", "jansen_rit.yaml")
	assert.Equal(t, "file: 'jansen_rit.yaml' base of template: 'JRPRO'", err.Detail)
}

// TestMultiError tests the multi error message composition.
func TestMultiError(t *testing.T) {
	multi := MultiError{
		New(class.TemplateNotFound, "first"),
		New(class.TemplateNotFound, "second"),
	}
	assert.Equal(t, "first,second", multi.Error())
}
