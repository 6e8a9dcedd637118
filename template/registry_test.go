package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynalabs/rategraph/errors"
	"github.com/dynalabs/rategraph/errors/class"
)

// TestRegistryRegister tests template registration and its failure modes.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(&Template{Name: "PRO", Base: RootOperator}))
	assert.True(t, r.Has("PRO"))
	assert.Equal(t, 1, r.Len())

	t.Run("Duplicate", func(t *testing.T) {
		err := r.Register(&Template{Name: "PRO", Base: RootOperator})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.TemplateAlreadyRegistered))
	})

	t.Run("NoName", func(t *testing.T) {
		err := r.Register(&Template{Base: RootOperator})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.TemplateDocumentInvalid))
	})

	t.Run("ReservedName", func(t *testing.T) {
		err := r.Register(&Template{Name: RootOperator, Base: RootOperator})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.TemplateDocumentInvalid))
	})

	t.Run("NoBase", func(t *testing.T) {
		err := r.Register(&Template{Name: "Baseless"})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.TemplateDocumentInvalid))
	})
}

// TestRegistryLookup tests the registered template lookups.
func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Template{Name: "PRO", Base: RootOperator}))

	tpl, err := r.Lookup("PRO")
	require.NoError(t, err)
	assert.Equal(t, "PRO", tpl.Name)

	t.Run("NotFound", func(t *testing.T) {
		_, err := r.Lookup("Missing")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.TemplateNotFound))
	})
}

// TestRegistryNames tests the sorted name listing and the reset.
func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Template{Name: "Zeta", Base: RootOperator}))
	require.NoError(t, r.Register(&Template{Name: "Alpha", Base: RootNode}))

	assert.Equal(t, []string{"Alpha", "Zeta"}, r.Names())

	r.Reset()
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Has("Alpha"))
}

// TestRegistryKindOf tests the base chain kind determination.
func TestRegistryKindOf(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Template{Name: "PRO", Base: RootOperator}))
	require.NoError(t, r.Register(&Template{Name: "JRPRO", Base: "PRO"}))
	require.NoError(t, r.Register(&Template{Name: "JRC", Base: RootCircuit}))

	kind, err := r.KindOf("JRPRO")
	require.NoError(t, err)
	assert.Equal(t, KindOperator, kind)

	kind, err = r.KindOf("JRC")
	require.NoError(t, err)
	assert.Equal(t, KindCircuit, kind)

	t.Run("Root", func(t *testing.T) {
		kind, err := r.KindOf(RootNode)
		require.NoError(t, err)
		assert.Equal(t, KindNode, kind)
	})

	t.Run("Cycle", func(t *testing.T) {
		require.NoError(t, r.Register(&Template{Name: "Loop_A", Base: "Loop_B"}))
		require.NoError(t, r.Register(&Template{Name: "Loop_B", Base: "Loop_A"}))

		_, err := r.KindOf("Loop_A")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.TemplateInheritanceCycle))
	})
}
