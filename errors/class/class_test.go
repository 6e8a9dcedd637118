package class

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassComposition tests the major, minor and index composition of the
// registered classes.
func TestClassComposition(t *testing.T) {
	t.Run("Major", func(t *testing.T) {
		assert.True(t, TemplateNotFound.IsMajor(MjrTemplate))
		assert.False(t, TemplateNotFound.IsMajor(MjrGraph))
		assert.Equal(t, MjrTemplate, TemplateNotFound.Major())
	})

	t.Run("Minor", func(t *testing.T) {
		assert.Equal(t, MnrTemplateRegistry, TemplateNotFound.Minor())
		assert.Equal(t, MnrTemplateRegistry, TemplateAlreadyRegistered.Minor())
		assert.NotEqual(t, TemplateNotFound, TemplateAlreadyRegistered)
	})

	t.Run("Distinct", func(t *testing.T) {
		classes := []Class{
			TemplateNotFound, TemplateAlreadyRegistered,
			TemplateDocumentInvalid, TemplateDocumentRead,
			TemplateInheritanceCycle, TemplateInheritanceKind,
			VariableDefaultConflict, VariableDefaultInvalid,
			VariableNotDeclared, VariableOutputCount, VariableOutputUnassigned,
			VariableValueRequired, VariableValueOutOfRange, VariableRangeInvalid,
			GraphPortNotFound, GraphPortPath, GraphRoleMismatch,
			GraphInputUnconnected, GraphNodeInvalid, GraphOverrideInvalid,
			ConfigValueInvalid, InternalCommon,
		}
		seen := map[Class]struct{}{}
		for _, c := range classes {
			_, ok := seen[c]
			assert.False(t, ok, "class: '%s' registered twice", c)
			seen[c] = struct{}{}
		}
	})
}

// TestRegisterMinorClass tests the runtime minor class registration.
func TestRegisterMinorClass(t *testing.T) {
	major, err := RegisterMajor("TestingMajor", "testing purpose major")
	require.NoError(t, err)

	minor, err := major.RegisterMinor("TestingMinor", "testing purpose minor")
	require.NoError(t, err)

	c := minor.Class()
	assert.True(t, c.IsMajor(major))
	assert.Equal(t, minor, c.Minor())
}
