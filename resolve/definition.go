package resolve

import (
	"sort"

	"github.com/dynalabs/rategraph/namer"
	"github.com/dynalabs/rategraph/template"
)

// Role classifies an operator variable by its resolved default sentinel.
type Role int

// Variable roles enum.
const (
	// RoleUnset marks a variable without a resolved default.
	RoleUnset Role = iota
	// RoleInput marks a variable supplied externally each evaluation step.
	RoleInput
	// RoleOutput marks the single exported operator value.
	RoleOutput
	// RoleState marks an integrated or algebraic internal state.
	RoleState
	// RoleConstant marks a required parameter without a literal default.
	RoleConstant
	// RoleLiteral marks a concrete overridable default value.
	RoleLiteral
)

// String implements fmt.Stringer interface.
func (r Role) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleOutput:
		return "output"
	case RoleState:
		return "variable"
	case RoleConstant:
		return "constant"
	case RoleLiteral:
		return "literal"
	}
	return "unset"
}

// Variable is the fully merged metadata of a single operator variable.
type Variable struct {
	// Key is the declared variable spelling, stable across synonym entries.
	Key string

	// Alias is the display alias of the variable.
	Alias string

	// Description is the merged free text description.
	Description string

	// Unit is the physical unit of the variable value.
	Unit string

	// Role is the resolved variable role.
	Role Role

	// Value is the literal default, the state initial value or the
	// supplied constant value. Meaningful only when HasValue is set.
	Value float64

	// HasValue reports whether the variable carries a concrete value.
	HasValue bool

	// ConstantType is the declared value type of a required constant.
	ConstantType string

	// AllowedRange is the declared range expression, empty when absent.
	AllowedRange string

	// Range is the parsed range constraint, nil when absent.
	Range *Range
}

// Copy returns a shallow instance copy of the variable. The parsed range
// is shared - it is immutable after resolution.
func (v *Variable) Copy() *Variable {
	c := *v
	return &c
}

// Definition is the fully merged template definition produced by the
// resolver. It is memoized and must be treated as read-only; the assembler
// copies the variables it instantiates.
type Definition struct {
	// Name is the resolved template name.
	Name string

	// Kind is the root kind of the template's base chain.
	Kind template.Kind

	// Description is the inherited free text description.
	Description string

	// Equations is the merged ordered equation set (operators only).
	Equations []string

	// Variables maps the declared variable spellings onto their merged
	// metadata (operators only).
	Variables map[string]*Variable

	// Operators lists the operator template references of a node or an
	// edge definition.
	Operators []string

	// Nodes maps circuit-local node names onto node template references.
	Nodes map[string]string

	// Edges lists the circuit connections in declaration order.
	Edges []*template.EdgeSpec
}

// Variable finds the variable addressed by 'name', matching the declared
// spelling first and the canonical synonym form second.
func (d *Definition) Variable(name string) (*Variable, bool) {
	if v, ok := d.Variables[name]; ok {
		return v, true
	}
	canonical := namer.Canonical(name)
	for key, v := range d.Variables {
		if namer.Canonical(key) == canonical {
			return v, true
		}
	}
	return nil, false
}

// VariableNames returns the sorted declared variable names.
func (d *Definition) VariableNames() []string {
	names := make([]string, 0, len(d.Variables))
	for name := range d.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Output gets the single output variable of an operator definition.
func (d *Definition) Output() *Variable {
	for _, name := range d.VariableNames() {
		if d.Variables[name].Role == RoleOutput {
			return d.Variables[name]
		}
	}
	return nil
}
