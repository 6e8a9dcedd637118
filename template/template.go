package template

// Root template names. Every base chain must root at one of the four
// primitive kinds.
const (
	RootOperator = "OperatorTemplate"
	RootNode     = "NodeTemplate"
	RootEdge     = "EdgeTemplate"
	RootCircuit  = "CircuitTemplate"
)

// Kind defines the template kind determined by the root of its base chain.
type Kind int

// Template kinds enum.
const (
	KindUnknown Kind = iota
	KindOperator
	KindNode
	KindEdge
	KindCircuit
)

// String implements fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindOperator:
		return RootOperator
	case KindNode:
		return RootNode
	case KindEdge:
		return RootEdge
	case KindCircuit:
		return RootCircuit
	}
	return "UnknownTemplate"
}

// RootKind maps a root template name onto its kind. Returns KindUnknown
// for any non-root name.
func RootKind(name string) Kind {
	switch name {
	case RootOperator:
		return KindOperator
	case RootNode:
		return KindNode
	case RootEdge:
		return KindEdge
	case RootCircuit:
		return KindCircuit
	}
	return KindUnknown
}

// Template is the static definition of an operator, node, edge or circuit.
// Templates are immutable after registration; the resolver merges a
// template with its base chain on demand.
type Template struct {
	// Name is the unique template identifier.
	Name string `validate:"required"`

	// Base references the parent template, or one of the four root kinds.
	Base string `validate:"required"`

	// Description is a free text description, inherited when absent.
	Description string

	// Equations is the operator equation payload - either a terminal list
	// of equation lines or a rewrite rule applied to the inherited set.
	Equations *EquationSpec

	// Variables maps operator variable names to their metadata. Entries
	// overlay the inherited mapping field-by-field.
	Variables map[string]*VariableSpec

	// Operators lists the operator template references bundled by a node
	// or an edge template.
	Operators []string

	// Nodes maps circuit-local instance names to node template references.
	Nodes map[string]string

	// Edges lists the circuit connections in declaration order.
	Edges []*EdgeSpec
}

// EquationSpec carries either a terminal equation list or a rewrite rule.
// A terminal list replaces the inherited set outright; the rewrite fields
// transform it in replace, remove, append order.
type EquationSpec struct {
	Lines   []string
	Replace []ReplacePair
	Remove  []string
	Append  []string
}

// IsTerminal checks if the spec replaces the inherited equation set.
func (e *EquationSpec) IsTerminal() bool {
	return len(e.Lines) > 0
}

// ReplacePair is a single ordered literal substitution. Pair order is
// significant: later pairs see the result of earlier ones.
type ReplacePair struct {
	Pattern     string
	Replacement string
}

// VariableSpec is the raw per-level variable metadata as declared in a
// template document.
type VariableSpec struct {
	// Name is the display alias of the variable.
	Name string

	// Description is a free text description.
	Description string

	// Unit is the physical unit of the variable value.
	Unit string

	// Default carries the declared default - a float64 literal or a string
	// role sentinel ('input', 'output', 'variable', 'variable(<literal>)',
	// 'constant(<type>)'). Nil when the entry doesn't declare one.
	Default interface{}

	// HasDefault reports whether the entry declares a default at all.
	HasDefault bool

	// AllowedRange is the comparison expression checked against the
	// resolved value at instantiation time, e.g. ">= 0".
	AllowedRange string
}

// EdgeSpec is a single circuit connection entry: source and target port
// paths, an optional edge template reference and the edge parameters.
type EdgeSpec struct {
	// Source is the slash-delimited 'node/operator/variable' address of
	// the source output port.
	Source string `validate:"required"`

	// Target is the slash-delimited address of the target input port.
	Target string `validate:"required"`

	// Template references the edge template transforming the transported
	// value. Empty for a direct weighted connection.
	Template string

	// Params carry the edge parameters, at minimum the 'weight' scalar.
	Params map[string]interface{}
}

// Weight gets the edge weight parameter, falling back to 'def' when the
// entry doesn't carry one.
func (e *EdgeSpec) Weight(def float64) float64 {
	v, ok := e.Params["weight"]
	if !ok {
		return def
	}
	switch w := v.(type) {
	case float64:
		return w
	case int:
		return float64(w)
	}
	return def
}
