package graph

import (
	"sort"

	"github.com/google/uuid"

	"github.com/dynalabs/rategraph/errors"
	"github.com/dynalabs/rategraph/errors/class"
	"github.com/dynalabs/rategraph/resolve"
)

// Port addresses a single operator variable within an assembled circuit:
// the slash-delimited node path, the operator template name and the
// variable name.
type Port struct {
	Node     string
	Operator string
	Variable string
}

// String implements fmt.Stringer interface.
func (p Port) String() string {
	return p.Node + "/" + p.Operator + "/" + p.Variable
}

// OperatorInstance is a single instantiated operator within an assembled
// circuit. Variables are instance copies - overrides never touch the
// memoized definitions.
type OperatorInstance struct {
	// ID is the unique instance identification number.
	ID uuid.UUID

	// Node is the slash-delimited path of the owning node.
	Node string

	// Name is the operator template name.
	Name string

	// Equations is the resolved ordered equation set.
	Equations []string

	// Variables maps the declared variable spellings onto the instance
	// variable copies.
	Variables map[string]*resolve.Variable
}

// Key returns the instance key 'nodePath/operatorName'.
func (op *OperatorInstance) Key() string {
	return op.Node + "/" + op.Name
}

// Variable finds the instance variable addressed by 'name' using the
// declared spelling or its canonical synonym form.
func (op *OperatorInstance) Variable(name string) (*resolve.Variable, bool) {
	if v, ok := op.Variables[name]; ok {
		return v, true
	}
	for _, v := range op.Variables {
		if v.Key != name && sameVariable(v.Key, name) {
			return v, true
		}
	}
	return nil, false
}

// VariableNames returns the sorted declared variable names.
func (op *OperatorInstance) VariableNames() []string {
	names := make([]string, 0, len(op.Variables))
	for name := range op.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Values returns the concrete variable values of the instance - the
// structure a numerical backend initializes its state from.
func (op *OperatorInstance) Values() map[string]float64 {
	values := map[string]float64{}
	for name, v := range op.Variables {
		if v.HasValue {
			values[name] = v.Value
		}
	}
	return values
}

// Connection is a single weighted, directed link between two operator
// variable ports.
type Connection struct {
	// ID is the unique connection identification number.
	ID uuid.UUID

	// Source is the output port the value is read from.
	Source Port

	// Target is the input port the weighted value is delivered to.
	Target Port

	// Weight is the scalar connection weight.
	Weight float64
}

// InputAccumulator aggregates every inbound connection targeting the same
// input port. All contributions accumulate additively with their weights.
type InputAccumulator struct {
	// Target is the accumulated input port.
	Target Port

	inbound []*Connection
}

// Inbound returns the inbound connections in assembly order.
func (a *InputAccumulator) Inbound() []*Connection {
	return a.inbound
}

// CircuitGraph is the immutable result of circuit assembly. Operators and
// connections are keyed by id and port paths, independent of declaration
// order; the graph carries everything a numerical backend needs: the
// variable metadata with roles and initial values, the equation lines and
// the weighted connection list.
type CircuitGraph struct {
	// Name is the assembled circuit template name.
	Name string

	operators    map[string]*OperatorInstance
	connections  []*Connection
	accumulators map[string]*InputAccumulator
}

func newCircuitGraph(name string) *CircuitGraph {
	return &CircuitGraph{
		Name:         name,
		operators:    map[string]*OperatorInstance{},
		accumulators: map[string]*InputAccumulator{},
	}
}

// Operator gets the operator instance owned by the 'node' path under the
// operator template 'name'.
func (g *CircuitGraph) Operator(node, name string) (*OperatorInstance, bool) {
	op, ok := g.operators[node+"/"+name]
	return op, ok
}

// Operators returns all operator instances sorted by their keys.
func (g *CircuitGraph) Operators() []*OperatorInstance {
	keys := make([]string, 0, len(g.operators))
	for key := range g.operators {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	operators := make([]*OperatorInstance, len(keys))
	for i, key := range keys {
		operators[i] = g.operators[key]
	}
	return operators
}

// Connections returns every connection in assembly order.
func (g *CircuitGraph) Connections() []*Connection {
	return g.connections
}

// Accumulator gets the input accumulator of the provided target port.
func (g *CircuitGraph) Accumulator(node, operator, variable string) (*InputAccumulator, bool) {
	acc, ok := g.accumulators[Port{Node: node, Operator: operator, Variable: variable}.String()]
	return acc, ok
}

// Values returns the per-operator concrete value maps keyed by the
// instance keys - the structure handed to the numerical backend.
func (g *CircuitGraph) Values() map[string]map[string]float64 {
	values := map[string]map[string]float64{}
	for key, op := range g.operators {
		values[key] = op.Values()
	}
	return values
}

// addOperator adds the instance under its 'nodePath/operatorName' key.
// A taken key is a fatal assembly error - silently overwriting would leave
// dangling connections onto the replaced instance.
func (g *CircuitGraph) addOperator(op *OperatorInstance) error {
	key := op.Key()
	if _, ok := g.operators[key]; ok {
		return errors.Newf(class.GraphNodeInvalid, "operator instance: '%s' is already assembled", key)
	}
	g.operators[key] = op
	return nil
}

func (g *CircuitGraph) connect(source, target Port, weight float64) *Connection {
	conn := &Connection{ID: uuid.New(), Source: source, Target: target, Weight: weight}
	g.connections = append(g.connections, conn)

	key := target.String()
	acc, ok := g.accumulators[key]
	if !ok {
		acc = &InputAccumulator{Target: target}
		g.accumulators[key] = acc
	}
	acc.inbound = append(acc.inbound, conn)
	return conn
}
