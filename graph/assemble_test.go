package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynalabs/rategraph/config"
	"github.com/dynalabs/rategraph/errors"
	"github.com/dynalabs/rategraph/errors/class"
	"github.com/dynalabs/rategraph/resolve"
	"github.com/dynalabs/rategraph/template"
)

const wilsonCowanDocument = `
RateOp:
  base: OperatorTemplate
  equations: ["d/dt * r = (m_max*tanh(I_syn) - r) / tau"]
  variables:
    r:
      default: output
    I_syn:
      default: input
    tau:
      default: 1.0
      allowed_range: ">= 0"
    m_max:
      default: 1.0

Pop_rate:
  base: NodeTemplate
  operators:
    - RateOp

WC_simple:
  base: CircuitTemplate
  nodes:
    E: Pop_rate
    I: Pop_rate
  edges:
    - [E/RateOp/r, E/RateOp/I_syn, null, {weight: 16.}]
    - [I/RateOp/r, E/RateOp/I_syn, null, {weight: -12.}]
    - [E/RateOp/r, I/RateOp/I_syn, null, {weight: 15.}]
    - [I/RateOp/r, I/RateOp/I_syn, null, {weight: -3.}]
`

func testAssembler(t *testing.T, cfg *config.Engine, documents ...string) *Assembler {
	t.Helper()

	registry := template.NewRegistry()
	for _, document := range documents {
		require.NoError(t, registry.LoadDocuments([]byte(document)))
	}
	return NewAssembler(resolve.NewResolver(registry), cfg)
}

// TestAssembleCircuit tests the two population circuit assembly shape.
func TestAssembleCircuit(t *testing.T) {
	a := testAssembler(t, nil, wilsonCowanDocument)

	g, err := a.Assemble("WC_simple", nil)
	require.NoError(t, err)
	require.NotNil(t, g)

	assert.Equal(t, "WC_simple", g.Name)
	assert.Len(t, g.Operators(), 2)
	assert.Len(t, g.Connections(), 4)

	t.Run("Instances", func(t *testing.T) {
		e, ok := g.Operator("E", "RateOp")
		require.True(t, ok)
		i, ok := g.Operator("I", "RateOp")
		require.True(t, ok)

		assert.NotEqual(t, e.ID, i.ID)
		assert.Equal(t, []string{"d/dt * r = (m_max*tanh(I_syn) - r) / tau"}, e.Equations)

		// instance variables are copies, not the shared definition
		tau, ok := e.Variable("tau")
		require.True(t, ok)
		assert.Equal(t, 1.0, tau.Value)
		other, ok := i.Variable("tau")
		require.True(t, ok)
		assert.False(t, tau == other)
	})

	t.Run("AdditiveAccumulation", func(t *testing.T) {
		acc, ok := g.Accumulator("E", "RateOp", "I_syn")
		require.True(t, ok)
		require.Len(t, acc.Inbound(), 2)

		weights := []float64{acc.Inbound()[0].Weight, acc.Inbound()[1].Weight}
		assert.Equal(t, []float64{16., -12.}, weights)

		acc, ok = g.Accumulator("I", "RateOp", "I_syn")
		require.True(t, ok)
		assert.Len(t, acc.Inbound(), 2)
	})

	t.Run("Weights", func(t *testing.T) {
		var weights []float64
		for _, conn := range g.Connections() {
			weights = append(weights, conn.Weight)
		}
		assert.Equal(t, []float64{16., -12., 15., -3.}, weights)
	})

	t.Run("Values", func(t *testing.T) {
		values := g.Values()
		require.Contains(t, values, "E/RateOp")
		assert.Equal(t, 1.0, values["E/RateOp"]["tau"])
		assert.Equal(t, 1.0, values["E/RateOp"]["m_max"])
	})
}

// TestAssembleEdgeTemplate tests the operator chain insertion of a
// templated edge.
func TestAssembleEdgeTemplate(t *testing.T) {
	a := testAssembler(t, nil, wilsonCowanDocument, `
LinearCouplingOp:
  base: OperatorTemplate
  equations: ["m_out = c * m_in"]
  variables:
    m_out:
      default: output
    m_in:
      default: input
    c:
      default: 1.

LCEdge:
  base: EdgeTemplate
  operators:
    - LinearCouplingOp

WC_coupled:
  base: CircuitTemplate
  nodes:
    E: Pop_rate
    I: Pop_rate
  edges:
    - [E/RateOp/r, I/RateOp/I_syn, LCEdge, {weight: 15.}]
    - [I/RateOp/r, E/RateOp/I_syn, null, {weight: -12.}]
    - [E/RateOp/r, E/RateOp/I_syn, null, {weight: 16.}]
    - [I/RateOp/r, I/RateOp/I_syn, null, {weight: -3.}]
`)

	g, err := a.Assemble("WC_coupled", nil)
	require.NoError(t, err)

	// two populations plus the inserted coupling operator
	require.Len(t, g.Operators(), 3)
	require.Len(t, g.Connections(), 5)

	coupling, ok := g.Operator("edge_0", "LinearCouplingOp")
	require.True(t, ok)

	acc, ok := g.Accumulator("edge_0", "LinearCouplingOp", "m_in")
	require.True(t, ok)
	require.Len(t, acc.Inbound(), 1)
	assert.Equal(t, Port{Node: "E", Operator: "RateOp", Variable: "r"}, acc.Inbound()[0].Source)
	assert.Equal(t, 1.0, acc.Inbound()[0].Weight)

	acc, ok = g.Accumulator("I", "RateOp", "I_syn")
	require.True(t, ok)
	require.Len(t, acc.Inbound(), 2)
	assert.Equal(t, Port{Node: "edge_0", Operator: coupling.Name, Variable: "m_out"}, acc.Inbound()[0].Source)
	// the declared weight rides on the final hop
	assert.Equal(t, 15.0, acc.Inbound()[0].Weight)
}

// TestAssembleNested tests the nested circuit path prefixing and the
// nesting cycle detection.
func TestAssembleNested(t *testing.T) {
	a := testAssembler(t, nil, wilsonCowanDocument, `
WC_nested:
  base: CircuitTemplate
  nodes:
    Left: WC_simple
    Right: Pop_rate
  edges:
    - [Left/E/RateOp/r, Right/RateOp/I_syn, null, {weight: 2.}]
    - [Right/RateOp/r, Left/I/RateOp/I_syn, null, {weight: 3.}]
`)

	g, err := a.Assemble("WC_nested", nil)
	require.NoError(t, err)

	assert.Len(t, g.Operators(), 3)
	// four nested edges plus the two outer ones
	assert.Len(t, g.Connections(), 6)

	_, ok := g.Operator("Left/E", "RateOp")
	assert.True(t, ok)
	_, ok = g.Operator("Right", "RateOp")
	assert.True(t, ok)

	acc, ok := g.Accumulator("Right", "RateOp", "I_syn")
	require.True(t, ok)
	require.Len(t, acc.Inbound(), 1)
	assert.Equal(t, Port{Node: "Left/E", Operator: "RateOp", Variable: "r"}, acc.Inbound()[0].Source)

	t.Run("Cycle", func(t *testing.T) {
		a := testAssembler(t, nil, wilsonCowanDocument, `
Outer:
  base: CircuitTemplate
  nodes:
    Inner: Inner

Inner:
  base: CircuitTemplate
  nodes:
    Outer: Outer
`)
		_, err := a.Assemble("Outer", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.TemplateInheritanceCycle))
	})
}

// TestAssembleOverrides tests the instance level value overrides.
func TestAssembleOverrides(t *testing.T) {
	a := testAssembler(t, nil, wilsonCowanDocument)

	g, err := a.Assemble("WC_simple", map[string]float64{"E/RateOp/tau": 2.0})
	require.NoError(t, err)

	e, ok := g.Operator("E", "RateOp")
	require.True(t, ok)
	tau, ok := e.Variable("tau")
	require.True(t, ok)
	assert.Equal(t, 2.0, tau.Value)

	// the sibling instance keeps the resolved default
	i, ok := g.Operator("I", "RateOp")
	require.True(t, ok)
	tau, ok = i.Variable("tau")
	require.True(t, ok)
	assert.Equal(t, 1.0, tau.Value)

	t.Run("BadPath", func(t *testing.T) {
		_, err := a.Assemble("WC_simple", map[string]float64{"tau": 2.0})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.GraphOverrideInvalid))
	})

	t.Run("MissingVariable", func(t *testing.T) {
		_, err := a.Assemble("WC_simple", map[string]float64{"E/RateOp/nope": 2.0})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.GraphOverrideInvalid))
	})
}

// TestAssembleErrors tests the port addressing and validation failures.
func TestAssembleErrors(t *testing.T) {
	t.Run("NotACircuit", func(t *testing.T) {
		a := testAssembler(t, nil, wilsonCowanDocument)
		_, err := a.Assemble("Pop_rate", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.GraphNodeInvalid))
	})

	t.Run("UnknownPort", func(t *testing.T) {
		a := testAssembler(t, nil, wilsonCowanDocument, `
BadPortCircuit:
  base: CircuitTemplate
  nodes:
    E: Pop_rate
  edges:
    - [E/RateOp/r, E/MissingOp/I_syn, null, {weight: 1.}]
`)
		_, err := a.Assemble("BadPortCircuit", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.GraphPortNotFound))
	})

	t.Run("RoleMismatch", func(t *testing.T) {
		a := testAssembler(t, nil, wilsonCowanDocument, `
BadRoleCircuit:
  base: CircuitTemplate
  nodes:
    E: Pop_rate
    I: Pop_rate
  edges:
    - [E/RateOp/r, I/RateOp/r, null, {weight: 1.}]
`)
		_, err := a.Assemble("BadRoleCircuit", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.GraphRoleMismatch))
	})

	t.Run("MalformedPath", func(t *testing.T) {
		a := testAssembler(t, nil, wilsonCowanDocument, `
BadPathCircuit:
  base: CircuitTemplate
  nodes:
    E: Pop_rate
  edges:
    - [r, E/RateOp/I_syn, null, {weight: 1.}]
`)
		_, err := a.Assemble("BadPathCircuit", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.GraphPortPath))
	})

	t.Run("DuplicateOperator", func(t *testing.T) {
		a := testAssembler(t, nil, wilsonCowanDocument, `
DupNode:
  base: NodeTemplate
  operators:
    - RateOp
    - RateOp

DupCircuit:
  base: CircuitTemplate
  nodes:
    D: DupNode
`)
		_, err := a.Assemble("DupCircuit", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.GraphNodeInvalid))
		assert.Contains(t, err.Error(), "D/RateOp")
	})
}

// TestAssembleRequiredConstant tests the required constant round trip.
func TestAssembleRequiredConstant(t *testing.T) {
	documents := []string{wilsonCowanDocument, `
GainOp:
  base: OperatorTemplate
  equations: ["out = gain * tanh(inp)"]
  variables:
    out:
      default: output
    inp:
      default: input
    gain:
      default: constant(float)

Gain_node:
  base: NodeTemplate
  operators:
    - GainOp

GainCircuit:
  base: CircuitTemplate
  nodes:
    E: Pop_rate
    G: Gain_node
  edges:
    - [E/RateOp/r, G/GainOp/inp, null, {weight: 1.}]
    - [G/GainOp/out, E/RateOp/I_syn, null, {weight: 1.}]
`}

	t.Run("Unset", func(t *testing.T) {
		a := testAssembler(t, nil, documents...)
		_, err := a.Assemble("GainCircuit", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.VariableValueRequired))
		assert.Contains(t, err.Error(), "gain")
	})

	t.Run("Supplied", func(t *testing.T) {
		a := testAssembler(t, nil, documents...)
		g, err := a.Assemble("GainCircuit", map[string]float64{"G/GainOp/gain": 5.0})
		require.NoError(t, err)

		op, ok := g.Operator("G", "GainOp")
		require.True(t, ok)
		gain, ok := op.Variable("gain")
		require.True(t, ok)
		assert.Equal(t, 5.0, gain.Value)
	})
}

// TestAssembleRangeEnforcement tests the allowed range validation at
// instantiation time.
func TestAssembleRangeEnforcement(t *testing.T) {
	a := testAssembler(t, nil, wilsonCowanDocument)

	_, err := a.Assemble("WC_simple", map[string]float64{"E/RateOp/tau": -1.0})
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, class.VariableValueOutOfRange))
	assert.Contains(t, err.Error(), "tau")
	assert.Contains(t, err.Error(), ">= 0")

	t.Run("Boundary", func(t *testing.T) {
		_, err := a.Assemble("WC_simple", map[string]float64{"E/RateOp/tau": 0.0})
		assert.NoError(t, err)
	})
}

// TestAssembleStrictInputs tests the unconnected input validation.
func TestAssembleStrictInputs(t *testing.T) {
	document := `
LoneOp:
  base: OperatorTemplate
  equations: ["out = tanh(inp)"]
  variables:
    out:
      default: output
    inp:
      default: input

Lone_node:
  base: NodeTemplate
  operators:
    - LoneOp

LoneCircuit:
  base: CircuitTemplate
  nodes:
    L: Lone_node
`

	t.Run("Strict", func(t *testing.T) {
		a := testAssembler(t, nil, document)
		_, err := a.Assemble("LoneCircuit", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.GraphInputUnconnected))
	})

	t.Run("OverrideSatisfies", func(t *testing.T) {
		a := testAssembler(t, nil, document)
		_, err := a.Assemble("LoneCircuit", map[string]float64{"L/LoneOp/inp": 0.5})
		assert.NoError(t, err)
	})

	t.Run("Relaxed", func(t *testing.T) {
		cfg := config.Default()
		cfg.StrictInputs = false
		a := testAssembler(t, cfg, document)
		_, err := a.Assemble("LoneCircuit", nil)
		assert.NoError(t, err)
	})
}
