package graph

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/dynalabs/rategraph/config"
	"github.com/dynalabs/rategraph/errors"
	"github.com/dynalabs/rategraph/errors/class"
	"github.com/dynalabs/rategraph/log"
	"github.com/dynalabs/rategraph/namer"
	"github.com/dynalabs/rategraph/resolve"
	"github.com/dynalabs/rategraph/template"
)

// Assembler instantiates resolved circuit templates into immutable
// CircuitGraph values ready for a numerical backend.
type Assembler struct {
	resolver      *resolve.Resolver
	strictInputs  bool
	defaultWeight float64
}

// NewAssembler creates a new assembler over the 'resolver' configured
// with 'cfg'. A nil config falls back to the defaults.
func NewAssembler(resolver *resolve.Resolver, cfg *config.Engine) *Assembler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Assembler{
		resolver:      resolver,
		strictInputs:  cfg.StrictInputs,
		defaultWeight: cfg.DefaultWeight,
	}
}

// Assemble instantiates the circuit template 'name' applying the
// instance-level 'overrides' keyed by 'node/operator/variable' paths.
// The assembly fails fast - no partially wired graph is ever returned.
func (a *Assembler) Assemble(name string, overrides map[string]float64) (*CircuitGraph, error) {
	def, err := a.resolver.Resolve(name)
	if err != nil {
		return nil, err
	}
	if def.Kind != template.KindCircuit {
		return nil, errors.Newf(class.GraphNodeInvalid, "template: '%s' resolves to: '%s', expected a circuit", name, def.Kind)
	}

	g := newCircuitGraph(name)
	ancestors := map[string]struct{}{name: {}}
	if err = a.addCircuit(g, def, "", ancestors); err != nil {
		return nil, err
	}
	if err = a.applyOverrides(g, overrides); err != nil {
		return nil, err
	}
	if err = a.validate(g); err != nil {
		return nil, err
	}
	log.Debugf("Assembled circuit: '%s' with %d operators and %d connections", name, len(g.operators), len(g.connections))
	return g, nil
}

// addCircuit instantiates a circuit level: its nodes first (nested
// circuits recursively with prefixed paths), then its edge entries.
func (a *Assembler) addCircuit(g *CircuitGraph, def *resolve.Definition, prefix string, ancestors map[string]struct{}) error {
	locals := make([]string, 0, len(def.Nodes))
	for local := range def.Nodes {
		locals = append(locals, local)
	}
	sort.Strings(locals)

	for _, local := range locals {
		ref := def.Nodes[local]
		nodeDef, err := a.resolver.Resolve(ref)
		if err != nil {
			if classed, ok := err.(*errors.Error); ok {
				classed.WrapDetailf("node: '%s' of circuit: '%s'", local, def.Name)
			}
			return err
		}

		nodePath := joinPath(prefix, local)
		switch nodeDef.Kind {
		case template.KindNode:
			if err = a.addNode(g, nodeDef, nodePath); err != nil {
				return err
			}
		case template.KindCircuit:
			if _, ok := ancestors[ref]; ok {
				return errors.Newf(class.TemplateInheritanceCycle,
					"circuit: '%s' nests circuit: '%s' which already encloses it", def.Name, ref)
			}
			ancestors[ref] = struct{}{}
			if err = a.addCircuit(g, nodeDef, nodePath, ancestors); err != nil {
				return err
			}
			delete(ancestors, ref)
		default:
			return errors.Newf(class.GraphNodeInvalid,
				"node: '%s' of circuit: '%s' references: '%s' of kind: '%s'", local, def.Name, ref, nodeDef.Kind)
		}
	}

	for i, spec := range def.Edges {
		if err := a.addEdge(g, def.Name, prefix, i, spec); err != nil {
			return err
		}
	}
	return nil
}

// addNode instantiates every operator bundled by the node template and
// wires the internal operator dependency subgraph - an operator input is
// satisfied by another operator's output of the same variable name.
func (a *Assembler) addNode(g *CircuitGraph, def *resolve.Definition, nodePath string) error {
	if len(def.Operators) == 0 {
		return errors.Newf(class.GraphNodeInvalid, "node template: '%s' bundles no operators", def.Name)
	}

	instances := make([]*OperatorInstance, 0, len(def.Operators))
	for _, ref := range def.Operators {
		opDef, err := a.resolver.Resolve(ref)
		if err != nil {
			if classed, ok := err.(*errors.Error); ok {
				classed.WrapDetailf("operator: '%s' of node: '%s'", ref, def.Name)
			}
			return err
		}
		if opDef.Kind != template.KindOperator {
			return errors.Newf(class.GraphNodeInvalid,
				"node template: '%s' bundles: '%s' of kind: '%s'", def.Name, ref, opDef.Kind)
		}
		instance := a.instantiate(opDef, nodePath)
		if err = g.addOperator(instance); err != nil {
			if classed, ok := err.(*errors.Error); ok {
				classed.WrapDetailf("node template: '%s' bundles: '%s' twice", def.Name, ref)
			}
			return err
		}
		instances = append(instances, instance)
	}

	// internal wiring carries no declared weight - contributions pass
	// through unscaled
	for _, instance := range instances {
		for _, name := range instance.VariableNames() {
			v := instance.Variables[name]
			if v.Role != resolve.RoleInput {
				continue
			}
			for _, other := range instances {
				if other == instance {
					continue
				}
				out, ok := other.Variable(name)
				if !ok || out.Role != resolve.RoleOutput {
					continue
				}
				g.connect(
					Port{Node: nodePath, Operator: other.Name, Variable: out.Key},
					Port{Node: nodePath, Operator: instance.Name, Variable: v.Key},
					1.0,
				)
				break
			}
		}
	}
	return nil
}

// addEdge wires a single circuit edge entry: either a direct weighted
// connection or an edge operator chain inserted between the endpoints.
func (a *Assembler) addEdge(g *CircuitGraph, circuit, prefix string, index int, spec *template.EdgeSpec) error {
	source, err := a.resolvePort(g, prefix, spec.Source, resolve.RoleOutput)
	if err != nil {
		return err
	}
	target, err := a.resolvePort(g, prefix, spec.Target, resolve.RoleInput)
	if err != nil {
		return err
	}

	weight := spec.Weight(a.defaultWeight)
	if spec.Template == "" {
		g.connect(source, target, weight)
		return nil
	}

	edgeDef, err := a.resolver.Resolve(spec.Template)
	if err != nil {
		if classed, ok := err.(*errors.Error); ok {
			classed.WrapDetailf("edge %d of circuit: '%s'", index, circuit)
		}
		return err
	}
	if edgeDef.Kind != template.KindEdge {
		return errors.Newf(class.GraphNodeInvalid,
			"edge %d of circuit: '%s' references: '%s' of kind: '%s'", index, circuit, spec.Template, edgeDef.Kind)
	}
	if len(edgeDef.Operators) == 0 {
		g.connect(source, target, weight)
		return nil
	}

	edgeNode := joinPath(prefix, fmt.Sprintf("edge_%d", index))
	previous := source
	for _, ref := range edgeDef.Operators {
		opDef, err := a.resolver.Resolve(ref)
		if err != nil {
			if classed, ok := err.(*errors.Error); ok {
				classed.WrapDetailf("operator: '%s' of edge template: '%s'", ref, spec.Template)
			}
			return err
		}
		if opDef.Kind != template.KindOperator {
			return errors.Newf(class.GraphNodeInvalid,
				"edge template: '%s' bundles: '%s' of kind: '%s'", spec.Template, ref, opDef.Kind)
		}

		instance := a.instantiate(opDef, edgeNode)
		if err = g.addOperator(instance); err != nil {
			if classed, ok := err.(*errors.Error); ok {
				classed.WrapDetailf("edge template: '%s' bundles: '%s' twice", spec.Template, ref)
			}
			return err
		}

		input := firstInput(opDef)
		if input == nil {
			return errors.Newf(class.GraphNodeInvalid,
				"edge operator: '%s' of template: '%s' declares no input variable", ref, spec.Template)
		}
		g.connect(previous, Port{Node: edgeNode, Operator: instance.Name, Variable: input.Key}, 1.0)
		previous = Port{Node: edgeNode, Operator: instance.Name, Variable: opDef.Output().Key}
	}
	g.connect(previous, target, weight)
	return nil
}

// resolvePort resolves a slash-delimited port path relative to 'prefix'
// into a concrete (operator instance, variable) pair with the expected
// role.
func (a *Assembler) resolvePort(g *CircuitGraph, prefix, path string, want resolve.Role) (Port, error) {
	node, operator, variable, err := splitPath(path)
	if err != nil {
		return Port{}, err
	}

	nodePath := joinPath(prefix, node)
	instance, ok := g.operators[nodePath+"/"+operator]
	if !ok {
		return Port{}, errors.Newf(class.GraphPortNotFound,
			"path: '%s' doesn't resolve to an operator instance", joinPath(prefix, path))
	}
	v, ok := instance.Variable(variable)
	if !ok {
		return Port{}, errors.Newf(class.GraphPortNotFound,
			"path: '%s' doesn't resolve to a variable of operator: '%s'", joinPath(prefix, path), instance.Name)
	}
	if v.Role != want {
		return Port{}, errors.Newf(class.GraphRoleMismatch,
			"path: '%s' addresses a variable with role: '%s', expected: '%s'", joinPath(prefix, path), v.Role, want)
	}
	return Port{Node: nodePath, Operator: instance.Name, Variable: v.Key}, nil
}

func (a *Assembler) instantiate(def *resolve.Definition, nodePath string) *OperatorInstance {
	variables := make(map[string]*resolve.Variable, len(def.Variables))
	for name, v := range def.Variables {
		variables[name] = v.Copy()
	}
	return &OperatorInstance{
		ID:        uuid.New(),
		Node:      nodePath,
		Name:      def.Name,
		Equations: append([]string{}, def.Equations...),
		Variables: variables,
	}
}

// applyOverrides sets the instance-level variable values keyed by the
// 'node/operator/variable' paths.
func (a *Assembler) applyOverrides(g *CircuitGraph, overrides map[string]float64) error {
	paths := make([]string, 0, len(overrides))
	for path := range overrides {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		node, operator, variable, err := splitPath(path)
		if err != nil {
			return errors.Newf(class.GraphOverrideInvalid, "override path: '%s' is malformed", path)
		}
		instance, ok := g.operators[node+"/"+operator]
		if !ok {
			return errors.Newf(class.GraphOverrideInvalid,
				"override path: '%s' doesn't resolve to an operator instance", path)
		}
		v, ok := instance.Variable(variable)
		if !ok {
			return errors.Newf(class.GraphOverrideInvalid,
				"override path: '%s' doesn't resolve to a variable of operator: '%s'", path, instance.Name)
		}
		v.Value = overrides[path]
		v.HasValue = true
	}
	return nil
}

// validate performs the final fail-fast pass over the assembled graph:
// required constants must carry values, resolved values must satisfy
// their allowed ranges and - in strict mode - every input referenced by
// the equations must be connected or explicitly valued.
func (a *Assembler) validate(g *CircuitGraph) error {
	for _, op := range g.Operators() {
		referenced := map[string]struct{}{}
		for _, symbol := range resolve.FreeSymbols(op.Equations) {
			referenced[namer.Canonical(symbol)] = struct{}{}
		}

		for _, name := range op.VariableNames() {
			v := op.Variables[name]
			switch v.Role {
			case resolve.RoleConstant:
				if !v.HasValue {
					return errors.Newf(class.VariableValueRequired,
						"variable: '%s' of operator: '%s' requires a value of type: '%s'", name, op.Key(), v.ConstantType)
				}
			case resolve.RoleInput:
				if !a.strictInputs || v.HasValue {
					continue
				}
				if _, ok := referenced[namer.Canonical(name)]; !ok {
					continue
				}
				port := Port{Node: op.Node, Operator: op.Name, Variable: v.Key}
				if _, ok := g.accumulators[port.String()]; !ok {
					return errors.Newf(class.GraphInputUnconnected,
						"input: '%s' is referenced by the equations of operator: '%s' but receives no connection", name, op.Key())
				}
			}
			if v.Range != nil && v.HasValue && !v.Range.Contains(v.Value) {
				return errors.Newf(class.VariableValueOutOfRange,
					"variable: '%s' of operator: '%s' value: %v violates the allowed range: '%s'", name, op.Key(), v.Value, v.Range)
			}
		}
	}
	return nil
}

func firstInput(def *resolve.Definition) *resolve.Variable {
	for _, name := range def.VariableNames() {
		if def.Variables[name].Role == resolve.RoleInput {
			return def.Variables[name]
		}
	}
	return nil
}
