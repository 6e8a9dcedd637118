package resolve

import (
	"strings"
	"sync"

	"github.com/dynalabs/rategraph/errors"
	"github.com/dynalabs/rategraph/errors/class"
	"github.com/dynalabs/rategraph/log"
	"github.com/dynalabs/rategraph/namer"
	"github.com/dynalabs/rategraph/template"
)

// Resolver produces fully merged template definitions. Resolution walks
// the base chain up to its root kind and folds it from the root to the
// leaf; results are memoized per template name. A failed resolution is
// never memoized, so it cannot poison unrelated templates.
type Resolver struct {
	registry *template.Registry

	mu           sync.RWMutex
	memo         map[string]*Definition
	lintWarnings bool
}

// NewResolver creates a new resolver over the 'registry' with the lint
// warnings enabled.
func NewResolver(registry *template.Registry) *Resolver {
	return &Resolver{registry: registry, memo: map[string]*Definition{}, lintWarnings: true}
}

// SetLintWarnings toggles the warnings for suspicious resolved templates,
// i.e. cross-level synonym entries or unreferenced variables.
func (r *Resolver) SetLintWarnings(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lintWarnings = enabled
}

// Registry returns the resolver's template registry.
func (r *Resolver) Registry() *template.Registry {
	return r.registry
}

// Reset clears the memoization cache.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.memo = map[string]*Definition{}
}

// Resolve produces the merged definition for the template 'name'. The
// first resolution per name is serialized; afterwards the memoized
// definition is shared and must be treated as read-only.
func (r *Resolver) Resolve(name string) (*Definition, error) {
	r.mu.RLock()
	def, ok := r.memo[name]
	r.mu.RUnlock()
	if ok {
		return def, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if def, ok = r.memo[name]; ok {
		return def, nil
	}

	def, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	r.memo[name] = def
	return def, nil
}

func (r *Resolver) resolve(name string) (*Definition, error) {
	chain, kind, err := r.chain(name)
	if err != nil {
		return nil, err
	}

	def := &Definition{Name: name, Kind: kind}
	acc := map[string]*accVar{}
	for _, level := range chain {
		log.Debug3f("Template: '%s' merging level: '%s'", name, level.Name)

		if level.Description != "" {
			def.Description = level.Description
		}
		def.Equations = applyEquations(def.Equations, level.Equations, level.Name)
		if err = mergeVariableLevel(acc, level.Name, level.Variables, r.lintWarnings); err != nil {
			return nil, err
		}
		if len(level.Operators) > 0 {
			def.Operators = append([]string{}, level.Operators...)
		}
		if len(level.Nodes) > 0 {
			if def.Nodes == nil {
				def.Nodes = map[string]string{}
			}
			for local, ref := range level.Nodes {
				def.Nodes[local] = ref
			}
		}
		if len(level.Edges) > 0 {
			def.Edges = append([]*template.EdgeSpec{}, level.Edges...)
		}
	}

	if def.Variables, err = finalizeVariables(name, acc); err != nil {
		return nil, err
	}
	if kind == template.KindOperator {
		if err = checkOperator(def, r.lintWarnings); err != nil {
			return nil, err
		}
	}
	log.Debug2f("Resolved template: '%s' as: '%s' with %d levels", name, kind, len(chain))
	return def, nil
}

// chain builds the root-first base chain for the template 'name'. A name
// reappearing along the chain is a fatal cycle.
func (r *Resolver) chain(name string) ([]*template.Template, template.Kind, error) {
	t, err := r.registry.Lookup(name)
	if err != nil {
		return nil, template.KindUnknown, err
	}

	chain := []*template.Template{t}
	seen := map[string]struct{}{name: {}}
	current := t
	for {
		if kind := template.RootKind(current.Base); kind != template.KindUnknown {
			// reverse into the root-first fold order
			for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
				chain[i], chain[j] = chain[j], chain[i]
			}
			return chain, kind, nil
		}
		if _, ok := seen[current.Base]; ok {
			return nil, template.KindUnknown, errors.Newf(class.TemplateInheritanceCycle,
				"template: '%s' base chain revisits: '%s' (chain: %s)", name, current.Base, chainTrace(chain))
		}
		seen[current.Base] = struct{}{}

		parent, err := r.registry.Lookup(current.Base)
		if err != nil {
			if classed, ok := err.(*errors.Error); ok {
				classed.WrapDetailf("base of template: '%s'", current.Name)
			}
			return nil, template.KindUnknown, err
		}
		chain = append(chain, parent)
		current = parent
	}
}

func chainTrace(chain []*template.Template) string {
	names := make([]string, len(chain))
	for i, t := range chain {
		names[i] = t.Name
	}
	return strings.Join(names, " -> ")
}

// checkOperator validates the resolved operator definition: every free
// equation symbol must have variable metadata, every variable must have a
// resolved role and exactly one variable is the exported output assigned
// by the equations.
func checkOperator(def *Definition, lint bool) error {
	symbols := scanSymbols(def.Equations)
	referenced := map[string]struct{}{}
	for _, symbol := range symbols {
		if _, ok := def.Variable(symbol); !ok {
			return errors.Newf(class.VariableNotDeclared,
				"template: '%s' equations reference an undeclared symbol: '%s'", def.Name, symbol)
		}
		referenced[namer.Canonical(symbol)] = struct{}{}
	}

	var outputs []string
	for _, key := range def.VariableNames() {
		v := def.Variables[key]
		if v.Role == RoleUnset {
			return errors.Newf(class.VariableDefaultInvalid,
				"template: '%s' variable: '%s' has no resolved default", def.Name, key)
		}
		if v.Role == RoleOutput {
			outputs = append(outputs, key)
		}
		if _, ok := referenced[namer.Canonical(key)]; !ok && lint {
			log.Warningf("Template: '%s' variable: '%s' is not referenced by the equations", def.Name, key)
		}
	}
	if len(outputs) != 1 {
		return errors.Newf(class.VariableOutputCount,
			"template: '%s' must export exactly one output variable, got %d", def.Name, len(outputs))
	}

	assigned := assignedSymbols(def.Equations)
	if _, ok := assigned[outputs[0]]; !ok {
		return errors.Newf(class.VariableOutputUnassigned,
			"template: '%s' output variable: '%s' is never assigned by the equations", def.Name, outputs[0])
	}
	return nil
}
