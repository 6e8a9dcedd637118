package template

import (
	"sort"
	"sync"

	"github.com/dynalabs/rategraph/errors"
	"github.com/dynalabs/rategraph/errors/class"
	"github.com/dynalabs/rategraph/log"
)

// Registry holds every named template keyed by its name. Registration is
// explicit - a lookup never creates a template. The registry is safe for
// concurrent lookups once populated.
type Registry struct {
	mu           sync.RWMutex
	templates    map[string]*Template
	lintWarnings bool
}

// NewRegistry creates a new empty template registry with the lint
// warnings enabled.
func NewRegistry() *Registry {
	return &Registry{templates: map[string]*Template{}, lintWarnings: true}
}

// SetLintWarnings toggles the warnings for suspicious template documents,
// i.e. unknown fields or case-only synonym variable entries.
func (r *Registry) SetLintWarnings(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lintWarnings = enabled
}

func (r *Registry) lint() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.lintWarnings
}

// Register adds the template 't' to the registry. Fails when the name is
// empty, reserved for a root kind or already taken.
func (r *Registry) Register(t *Template) error {
	if t.Name == "" {
		return errors.New(class.TemplateDocumentInvalid, "template has no name")
	}
	if RootKind(t.Name) != KindUnknown {
		return errors.Newf(class.TemplateDocumentInvalid, "template name: '%s' is reserved for a root kind", t.Name)
	}
	if t.Base == "" {
		return errors.Newf(class.TemplateDocumentInvalid, "template: '%s' has no base reference", t.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[t.Name]; ok {
		return errors.Newf(class.TemplateAlreadyRegistered, "template: '%s' is already registered", t.Name)
	}
	r.templates[t.Name] = t
	log.Debug2f("Registered template: '%s' with base: '%s'", t.Name, t.Base)
	return nil
}

// Lookup gets the template registered under 'name'.
func (r *Registry) Lookup(name string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.templates[name]
	if !ok {
		return nil, errors.Newf(class.TemplateNotFound, "template: '%s' is not registered", name)
	}
	return t, nil
}

// Has checks if a template is registered under 'name'.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.templates[name]
	return ok
}

// Names returns the sorted names of all registered templates.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.templates)
}

// Reset removes all registered templates.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates = map[string]*Template{}
}

// KindOf determines the template kind by walking its base chain up to a
// root kind name. A revisited name along the chain is a cycle error.
func (r *Registry) KindOf(name string) (Kind, error) {
	if kind := RootKind(name); kind != KindUnknown {
		return kind, nil
	}

	seen := map[string]struct{}{}
	current := name
	for {
		if _, ok := seen[current]; ok {
			return KindUnknown, errors.Newf(class.TemplateInheritanceCycle, "template: '%s' base chain revisits: '%s'", name, current)
		}
		seen[current] = struct{}{}

		t, err := r.Lookup(current)
		if err != nil {
			return KindUnknown, err
		}
		if kind := RootKind(t.Base); kind != KindUnknown {
			return kind, nil
		}
		current = t.Base
	}
}
