package rategraph

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/neuronlabs/uni-logger"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/dynalabs/rategraph/config"
	"github.com/dynalabs/rategraph/errors"
	"github.com/dynalabs/rategraph/errors/class"
	"github.com/dynalabs/rategraph/graph"
	"github.com/dynalabs/rategraph/log"
	"github.com/dynalabs/rategraph/namer"
	"github.com/dynalabs/rategraph/resolve"
	"github.com/dynalabs/rategraph/template"
)

var validate = validator.New()

var logLevels = map[string]unilogger.Level{
	"debug3":   log.LDEBUG3,
	"debug2":   log.LDEBUG2,
	"debug":    log.LDEBUG,
	"info":     log.LINFO,
	"warning":  log.LWARNING,
	"error":    log.LERROR,
	"critical": log.LCRITICAL,
}

// Engine is the template resolution and graph assembly engine. It owns
// the template registry, the memoizing resolver and the circuit
// assembler.
type Engine struct {
	// Config is the engine configuration.
	Config *config.Engine

	// Registry holds every loaded template.
	Registry *template.Registry

	resolver  *resolve.Resolver
	assembler *graph.Assembler
}

// New creates a new engine for given config 'cfg'. A nil config falls
// back to the defaults. Template documents found under the configured
// template paths are loaded immediately.
func New(cfg *config.Engine) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Newf(class.ConfigValueInvalid, "invalid engine config: %v", err)
	}
	if cfg.LogLevel != "" {
		if level, ok := logLevels[cfg.LogLevel]; ok {
			if err := log.SetLevel(level); err != nil {
				return nil, errors.Newf(class.ConfigValueInvalid, "can't set log level: '%s': %v", cfg.LogLevel, err)
			}
		}
	}

	registry := template.NewRegistry()
	registry.SetLintWarnings(cfg.LintWarnings)
	resolver := resolve.NewResolver(registry)
	resolver.SetLintWarnings(cfg.LintWarnings)
	e := &Engine{
		Config:    cfg,
		Registry:  registry,
		resolver:  resolver,
		assembler: graph.NewAssembler(resolver, cfg),
	}
	for _, dir := range cfg.TemplatePaths {
		if err := registry.LoadDir(dir); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Load reads the template documents at 'path' - a single document file or
// a directory of documents - and registers every named entry.
func (e *Engine) Load(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Newf(class.TemplateDocumentRead, "can't stat template path: '%s': %v", path, err)
	}
	if info.IsDir() {
		return e.Registry.LoadDir(path)
	}
	return e.Registry.LoadFile(path)
}

// LoadDocuments parses the in-memory template document 'data' and
// registers every named entry.
func (e *Engine) LoadDocuments(data []byte) error {
	return e.Registry.LoadDocuments(data)
}

// Register adds the template 't' to the engine registry.
func (e *Engine) Register(t *template.Template) error {
	return e.Registry.Register(t)
}

// Resolve produces the fully merged definition for the template 'name'.
// Results are memoized - resolving the same name twice yields the
// identical definition.
func (e *Engine) Resolve(name string) (*resolve.Definition, error) {
	return e.resolver.Resolve(name)
}

// Instantiate assembles the circuit template 'name' into a CircuitGraph
// ready for a numerical backend.
func (e *Engine) Instantiate(name string, options ...InstantiateOption) (*graph.CircuitGraph, error) {
	o := newInstantiateOptions()
	for _, option := range options {
		option(o)
	}
	return e.assembler.Assemble(name, o.Values)
}

// Reset clears the registry and the resolution cache.
func (e *Engine) Reset() {
	e.Registry.Reset()
	e.resolver.Reset()
}

// Stats summarizes the registry content per template kind.
func (e *Engine) Stats() string {
	counts := map[template.Kind]int{}
	for _, name := range e.Registry.Names() {
		kind, err := e.Registry.KindOf(name)
		if err != nil {
			kind = template.KindUnknown
		}
		counts[kind]++
	}

	kinds := make([]template.Kind, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		n := counts[kind]
		parts = append(parts, fmt.Sprintf("%d %s", n, namer.Pluralized(kind.String(), n)))
	}
	if len(parts) == 0 {
		return "empty registry"
	}
	return strings.Join(parts, ", ")
}
