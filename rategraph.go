package rategraph

import (
	"sync"

	"github.com/dynalabs/rategraph/graph"
	"github.com/dynalabs/rategraph/log"
	"github.com/dynalabs/rategraph/resolve"
	"github.com/dynalabs/rategraph/template"
)

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// DefaultEngine returns the package default engine, creating it with the
// default config on first use.
func DefaultEngine() *Engine {
	defaultOnce.Do(func() {
		e, err := New(nil)
		if err != nil {
			log.Panicf("can't create default engine: %v", err)
		}
		defaultEngine = e
	})
	return defaultEngine
}

// Load reads the template documents at 'path' into the default engine.
func Load(path string) error {
	return DefaultEngine().Load(path)
}

// LoadDocuments parses the in-memory template document 'data' into the
// default engine.
func LoadDocuments(data []byte) error {
	return DefaultEngine().LoadDocuments(data)
}

// Register adds the template 't' to the default engine.
func Register(t *template.Template) error {
	return DefaultEngine().Register(t)
}

// Resolve produces the fully merged definition for the template 'name'
// using the default engine.
func Resolve(name string) (*resolve.Definition, error) {
	return DefaultEngine().Resolve(name)
}

// Instantiate assembles the circuit template 'name' using the default
// engine.
func Instantiate(name string, options ...InstantiateOption) (*graph.CircuitGraph, error) {
	return DefaultEngine().Instantiate(name, options...)
}
