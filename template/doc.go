// Package template defines the model template data structures, parses
// YAML template documents and keeps the registered templates in a
// concurrent safe registry.
//
// A template document is a YAML mapping from template names to template
// bodies. Every template names a base it extends, one of the built in
// roots (OperatorTemplate, NodeTemplate, EdgeTemplate, CircuitTemplate)
// or another registered template. The package stores templates exactly
// as declared. Inheritance is resolved by the resolve package.
package template
