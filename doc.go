// Package rategraph implements a template based definition engine for
// rate coded neural population models. Model templates are declared in
// YAML documents as operators, nodes, edges and circuits. The engine
// registers the templates, resolves their inheritance chains into flat
// definitions and assembles circuit templates into executable graphs of
// operator instances and weighted connections.
//
// The package splits into the following subcomponents:
//	# template - the template data model, YAML loading and the registry
//	# resolve - the inheritance resolver with equation rewriting and variable roles
//	# graph - the circuit assembler that produces operator instances and connections
//	# config - the engine configuration read with viper
//	# errors, errors/class - classified errors used across the engine
//	# log - the leveled logger used by all subcomponents
//
// The root package wires these together behind the Engine structure. A
// package level default engine backs the top level convenience
// functions.
package rategraph
