// Package graph assembles resolved circuit definitions into executable
// circuit graphs. Every node operator becomes an operator instance with
// its own copy of the resolved variables, edges become weighted
// connections between output and input ports and multiple connections
// into one input port fold into an additive input accumulator.
package graph
