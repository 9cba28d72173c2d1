// Package dynamics declares the analysis objects morsedb exports.
//
// Parameter graphs, domain graphs and Morse decompositions are computed by
// an external combinatorial dynamics library. This package describes the
// small part of their surface the exporter reads, so that any provider
// (a precomputed bundle, a bridge to a running analysis, a test fixture)
// can be plugged in through [Source].
//
// All cell references are in the analysis library's numbering: top cells
// (domains) are indexed 0..n-1 with axis 0 varying fastest.
package dynamics

import "github.com/morsedb/morsedb/pkg/network"

// ParameterGraph is the graph of parameter indices. Adjacency is symmetric.
type ParameterGraph interface {
	Size() int
	Adjacencies(v int) []int
}

// Digraph is a directed graph over 0..Size()-1.
type Digraph interface {
	Size() int
	Adjacencies(v int) []int
}

// Poset is the order relation of a Morse decomposition, given by the
// children of each element in its Hasse diagram.
type Poset interface {
	Size() int
	Children(v int) []int
}

// DomainGraph is the state-transition graph of one parameter.
type DomainGraph interface {
	Digraph() Digraph
}

// MorseDecomposition partitions the recurrent part of a state-transition
// graph into Morse sets ordered by a poset.
type MorseDecomposition interface {
	Poset() Poset
	MorseSet(v int) []int
}

// MorseGraph is a Morse decomposition annotated with dynamical labels.
type MorseGraph interface {
	Poset() Poset
	Annotation(v int) []string
}

// Dynamics bundles the per-parameter analysis results.
type Dynamics struct {
	DomainGraph        DomainGraph
	MorseDecomposition MorseDecomposition
	MorseGraph         MorseGraph
}

// Source provides a network and its analysis results.
type Source interface {
	Network() *network.Network
	ParameterGraph() ParameterGraph
	// Dynamics returns the results for one parameter index.
	Dynamics(parameter int) (Dynamics, error)
}
