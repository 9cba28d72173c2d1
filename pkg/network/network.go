package network

import (
	"slices"

	"github.com/morsedb/morsedb/pkg/errors"
)

// Model names the interpretation of edge signs.
type Model string

const (
	// ModelDefault keeps the declared sign of every edge.
	ModelDefault Model = "default"
	// ModelEcology treats every interaction as repressing.
	ModelEcology Model = "ecology"
)

// Edge is a signed, directed interaction between two nodes.
type Edge struct {
	Source     string // Regulator node name
	Target     string // Regulated node name
	Activating bool   // false for repressing edges
}

// Network is a directed graph of named nodes with signed edges.
//
// Node indices follow declaration order. The zero value is an empty network;
// use [New] or [Parse] to build a usable one. A Network is immutable after
// construction and safe for concurrent reads.
type Network struct {
	names   []string
	index   map[string]int
	inputs  [][]int
	outputs [][]int
	signs   map[[2]int]bool
	model   Model

	// Set by Parse only.
	essential []bool
	logic     [][][]int
}

// New builds a network from node names and edges.
//
// Inputs of each node keep the order in which their edges are listed.
// Outputs are derived by scanning targets in node order, so the output
// order (and therefore the threshold order) is independent of edge order
// across different targets.
//
// New returns an INVALID_NETWORK error for empty or duplicate names, edges
// that reference unknown nodes, duplicate edges or an unknown model.
func New(names []string, edges []Edge, model Model) (*Network, error) {
	if model == "" {
		model = ModelDefault
	}
	if model != ModelDefault && model != ModelEcology {
		return nil, errors.New(errors.ErrCodeInvalidNetwork, "unknown model %q", model)
	}
	if len(names) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidNetwork, "network has no nodes")
	}

	n := &Network{
		names:   slices.Clone(names),
		index:   make(map[string]int, len(names)),
		inputs:  make([][]int, len(names)),
		outputs: make([][]int, len(names)),
		signs:   make(map[[2]int]bool, len(edges)),
		model:   model,
	}
	for i, name := range names {
		if err := errors.ValidateNodeName(name); err != nil {
			return nil, err
		}
		if _, dup := n.index[name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidNetwork, "duplicate node %q", name)
		}
		n.index[name] = i
	}

	for _, e := range edges {
		u, ok := n.index[e.Source]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidNetwork, "edge %s->%s: unknown source", e.Source, e.Target)
		}
		v, ok := n.index[e.Target]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidNetwork, "edge %s->%s: unknown target", e.Source, e.Target)
		}
		key := [2]int{u, v}
		if _, dup := n.signs[key]; dup {
			return nil, errors.New(errors.ErrCodeInvalidNetwork, "duplicate edge %s->%s", e.Source, e.Target)
		}
		n.signs[key] = e.Activating
		n.inputs[v] = append(n.inputs[v], u)
	}

	for v := range n.inputs {
		for _, u := range n.inputs[v] {
			n.outputs[u] = append(n.outputs[u], v)
		}
	}
	return n, nil
}

// Size returns the number of nodes.
func (n *Network) Size() int { return len(n.names) }

// Name returns the name of node i.
func (n *Network) Name(i int) string { return n.names[i] }

// Names returns a copy of all node names in index order.
func (n *Network) Names() []string { return slices.Clone(n.names) }

// Index returns the index of the named node.
func (n *Network) Index(name string) (int, bool) {
	i, ok := n.index[name]
	return i, ok
}

// Inputs returns the regulators of node v in declaration order.
func (n *Network) Inputs(v int) []int { return slices.Clone(n.inputs[v]) }

// Outputs returns the nodes regulated by u.
func (n *Network) Outputs(u int) []int { return slices.Clone(n.outputs[u]) }

// Interaction reports whether the edge u->v is activating.
// It returns false for repressing edges and for absent edges.
func (n *Network) Interaction(u, v int) bool { return n.signs[[2]int{u, v}] }

// HasEdge reports whether the network contains the edge u->v.
func (n *Network) HasEdge(u, v int) bool {
	_, ok := n.signs[[2]int{u, v}]
	return ok
}

// Model returns the sign interpretation model.
func (n *Network) Model() Model { return n.model }

// Domains returns the number of domains along each axis of phase space.
// Every out-edge of a node contributes one threshold, so a node with k
// outputs splits its axis into k+1 domains.
func (n *Network) Domains() []int {
	d := make([]int, len(n.names))
	for i := range n.names {
		d[i] = len(n.outputs[i]) + 1
	}
	return d
}

// DomainCount returns the number of top-dimensional domains (the product
// of [Network.Domains]).
func (n *Network) DomainCount() int {
	total := 1
	for _, d := range n.Domains() {
		total *= d
	}
	return total
}

// Edges returns every edge ordered by source index, then by the source's
// output order.
func (n *Network) Edges() []Edge {
	var out []Edge
	for u := range n.names {
		for _, v := range n.outputs[u] {
			out = append(out, Edge{Source: n.names[u], Target: n.names[v], Activating: n.signs[[2]int{u, v}]})
		}
	}
	return out
}
