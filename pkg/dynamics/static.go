package dynamics

import (
	"slices"

	"github.com/morsedb/morsedb/pkg/errors"
	"github.com/morsedb/morsedb/pkg/network"
)

// AdjacencyList is an in-memory [Digraph] and [ParameterGraph].
type AdjacencyList [][]int

// Size returns the number of vertices.
func (a AdjacencyList) Size() int { return len(a) }

// Adjacencies returns a copy of the out-neighbours of v.
func (a AdjacencyList) Adjacencies(v int) []int { return slices.Clone(a[v]) }

// Children returns a copy of the out-neighbours of v, letting an
// AdjacencyList act as a [Poset].
func (a AdjacencyList) Children(v int) []int { return slices.Clone(a[v]) }

// Validate checks that every neighbour index is in range.
func (a AdjacencyList) Validate() error {
	for v, adj := range a {
		for _, u := range adj {
			if u < 0 || u >= len(a) {
				return errors.New(errors.ErrCodeInvalidIndex, "vertex %d: neighbour %d out of range [0,%d)", v, u, len(a))
			}
		}
	}
	return nil
}

// StaticDomainGraph is an in-memory [DomainGraph].
type StaticDomainGraph struct {
	Graph AdjacencyList
}

// Digraph returns the state-transition graph.
func (g StaticDomainGraph) Digraph() Digraph { return g.Graph }

// MorseNode is one element of a stored Morse decomposition.
type MorseNode struct {
	Cells       []int
	Children    []int
	Annotations []string
}

// StaticMorse is an in-memory [MorseDecomposition] and [MorseGraph]; the
// external library derives its Morse graph from the decomposition, so both
// views share one poset.
type StaticMorse []MorseNode

// Size returns the number of Morse nodes.
func (m StaticMorse) Size() int { return len(m) }

// Children returns the poset children of Morse node v.
func (m StaticMorse) Children(v int) []int { return slices.Clone(m[v].Children) }

// Poset returns m itself.
func (m StaticMorse) Poset() Poset { return m }

// MorseSet returns the cells of Morse node v.
func (m StaticMorse) MorseSet(v int) []int { return slices.Clone(m[v].Cells) }

// Annotation returns the labels of Morse node v.
func (m StaticMorse) Annotation(v int) []string { return slices.Clone(m[v].Annotations) }

// Validate checks poset indices and that cells fall in [0, cells).
func (m StaticMorse) Validate(cells int) error {
	for v, node := range m {
		for _, c := range node.Children {
			if c < 0 || c >= len(m) {
				return errors.New(errors.ErrCodeInvalidIndex, "morse node %d: child %d out of range [0,%d)", v, c, len(m))
			}
			if c == v {
				return errors.New(errors.ErrCodeInvalidInput, "morse node %d is its own child", v)
			}
		}
		for _, c := range node.Cells {
			if c < 0 || c >= cells {
				return errors.New(errors.ErrCodeInvalidIndex, "morse node %d: cell %d out of range [0,%d)", v, c, cells)
			}
		}
	}
	return nil
}

// StaticSource is an in-memory [Source].
type StaticSource struct {
	Net        *network.Network
	Parameters AdjacencyList
	Results    map[int]Dynamics
}

// Network returns the network.
func (s *StaticSource) Network() *network.Network { return s.Net }

// ParameterGraph returns the parameter graph.
func (s *StaticSource) ParameterGraph() ParameterGraph { return s.Parameters }

// Dynamics returns the stored results for a parameter, or a NOT_FOUND
// error when none were stored.
func (s *StaticSource) Dynamics(parameter int) (Dynamics, error) {
	d, ok := s.Results[parameter]
	if !ok {
		return Dynamics{}, errors.New(errors.ErrCodeNotFound, "no dynamics for parameter %d", parameter)
	}
	return d, nil
}

// Ensure the static types implement the interfaces.
var (
	_ Digraph            = AdjacencyList(nil)
	_ ParameterGraph     = AdjacencyList(nil)
	_ Poset              = AdjacencyList(nil)
	_ DomainGraph        = StaticDomainGraph{}
	_ MorseDecomposition = StaticMorse(nil)
	_ MorseGraph         = StaticMorse(nil)
	_ Source             = (*StaticSource)(nil)
)
