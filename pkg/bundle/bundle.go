package bundle

import (
	"github.com/morsedb/morsedb/pkg/dynamics"
	"github.com/morsedb/morsedb/pkg/errors"
	"github.com/morsedb/morsedb/pkg/network"
)

// Bundle is a precomputed analysis: a network, its parameter graph and the
// dynamics of some or all parameters, in the analysis library's numbering.
type Bundle struct {
	Network        NetworkSpec        `json:"network" yaml:"network" toml:"network"`
	ParameterGraph ParameterGraphSpec `json:"parameter_graph" yaml:"parameter_graph" toml:"parameter_graph"`
	Dynamics       []DynamicsSpec     `json:"dynamics" yaml:"dynamics" toml:"dynamics" validate:"dive"`
}

// NetworkSpec describes the network either as spec text or as explicit
// nodes and edges.
type NetworkSpec struct {
	Spec  string     `json:"spec,omitempty" yaml:"spec,omitempty" toml:"spec,omitempty" validate:"required_without=Nodes,excluded_with=Nodes"`
	Model string     `json:"model,omitempty" yaml:"model,omitempty" toml:"model,omitempty" validate:"omitempty,oneof=default ecology"`
	Nodes []string   `json:"nodes,omitempty" yaml:"nodes,omitempty" toml:"nodes,omitempty" validate:"required_without=Spec,dive,required"`
	Edges []EdgeSpec `json:"edges,omitempty" yaml:"edges,omitempty" toml:"edges,omitempty" validate:"excluded_with=Spec,dive"`
}

// EdgeSpec is one signed edge; Type is 1 (activating) or -1 (repressing).
type EdgeSpec struct {
	Source string `json:"source" yaml:"source" toml:"source" validate:"required"`
	Target string `json:"target" yaml:"target" toml:"target" validate:"required"`
	Type   int    `json:"type" yaml:"type" toml:"type" validate:"oneof=-1 1"`
}

// ParameterGraphSpec is the parameter graph as adjacency lists.
type ParameterGraphSpec struct {
	Size        int     `json:"size" yaml:"size" toml:"size" validate:"min=1"`
	Adjacencies [][]int `json:"adjacencies,omitempty" yaml:"adjacencies,omitempty" toml:"adjacencies,omitempty"`
}

// DynamicsSpec holds the results for one parameter.
type DynamicsSpec struct {
	Parameter  int             `json:"parameter" yaml:"parameter" toml:"parameter" validate:"min=0"`
	STG        [][]int         `json:"stg" yaml:"stg" toml:"stg" validate:"required"`
	MorseNodes []MorseNodeSpec `json:"morse_nodes" yaml:"morse_nodes" toml:"morse_nodes" validate:"dive"`
}

// MorseNodeSpec is one Morse set with its poset children and labels.
type MorseNodeSpec struct {
	Cells       []int    `json:"cells" yaml:"cells" toml:"cells"`
	Children    []int    `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
	Annotations []string `json:"annotations,omitempty" yaml:"annotations,omitempty" toml:"annotations,omitempty"`
}

// BuildNetwork constructs the bundle's network.
func (b *Bundle) BuildNetwork() (*network.Network, error) {
	model := network.Model(b.Network.Model)
	if b.Network.Spec != "" {
		return network.Parse(b.Network.Spec, model)
	}
	edges := make([]network.Edge, len(b.Network.Edges))
	for i, e := range b.Network.Edges {
		edges[i] = network.Edge{Source: e.Source, Target: e.Target, Activating: e.Type > 0}
	}
	return network.New(b.Network.Nodes, edges, model)
}

// Source validates the bundle and converts it into a [dynamics.Source].
//
// Beyond the structural checks of [Bundle.Validate], Source checks every
// index against the network and parameter graph: each state-transition
// graph must have one vertex per domain, cells and neighbours must be in
// range, and each parameter may appear only once.
func (b *Bundle) Source() (*dynamics.StaticSource, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	net, err := b.BuildNetwork()
	if err != nil {
		return nil, err
	}

	size := b.ParameterGraph.Size
	pg := dynamics.AdjacencyList(b.ParameterGraph.Adjacencies)
	if pg == nil {
		pg = make(dynamics.AdjacencyList, size)
	}
	if len(pg) != size {
		return nil, errors.New(errors.ErrCodeInvalidBundle, "parameter graph has %d adjacency lists, size is %d", len(pg), size)
	}
	if err := pg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBundle, err, "parameter graph")
	}

	domains := net.DomainCount()
	src := &dynamics.StaticSource{
		Net:        net,
		Parameters: pg,
		Results:    make(map[int]dynamics.Dynamics, len(b.Dynamics)),
	}
	for _, d := range b.Dynamics {
		if d.Parameter >= size {
			return nil, errors.New(errors.ErrCodeInvalidBundle, "dynamics for parameter %d outside [0,%d)", d.Parameter, size)
		}
		if _, dup := src.Results[d.Parameter]; dup {
			return nil, errors.New(errors.ErrCodeInvalidBundle, "dynamics for parameter %d given twice", d.Parameter)
		}

		stg := dynamics.AdjacencyList(d.STG)
		if len(stg) != domains {
			return nil, errors.New(errors.ErrCodeInvalidBundle, "parameter %d: stg has %d vertices, network has %d domains",
				d.Parameter, len(stg), domains)
		}
		if err := stg.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBundle, err, "parameter %d: stg", d.Parameter)
		}

		morse := make(dynamics.StaticMorse, len(d.MorseNodes))
		for i, n := range d.MorseNodes {
			morse[i] = dynamics.MorseNode{Cells: n.Cells, Children: n.Children, Annotations: n.Annotations}
		}
		if err := morse.Validate(domains); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBundle, err, "parameter %d: morse graph", d.Parameter)
		}

		src.Results[d.Parameter] = dynamics.Dynamics{
			DomainGraph:        dynamics.StaticDomainGraph{Graph: stg},
			MorseDecomposition: morse,
			MorseGraph:         morse,
		}
	}
	return src, nil
}

// Parameters returns the parameter indices that carry dynamics, in bundle
// order.
func (b *Bundle) Parameters() []int {
	out := make([]int, len(b.Dynamics))
	for i, d := range b.Dynamics {
		out[i] = d.Parameter
	}
	return out
}
