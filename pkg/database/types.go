package database

// Database is the exported document. Field order matches the key order of
// the emitted JSON.
type Database struct {
	Network        Network         `json:"network"`
	Complex        Complex         `json:"complex"`
	ParameterGraph ParameterGraph  `json:"parameter_graph"`
	Dynamics       []DynamicsEntry `json:"dynamics_database"`
}

// Network is the "network" section.
type Network struct {
	Nodes []NetworkNode `json:"nodes"`
	Links []NetworkLink `json:"links"`
}

// NetworkNode names one network node.
type NetworkNode struct {
	ID string `json:"id"`
}

// NetworkLink is a signed edge; Type is 1 for activating, -1 for repressing.
type NetworkLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   int    `json:"type"`
}

// Complex is the "complex" section.
type Complex struct {
	Dimension   int     `json:"dimension"`
	VertsCoords [][]int `json:"verts_coords"`
	Cells       []Cell  `json:"cells"`
}

// Cell is one non-fringe cell of the complex.
type Cell struct {
	Dim   int   `json:"cell_dim"`
	Index int   `json:"cell_index"`
	Verts []int `json:"cell_verts"`
}

// ParameterGraph is the "parameter_graph" section.
type ParameterGraph struct {
	Nodes []ParameterNode `json:"nodes"`
	Links []ParameterLink `json:"links"`
}

// ParameterNode is a parameter index.
type ParameterNode struct {
	ID int `json:"id"`
}

// ParameterLink joins two adjacent parameters, Source > Target.
type ParameterLink struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// DynamicsEntry holds the exported dynamics of one parameter.
type DynamicsEntry struct {
	Parameter  int         `json:"parameter"`
	MorseGraph []MorseNode `json:"morse_graph"`
	MorseSets  []MorseSet  `json:"morse_sets"`
	STG        []STGNode   `json:"stg"`
}

// MorseNode is one vertex of a Morse graph.
type MorseNode struct {
	Node        int    `json:"node"`
	Rank        int    `json:"rank"`
	Label       string `json:"label"`
	Adjacencies []int  `json:"adjacencies"`
}

// MorseSet lists the complex cells of one Morse node.
type MorseSet struct {
	Index int   `json:"index"`
	Cells []int `json:"cells"`
}

// STGNode is one vertex of the state-transition graph with its successors,
// all given as complex cell indices.
type STGNode struct {
	Node        int   `json:"node"`
	Adjacencies []int `json:"adjacencies"`
}
