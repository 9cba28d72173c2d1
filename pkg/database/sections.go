package database

import (
	"github.com/morsedb/morsedb/pkg/dynamics"
	"github.com/morsedb/morsedb/pkg/errors"
	"github.com/morsedb/morsedb/pkg/network"
)

// NetworkSection exports the network's nodes and signed links. Links are
// listed by source index, then by the source's output order. Under the
// ecology model every link is repressing.
func NetworkSection(net *network.Network) Network {
	out := Network{
		Nodes: make([]NetworkNode, net.Size()),
		Links: []NetworkLink{},
	}
	for d := range net.Size() {
		out.Nodes[d] = NetworkNode{ID: net.Name(d)}
	}
	for u := range net.Size() {
		for _, v := range net.Outputs(u) {
			kind := -1
			if net.Model() != network.ModelEcology && net.Interaction(u, v) {
				kind = 1
			}
			out.Links = append(out.Links, NetworkLink{
				Source: net.Name(u),
				Target: net.Name(v),
				Type:   kind,
			})
		}
	}
	return out
}

// ParameterGraphSection exports the subgraph of pg induced by vertices.
// A nil vertices slice selects every parameter. Adjacency is symmetric,
// so each edge is emitted once, from the larger to the smaller index.
func ParameterGraphSection(pg dynamics.ParameterGraph, vertices []int) (ParameterGraph, error) {
	if vertices == nil {
		vertices = make([]int, pg.Size())
		for i := range vertices {
			vertices[i] = i
		}
	}

	selected := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		if v < 0 || v >= pg.Size() {
			return ParameterGraph{}, errors.New(errors.ErrCodeInvalidIndex, "parameter %d outside [0,%d)", v, pg.Size())
		}
		selected[v] = true
	}

	out := ParameterGraph{
		Nodes: make([]ParameterNode, len(vertices)),
		Links: []ParameterLink{},
	}
	for i, v := range vertices {
		out.Nodes[i] = ParameterNode{ID: v}
	}
	for _, u := range vertices {
		for _, v := range pg.Adjacencies(u) {
			if selected[v] && u > v {
				out.Links = append(out.Links, ParameterLink{Source: u, Target: v})
			}
		}
	}
	return out, nil
}

// ComplexSection exports the network's cubical complex: the coordinates of
// every vertex and every non-fringe cell with its corner vertices.
func ComplexSection(net *network.Network) (Complex, error) {
	cc, err := ExtendedComplex(net)
	if err != nil {
		return Complex{}, err
	}

	out := Complex{
		Dimension: cc.Dimension(),
		Cells:     []Cell{},
	}
	begin, end := cc.CellsOfDim(0)
	out.VertsCoords = make([][]int, 0, end-begin)
	for v := begin; v < end; v++ {
		out.VertsCoords = append(out.VertsCoords, cc.Coordinates(v))
	}

	for cell := range cc.Size() {
		if cc.RightFringe(cell) {
			continue
		}
		verts, err := cc.Corners(cell)
		if err != nil {
			return Complex{}, errors.Wrap(errors.ErrCodeInternal, err, "corners of cell %d", cell)
		}
		out.Cells = append(out.Cells, Cell{
			Dim:   cc.Dim(cell),
			Index: cell,
			Verts: verts,
		})
	}
	return out, nil
}
