package database

import (
	"github.com/morsedb/morsedb/pkg/cubical"
	"github.com/morsedb/morsedb/pkg/errors"
	"github.com/morsedb/morsedb/pkg/network"
)

// CellMap is the bijection between the analysis library's top cells
// (0..n-1) and the non-fringe top cells of the extended cubical complex.
type CellMap struct {
	complex    *cubical.Complex
	toComplex  []int
	toAnalysis map[int]int
}

// ExtendedComplex builds the cubical complex for a network: one box more
// than the network's domain count along every axis, so that dropping the
// right fringe leaves the closed grid over the domains.
func ExtendedComplex(net *network.Network) (*cubical.Complex, error) {
	boxes := net.Domains()
	for i := range boxes {
		boxes[i]++
	}
	cc, err := cubical.New(boxes)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidNetwork, err, "build complex for %d-node network", net.Size())
	}
	return cc, nil
}

// NewCellMap numbers the non-fringe top cells of the network's extended
// complex in index order. Both libraries enumerate top cells with axis 0
// varying fastest, so the k-th surviving cell is analysis cell k.
func NewCellMap(net *network.Network) (*CellMap, error) {
	cc, err := ExtendedComplex(net)
	if err != nil {
		return nil, err
	}

	m := &CellMap{
		complex:    cc,
		toComplex:  make([]int, 0, net.DomainCount()),
		toAnalysis: make(map[int]int, net.DomainCount()),
	}
	cc.Each(cc.Dimension(), func(cell int) bool {
		if cc.RightFringe(cell) {
			return true
		}
		m.toAnalysis[cell] = len(m.toComplex)
		m.toComplex = append(m.toComplex, cell)
		return true
	})

	if len(m.toComplex) != net.DomainCount() {
		return nil, errors.New(errors.ErrCodeInternal, "complex has %d top cells, network has %d domains",
			len(m.toComplex), net.DomainCount())
	}
	return m, nil
}

// Len returns the number of mapped top cells.
func (m *CellMap) Len() int { return len(m.toComplex) }

// CubicalComplex returns the extended complex the map points into.
func (m *CellMap) CubicalComplex() *cubical.Complex { return m.complex }

// Complex translates an analysis cell index into a complex cell index.
func (m *CellMap) Complex(i int) (int, error) {
	if i < 0 || i >= len(m.toComplex) {
		return 0, errors.New(errors.ErrCodeInvalidIndex, "cell %d outside [0,%d)", i, len(m.toComplex))
	}
	return m.toComplex[i], nil
}

// Analysis translates a complex cell index back into an analysis index.
func (m *CellMap) Analysis(cell int) (int, bool) {
	i, ok := m.toAnalysis[cell]
	return i, ok
}

// Cells translates a list of analysis cell indices. The result is never nil.
func (m *CellMap) Cells(cells []int) ([]int, error) {
	out := make([]int, len(cells))
	for i, c := range cells {
		cc, err := m.Complex(c)
		if err != nil {
			return nil, err
		}
		out[i] = cc
	}
	return out, nil
}
