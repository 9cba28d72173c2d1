package database

import (
	"github.com/morsedb/morsedb/pkg/dynamics"
	"github.com/morsedb/morsedb/pkg/errors"
)

// MorseGraphSection exports a Morse graph. Each node carries its rank
// (0 for minimal nodes, otherwise one more than its highest-ranked child),
// the first annotation as label, and its poset children.
func MorseGraphSection(mg dynamics.MorseGraph) ([]MorseNode, error) {
	poset := mg.Poset()
	ranks, err := Ranks(poset)
	if err != nil {
		return nil, err
	}

	out := make([]MorseNode, poset.Size())
	for v := range out {
		label := ""
		if ann := mg.Annotation(v); len(ann) > 0 {
			label = ann[0]
		}
		children := poset.Children(v)
		if children == nil {
			children = []int{}
		}
		out[v] = MorseNode{
			Node:        v,
			Rank:        ranks[v],
			Label:       label,
			Adjacencies: children,
		}
	}
	return out, nil
}

// Ranks computes, for every poset element, the length of the longest
// descending chain below it. It fails on out-of-range children and cycles.
func Ranks(poset dynamics.Poset) ([]int, error) {
	const (
		white = iota
		gray
		black
	)
	n := poset.Size()
	ranks := make([]int, n)
	color := make([]int, n)

	var visit func(v int) error
	visit = func(v int) error {
		color[v] = gray
		for _, c := range poset.Children(v) {
			if c < 0 || c >= n {
				return errors.New(errors.ErrCodeInvalidIndex, "morse node %d: child %d outside [0,%d)", v, c, n)
			}
			switch color[c] {
			case gray:
				return errors.New(errors.ErrCodeInvalidInput, "morse graph has a cycle through node %d", c)
			case white:
				if err := visit(c); err != nil {
					return err
				}
			}
			ranks[v] = max(ranks[v], ranks[c]+1)
		}
		color[v] = black
		return nil
	}

	for v := range n {
		if color[v] == white {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}
	return ranks, nil
}

// MorseSetsSection exports each Morse set with its cells translated to
// complex indices.
func MorseSetsSection(cm *CellMap, md dynamics.MorseDecomposition) ([]MorseSet, error) {
	out := make([]MorseSet, md.Poset().Size())
	for v := range out {
		cells, err := cm.Cells(md.MorseSet(v))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidIndex, err, "morse set %d", v)
		}
		out[v] = MorseSet{Index: v, Cells: cells}
	}
	return out, nil
}

// STGSection exports the state-transition graph with every vertex and
// successor translated to complex indices.
func STGSection(cm *CellMap, dg dynamics.DomainGraph) ([]STGNode, error) {
	g := dg.Digraph()
	out := make([]STGNode, g.Size())
	for v := range out {
		node, err := cm.Complex(v)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidIndex, err, "stg vertex %d", v)
		}
		adj, err := cm.Cells(g.Adjacencies(v))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidIndex, err, "stg vertex %d", v)
		}
		out[v] = STGNode{Node: node, Adjacencies: adj}
	}
	return out, nil
}
