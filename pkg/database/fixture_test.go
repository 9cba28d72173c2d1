package database

import (
	"testing"

	"github.com/morsedb/morsedb/pkg/dynamics"
	"github.com/morsedb/morsedb/pkg/network"
)

// toggleSource is a two-node toggle switch with three parameters:
// a full cycle, a single fixed point, and a bistable switch whose
// repelling Morse set carries no annotation.
func toggleSource(t *testing.T) *dynamics.StaticSource {
	t.Helper()
	net, err := network.Parse("X : ~Y\nY : X", network.ModelDefault)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	dyn := func(stg dynamics.AdjacencyList, morse dynamics.StaticMorse) dynamics.Dynamics {
		return dynamics.Dynamics{
			DomainGraph:        dynamics.StaticDomainGraph{Graph: stg},
			MorseDecomposition: morse,
			MorseGraph:         morse,
		}
	}

	return &dynamics.StaticSource{
		Net:        net,
		Parameters: dynamics.AdjacencyList{{1}, {0, 2}, {1}},
		Results: map[int]dynamics.Dynamics{
			0: dyn(
				dynamics.AdjacencyList{{1}, {3}, {0}, {2}},
				dynamics.StaticMorse{{Cells: []int{0, 1, 2, 3}, Annotations: []string{"FC"}}},
			),
			1: dyn(
				dynamics.AdjacencyList{{1}, {1}, {0}, {1}},
				dynamics.StaticMorse{{Cells: []int{1}, Annotations: []string{"FP { 1, 0 }"}}},
			),
			2: dyn(
				dynamics.AdjacencyList{{0}, {0, 3}, {0}, {3}},
				dynamics.StaticMorse{
					{Cells: []int{1}, Children: []int{1, 2}},
					{Cells: []int{0}, Annotations: []string{"FP { 0, 0 }"}},
					{Cells: []int{3}, Annotations: []string{"FP { 1, 1 }"}},
				},
			),
		},
	}
}
