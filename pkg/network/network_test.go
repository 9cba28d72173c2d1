package network

import (
	"slices"
	"testing"

	"github.com/morsedb/morsedb/pkg/errors"
)

func TestNew(t *testing.T) {
	n, err := New([]string{"X", "Y", "Z"}, []Edge{
		{Source: "Y", Target: "X", Activating: false},
		{Source: "X", Target: "Y", Activating: true},
		{Source: "X", Target: "Z", Activating: true},
		{Source: "Z", Target: "Z", Activating: false},
	}, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if n.Size() != 3 {
		t.Errorf("Size() = %d, want 3", n.Size())
	}
	if n.Model() != ModelDefault {
		t.Errorf("Model() = %q, want %q", n.Model(), ModelDefault)
	}
	if got := n.Outputs(0); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("Outputs(X) = %v, want [1 2]", got)
	}
	if got := n.Inputs(2); !slices.Equal(got, []int{0, 2}) {
		t.Errorf("Inputs(Z) = %v, want [0 2]", got)
	}
	if got := n.Domains(); !slices.Equal(got, []int{3, 2, 2}) {
		t.Errorf("Domains() = %v, want [3 2 2]", got)
	}
	if got := n.DomainCount(); got != 12 {
		t.Errorf("DomainCount() = %d, want 12", got)
	}
	if !n.Interaction(0, 1) {
		t.Error("X->Y should be activating")
	}
	if n.Interaction(1, 0) {
		t.Error("Y->X should be repressing")
	}
	if n.HasEdge(1, 2) {
		t.Error("Y->Z should not exist")
	}
	if i, ok := n.Index("Z"); !ok || i != 2 {
		t.Errorf("Index(Z) = %d, %v", i, ok)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		edges []Edge
		model Model
	}{
		{"no nodes", nil, nil, ModelDefault},
		{"duplicate node", []string{"X", "X"}, nil, ModelDefault},
		{"invalid name", []string{"X Y"}, nil, ModelDefault},
		{"unknown source", []string{"X"}, []Edge{{Source: "Q", Target: "X"}}, ModelDefault},
		{"unknown target", []string{"X"}, []Edge{{Source: "X", Target: "Q"}}, ModelDefault},
		{"duplicate edge", []string{"X"}, []Edge{{Source: "X", Target: "X"}, {Source: "X", Target: "X"}}, ModelDefault},
		{"unknown model", []string{"X"}, nil, Model("boolean")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.names, tt.edges, tt.model)
			if !errors.Is(err, errors.ErrCodeInvalidNetwork) {
				t.Errorf("New() error = %v, want %s", err, errors.ErrCodeInvalidNetwork)
			}
		})
	}
}

func TestEdgesOrder(t *testing.T) {
	n, err := Parse("X : ~Y\nY : X", ModelDefault)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Edge{
		{Source: "X", Target: "Y", Activating: true},
		{Source: "Y", Target: "X", Activating: false},
	}
	if got := n.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}
