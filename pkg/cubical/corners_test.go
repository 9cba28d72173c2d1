package cubical

import (
	"slices"
	"testing"
)

func TestCorners2D(t *testing.T) {
	c, err := New([]int{3, 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		cell int
		want []int
	}{
		{4, []int{4}},
		{9, []int{0, 1}},
		{13, []int{4, 5}},
		{18, []int{0, 3}},
		{23, []int{5, 8}},
		{27, []int{0, 1, 4, 3}},
		{28, []int{1, 2, 5, 4}},
		{30, []int{3, 4, 7, 6}},
		{31, []int{4, 5, 8, 7}},
	}
	for _, tt := range tests {
		got, err := c.Corners(tt.cell)
		if err != nil {
			t.Errorf("Corners(%d) error: %v", tt.cell, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("Corners(%d) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestCorners3D(t *testing.T) {
	c, err := New([]int{2, 2, 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	top := 7 * c.Positions()
	got, err := c.Corners(top)
	if err != nil {
		t.Fatalf("Corners: %v", err)
	}
	want := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if !slices.Equal(got, want) {
		t.Errorf("Corners(%d) = %v, want %v", top, got, want)
	}
}

func TestCornersErrors(t *testing.T) {
	c, _ := New([]int{3, 3})
	if _, err := c.Corners(-1); err == nil {
		t.Error("Corners(-1) should fail")
	}
	if _, err := c.Corners(36); err == nil {
		t.Error("Corners(36) should fail")
	}
	if _, err := c.Corners(11); err == nil {
		t.Error("Corners on a fringe cell should fail")
	}
}
