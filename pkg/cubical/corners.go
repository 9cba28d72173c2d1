package cubical

import "fmt"

// Corners returns the vertex indices of a cell's corners.
//
// The order is:
//   - dimension 0: the vertex itself
//   - dimension 1: lower, upper
//   - dimension 2: lower, lower+e_a, upper, lower+e_b (a < b the free axes),
//     which walks the boundary of the square
//   - dimension k >= 3: all 2^k corners, ordered by the bit mask that selects
//     which free axes are raised
//
// Corners fails for fringe cells, whose upper corner is not part of the grid.
func (c *Complex) Corners(cell int) ([]int, error) {
	if cell < 0 || cell >= c.Size() {
		return nil, fmt.Errorf("cell %d outside complex of size %d", cell, c.Size())
	}
	if c.RightFringe(cell) {
		return nil, fmt.Errorf("cell %d lies on the right fringe", cell)
	}

	lower := c.Coordinates(cell)
	shape := c.Shape(cell)
	var free []int
	for d := range lower {
		if shape&(1<<d) != 0 {
			free = append(free, d)
		}
	}

	corner := func(raise int) int {
		coords := append([]int(nil), lower...)
		for i, d := range free {
			if raise&(1<<i) != 0 {
				coords[d]++
			}
		}
		v, _ := c.VertexIndex(coords)
		return v
	}

	switch len(free) {
	case 0:
		return []int{corner(0)}, nil
	case 1:
		return []int{corner(0), corner(1)}, nil
	case 2:
		return []int{corner(0b00), corner(0b01), corner(0b11), corner(0b10)}, nil
	}
	out := make([]int, 1<<len(free))
	for raise := range out {
		out[raise] = corner(raise)
	}
	return out, nil
}
