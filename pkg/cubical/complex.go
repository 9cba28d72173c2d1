package cubical

import (
	"errors"
	"math/bits"
	"slices"
)

var (
	// ErrEmptyBoxes is returned by [New] when no axis is given.
	ErrEmptyBoxes = errors.New("cubical: complex needs at least one axis")

	// ErrBoxCount is returned by [New] when an axis has fewer than one box.
	ErrBoxCount = errors.New("cubical: every axis needs at least one box")

	// ErrTooLarge is returned by [New] when the cell count overflows int.
	ErrTooLarge = errors.New("cubical: complex too large")
)

// maxDimension bounds the number of axes so shape masks fit in an int.
const maxDimension = 30

// Complex is a cubical complex on a grid of boxes.
//
// Cells are addressed by an integer index built from the cell's shape and
// the position of its lower corner:
//
//	cell = typeIndex(shape)*M + position
//
// where M is the number of grid positions, position enumerates lower corners
// with axis 0 varying fastest, and shapes (bit masks of the axes the cell
// extends along) are ordered by dimension, then by mask value. As a
// consequence all cells of one dimension form a contiguous index range, and
// a vertex's cell index equals its position.
//
// The complex does not store its right boundary: a cell whose lower corner
// sits on the last layer of an axis it extends along would wrap around.
// Such cells are the right fringe; see [Complex.RightFringe].
type Complex struct {
	boxes   []int
	strides []int
	m       int
	types   []int // type index -> shape mask
	typeOf  []int // shape mask -> type index
	begin   []int // dimension -> first type index of that dimension
}

// New builds a complex with boxes[d] grid positions along axis d.
func New(boxes []int) (*Complex, error) {
	if len(boxes) == 0 {
		return nil, ErrEmptyBoxes
	}
	if len(boxes) > maxDimension {
		return nil, ErrTooLarge
	}

	c := &Complex{
		boxes:   slices.Clone(boxes),
		strides: make([]int, len(boxes)),
		m:       1,
	}
	for d, b := range boxes {
		if b < 1 {
			return nil, ErrBoxCount
		}
		c.strides[d] = c.m
		if c.m > (1<<62)/b {
			return nil, ErrTooLarge
		}
		c.m *= b
	}
	if c.m > (1<<62)>>len(boxes) {
		return nil, ErrTooLarge
	}

	n := 1 << len(boxes)
	c.types = make([]int, n)
	for s := range n {
		c.types[s] = s
	}
	slices.SortStableFunc(c.types, func(a, b int) int {
		return bits.OnesCount(uint(a)) - bits.OnesCount(uint(b))
	})
	c.typeOf = make([]int, n)
	c.begin = make([]int, len(boxes)+2)
	for t, s := range c.types {
		c.typeOf[s] = t
	}
	for k := 0; k <= len(boxes)+1; k++ {
		c.begin[k] = slices.IndexFunc(c.types, func(s int) bool { return bits.OnesCount(uint(s)) >= k })
		if c.begin[k] < 0 {
			c.begin[k] = n
		}
	}
	return c, nil
}

// Dimension returns the number of axes.
func (c *Complex) Dimension() int { return len(c.boxes) }

// Boxes returns a copy of the grid extent along each axis.
func (c *Complex) Boxes() []int { return slices.Clone(c.boxes) }

// Positions returns the number of grid positions (M).
func (c *Complex) Positions() int { return c.m }

// Size returns the total number of cells, 2^D * M.
func (c *Complex) Size() int { return len(c.types) * c.m }

// Shape returns the bit mask of axes the cell extends along.
func (c *Complex) Shape(cell int) int { return c.types[cell/c.m] }

// Dim returns the dimension of the cell.
func (c *Complex) Dim(cell int) int { return bits.OnesCount(uint(c.Shape(cell))) }

// Position returns the grid position of the cell's lower corner.
func (c *Complex) Position(cell int) int { return cell % c.m }

// Coordinates returns the coordinates of the cell's lower corner.
func (c *Complex) Coordinates(cell int) []int {
	pos := c.Position(cell)
	coords := make([]int, len(c.boxes))
	for d, b := range c.boxes {
		coords[d] = pos % b
		pos /= b
	}
	return coords
}

// Cell returns the index of the cell with the given shape and lower corner.
// ok is false when the coordinates fall outside the grid or shape is not a
// valid mask.
func (c *Complex) Cell(shape int, coords []int) (int, bool) {
	if shape < 0 || shape >= len(c.types) || len(coords) != len(c.boxes) {
		return 0, false
	}
	pos := 0
	for d, x := range coords {
		if x < 0 || x >= c.boxes[d] {
			return 0, false
		}
		pos += x * c.strides[d]
	}
	return c.typeOf[shape]*c.m + pos, true
}

// VertexIndex returns the cell index of the vertex at coords.
func (c *Complex) VertexIndex(coords []int) (int, bool) {
	return c.Cell(0, coords)
}

// RightFringe reports whether the cell extends past the last layer of
// vertices along some axis.
func (c *Complex) RightFringe(cell int) bool {
	shape := c.Shape(cell)
	pos := c.Position(cell)
	for d, b := range c.boxes {
		x := pos % b
		pos /= b
		if shape&(1<<d) != 0 && x == b-1 {
			return true
		}
	}
	return false
}

// CellsOfDim returns the index range [begin, end) of cells of dimension k.
func (c *Complex) CellsOfDim(k int) (begin, end int) {
	if k < 0 || k > len(c.boxes) {
		return 0, 0
	}
	return c.begin[k] * c.m, c.begin[k+1] * c.m
}

// Each calls fn for every cell of dimension k in index order, stopping
// early when fn returns false.
func (c *Complex) Each(k int, fn func(cell int) bool) {
	begin, end := c.CellsOfDim(k)
	for cell := begin; cell < end; cell++ {
		if !fn(cell) {
			return
		}
	}
}

// Upper returns the coordinates of the cell's upper corner.
func (c *Complex) Upper(cell int) []int {
	coords := c.Coordinates(cell)
	shape := c.Shape(cell)
	for d := range coords {
		if shape&(1<<d) != 0 {
			coords[d]++
		}
	}
	return coords
}
