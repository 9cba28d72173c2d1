// Package cubical names the cells of a cubical complex the way the external
// cubical-complex library does.
//
// morsedb never builds topology itself. It only needs to agree with the
// complex library on how cells are numbered, which cells are on the right
// fringe, and where each cell's corners are, so that exported cell indices
// can be fed straight back into that library.
//
// # Indexing
//
// A complex over boxes [b0, b1, ...] has M = b0*b1*... grid positions and
// 2^D cell shapes. Cell indices are type*M + position; shapes are grouped by
// dimension so that
//
//	begin, end := c.CellsOfDim(0) // vertices: 0 .. M-1
//	begin, end  = c.CellsOfDim(D) // top cells: (2^D-1)*M .. 2^D*M-1
//
// # Fringe
//
// The complex has no right boundary. Exporters that need one build the
// complex with one extra box per axis and drop the [Complex.RightFringe]
// cells, which leaves exactly the closed cells over the original grid.
package cubical
