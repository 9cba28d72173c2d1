// Package morsegraph draws the Morse graph of one exported parameter.
//
// [ToDOT] produces Graphviz DOT source from a [database.DynamicsEntry]:
// one box per Morse node labelled "index: annotation", an edge to each
// child in the Morse poset, and one row per rank so attractors sit at the
// bottom. [RenderSVG] lays the graph out in-process with
// github.com/goccy/go-graphviz, so no Graphviz installation is needed.
// PNG and PDF go through rsvg-convert.
//
//	dot := morsegraph.ToDOT(db.Dynamics[0], morsegraph.Options{})
//	svg, err := morsegraph.RenderSVG(ctx, dot)
package morsegraph
