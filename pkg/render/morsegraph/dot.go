package morsegraph

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/morsedb/morsedb/pkg/database"
)

// Options configures Morse graph rendering.
type Options struct {
	// Detailed adds each node's rank and Morse set size to its label.
	Detailed bool
}

// ToDOT converts one dynamics entry's Morse graph to Graphviz DOT.
//
// Nodes of equal rank share a row, with the highest rank on top so edges
// point down towards attractors. Nodes whose label names a fixed point or a
// cycle are filled so stable behaviour stands out.
func ToDOT(entry database.DynamicsEntry, opts Options) string {
	sizes := make(map[int]int, len(entry.MorseSets))
	for _, s := range entry.MorseSets {
		sizes[s.Index] = len(s.Cells)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph \"parameter %d\" {\n", entry.Parameter)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range entry.MorseGraph {
		label := fmtLabel(n, sizes[n.Node], opts.Detailed)
		fmt.Fprintf(&buf, "  %d [%s];\n", n.Node, strings.Join(fmtAttrs(n, label), ", "))
	}

	buf.WriteString("\n")
	for _, row := range rows(entry.MorseGraph) {
		ids := make([]string, len(row))
		for i, v := range row {
			ids[i] = fmt.Sprint(v)
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
	}

	buf.WriteString("\n")
	for _, n := range entry.MorseGraph {
		for _, c := range n.Adjacencies {
			fmt.Fprintf(&buf, "  %d -> %d;\n", n.Node, c)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n database.MorseNode, cells int, detailed bool) string {
	label := fmt.Sprintf("%d", n.Node)
	if n.Label != "" {
		label += ": " + n.Label
	}
	if detailed {
		label += fmt.Sprintf("\nrank: %d\ncells: %d", n.Rank, cells)
	}
	return label
}

func fmtAttrs(n database.MorseNode, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case strings.HasPrefix(n.Label, "FP"):
		attrs = append(attrs, "fillcolor=\"#c7e9c0\"")
	case strings.HasPrefix(n.Label, "FC"), strings.HasPrefix(n.Label, "XC"):
		attrs = append(attrs, "fillcolor=\"#fdd0a2\"")
	}
	return attrs
}

// rows groups nodes by rank, highest rank first.
func rows(nodes []database.MorseNode) [][]int {
	byRank := make(map[int][]int)
	for _, n := range nodes {
		byRank[n.Rank] = append(byRank[n.Rank], n.Node)
	}
	ranks := make([]int, 0, len(byRank))
	for r := range byRank {
		ranks = append(ranks, r)
	}
	slices.Sort(ranks)
	slices.Reverse(ranks)

	out := make([][]int, len(ranks))
	for i, r := range ranks {
		out[i] = byRank[r]
	}
	return out
}
