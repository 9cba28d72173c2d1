// Package bundle loads precomputed analysis results.
//
// A bundle is what the external dynamics library produced for one network:
// the network itself, its parameter graph, and for each analysed parameter
// the state-transition graph and Morse decomposition. Cell references use
// the analysis library's top-cell numbering.
//
// # Formats
//
// Bundles are read from JSON, YAML or TOML, chosen by file extension:
//
//	network:
//	  spec: |
//	    X : ~Y
//	    Y : X
//	parameter_graph:
//	  size: 2
//	  adjacencies: [[1], [0]]
//	dynamics:
//	  - parameter: 0
//	    stg: [[1], [1], [0], [1]]
//	    morse_nodes:
//	      - cells: [1]
//	        annotations: ["FP { 1, 0 }"]
//
// The network may instead be given as explicit "nodes" and "edges"
// (edge "type" 1 activating, -1 repressing); "spec" and "nodes" are
// mutually exclusive.
//
// # Validation
//
// [Bundle.Validate] checks structure with go-playground/validator.
// [Bundle.Source] additionally checks every index against the network's
// domain count and the parameter graph size, then returns a
// [dynamics.Source] ready for export.
package bundle
