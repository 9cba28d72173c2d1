// Package network models the regulatory networks whose dynamics morsedb
// exports.
//
// A [Network] is a directed graph of named nodes where each edge is either
// activating or repressing. Networks are usually read from their textual
// specification with [Parse]:
//
//	net, err := network.Parse("X : ~Y\nY : X", network.ModelDefault)
//
// or assembled from explicit edges with [New].
//
// # Domains
//
// Each out-edge of a node introduces one threshold on that node's axis of
// phase space, so node i has len(Outputs(i))+1 domains. [Network.Domains]
// returns these counts; their product is the number of top-dimensional
// cells the analysis library indexes 0..n-1.
//
// # Models
//
// Under [ModelEcology] every interaction is exported as repressing,
// regardless of the sign written in the specification.
package network
