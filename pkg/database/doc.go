// Package database exports network dynamics into a single JSON document.
//
// # Overview
//
// The analysis library numbers the top-dimensional cells (domains) of a
// network's phase space 0..n-1. The cubical complex library numbers all
// cells of a complex built with one extra box per axis. This package builds
// the bijection between the two ([CellMap]) and uses it to translate every
// cell reference before emitting JSON.
//
// # Document
//
//	{
//	  "network": {"nodes": [{"id": "X"}], "links": [{"source": "X", "target": "Y", "type": 1}]},
//	  "complex": {"dimension": 2, "verts_coords": [[0, 0]], "cells": [{"cell_dim": 0, "cell_index": 0, "cell_verts": [0]}]},
//	  "parameter_graph": {"nodes": [{"id": 0}], "links": [{"source": 1, "target": 0}]},
//	  "dynamics_database": [
//	    {
//	      "parameter": 0,
//	      "morse_graph": [{"node": 0, "rank": 0, "label": "FP { 0, 0 }", "adjacencies": []}],
//	      "morse_sets": [{"index": 0, "cells": [27]}],
//	      "stg": [{"node": 27, "adjacencies": [27]}]
//	    }
//	  ]
//	}
//
// Every array is emitted, empty or not; there are no null values.
//
// # Usage
//
//	db, err := database.Build(src, database.Options{Parameters: []int{0, 3}})
//	if err != nil {
//	    return err
//	}
//	return database.Save("db.json", db, database.WriteOptions{})
//
// [Build] is synchronous and performs a single pass over the source.
// [Save] opens the output file, writes once and closes it.
package database
