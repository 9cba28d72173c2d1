// Package pkg provides the libraries behind morsedb.
//
// # Overview
//
// morsedb turns the results of a dynamics analysis of a regulatory network
// into one self-contained JSON document. The pkg directory is organized as:
//
//  1. [network], [cubical] - the network and its cubical complex
//  2. [dynamics] - interfaces to precomputed analysis results
//  3. [bundle] - reading analysis results from JSON, YAML or TOML
//  4. [database] - the exported document and the cell renumbering
//  5. [pipeline] - orchestration (load, export, cache, write)
//  6. [render/morsegraph] - Graphviz drawings of Morse graphs
//
// Supporting packages are [cache], [observability], [errors] and
// [buildinfo].
//
// # Data Flow
//
//	bundle file (json/yaml/toml)
//	         ↓
//	    [bundle] package (decode + validate)
//	         ↓
//	    [dynamics.Source]
//	         ↓
//	    [database] package (sections + cell bijection)
//	         ↓
//	    JSON (optionally snappy-compressed)
//
// # Quick Start
//
//	b, err := bundle.Load("toggle.yaml")
//	if err != nil {
//	    return err
//	}
//	src, err := b.Source()
//	if err != nil {
//	    return err
//	}
//	db, err := database.Build(src, database.Options{})
//	if err != nil {
//	    return err
//	}
//	return database.Save("toggle.json", db, database.WriteOptions{Indent: true})
package pkg
