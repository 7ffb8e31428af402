// Package pkg provides the libraries behind cyjs, a converter between
// attributed graphs and the Cytoscape.js JSON document format.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. [graph] and [cyjs] - the graph model and the two-way conversion
//  2. [io], [edgelist], and [config] - reading and writing documents, edge
//     lists, and TOML configuration
//  3. [nodelink] - Graphviz rendering of imported graphs
//
// # Data Flow
//
//	edge list ──edgelist.Read──▶ graph.Graph ──cyjs.Data──▶ cyjs.Document ──io.WriteJSON──▶ JSON
//	JSON ──io.ReadJSON──▶ cyjs.Document ──cyjs.Graph──▶ graph.Graph ──nodelink.ToDOT──▶ DOT / SVG
//
// Errors from every package carry an [errors.Code] so callers can branch on
// the failure class without matching messages.
package pkg
