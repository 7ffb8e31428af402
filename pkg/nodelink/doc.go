// Package nodelink renders attributed graphs as node-link diagrams.
//
// # Usage
//
// Import a Cytoscape document, convert it to DOT, then render to SVG:
//
//	g, err := cyjs.Graph[string](doc)
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: node and edge labels list every attribute in insertion order
//   - NameKey: attribute used for node labels, "name" by default
//
// # DOT Format
//
// [ToDOT] emits a digraph with -> edges for directed graphs and a graph with
// -- edges otherwise. The output can be rendered via [RenderSVG] or saved and
// processed with external Graphviz tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
