// Package graph provides an attributed graph with optional edge direction and
// parallel edges.
//
// # Overview
//
// A [Graph] holds nodes identified by any comparable key type, edges between
// them, and attribute containers ([Attrs]) on the graph itself, on every
// node, and on every edge instance. It is the in-memory side of the
// Cytoscape.js conversion in package cyjs, but it has no knowledge of any
// wire format.
//
// # Basic Usage
//
//	g := graph.New[string](graph.Directed())
//	g.AddNode("app", graph.NewAttrs("name", "App"))
//	g.AddEdge("app", "lib", graph.NewAttrs("weight", 2))
//
// Missing endpoints are created by [Graph.AddEdge]. Adding a node or edge
// that already exists merges the new attributes into the old ones.
//
// # Multigraphs
//
// Graphs created with [Multigraph] keep every call to [Graph.AddEdge] as a
// separate edge instance. Each instance between the same endpoints gets a
// distinct integer key, returned by AddEdge, so that attribute updates can
// target exactly the edge just created:
//
//	g := graph.New[int](graph.Multigraph())
//	k := g.AddEdge(1, 2, nil)
//	attrs, _ := g.EdgeAttrs(1, 2, k)
//	attrs.Set("color", "red")
//
// # Ordering
//
// Nodes, edges, and attribute keys are all kept in insertion order. Iteration
// with [Graph.Nodes], [Graph.Edges], and [Attrs.All] is deterministic, which
// keeps exported documents stable across runs.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Concurrent readers are
// fine as long as nobody mutates the graph.
package graph
