// Package io reads and writes Cytoscape.js documents as JSON.
//
// # Overview
//
// Package cyjs converts between graphs and [cyjs.Document] values but never
// touches bytes. This package is the other half: it encodes documents for
// files, HTTP bodies, or the Cytoscape.js front end, and decodes documents
// produced by Cytoscape, NetworkX, or earlier exports.
//
// # JSON Format
//
//	{
//	  "data": [["name", "example"]],
//	  "directed": false,
//	  "multigraph": false,
//	  "elements": {
//	    "nodes": [
//	      {"data": {"id": "a", "value": "a", "name": "a"}},
//	      {"data": {"id": "b", "value": "b", "name": "b"}}
//	    ],
//	    "edges": [
//	      {"data": {"source": "a", "target": "b"}}
//	    ]
//	  }
//	}
//
// The "data" member may also be a plain object; it is always written back as
// an array of pairs. Attribute order inside each record is preserved in both
// directions.
//
// # Import
//
// Use [ImportJSON] to read a document from a file path, or [ReadJSON] to read
// from any io.Reader, then convert it:
//
//	doc, err := io.ImportJSON("graph.cyjs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, err := cyjs.Graph[any](doc)
//
// # Export
//
// Use [ExportJSON] to write a document to a file, or [WriteJSON] to write to
// any io.Writer:
//
//	doc, err := cyjs.Data(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = io.ExportJSON(doc, "graph.cyjs")
//
// # Numbers
//
// JSON does not distinguish integers from floats. Integral numbers decode as
// int64 and all others as float64; [cyjs.Graph] converts them to the caller's
// identifier type where possible.
//
// # Concurrency
//
// All functions in this package are safe to call concurrently as long as the
// documents passed in are not modified at the same time.
package io
