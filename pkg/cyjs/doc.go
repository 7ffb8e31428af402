// Package cyjs converts graphs to and from the Cytoscape.js JSON format.
//
// # Overview
//
// [Data] turns a [graph.Graph] into a [Document] and [Graph] turns a
// Document back into a graph. Both are pure functions: they perform no I/O
// and share no state. Encoding a Document to bytes is left to package io.
//
// # Document Format
//
//	{
//	  "data": [["title", "deps"]],
//	  "directed": true,
//	  "multigraph": false,
//	  "elements": {
//	    "nodes": [
//	      {"data": {"id": "1", "value": 1, "name": "app"}},
//	      {"data": {"id": "2", "value": 2, "name": "2"}}
//	    ],
//	    "edges": [
//	      {"data": {"weight": 3, "source": 1, "target": 2}}
//	    ]
//	  }
//	}
//
// Node records always carry id (the identifier as a string), value (the
// identifier itself), and name. Edge records always carry source and target.
// All other attributes are copied verbatim.
//
// # Attribute Keys
//
// [AttrKeys] chooses which attribute fields supply a node's name and an
// edge's source and target during export. Unset fields keep their defaults,
// so only the roles that differ need to be given:
//
//	doc, err := cyjs.Data(g, cyjs.WithAttrKeys(cyjs.AttrKeys{Name: "label"}))
//
// The source, target, and name fields must be three different names. Both
// conversions check this before doing any work and return a
// *errors.ConfigurationError otherwise.
//
// Values are only taken from these fields when they are truthy: a missing
// key, nil, false, 0, "", or an empty collection all select the fallback
// (the id string for names, the edge endpoints for source and target).
//
// # Round Trips
//
// For a graph whose attributes do not use the reserved keys, Graph(Data(g))
// yields a graph with the same nodes, edges, attributes, direction, and
// multigraph flag. The imported attributes additionally contain the reserved
// keys themselves, because each record is stored as a whole.
//
// # Concurrency
//
// All functions are safe to call concurrently on independent inputs.
// Exporting a graph that is being modified concurrently is not safe.
package cyjs
