package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/cyjs/pkg/cyjs"
)

// ReadJSON decodes a Cytoscape.js JSON document from r.
//
// The input must be a JSON object. Recognized members are "data" (an array of
// [key, value] pairs or an object), "directed", "multigraph", and "elements"
// with "nodes" and "edges" arrays of {"data": {...}} records. Unknown members
// are ignored.
//
// Numbers are decoded as int64 when they are integral and float64 otherwise.
// Attribute keys keep the order in which they appear in the input.
//
// ReadJSON only checks that the input is well-formed JSON of the right
// shape. Missing required fields (elements, node values, edge endpoints) are
// reported by [cyjs.Graph] when the document is converted.
//
// The returned document is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*cyjs.Document, error) {
	var doc cyjs.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &doc, nil
}

// ImportJSON reads a JSON file at path and returns the decoded document.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (*cyjs.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
