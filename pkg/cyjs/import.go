package cyjs

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/matzehuels/cyjs/pkg/errors"
	"github.com/matzehuels/cyjs/pkg/graph"
)

// Graph reconstructs a graph from a Cytoscape.js document.
//
// The graph is a multigraph when doc.Multigraph is set and directed when
// doc.Directed is set. Graph-level attributes come from doc.Data, with the
// last value winning for repeated keys.
//
// Each node record adds the node found under data.value, with the whole
// record (id, value, and name included) as its attributes. A repeated node
// merges into the earlier one. Each edge record adds an edge from data.source
// to data.target carrying the whole record as attributes. On a multigraph
// every record creates its own parallel edge; on a simple graph a repeated
// edge merges into the existing one.
//
// Identifiers must be assignable to K. Integral JSON numbers are also
// accepted for integer key types and any number for float64 keys.
//
// Graph returns a *errors.ConfigurationError for an invalid mapping and a
// *errors.MalformedDocumentError when elements, a record's data, a node's
// value, or an edge's source or target is missing or unusable. No partial
// graph is returned on error, and doc is never modified.
func Graph[K comparable](doc *Document, opts ...Option) (*graph.Graph[K], error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.Elements == nil {
		return nil, &errors.MalformedDocumentError{Field: "elements", Index: -1}
	}

	var gopts []graph.Option
	if doc.Multigraph {
		gopts = append(gopts, graph.Multigraph())
	}
	g := graph.New[K](gopts...)
	if doc.Directed {
		g = g.ToDirected()
	}
	g.SetAttrs(doc.Data.Attrs())

	for i, rec := range doc.Elements.Nodes {
		if rec.Data == nil {
			return nil, &errors.MalformedDocumentError{Section: "nodes", Index: i, Field: "data"}
		}
		id, err := recordKey[K](rec.Data, "nodes", i, KeyValue)
		if err != nil {
			return nil, err
		}
		g.AddNode(id, rec.Data)
	}

	for i, rec := range doc.Elements.Edges {
		if rec.Data == nil {
			return nil, &errors.MalformedDocumentError{Section: "edges", Index: i, Field: "data"}
		}
		u, err := recordKey[K](rec.Data, "edges", i, KeySource)
		if err != nil {
			return nil, err
		}
		v, err := recordKey[K](rec.Data, "edges", i, KeyTarget)
		if err != nil {
			return nil, err
		}
		g.AddEdge(u, v, rec.Data)
	}

	o.logger.Debug("imported graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"directed", g.IsDirected(),
		"multigraph", g.IsMultigraph())
	return g, nil
}

// recordKey reads field from a record and converts it to a node identifier.
func recordKey[K comparable](data *graph.Attrs, section string, index int, field string) (K, error) {
	var zero K
	raw, ok := data.Get(field)
	if !ok || raw == nil {
		return zero, &errors.MalformedDocumentError{Section: section, Index: index, Field: field}
	}
	k, ok := asKey[K](raw)
	if !ok {
		return zero, &errors.MalformedDocumentError{
			Section: section,
			Index:   index,
			Field:   field,
			Reason:  fmt.Sprintf("%T is not a valid %T identifier", raw, zero),
		}
	}
	// Values such as JSON arrays satisfy K = any but cannot be map keys.
	if !reflect.TypeOf(raw).Comparable() {
		return zero, &errors.MalformedDocumentError{
			Section: section,
			Index:   index,
			Field:   field,
			Reason:  fmt.Sprintf("%T cannot be used as an identifier", raw),
		}
	}
	return k, nil
}

// asKey converts v to K. Besides plain assignability it accepts integral
// numbers for int, int32, and int64 keys and any number for float64 keys,
// since JSON decoding does not preserve Go integer types.
func asKey[K comparable](v any) (K, bool) {
	if k, ok := v.(K); ok {
		return k, true
	}
	var k K
	switch p := any(&k).(type) {
	case *int:
		n, ok := toInt64(v)
		if !ok || n < math.MinInt || n > math.MaxInt {
			return k, false
		}
		*p = int(n)
	case *int32:
		n, ok := toInt64(v)
		if !ok || n < math.MinInt32 || n > math.MaxInt32 {
			return k, false
		}
		*p = int32(n)
	case *int64:
		n, ok := toInt64(v)
		if !ok {
			return k, false
		}
		*p = n
	case *float64:
		f, ok := toFloat64(v)
		if !ok {
			return k, false
		}
		*p = f
	default:
		return k, false
	}
	return k, true
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case json.Number:
		n, err := x.Int64()
		return n, err == nil
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	return 0, false
}
