package cyjs

import (
	"fmt"

	"github.com/matzehuels/cyjs/pkg/graph"
)

// Data converts g into a Cytoscape.js document.
//
// Graph-level attributes become the document's data pairs, in insertion
// order. Every node becomes a record holding a copy of its attributes plus:
//   - id: the node identifier formatted with fmt.Sprint
//   - value: the node identifier itself
//   - name: the attribute under the mapped name field, or the id string when
//     that attribute is missing or falsy
//
// Every edge instance (including each parallel edge of a multigraph) becomes a
// record holding a copy of its attributes plus source and target, taken from
// the mapped source and target fields when truthy and from the edge's
// endpoints otherwise.
//
// Data returns a *errors.ConfigurationError, before reading the graph, if the
// mapping's source, target, and name fields are not distinct. The graph is
// never modified and the document shares no attribute containers with it.
func Data[K comparable](g *graph.Graph[K], opts ...Option) (*Document, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Data:       PairsFromAttrs(g.Attrs()),
		Directed:   g.IsDirected(),
		Multigraph: g.IsMultigraph(),
		Elements: &Elements{
			Nodes: make([]Element, 0, g.NodeCount()),
			Edges: make([]Element, 0, g.EdgeCount()),
		},
	}

	for _, n := range g.Nodes() {
		data := n.Attrs.Clone()
		id := fmt.Sprint(n.ID)
		data.Set(KeyID, id)
		data.Set(KeyValue, n.ID)
		data.Set(KeyName, lookupOr(n.Attrs, o.keys.Name, id))
		doc.Elements.Nodes = append(doc.Elements.Nodes, Element{Data: data})
	}

	for _, e := range g.Edges() {
		data := e.Attrs.Clone()
		data.Set(KeySource, lookupOr(e.Attrs, o.keys.Source, e.U))
		data.Set(KeyTarget, lookupOr(e.Attrs, o.keys.Target, e.V))
		doc.Elements.Edges = append(doc.Elements.Edges, Element{Data: data})
	}

	o.logger.Debug("exported graph",
		"nodes", len(doc.Elements.Nodes),
		"edges", len(doc.Elements.Edges),
		"directed", doc.Directed,
		"multigraph", doc.Multigraph)
	return doc, nil
}
