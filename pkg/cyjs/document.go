package cyjs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/cyjs/pkg/graph"
)

// Reserved keys of node and edge records. These names are fixed by the
// Cytoscape.js convention; the attribute-key mapping only chooses where their
// values are read from.
const (
	KeyID     = "id"
	KeyValue  = "value"
	KeyName   = "name"
	KeySource = "source"
	KeyTarget = "target"
)

// Document is a graph in Cytoscape.js JSON form.
//
// A nil Elements means the document has no "elements" member at all, which
// the importer rejects. An empty Elements is a valid, empty graph.
type Document struct {
	Data       Pairs     `json:"data"`
	Directed   bool      `json:"directed"`
	Multigraph bool      `json:"multigraph"`
	Elements   *Elements `json:"elements"`
}

// Elements holds the node and edge records of a document.
type Elements struct {
	Nodes []Element `json:"nodes"`
	Edges []Element `json:"edges"`
}

// Element is a single node or edge record. All attributes live in Data.
type Element struct {
	Data *graph.Attrs `json:"data"`
}

// Pair is one graph-level attribute.
type Pair struct {
	Key   string
	Value any
}

// MarshalJSON encodes the pair as a two-element array.
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Key, p.Value})
}

// UnmarshalJSON decodes a two-element [key, value] array.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("pair: want 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.Key); err != nil {
		return fmt.Errorf("pair key: %w", err)
	}
	v, err := decodeValue(raw[1])
	if err != nil {
		return fmt.Errorf("pair %q: %w", p.Key, err)
	}
	p.Value = v
	return nil
}

// Pairs is the ordered list of graph-level attributes. It encodes as an
// array of [key, value] arrays and decodes from either that form or a plain
// JSON object.
type Pairs []Pair

// MarshalJSON always emits an array, never null, so that exported
// documents have a stable shape.
func (ps Pairs) MarshalJSON() ([]byte, error) {
	if ps == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Pair(ps))
}

// UnmarshalJSON accepts [[k, v], ...] or {k: v, ...}.
func (ps *Pairs) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*ps = nil
		return nil
	}
	if trimmed[0] == '{' {
		var a graph.Attrs
		if err := a.UnmarshalJSON(trimmed); err != nil {
			return err
		}
		*ps = PairsFromAttrs(&a)
		return nil
	}
	var list []Pair
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return err
	}
	*ps = list
	return nil
}

// Attrs folds the pairs into an attribute container. On duplicate keys the
// last value wins, keeping the position of the first occurrence.
func (ps Pairs) Attrs() *graph.Attrs {
	a := &graph.Attrs{}
	for _, p := range ps {
		a.Set(p.Key, p.Value)
	}
	return a
}

// PairsFromAttrs lists the pairs of a in insertion order.
func PairsFromAttrs(a *graph.Attrs) Pairs {
	ps := make(Pairs, 0, a.Len())
	for k, v := range a.All() {
		ps = append(ps, Pair{Key: k, Value: v})
	}
	return ps
}

func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return graph.NormalizeJSON(v), nil
}
