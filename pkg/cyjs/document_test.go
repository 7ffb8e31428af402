package cyjs

import (
	"encoding/json"
	"testing"
)

func TestPairsJSON(t *testing.T) {
	ps := Pairs{{Key: "foo", Value: 1}, {Key: "bar", Value: "x"}}
	got, err := json.Marshal(ps)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if want := `[["foo",1],["bar","x"]]`; string(got) != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}

	var nilPairs Pairs
	got, _ = json.Marshal(nilPairs)
	if string(got) != "[]" {
		t.Errorf("Marshal(nil) = %s, want []", got)
	}
}

func TestPairsUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Pairs
		wantErr bool
	}{
		{"array form", `[["foo", 1], ["bar", "x"]]`, Pairs{{"foo", int64(1)}, {"bar", "x"}}, false},
		{"object form keeps order", `{"z": 1.5, "a": true}`, Pairs{{"z", 1.5}, {"a", true}}, false},
		{"null", `null`, nil, false},
		{"empty", `[]`, Pairs{}, false},
		{"short pair", `[["foo"]]`, nil, true},
		{"non-string key", `[[1, 2]]`, nil, true},
		{"scalar", `"foo"`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Pairs
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("pair %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDocumentJSON(t *testing.T) {
	input := `{
	  "data": [["title", "t"]],
	  "directed": true,
	  "elements": {
	    "nodes": [{"data": {"id": "1", "value": 1, "name": "one", "tags": ["a"]}}],
	    "edges": [{"data": {"source": 1, "target": 1, "w": 0.5}}]
	  }
	}`

	var doc Document
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !doc.Directed || doc.Multigraph {
		t.Errorf("flags = (%v, %v), want (true, false)", doc.Directed, doc.Multigraph)
	}
	if doc.Elements == nil || len(doc.Elements.Nodes) != 1 || len(doc.Elements.Edges) != 1 {
		t.Fatalf("elements = %+v, want 1 node and 1 edge", doc.Elements)
	}
	n := doc.Elements.Nodes[0].Data
	if got, _ := n.Get("value"); got != int64(1) {
		t.Errorf("value = %v (%T), want int64 1", got, got)
	}
	if keys := n.Keys(); len(keys) != 4 || keys[3] != "tags" {
		t.Errorf("keys = %v, want document order", keys)
	}

	g, err := Graph[int](&doc)
	if err != nil {
		t.Fatalf("Graph() error: %v", err)
	}
	if !g.HasEdge(1, 1) {
		t.Error("self loop 1-1 missing")
	}
}

func TestDocumentWithoutElements(t *testing.T) {
	var doc Document
	if err := json.Unmarshal([]byte(`{"data": []}`), &doc); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if doc.Elements != nil {
		t.Errorf("Elements = %+v, want nil", doc.Elements)
	}
}
