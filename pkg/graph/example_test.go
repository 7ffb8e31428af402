package graph_test

import (
	"fmt"

	"github.com/matzehuels/cyjs/pkg/graph"
)

func ExampleGraph_AddEdge() {
	g := graph.New[string](graph.Multigraph())
	g.AddEdge("berlin", "paris", graph.NewAttrs("line", "TGV"))
	g.AddEdge("berlin", "paris", graph.NewAttrs("line", "ICE"))

	for _, e := range g.Edges() {
		line, _ := e.Attrs.Get("line")
		fmt.Println(e.U, e.V, e.Key, line)
	}
	// Output:
	// berlin paris 0 TGV
	// berlin paris 1 ICE
}

func ExampleAttrs() {
	a := graph.NewAttrs("name", "app", "version", "1.0")
	a.Set("name", "application")
	a.Set("license", "MIT")

	for k, v := range a.All() {
		fmt.Println(k, v)
	}
	// Output:
	// name application
	// version 1.0
	// license MIT
}
