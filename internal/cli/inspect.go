package cli

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cyjs/pkg/cyjs"
	"github.com/matzehuels/cyjs/pkg/graph"
	"github.com/matzehuels/cyjs/pkg/io"
)

// topNodeCount is how many of the most connected nodes inspect lists.
const topNodeCount = 5

// inspectCommand creates the inspect command, which imports a document and
// prints a summary of the resulting graph.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <doc.json>",
		Short: "Summarize a Cytoscape.js JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, args[0])
		},
	}
}

func (c *CLI) runInspect(cmd *cobra.Command, path string) error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}
	doc, err := io.ImportJSON(path)
	if err != nil {
		return err
	}
	g, err := cyjs.Graph[any](doc, c.converterOptions(cfg)...)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printTitle(w, filepath.Base(path))
	printStats(w, g.NodeCount(), g.EdgeCount())
	printKeyValue(w, "directed", yesNo(g.IsDirected()))
	printKeyValue(w, "multigraph", yesNo(g.IsMultigraph()))

	if g.Attrs().Len() > 0 {
		printTitle(w, "Graph attributes")
		for k, v := range g.Attrs().All() {
			printKeyValue(w, k, fmt.Sprint(v))
		}
	}

	if top := topNodes(g, topNodeCount); len(top) > 0 {
		printTitle(w, "Most connected")
		for _, n := range top {
			printDetail(w, "%s (%d)", n.label, n.degree)
		}
	}
	return nil
}

type rankedNode struct {
	label  string
	degree int
}

// topNodes returns up to limit nodes with the highest degree. Ties keep
// insertion order and isolated nodes are left out.
func topNodes[K comparable](g *graph.Graph[K], limit int) []rankedNode {
	var ranked []rankedNode
	for _, n := range g.Nodes() {
		d := g.Degree(n.ID)
		if d == 0 {
			continue
		}
		label := fmt.Sprint(n.ID)
		if name, ok := n.Attrs.Get(cyjs.KeyName); ok {
			label = fmt.Sprint(name)
		}
		ranked = append(ranked, rankedNode{label: label, degree: d})
	}
	slices.SortStableFunc(ranked, func(a, b rankedNode) int {
		return cmp.Compare(b.degree, a.degree)
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
