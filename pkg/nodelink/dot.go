package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/cyjs/pkg/graph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes every node attribute in node labels.
	// When false, only the display name is shown.
	Detailed bool

	// NameKey is the attribute holding a node's display name.
	// Defaults to "name".
	NameKey string
}

// ToDOT converts a graph to Graphviz DOT format for node-link visualization.
// Directed graphs produce a digraph with -> edges, undirected graphs a graph
// with -- edges. Parallel edges of a multigraph are drawn separately.
//
// Node labels come from the NameKey attribute, falling back to the node ID
// when the attribute is missing.
func ToDOT[K comparable](g *graph.Graph[K], opts Options) string {
	if opts.NameKey == "" {
		opts.NameKey = "name"
	}
	kind, arrow := "graph", "--"
	if g.IsDirected() {
		kind, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		id := fmt.Sprint(n.ID)
		label := fmtLabel(id, n.Attrs, opts)
		fmt.Fprintf(&buf, "  %q [label=%q];\n", id, label)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q %s %q", fmt.Sprint(e.U), arrow, fmt.Sprint(e.V))
		if opts.Detailed && e.Attrs.Len() > 0 {
			fmt.Fprintf(&buf, " [label=%q]", strings.Join(fmtPairs(e.Attrs, ""), "\n"))
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(id string, attrs *graph.Attrs, opts Options) string {
	label := id
	if name, ok := attrs.Get(opts.NameKey); ok {
		label = fmt.Sprint(name)
	}
	if !opts.Detailed {
		return label
	}
	parts := fmtPairs(attrs, opts.NameKey)
	if len(parts) == 0 {
		return label
	}
	return label + "\n" + strings.Join(parts, "\n")
}

// fmtPairs renders attributes in insertion order, leaving out skip.
func fmtPairs(attrs *graph.Attrs, skip string) []string {
	var parts []string
	for k, v := range attrs.All() {
		if k == skip {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", k, v))
	}
	return parts
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing starts at the
// origin and scales with its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
