// Package edgelist reads graphs from a plain-text edge list.
//
// Each non-blank line is one of:
//
//	# comment
//	graph key=value ...      graph attributes
//	u v [key=value ...]      edge u-v with attributes
//	u [key=value ...]        node u with attributes
//
// Values are parsed as bool, int, or float when possible and kept as strings
// otherwise. Tokens are separated by whitespace; values cannot contain spaces.
package edgelist

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/cyjs/pkg/errors"
	"github.com/matzehuels/cyjs/pkg/graph"
)

// Options selects the kind of graph Read builds.
type Options struct {
	Directed   bool
	Multigraph bool
}

func (o Options) graphOptions() []graph.Option {
	var opts []graph.Option
	if o.Directed {
		opts = append(opts, graph.Directed())
	}
	if o.Multigraph {
		opts = append(opts, graph.Multigraph())
	}
	return opts
}

// Read parses an edge list from r.
func Read(r io.Reader, opts Options) (*graph.Graph[string], error) {
	g := graph.New[string](opts.graphOptions()...)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := parseLine(g, strings.Fields(text)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "line %d", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read edge list")
	}
	return g, nil
}

// ReadFile parses the edge list stored at path.
func ReadFile(path string, opts Options) (*graph.Graph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "edge list %s", path)
		}
		return nil, err
	}
	defer f.Close()
	return Read(f, opts)
}

func parseLine(g *graph.Graph[string], fields []string) error {
	var ids []string
	attrs := &graph.Attrs{}
	for _, f := range fields {
		k, v, ok := strings.Cut(f, "=")
		if !ok {
			if attrs.Len() > 0 {
				return errors.New(errors.ErrCodeInvalidFormat, "identifier %q after attributes", f)
			}
			ids = append(ids, f)
			continue
		}
		if k == "" {
			return errors.New(errors.ErrCodeInvalidFormat, "empty attribute name in %q", f)
		}
		attrs.Set(k, parseValue(v))
	}

	switch {
	case len(ids) == 1 && ids[0] == "graph" && attrs.Len() > 0:
		g.Attrs().Update(attrs)
	case len(ids) == 1:
		g.AddNode(ids[0], attrs)
	case len(ids) == 2:
		g.AddEdge(ids[0], ids[1], attrs)
	case len(ids) == 0:
		return errors.New(errors.ErrCodeInvalidFormat, "attributes without identifier")
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "expected at most 2 identifiers, got %d", len(ids))
	}
	return nil
}

func parseValue(s string) any {
	if s == "true" || s == "false" {
		return s == "true"
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
