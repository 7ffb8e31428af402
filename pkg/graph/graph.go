package graph

import "slices"

// Node is a vertex together with its attributes.
type Node[K comparable] struct {
	ID    K
	Attrs *Attrs // never nil after AddNode
}

// Edge is one edge instance. For multigraphs, Key distinguishes parallel
// edges between the same endpoints; for simple graphs Key is always 0.
//
// For undirected graphs, U and V are the endpoints in the order they were
// first added.
type Edge[K comparable] struct {
	U, V  K
	Key   int
	Attrs *Attrs // never nil after AddEdge
}

// pair identifies an endpoint pair. Undirected graphs store pairs in the
// orientation of the first insertion and look them up in both orientations.
type pair[K comparable] struct{ u, v K }

// Graph is an attributed graph that may be directed or undirected and may
// allow parallel edges (multigraph). Nodes and edges are kept in insertion
// order so that iteration is deterministic.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph[K comparable] struct {
	directed bool
	multi    bool
	attrs    *Attrs

	nodes map[K]*Node[K]
	order []K

	edges map[pair[K]][]*Edge[K] // parallel edges, ordered by insertion
	list  []*Edge[K]             // all edge instances in insertion order
}

// Option configures a Graph created by New.
type Option func(*settings)

type settings struct {
	directed bool
	multi    bool
	attrs    *Attrs
}

// Directed makes the graph directed: u→v and v→u are distinct edges.
func Directed() Option { return func(s *settings) { s.directed = true } }

// Multigraph allows more than one edge between the same endpoints.
func Multigraph() Option { return func(s *settings) { s.multi = true } }

// WithAttrs sets the initial graph-level attributes. The container is cloned.
func WithAttrs(a *Attrs) Option { return func(s *settings) { s.attrs = a.Clone() } }

// New creates an empty graph. Without options the graph is undirected and
// simple (no parallel edges).
func New[K comparable](opts ...Option) *Graph[K] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if s.attrs == nil {
		s.attrs = &Attrs{}
	}
	return &Graph[K]{
		directed: s.directed,
		multi:    s.multi,
		attrs:    s.attrs,
		nodes:    make(map[K]*Node[K]),
		edges:    make(map[pair[K]][]*Edge[K]),
	}
}

// IsDirected reports whether edges have an orientation.
func (g *Graph[K]) IsDirected() bool { return g.directed }

// IsMultigraph reports whether parallel edges are allowed.
func (g *Graph[K]) IsMultigraph() bool { return g.multi }

// Attrs returns the graph-level attributes. The returned container is never
// nil and modifications affect the graph.
func (g *Graph[K]) Attrs() *Attrs { return g.attrs }

// SetAttrs replaces the graph-level attributes with a clone of a.
func (g *Graph[K]) SetAttrs(a *Attrs) { g.attrs = a.Clone() }

// AddNode adds a node, or merges attrs into an existing node's attributes.
// Later values overwrite earlier ones for the same key. attrs is copied, not
// retained, and may be nil.
func (g *Graph[K]) AddNode(id K, attrs *Attrs) {
	if n, ok := g.nodes[id]; ok {
		n.Attrs.Update(attrs)
		return
	}
	g.nodes[id] = &Node[K]{ID: id, Attrs: attrs.Clone()}
	g.order = append(g.order, id)
}

// AddEdge adds an edge between u and v, creating missing endpoints, and
// returns the key of the edge instance that received attrs.
//
// On a simple graph an existing edge is reused and attrs are merged into it.
// On a multigraph a new parallel edge is always created; its key is the
// lowest non-negative integer not already used between u and v.
func (g *Graph[K]) AddEdge(u, v K, attrs *Attrs) int {
	if _, ok := g.nodes[u]; !ok {
		g.AddNode(u, nil)
	}
	if _, ok := g.nodes[v]; !ok {
		g.AddNode(v, nil)
	}

	p := g.lookup(u, v)
	existing := g.edges[p]
	if !g.multi && len(existing) > 0 {
		existing[0].Attrs.Update(attrs)
		return existing[0].Key
	}

	key := 0
	for slices.ContainsFunc(existing, func(e *Edge[K]) bool { return e.Key == key }) {
		key++
	}
	e := &Edge[K]{U: p.u, V: p.v, Key: key, Attrs: attrs.Clone()}
	g.edges[p] = append(existing, e)
	g.list = append(g.list, e)
	return key
}

// lookup returns the stored pair for u, v. For undirected graphs an edge
// first added as (v, u) is found under that orientation.
func (g *Graph[K]) lookup(u, v K) pair[K] {
	p := pair[K]{u, v}
	if g.directed {
		return p
	}
	if _, ok := g.edges[p]; ok {
		return p
	}
	if r := (pair[K]{v, u}); len(g.edges[r]) > 0 {
		return r
	}
	return p
}

func (g *Graph[K]) edge(u, v K, key int) (*Edge[K], bool) {
	for _, e := range g.edges[g.lookup(u, v)] {
		if e.Key == key {
			return e, true
		}
	}
	return nil, false
}

// EdgeAttrs returns the live attribute container of the edge instance u, v,
// key. Modifications affect the graph.
func (g *Graph[K]) EdgeAttrs(u, v K, key int) (*Attrs, bool) {
	e, ok := g.edge(u, v, key)
	if !ok {
		return nil, false
	}
	return e.Attrs, true
}

// Node returns the node with the given ID and true, or nil and false if not
// found. The returned node refers to the graph's own data.
func (g *Graph[K]) Node(id K) (*Node[K], bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id is a node of the graph.
func (g *Graph[K]) HasNode(id K) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether at least one edge joins u and v.
func (g *Graph[K]) HasEdge(u, v K) bool { return len(g.edges[g.lookup(u, v)]) > 0 }

// Nodes returns all nodes in insertion order. The returned nodes refer to the
// graph's own data, so attribute modifications affect the graph.
func (g *Graph[K]) Nodes() []*Node[K] {
	nodes := make([]*Node[K], len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// Edges returns all edge instances in insertion order. Each parallel edge of
// a multigraph appears separately.
func (g *Graph[K]) Edges() []*Edge[K] { return slices.Clone(g.list) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph[K]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edge instances in the graph.
func (g *Graph[K]) EdgeCount() int { return len(g.list) }

// Degree returns the number of edge endpoints at id. A self loop counts twice.
// Returns 0 if the node doesn't exist.
func (g *Graph[K]) Degree(id K) int {
	d := 0
	for _, e := range g.list {
		if e.U == id {
			d++
		}
		if e.V == id {
			d++
		}
	}
	return d
}

// ToDirected returns a directed copy of the graph. Each undirected edge
// {u, v} becomes the two edges u→v and v→u with cloned attributes; a self
// loop becomes a single edge. Multigraph keys are preserved. When the graph
// is already directed the result is a deep copy.
func (g *Graph[K]) ToDirected() *Graph[K] {
	opts := []Option{Directed(), WithAttrs(g.attrs)}
	if g.multi {
		opts = append(opts, Multigraph())
	}
	d := New[K](opts...)
	for _, n := range g.Nodes() {
		d.AddNode(n.ID, n.Attrs)
	}
	for _, e := range g.list {
		d.addKeyed(e.U, e.V, e.Key, e.Attrs)
	}
	if g.directed {
		return d
	}
	for _, e := range g.list {
		if e.U != e.V {
			d.addKeyed(e.V, e.U, e.Key, e.Attrs)
		}
	}
	return d
}

// addKeyed inserts an edge instance with a known key. Only used while
// copying, where endpoints are known to exist and keys cannot collide.
func (g *Graph[K]) addKeyed(u, v K, key int, attrs *Attrs) {
	p := pair[K]{u, v}
	e := &Edge[K]{U: u, V: v, Key: key, Attrs: attrs.Clone()}
	g.edges[p] = append(g.edges[p], e)
	g.list = append(g.list, e)
}
