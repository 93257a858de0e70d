package digraph

import "iter"

// Graph is an append-only directed graph. The zero value is not usable;
// construct with New.
//
// A Graph is not safe for concurrent mutation. Concurrent read-only queries
// are fine once construction has finished, since queries never write to it.
type Graph struct {
	nodes []nodeData
	edges []edgeData
}

// New returns an empty Graph.
func New(opts ...Option) *Graph {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph{
		nodes: make([]nodeData, 0, o.NodeCapacity),
		edges: make([]edgeData, 0, o.EdgeCapacity),
	}
}

// AddNode appends a node with no outgoing edges and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddNode() NodeIndex {
	idx := NodeIndex(len(g.nodes))
	g.nodes = append(g.nodes, nodeData{firstOut: noEdge})

	return idx
}

// AddEdge appends a directed edge source→target and makes it the head of
// source's outgoing list. It panics if source is not an existing node.
// target is not checked here; it must be valid by the time a traversal
// reaches it.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(source, target NodeIndex) EdgeIndex {
	g.mustNode("AddEdge", source)
	idx := EdgeIndex(len(g.edges))
	g.edges = append(g.edges, edgeData{
		target:  target,
		nextOut: g.nodes[source].firstOut,
	})
	g.nodes[source].firstOut = idx

	return idx
}

// Successors returns a sequence over the targets of source's outgoing edges,
// most recently added first. Parallel edges yield the same target more than
// once. The sequence can be ranged over any number of times and reflects
// edges added before each iteration starts.
// It panics if source is not an existing node.
func (g *Graph) Successors(source NodeIndex) iter.Seq[NodeIndex] {
	g.mustNode("Successors", source)

	return func(yield func(NodeIndex) bool) {
		for e := g.nodes[source].firstOut; e != noEdge; e = g.edges[e].nextOut {
			if !yield(g.edges[e].target) {
				return
			}
		}
	}
}

// NodeCount reports how many nodes have been added.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount reports how many edges have been added.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether n refers to an existing node.
func (g *Graph) HasNode(n NodeIndex) bool {
	return n >= 0 && int(n) < len(g.nodes)
}

// mustNode panics unless n is an existing node.
func (g *Graph) mustNode(op string, n NodeIndex) {
	if !g.HasNode(n) {
		panic(indexPanic(op, n, len(g.nodes)))
	}
}
