package digraph

import (
	"errors"
	"fmt"
)

// ErrNodeIndex is wrapped by the panic raised when a NodeIndex does not
// refer to an existing node.
var ErrNodeIndex = errors.New("digraph: node index out of range")

// Unreachable marks nodes that a traversal never reached in a Distances table.
const Unreachable = -1

// NodeIndex identifies a node by creation order, starting at 0.
type NodeIndex int

// EdgeIndex identifies an edge by creation order, starting at 0.
type EdgeIndex int

// noEdge terminates an outgoing-edge list.
const noEdge EdgeIndex = -1

// nodeData is the arena record for a node.
type nodeData struct {
	firstOut EdgeIndex // head of the outgoing list, or noEdge
}

// edgeData is the arena record for an edge. Immutable once appended.
type edgeData struct {
	target  NodeIndex
	nextOut EdgeIndex // next edge from the same source, or noEdge
}

// Option configures a Graph at construction time.
type Option func(*Options)

// Options holds construction parameters for New.
type Options struct {
	// NodeCapacity pre-sizes the node arena.
	NodeCapacity int
	// EdgeCapacity pre-sizes the edge arena.
	EdgeCapacity int
}

// DefaultOptions returns Options with empty arenas.
func DefaultOptions() Options {
	return Options{}
}

// WithCapacity pre-allocates room for the given number of nodes and edges.
// Negative values are treated as zero.
func WithCapacity(nodes, edges int) Option {
	return func(o *Options) {
		o.NodeCapacity = max(nodes, 0)
		o.EdgeCapacity = max(edges, 0)
	}
}

// indexPanic builds the panic value for an invalid node index.
func indexPanic(op string, n NodeIndex, count int) error {
	return fmt.Errorf("%w: %s: index %d, node count %d", ErrNodeIndex, op, n, count)
}
