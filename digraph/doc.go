// Package digraph provides an append-only directed graph stored as two flat
// arenas (nodes and edges) with index-linked adjacency, plus unweighted
// shortest-path queries over it.
//
// What
//
//   - Nodes and edges are identified by dense integer indices assigned in
//     creation order. Indices are never reused; the graph supports no removal.
//   - Each node holds the index of the head of its outgoing-edge list; each
//     edge holds its target and the index of the next edge from the same
//     source. AddEdge pushes onto the head, so Successors yields targets in
//     reverse insertion order.
//   - BFS answers "fewest hops from start to end".
//   - ShortestPath and Distances perform BFS with eager relaxation: a FIFO
//     queue that may revisit a node until its distance settles.
//
// Why
//
//   - Terrain and maze grids are built once and queried a handful of times.
//     O(1) appends into two growable slices avoid per-node neighbor slices.
//   - Integer links keep the structure relocatable and free of ownership
//     cycles even when the logical graph contains cycles.
//
// Traversal state
//
//	No query writes into the graph. Visited sets and distance tables are
//	allocated per call, so repeated or interleaved queries on the same
//	Graph never observe each other.
//
// Complexity (V = NodeCount, E = EdgeCount)
//
//   - AddNode, AddEdge: O(1) amortized.
//   - Successors:       O(out-degree).
//   - BFS:              O(V + E) time, O(V) memory.
//   - Distances:        O(V + E) for unit weights in practice; the FIFO
//     relaxation may enqueue a node more than once before it settles.
//
// Errors
//
//   - Out-of-range NodeIndex passed to AddEdge, Successors or a query is a
//     caller bug and panics with a message wrapping ErrNodeIndex.
//   - An unreachable target is a normal outcome, reported as ok == false.
//
// ShortestPath is not Dijkstra: it assumes every edge has weight 1 and uses
// a plain FIFO queue. Weighted edges would need a priority queue.
package digraph
