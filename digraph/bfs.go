package digraph

// queueItem pairs a node with its hop count from the start node.
type queueItem struct {
	node NodeIndex
	dist uint32
}

// walker holds the per-call state of a breadth-first search.
type walker struct {
	graph   *Graph
	queue   []queueItem
	visited []bool
}

// BFS returns the fewest edges on any directed path from start to end.
// ok is false when end cannot be reached from start. BFS(n, n) is (0, true).
// It panics if start or end is not an existing node, or if the search meets
// an edge whose target is out of range.
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) BFS(start, end NodeIndex) (dist uint32, ok bool) {
	g.mustNode("BFS", start)
	g.mustNode("BFS", end)

	w := &walker{
		graph:   g,
		queue:   make([]queueItem, 0, len(g.nodes)),
		visited: make([]bool, len(g.nodes)),
	}
	w.enqueue(start, 0)

	return w.search(end)
}

// enqueue marks n visited and schedules it at distance d.
func (w *walker) enqueue(n NodeIndex, d uint32) {
	w.visited[n] = true
	w.queue = append(w.queue, queueItem{node: n, dist: d})
}

// search drains the queue until end is dequeued or the queue empties.
// end is tested on dequeue, so the first match carries the minimal distance.
func (w *walker) search(end NodeIndex) (uint32, bool) {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		if item.node == end {
			return item.dist, true
		}
		for next := range w.graph.Successors(item.node) {
			w.graph.mustNode("BFS", next)
			if !w.visited[next] {
				w.enqueue(next, item.dist+1)
			}
		}
	}

	return 0, false
}

// ShortestPath returns the distance from start to end computed by Distances.
// ok is false when end is unreachable. Edge weights are taken to be 1.
// It panics if start or end is not an existing node.
func (g *Graph) ShortestPath(start, end NodeIndex) (dist uint32, ok bool) {
	g.mustNode("ShortestPath", end)
	d := g.Distances(start)[end]
	if d == Unreachable {
		return 0, false
	}

	return uint32(d), true
}

// Distances relaxes hop counts outward from start and returns one entry per
// node: its distance from start, or Unreachable.
//
// The queue is FIFO, not a priority queue. A node is re-expanded whenever it
// is dequeued with a smaller distance than the one recorded, so a node may be
// enqueued several times before the table settles. With unit weights the
// result equals BFS.
// It panics if start is not an existing node.
func (g *Graph) Distances(start NodeIndex) []int {
	g.mustNode("Distances", start)

	dist := make([]int, len(g.nodes))
	for i := range dist {
		dist[i] = Unreachable
	}
	queue := []queueItem{{node: start, dist: 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if cur := dist[item.node]; cur != Unreachable && cur <= int(item.dist) {
			continue
		}
		dist[item.node] = int(item.dist)
		for next := range g.Successors(item.node) {
			g.mustNode("Distances", next)
			queue = append(queue, queueItem{node: next, dist: item.dist + 1})
		}
	}

	return dist
}
