package digraph_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/digraph"
)

// ExampleGraph_BFS builds a small one-way network and asks for hop counts.
func ExampleGraph_BFS() {
	//  0 → 1 → 2
	//  ↑       ↓
	//  └── 3 ←─┘
	g := digraph.New()
	for range 4 {
		g.AddNode()
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 0)

	d, ok := g.BFS(1, 0)
	fmt.Println(d, ok)

	g.AddNode() // 4, no edges in or out
	_, ok = g.BFS(0, 4)
	fmt.Println(ok)
	// Output:
	// 3 true
	// false
}

// ExampleGraph_Successors shows the reverse-insertion order of adjacency.
func ExampleGraph_Successors() {
	g := digraph.New()
	for range 4 {
		g.AddNode()
	}
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)

	for n := range g.Successors(0) {
		fmt.Print(n, " ")
	}
	fmt.Println()
	// Output:
	// 3 2 1
}

// ExampleGraph_Distances prints hop counts from node 0 to every node.
func ExampleGraph_Distances() {
	g := digraph.New()
	for range 4 {
		g.AddNode()
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)

	fmt.Println(g.Distances(0))
	// Output:
	// [0 1 1 -1]
}
