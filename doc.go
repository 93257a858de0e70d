// Package hillclimb is a small daily-puzzle workspace built around an
// append-only directed graph.
//
// Layout:
//
//	digraph/    arena graph (index-linked adjacency), BFS and relaxation queries
//	heightmap/  letter-elevation terrain parsed into a digraph, climbing queries
//	puzzle/     two-part Problem contract, day registry, timed Run
//	cmd/aoc/    command line: aoc run <day>, aoc list
//
// Quick ASCII example of a heightmap and the steps it allows:
//
//	S a b      S→a, a→b: climb by one
//	d c c      b→c (down), c→d: climb by one
//
//	go run ./cmd/aoc run 12 --input sample.txt
package hillclimb
