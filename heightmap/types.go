package heightmap

import "github.com/katalvlaran/hillclimb/digraph"

const (
	startMarker = 'S'
	endMarker   = 'E'

	// Lowest and Highest bound the elevation scale.
	Lowest  = 0
	Highest = int('z' - 'a')

	// MaxClimb is the largest upward step allowed between neighbors.
	MaxClimb = 1
)

// conn4 lists the orthogonal neighbor offsets: N, E, S, W.
var conn4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// HeightMap is a parsed terrain grid and its step graph. It is immutable once
// built; queries do not modify it.
type HeightMap struct {
	Width, Height int
	// Elevation[y][x] is the cell level in [Lowest, Highest].
	Elevation [][]int
	// Start and End are the nodes of the 'S' and 'E' cells.
	Start, End digraph.NodeIndex
	// LowestCells lists every node at elevation Lowest, 'S' included, in row-major order.
	LowestCells []digraph.NodeIndex

	graph *digraph.Graph
}
