package heightmap

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hillclimb/digraph"
)

// Parse builds a HeightMap from newline-separated rows. Surrounding
// whitespace on the input and on each row is ignored.
// Complexity: O(W×H) time and memory.
func Parse(input string) (*HeightMap, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	h, w := len(lines), len(lines[0])
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), w)
		}
	}

	hm := &HeightMap{
		Width:     w,
		Height:    h,
		Elevation: make([][]int, h),
		Start:     -1,
		End:       -1,
		graph:     digraph.New(digraph.WithCapacity(w*h, 4*w*h)),
	}
	for y, line := range lines {
		hm.Elevation[y] = make([]int, w)
		for x := 0; x < w; x++ {
			if err := hm.addCell(x, y, line[x]); err != nil {
				return nil, err
			}
		}
	}
	if hm.Start < 0 {
		return nil, ErrMissingStart
	}
	if hm.End < 0 {
		return nil, ErrMissingEnd
	}
	hm.linkNeighbors()

	return hm, nil
}

// addCell records the elevation of (x,y), creates its node and notes markers.
func (hm *HeightMap) addCell(x, y int, c byte) error {
	level, err := elevation(c)
	if err != nil {
		return fmt.Errorf("%w at (%d,%d)", err, x, y)
	}
	hm.Elevation[y][x] = level
	n := hm.graph.AddNode()

	switch c {
	case startMarker:
		if hm.Start >= 0 {
			return fmt.Errorf("%w: %q at (%d,%d)", ErrDuplicateMarker, c, x, y)
		}
		hm.Start = n
	case endMarker:
		if hm.End >= 0 {
			return fmt.Errorf("%w: %q at (%d,%d)", ErrDuplicateMarker, c, x, y)
		}
		hm.End = n
	}
	if level == Lowest {
		hm.LowestCells = append(hm.LowestCells, n)
	}

	return nil
}

// linkNeighbors adds an edge u→v for every orthogonal pair where v is at
// most MaxClimb above u.
func (hm *HeightMap) linkNeighbors() {
	for y := 0; y < hm.Height; y++ {
		for x := 0; x < hm.Width; x++ {
			from := hm.Elevation[y][x]
			for _, d := range conn4 {
				nx, ny := x+d[0], y+d[1]
				if !hm.InBounds(nx, ny) {
					continue
				}
				if hm.Elevation[ny][nx]-from <= MaxClimb {
					hm.graph.AddEdge(hm.Node(x, y), hm.Node(nx, ny))
				}
			}
		}
	}
}

// elevation maps a cell character to its level.
func elevation(c byte) (int, error) {
	switch {
	case c == startMarker:
		return Lowest, nil
	case c == endMarker:
		return Highest, nil
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), nil
	}

	return 0, fmt.Errorf("%w %q", ErrInvalidCell, c)
}

// InBounds reports whether (x,y) lies within the grid.
func (hm *HeightMap) InBounds(x, y int) bool {
	return x >= 0 && x < hm.Width && y >= 0 && y < hm.Height
}

// Node returns the graph node of cell (x,y).
func (hm *HeightMap) Node(x, y int) digraph.NodeIndex {
	return digraph.NodeIndex(y*hm.Width + x)
}

// Coordinate converts a node back to its cell (x,y).
func (hm *HeightMap) Coordinate(n digraph.NodeIndex) (x, y int) {
	return int(n) % hm.Width, int(n) / hm.Width
}

// Graph exposes the underlying step graph for read-only queries.
func (hm *HeightMap) Graph() *digraph.Graph {
	return hm.graph
}
