package heightmap

import "fmt"

// ShortestFromStart returns the fewest steps from 'S' to 'E'.
// Returns ErrNoPath if 'E' is unreachable.
func (hm *HeightMap) ShortestFromStart() (uint32, error) {
	d, ok := hm.graph.BFS(hm.Start, hm.End)
	if !ok {
		x, y := hm.Coordinate(hm.Start)
		return 0, fmt.Errorf("%w from start (%d,%d)", ErrNoPath, x, y)
	}

	return d, nil
}

// ShortestFromLowest returns the fewest steps to 'E' from any cell at
// elevation Lowest. Starts that cannot reach 'E' are skipped; ErrNoPath is
// returned only if none can.
func (hm *HeightMap) ShortestFromLowest() (uint32, error) {
	best, found := uint32(0), false
	for _, start := range hm.LowestCells {
		d, ok := hm.graph.BFS(start, hm.End)
		if ok && (!found || d < best) {
			best, found = d, true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w from any of %d lowest cells", ErrNoPath, len(hm.LowestCells))
	}

	return best, nil
}
