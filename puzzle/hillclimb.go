package puzzle

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// HillClimb solves day 12 over a heightmap.
type HillClimb struct{}

// PartOne reports the fewest steps from S to E.
func (HillClimb) PartOne(input string) (string, error) {
	hm, err := heightmap.Parse(input)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	d, err := hm.ShortestFromStart()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Shortest path: %d", d), nil
}

// PartTwo reports the fewest steps to E from any lowest cell.
func (HillClimb) PartTwo(input string) (string, error) {
	hm, err := heightmap.Parse(input)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	d, err := hm.ShortestFromLowest()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Shortest path: %d", d), nil
}
