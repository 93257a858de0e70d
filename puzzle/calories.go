package puzzle

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Calories solves day 1: each blank-line separated group of integers is one
// carrier's load.
type Calories struct{}

// PartOne reports the largest group total.
func (Calories) PartOne(input string) (string, error) {
	totals, err := groupTotals(input)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Maximum elf score: %d", slices.Max(totals)), nil
}

// PartTwo reports the sum of the three largest group totals, or of all
// groups when there are fewer than three.
func (Calories) PartTwo(input string) (string, error) {
	totals, err := groupTotals(input)
	if err != nil {
		return "", err
	}
	slices.SortFunc(totals, func(a, b int) int { return b - a })
	sum := 0
	for _, t := range totals[:min(3, len(totals))] {
		sum += t
	}

	return fmt.Sprintf("Sum of top 3 elf scores: %d", sum), nil
}

// groupTotals sums each group. Runs of blank lines count as one separator.
func groupTotals(input string) ([]int, error) {
	var totals []int
	sum, open := 0, false
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if open {
				totals = append(totals, sum)
				sum, open = 0, false
			}
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadInput, i+1, err)
		}
		sum += v
		open = true
	}
	if open {
		totals = append(totals, sum)
	}
	if len(totals) == 0 {
		return nil, fmt.Errorf("%w: no groups", ErrBadInput)
	}

	return totals, nil
}
