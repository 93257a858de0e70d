package puzzle

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps day numbers to solvers. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	problems map[int]Problem
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{problems: make(map[int]Problem)}
}

// Default returns a Registry holding every solver in this package.
func Default() *Registry {
	r := NewRegistry()
	// Days are distinct literals; registration cannot fail.
	_ = r.Register(1, Calories{})
	_ = r.Register(12, HillClimb{})

	return r
}

// Register adds p as the solver for day.
// Returns ErrInvalidDay or ErrDuplicateDay.
func (r *Registry) Register(day int, p Problem) error {
	if day < FirstDay || day > LastDay {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.problems[day]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, day)
	}
	r.problems[day] = p

	return nil
}

// Lookup returns the solver for day, or ErrUnknownDay.
func (r *Registry) Lookup(day int) (Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.problems[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return p, nil
}

// Days lists registered day numbers in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	days := make([]int, 0, len(r.problems))
	for d := range r.problems {
		days = append(days, d)
	}
	slices.Sort(days)

	return days
}
