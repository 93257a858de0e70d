package puzzle

import (
	"context"
	"fmt"
)

// Run solves both parts of p on input, timing each, and returns the answers.
// The context is checked before each part; solvers themselves run to
// completion.
func Run(ctx context.Context, p Problem, input string, opts ...RunOption) (Report, error) {
	o := DefaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rep := Report{Day: o.Day}
	parts := [2]func(string) (string, error){p.PartOne, p.PartTwo}
	for i, solve := range parts {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		start := o.now()
		answer, err := solve(input)
		elapsed := o.now().Sub(start)
		if err != nil {
			o.Logger.Error("part failed", "day", o.Day, "part", i+1, "error", err)
			return rep, fmt.Errorf("puzzle: day %d part %d: %w", o.Day, i+1, err)
		}
		rep.Parts[i] = PartResult{Answer: answer, Elapsed: elapsed}
		o.Logger.Debug("part solved", "day", o.Day, "part", i+1, "elapsed", elapsed)
	}

	return rep, nil
}
