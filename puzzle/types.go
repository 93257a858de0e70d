package puzzle

import (
	"errors"
	"log/slog"
	"time"
)

var (
	// ErrInvalidDay indicates a day number outside FirstDay..LastDay.
	ErrInvalidDay = errors.New("puzzle: day out of range")
	// ErrDuplicateDay indicates a second registration for the same day.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	// ErrUnknownDay indicates no solver is registered for the day.
	ErrUnknownDay = errors.New("puzzle: no solver registered for day")
	// ErrBadInput indicates puzzle input that a solver cannot parse.
	ErrBadInput = errors.New("puzzle: malformed input")
)

const (
	FirstDay = 1
	LastDay  = 25
)

// Problem solves both parts of one day's puzzle from the raw input text.
type Problem interface {
	PartOne(input string) (string, error)
	PartTwo(input string) (string, error)
}

// PartResult is one answer and the wall-clock time spent computing it.
type PartResult struct {
	Answer  string
	Elapsed time.Duration
}

// Report holds the results of both parts of a run.
type Report struct {
	Day   int
	Parts [2]PartResult
}

// RunOption configures Run.
type RunOption func(*RunOptions)

// RunOptions holds parameters for Run.
type RunOptions struct {
	// Logger receives one record per part. Defaults to slog.Default().
	Logger *slog.Logger
	// Day is attached to log records and the Report.
	Day int
	// now is replaced in tests.
	now func() time.Time
}

// DefaultRunOptions returns RunOptions using the process-wide logger.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Logger: slog.Default(),
		now:    time.Now,
	}
}

// WithLogger routes run logging to l.
func WithLogger(l *slog.Logger) RunOption {
	return func(o *RunOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDay labels the run with a day number.
func WithDay(day int) RunOption {
	return func(o *RunOptions) {
		o.Day = day
	}
}
