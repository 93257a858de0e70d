package commands

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/puzzle"
)

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <day>",
		Short: "Solve both parts of a day's puzzle",
		Example: `  aoc run 12
  aoc run 12 --input sample.txt
  AOC_INPUTS_DIR=~/aoc aoc run 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q: %w", args[0], err)
			}
			return a.run(cmd, day)
		},
	}
	cmd.Flags().String(keyInput, "", "input file (default <inputs-dir>/input_<day>.txt)")

	return cmd
}

func (a *app) run(cmd *cobra.Command, day int) error {
	p, err := a.registry.Lookup(day)
	if err != nil {
		return err
	}

	path := a.inputPath(day)
	a.logger.Debug("loading input", "day", day, "path", path)
	raw, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return fmt.Errorf("loading input for day %d: %w", day, err)
	}

	rep, err := puzzle.Run(cmd.Context(), p, string(raw),
		puzzle.WithDay(day),
		puzzle.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, part := range rep.Parts {
		fmt.Fprintf(out, "Part %d answer: %s\n", i+1, part.Answer)
		fmt.Fprintf(out, "Elapsed: %s\n", part.Elapsed)
	}

	return nil
}

// inputPath honors --input, falling back to input_<day>.txt in the inputs dir.
func (a *app) inputPath(day int) string {
	if p := a.v.GetString(keyInput); p != "" {
		return p
	}

	return filepath.Join(a.v.GetString(keyInputsDir), fmt.Sprintf("input_%d.txt", day))
}
