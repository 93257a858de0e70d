package commands_test

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hillclimb/cmd/aoc/commands"
	"github.com/katalvlaran/hillclimb/puzzle"
)

const terrain = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

// CLISuite drives the command tree against an in-memory filesystem.
type CLISuite struct {
	suite.Suite
	fs afero.Fs
}

func (s *CLISuite) SetupTest() {
	s.fs = afero.NewMemMapFs()
	require.NoError(s.T(), afero.WriteFile(s.fs, "inputs/input_12.txt", []byte(terrain), 0o644))
}

// execute runs the CLI with args and returns stdout, stderr and the error.
func (s *CLISuite) execute(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	root := commands.NewRootCmd(s.fs, puzzle.Default())
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func (s *CLISuite) TestRunDefaultInputsDir() {
	out, _, err := s.execute("run", "12")
	require.NoError(s.T(), err)
	require.Contains(s.T(), out, "Part 1 answer: Shortest path: 31\n")
	require.Contains(s.T(), out, "Part 2 answer: Shortest path: 29\n")
	require.Contains(s.T(), out, "Elapsed: ")
}

func (s *CLISuite) TestRunExplicitInput() {
	require.NoError(s.T(), afero.WriteFile(s.fs, "elves.txt", []byte("1\n2\n\n5\n"), 0o644))
	out, _, err := s.execute("run", "1", "--input", "elves.txt")
	require.NoError(s.T(), err)
	require.Contains(s.T(), out, "Part 1 answer: Maximum elf score: 5\n")
	require.Contains(s.T(), out, "Part 2 answer: Sum of top 3 elf scores: 8\n")
}

func (s *CLISuite) TestRunInputsDirFromEnv() {
	require.NoError(s.T(), afero.WriteFile(s.fs, "elsewhere/input_12.txt", []byte(terrain), 0o644))
	require.NoError(s.T(), s.fs.Remove("inputs/input_12.txt"))
	s.T().Setenv("AOC_INPUTS_DIR", "elsewhere")

	out, _, err := s.execute("run", "12")
	require.NoError(s.T(), err)
	require.Contains(s.T(), out, "Shortest path: 31")
}

func (s *CLISuite) TestRunInputsDirFromConfig() {
	require.NoError(s.T(), afero.WriteFile(s.fs, "cfg/aoc.yaml", []byte("inputs-dir: fromcfg\n"), 0o644))
	require.NoError(s.T(), afero.WriteFile(s.fs, "fromcfg/input_12.txt", []byte(terrain), 0o644))
	require.NoError(s.T(), s.fs.Remove("inputs/input_12.txt"))

	out, _, err := s.execute("run", "12", "--config", "cfg/aoc.yaml")
	require.NoError(s.T(), err)
	require.Contains(s.T(), out, "Shortest path: 29")
}

func (s *CLISuite) TestRunVerboseLogs() {
	_, errOut, err := s.execute("run", "12", "-v")
	require.NoError(s.T(), err)
	require.Contains(s.T(), errOut, "part solved")
	require.Contains(s.T(), errOut, "loading input")
}

func (s *CLISuite) TestRunErrors() {
	_, _, err := s.execute("run", "twelve")
	require.ErrorContains(s.T(), err, `invalid day "twelve"`)

	_, _, err = s.execute("run", "5")
	require.ErrorIs(s.T(), err, puzzle.ErrUnknownDay)

	_, _, err = s.execute("run", "1")
	require.ErrorContains(s.T(), err, "loading input for day 1")

	_, _, err = s.execute("run")
	require.Error(s.T(), err)

	_, _, err = s.execute("run", "12", "--config", "missing.yaml")
	require.ErrorContains(s.T(), err, "reading config")
}

func (s *CLISuite) TestRunSolverError() {
	require.NoError(s.T(), afero.WriteFile(s.fs, "inputs/input_12.txt", []byte("SazE\n"), 0o644))
	_, errOut, err := s.execute("run", "12")
	require.Error(s.T(), err)
	require.Contains(s.T(), err.Error(), "part 1")
	require.Contains(s.T(), errOut, "part failed")
}

func (s *CLISuite) TestList() {
	out, _, err := s.execute("list")
	require.NoError(s.T(), err)
	require.Equal(s.T(), " 1  puzzle.Calories\n12  puzzle.HillClimb\n", out)
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}
