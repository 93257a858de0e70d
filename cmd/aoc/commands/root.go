// Package commands implements the aoc command line: pick a puzzle by day,
// load its input and print both answers with their timings.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hillclimb/puzzle"
)

const (
	envPrefix        = "AOC"
	keyConfig        = "config"
	keyVerbose       = "verbose"
	keyInputsDir     = "inputs-dir"
	keyInput         = "input"
	defaultInputsDir = "inputs"
)

// app carries the dependencies shared by every subcommand.
type app struct {
	v        *viper.Viper
	fs       afero.Fs
	registry *puzzle.Registry
	logger   *slog.Logger
}

// Execute runs the command line against the real filesystem and exits
// non-zero on failure.
func Execute() {
	if err := NewRootCmd(afero.NewOsFs(), puzzle.Default()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the aoc command tree over fs and registry.
func NewRootCmd(fs afero.Fs, registry *puzzle.Registry) *cobra.Command {
	a := &app{
		v:        viper.New(),
		fs:       fs,
		registry: registry,
	}

	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Run daily puzzle solvers",
		Long:          "aoc loads a day's puzzle input and prints both answers with elapsed time.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (yaml)")
	pf.BoolP(keyVerbose, "v", false, "log debug output to stderr")
	pf.String(keyInputsDir, defaultInputsDir, "directory holding input_<day>.txt files")

	root.AddCommand(a.runCmd(), a.listCmd())

	return root
}

// configure wires configuration sources and the logger. Precedence, highest first:
// flags set on the command line, AOC_* environment variables, config file,
// flag defaults.
func (a *app) configure(cmd *cobra.Command) error {
	a.v.SetFs(a.fs)
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := bindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}

	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	level := slog.LevelInfo
	if a.v.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded", "config", a.v.ConfigFileUsed(), "inputs_dir", a.v.GetString(keyInputsDir))

	return nil
}

// bindFlags exposes every flag in fs as a viper key of the same name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = v.BindPFlag(f.Name, f)
	})

	return err
}
