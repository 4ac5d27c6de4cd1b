// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the safeenv command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/z5labs/safeenv"
	"github.com/z5labs/safeenv/source"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type levelValue struct {
	lvl *slog.Level
}

// String implements the pflag.Value interface.
func (v levelValue) String() string {
	return v.lvl.String()
}

// Set implements the pflag.Value interface.
func (v levelValue) Set(s string) error {
	return v.lvl.UnmarshalText([]byte(s))
}

// Type implements the pflag.Value interface.
func (v levelValue) Type() string {
	return "level"
}

type globalFlags struct {
	level slog.Level
	files []string
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	fs.Var(levelValue{lvl: &g.level}, "log-level", "Minimum level of log records written to stderr.")
	fs.StringSliceVar(&g.files, "file", nil, "JSON or YAML file to read variables from. The process environment takes precedence.")
}

// UnsupportedFileError occurs when a --file does not have a .json, .yaml or .yml extension.
type UnsupportedFileError struct {
	Path string
}

// Error implements the error interface.
func (e UnsupportedFileError) Error() string {
	return fmt.Sprintf("unsupported file extension, expected .json, .yaml or .yml: %s", e.Path)
}

type app struct {
	environ func() []string
	flags   globalFlags
}

// New returns the root safeenv command. environ is used to
// read the process environment e.g. os.Environ.
func New(environ func() []string) *cobra.Command {
	a := &app{
		environ: environ,
		flags: globalFlags{
			level: slog.LevelInfo,
		},
	}

	cmd := &cobra.Command{
		Use:           "safeenv",
		Short:         "Validate and read typed environment variables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	a.flags.register(cmd.PersistentFlags())

	cmd.AddCommand(
		a.getCmd(),
		a.checkCmd(),
	)
	return cmd
}

// Execute runs the root command against the process environment.
func Execute(ctx context.Context, args []string) error {
	cmd := New(os.Environ)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func (a *app) logger(cmd *cobra.Command, secrets []string) *slog.Logger {
	h := slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: a.flags.level,
	})
	return slog.New(newMaskHandler(h, secrets))
}

func (a *app) env() (*safeenv.Env, error) {
	layers := make([]safeenv.Source, 0, len(a.flags.files)+1)
	for _, path := range a.flags.files {
		m, err := readFile(path)
		if err != nil {
			return nil, err
		}
		layers = append(layers, m)
	}
	layers = append(layers, source.FromEnviron(a.environ))
	return safeenv.New(source.Layered(layers...)), nil
}

func readFile(path string) (source.Map, error) {
	var parse func(io.Reader) (source.Map, error)
	switch filepath.Ext(path) {
	case ".json":
		parse = source.FromJson
	case ".yaml", ".yml":
		parse = source.FromYaml
	default:
		return nil, UnsupportedFileError{Path: path}
	}

	// parse closes the file
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return parse(f)
}
