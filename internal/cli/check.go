// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/z5labs/safeenv"
	"github.com/z5labs/safeenv/internal/try"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type check struct {
	name string
	kind Kind
}

// InvalidCheckError occurs when a check argument is malformed.
type InvalidCheckError struct {
	Arg   string
	Cause error
}

// Error implements the error interface.
func (e InvalidCheckError) Error() string {
	return fmt.Sprintf("invalid check %q, expected NAME or NAME:KIND: %s", e.Arg, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidCheckError) Unwrap() error {
	return e.Cause
}

var errEmptyName = errors.New("name must not be empty")

func parseCheck(arg string) (check, error) {
	name, kind, found := strings.Cut(arg, ":")
	if name == "" {
		return check{}, InvalidCheckError{Arg: arg, Cause: errEmptyName}
	}
	if !found {
		return check{name: name, kind: KindString}, nil
	}

	k, err := ParseKind(kind)
	if err != nil {
		return check{}, InvalidCheckError{Arg: arg, Cause: err}
	}
	return check{name: name, kind: k}, nil
}

func (c check) resolve(env *safeenv.Env) (_ string, err error) {
	defer try.Recover(&err)
	return c.kind.Resolve(env, c.name, nil)
}

func (a *app) checkCmd() *cobra.Command {
	var secrets []string

	cmd := &cobra.Command{
		Use:   "check NAME[:KIND]...",
		Short: "Validate many variables at once",
		Long: `Validate many variables at once. Every variable is checked, one log
record is written per variable and the command fails if any of them is
missing or invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := make([]check, len(args))
			for i, arg := range args {
				c, err := parseCheck(arg)
				if err != nil {
					return err
				}
				checks[i] = c
			}

			env, err := a.env()
			if err != nil {
				return err
			}

			log := a.logger(cmd, secrets)
			isSecret := secretSet(secrets)

			// Validation failures are collected in errs so every check
			// runs. The group only fails once the context is cancelled.
			errs := make([]error, len(checks))
			g, gctx := errgroup.WithContext(cmd.Context())
			for i, c := range checks {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}

					v, err := c.resolve(env)
					if err != nil {
						if _, ok := isSecret[c.name]; ok {
							err = maskError(err)
						}
						errs[i] = err
						log.ErrorContext(gctx, "variable is not valid",
							slog.String(nameKey, c.name),
							slog.String("kind", string(c.kind)),
							slog.Any("error", err),
						)
						return nil
					}
					log.InfoContext(gctx, "variable is valid",
						slog.String(nameKey, c.name),
						slog.String("kind", string(c.kind)),
						slog.String(valueKey, v),
					)
					return nil
				})
			}
			err = g.Wait()
			if err != nil {
				return err
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().StringSliceVar(&secrets, "secret", nil, "Names of variables whose values must not be logged.")
	return cmd
}
