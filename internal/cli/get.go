// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func (a *app) getCmd() *cobra.Command {
	kind := KindString
	var def string

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Print the validated value of a single variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			log := a.logger(cmd, nil)

			var fallback *string
			if cmd.Flags().Changed("default") {
				fallback = &def
			}

			env, err := a.env()
			if err != nil {
				return err
			}

			v, err := kind.Resolve(env, name, fallback)
			if err != nil {
				log.DebugContext(cmd.Context(), "failed to read variable",
					slog.String(nameKey, name),
					slog.String("kind", string(kind)),
					slog.Any("error", err),
				)
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}

	fs := cmd.Flags()
	fs.VarP(&kind, "type", "t", "Kind of value: string, number, positive-number, integer, positive-integer or boolean.")
	fs.StringVarP(&def, "default", "d", "", "Fallback used when the variable is not set.")
	return cmd
}
