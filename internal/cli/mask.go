// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/z5labs/safeenv"
)

const (
	nameKey  = "name"
	valueKey = "value"
	masked   = "****"
)

// maskHandler is an slog.Handler which replaces the value attr of
// records whose name attr refers to a secret variable.
type maskHandler struct {
	slog    slog.Handler
	secrets map[string]struct{}
}

func newMaskHandler(h slog.Handler, secrets []string) *maskHandler {
	return &maskHandler{slog: h, secrets: secretSet(secrets)}
}

func secretSet(secrets []string) map[string]struct{} {
	m := make(map[string]struct{}, len(secrets))
	for _, s := range secrets {
		m[s] = struct{}{}
	}
	return m
}

// maskError hides the offending value of an InvalidVariableError. A
// *strconv.NumError cause also carries the value, so only its sentinel
// is kept.
func maskError(err error) error {
	var ierr safeenv.InvalidVariableError
	if !errors.As(err, &ierr) {
		return err
	}
	ierr.Value = masked

	var nerr *strconv.NumError
	if errors.As(ierr.Cause, &nerr) {
		ierr.Cause = nerr.Err
	}
	return ierr
}

// Enabled implements the slog.Handler interface.
func (h *maskHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.slog.Enabled(ctx, lvl)
}

// Handle implements the slog.Handler interface.
func (h *maskHandler) Handle(ctx context.Context, record slog.Record) error {
	if len(h.secrets) == 0 || !h.isSecret(record) {
		return h.slog.Handle(ctx, record)
	}

	attrs := make([]slog.Attr, 0, record.NumAttrs())
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == valueKey {
			a = slog.String(valueKey, masked)
		}
		attrs = append(attrs, a)
		return true
	})

	nr := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	nr.AddAttrs(attrs...)
	return h.slog.Handle(ctx, nr)
}

func (h *maskHandler) isSecret(record slog.Record) bool {
	var secret bool
	record.Attrs(func(a slog.Attr) bool {
		if a.Key != nameKey {
			return true
		}
		_, secret = h.secrets[a.Value.String()]
		return false
	})
	return secret
}

// WithAttrs implements the slog.Handler interface.
func (h *maskHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &maskHandler{slog: h.slog.WithAttrs(attrs), secrets: h.secrets}
}

// WithGroup implements the slog.Handler interface.
func (h *maskHandler) WithGroup(name string) slog.Handler {
	return &maskHandler{slog: h.slog.WithGroup(name), secrets: h.secrets}
}
