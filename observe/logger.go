/*
   Copyright 2025 The lazy-freeze Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package observe provides apis.Observer implementations for logging and
// metrics. The guard itself never logs; install one of these with
// config.WithObserver.
package observe

import (
	"log/slog"

	"github.com/UriyaHarpeness/lazy-freeze/apis"
)

// Logger reports guard events through slog.
type Logger struct {
	log *slog.Logger
}

// Ensure Logger implements apis.Observer.
var _ apis.Observer = (*Logger)(nil)

// NewLogger returns a Logger writing to l, or to slog.Default() if l is nil.
func NewLogger(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{log: l.With(slog.String("component", "lazyfreeze"))}
}

// Frozen logs the transition at DEBUG, or at WARN when the scope resolved
// to no field.
func (l *Logger) Frozen(ev apis.FreezeEvent) {
	attrs := []any{
		slog.String("type", ev.Type),
		slog.Uint64("hash", ev.Hash),
		slog.String("protected", ev.Protected.String()),
	}
	if ev.EmptyScope {
		l.log.Warn("instance frozen with empty scope; fields remain mutable", attrs...)
		return
	}
	l.log.Debug("instance frozen", attrs...)
}

// Rejected logs a rejected mutation at INFO.
func (l *Logger) Rejected(err *apis.FrozenMutationError) {
	l.log.Info("mutation rejected",
		slog.String("type", err.Type),
		slog.String("op", err.Op.String()),
		slog.String("target", err.Target),
	)
}

// Multi fans events out to every non-nil observer in order.
func Multi(observers ...apis.Observer) apis.Observer {
	out := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	return &out
}

type multi []apis.Observer

func (m *multi) Frozen(ev apis.FreezeEvent) {
	for _, o := range *m {
		o.Frozen(ev)
	}
}

func (m *multi) Rejected(err *apis.FrozenMutationError) {
	for _, o := range *m {
		o.Rejected(err)
	}
}
