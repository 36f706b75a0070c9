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

package apis

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotAType is the kind of ConfigurationError returned when the guard
	// is applied to something that is not a concrete type.
	ErrNotAType = errors.New("lazyfreeze: not a type")
	// ErrMissingIdentity is the kind of ConfigurationError returned when the
	// type has no usable identity operation.
	ErrMissingIdentity = errors.New("lazyfreeze: missing identity operation")
	// ErrUnknownField is the kind of ConfigurationError returned when an
	// explicit scope names a field the type does not declare.
	ErrUnknownField = errors.New("lazyfreeze: unknown field")
	// ErrDuplicateField is the kind of ConfigurationError returned when two
	// struct fields resolve to the same guard name.
	ErrDuplicateField = errors.New("lazyfreeze: duplicate field name")

	// ErrFrozen matches every FrozenMutationError via errors.Is.
	ErrFrozen = errors.New("lazyfreeze: instance is frozen")

	// ErrUnsupported is returned for operations the guarded type never
	// defined. It wraps errors.ErrUnsupported.
	ErrUnsupported = fmt.Errorf("lazyfreeze: operation not supported: %w", errors.ErrUnsupported)
)

// ConfigurationError reports a guard that cannot be applied to a type.
// It is returned at definition time, before any instance exists.
type ConfigurationError struct {
	// Type is the rendered type the guard was applied to.
	Type string
	// Kind is one of ErrNotAType, ErrMissingIdentity, ErrUnknownField,
	// ErrDuplicateField.
	Kind error
	// Detail explains the failure.
	Detail string
}

func (e *ConfigurationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Type)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
}

func (e *ConfigurationError) Unwrap() error { return e.Kind }

// FrozenMutationError reports a protected mutation attempted after the
// instance's hash has been taken. The instance is left untouched.
type FrozenMutationError struct {
	// Type is the name of the guarded type.
	Type string
	// Op is the rejected operation.
	Op Op
	// Target is the field name or rendered item key; empty for in-place
	// operators.
	Target string
	// Trace is the stack captured at freeze time when debug is enabled.
	Trace string
}

func (e *FrozenMutationError) Error() string {
	var b strings.Builder
	b.WriteString("lazyfreeze: cannot ")
	b.WriteString(e.Op.describe(e.Target, e.Type))
	b.WriteString(" after its hash has been taken")
	if e.Trace != "" {
		b.WriteString("\nhash was calculated at:\n")
		b.WriteString(e.Trace)
	}
	return b.String()
}

// Is makes errors.Is(err, ErrFrozen) hold for every FrozenMutationError.
func (e *FrozenMutationError) Is(target error) bool { return target == ErrFrozen }
