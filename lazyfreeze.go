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

package lazyfreeze

import (
	"reflect"
	"sync/atomic"

	"github.com/UriyaHarpeness/lazy-freeze/apis"
	"github.com/UriyaHarpeness/lazy-freeze/builder"
	"github.com/UriyaHarpeness/lazy-freeze/config"
	"github.com/UriyaHarpeness/lazy-freeze/registry"
)

// init initializes the global registry.
func init() {
	st.Store(&state{reg: registry.New()})
}

// Re-exported error kinds so callers need not import apis.
type (
	ConfigurationError  = apis.ConfigurationError
	FrozenMutationError = apis.FrozenMutationError
)

var (
	ErrNotAType        = apis.ErrNotAType
	ErrMissingIdentity = apis.ErrMissingIdentity
	ErrUnknownField    = apis.ErrUnknownField
	ErrFrozen          = apis.ErrFrozen
	ErrUnsupported     = apis.ErrUnsupported
)

// Define applies the guard to T. It validates T, resolves the configuration
// from opts, and records the definition in the global registry. Defining
// the same type again with an equal configuration returns a guard backed by
// the first definition; a different configuration fails with
// registry.ErrConflictingRegistration.
func Define[T any](opts ...config.Option) (*Guard[T], error) {
	return DefineIn[T](Registry(), opts...)
}

// DefineIn is like Define but records the definition in reg. A nil reg
// skips registration.
func DefineIn[T any](reg apis.Registry, opts ...config.Option) (*Guard[T], error) {
	t := reflect.TypeFor[T]()
	d, err := builder.Build(t, config.NewConfig(opts...))
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return &Guard[T]{desc: d}, nil
	}
	got, err := reg.Register(t, d)
	if err != nil {
		return nil, err
	}
	if bd, ok := got.(*builder.Descriptor); ok {
		d = bd
	}
	return &Guard[T]{desc: d}, nil
}

// MustDefine is like Define but panics on error. It is meant for
// package-level guard variables.
func MustDefine[T any](opts ...config.Option) *Guard[T] {
	g, err := Define[T](opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Lookup returns the definition registered for t, if any.
func Lookup(t reflect.Type) (apis.Descriptor, bool) {
	return Registry().Lookup(t)
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry replaces the global registry. A nil registry is ignored.
// Guards defined earlier keep working; only later definitions see reg.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	st.Store(&state{reg: reg})
}

// st is the global lazyfreeze state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable once published via st.Store.
type state struct {
	// reg maps guarded types to their definitions.
	reg apis.Registry
}
