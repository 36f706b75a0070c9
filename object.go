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
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/UriyaHarpeness/lazy-freeze/apis"
	"github.com/UriyaHarpeness/lazy-freeze/builder"
	"github.com/UriyaHarpeness/lazy-freeze/utils/stack"
)

// Object is a guarded instance of T. It is mutable until Hash is first
// called and frozen for the rest of its lifetime afterwards.
type Object[T any] struct {
	desc *builder.Descriptor
	v    *T
	// mu serializes the freeze transition and guarded mutations.
	mu sync.Mutex
	// rec is nil while mutable. Once stored it is never replaced.
	rec atomic.Pointer[record]
}

// record is the write-once freeze record of an instance.
type record struct {
	// protected is the finalized scope.
	protected apis.Protected
	// hash is the memoized identity, valid when cached is set.
	hash   uint64
	cached bool
	// trace is the rendered freeze stack when debug is enabled.
	trace string
}

// Hash computes the identity value of the instance. The first call freezes
// the instance; later calls recompute the value, or return the memoized
// one when the guard caches hashes.
func (o *Object[T]) Hash() uint64 {
	if rec := o.rec.Load(); rec != nil && rec.cached {
		return rec.hash
	}
	h, ev := o.hash()
	if ev != nil {
		if obs := o.desc.Config().Observer; obs != nil {
			obs.Frozen(*ev)
		}
	}
	return h
}

// hash runs the identity operation and, on the first call, performs the
// Mutable -> Frozen transition. It returns a non-nil event only for the
// call that froze the instance.
func (o *Object[T]) hash() (uint64, *apis.FreezeEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	d := o.desc
	if rec := o.rec.Load(); rec != nil {
		if rec.cached {
			return rec.hash, nil
		}
		return d.Identity(o.v, d.Reader(o.v, false)), nil
	}

	scope := d.Scope()
	tr := d.Reader(o.v, scope.Tracks())
	h := d.Identity(o.v, tr)

	cfg := d.Config()
	rec := &record{protected: scope.Resolve(tr.Finish())}
	if cfg.CacheHash {
		rec.hash, rec.cached = h, true
	}
	if cfg.Debug {
		// Drop hash and Hash so the trace starts at the caller.
		rec.trace = stack.Capture(2)
	}
	// Publishing the record is the transition; it must come last.
	o.rec.Store(rec)

	return h, &apis.FreezeEvent{
		Type:       d.Name(),
		Hash:       h,
		Protected:  rec.protected,
		EmptyScope: rec.protected.Empty(),
		Trace:      rec.trace,
	}
}

// Frozen reports whether the instance's hash has been taken.
func (o *Object[T]) Frozen() bool {
	return o.rec.Load() != nil
}

// Protected returns the protected field set. ok is false while the
// instance is still mutable.
func (o *Object[T]) Protected() (p apis.Protected, ok bool) {
	rec := o.rec.Load()
	if rec == nil {
		return apis.Protected{}, false
	}
	return rec.protected, true
}

// Trace returns the stack captured when the instance froze, or "" when
// debug is off or the instance is mutable.
func (o *Object[T]) Trace() string {
	if rec := o.rec.Load(); rec != nil {
		return rec.trace
	}
	return ""
}

// Get returns the current value of the named field.
func (o *Object[T]) Get(name string) (any, error) {
	if !o.desc.HasField(name) {
		return nil, fmt.Errorf("%w: %s has no field %q", builder.ErrNoField, o.desc.Name(), name)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.desc.Reader(o.v, false).Field(name), nil
}

// Value returns a shallow copy of the guarded value.
func (o *Object[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return *o.v
}

// Unwrap returns the guarded pointer. Writes made through it bypass the
// guard entirely.
func (o *Object[T]) Unwrap() *T {
	return o.v
}

func (o *Object[T]) String() string {
	state := "mutable"
	if rec := o.rec.Load(); rec != nil {
		state = "frozen " + rec.protected.String()
	}
	return fmt.Sprintf("%s(%s)", o.desc.Name(), state)
}
