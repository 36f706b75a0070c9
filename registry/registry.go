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

package registry

import (
	"errors"
	"reflect"
	"sync"

	"github.com/UriyaHarpeness/lazy-freeze/apis"
	uref "github.com/UriyaHarpeness/lazy-freeze/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("lazyfreeze(registry): nil reflect.Type provided")
	// ErrNilDescriptor is returned when a nil descriptor is provided.
	ErrNilDescriptor = errors.New("lazyfreeze(registry): nil descriptor provided")
	// ErrConflictingRegistration indicates an attempt to define a type
	// again with a different configuration.
	ErrConflictingRegistration = errors.New("lazyfreeze(registry): conflicting type registration")
)

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to apis.Descriptor.
	m sync.Map // map[reflect.Type]apis.Descriptor
	// count tracks the number of registered entries.
	count int
}

// Register associates the concrete type of t with d.
// It is idempotent for equal configurations.
func (r *registry) Register(t reflect.Type, d apis.Descriptor) (apis.Descriptor, error) {
	// Validate inputs early.
	if t == nil {
		return nil, ErrNilType
	}
	if d == nil {
		return nil, ErrNilDescriptor
	}

	b, err := uref.Normalize(t)
	if err != nil {
		return nil, err
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(b); ok {
		return sameOrConflict(old.(apis.Descriptor), d)
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(b); ok {
		return sameOrConflict(old.(apis.Descriptor), d)
	}

	r.m.Store(b, d)
	r.count++
	return d, nil
}

func sameOrConflict(old, d apis.Descriptor) (apis.Descriptor, error) {
	if old.Config().Equal(d.Config()) {
		return old, nil // idempotent re-definition
	}
	return nil, ErrConflictingRegistration
}

// Lookup returns the descriptor for a type if present.
func (r *registry) Lookup(t reflect.Type) (apis.Descriptor, bool) {
	if t == nil {
		return nil, false
	}
	nt, err := uref.Normalize(t)
	if err != nil {
		return nil, false
	}
	if v, ok := r.m.Load(nt); ok {
		return v.(apis.Descriptor), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type:       key.(reflect.Type),
			Descriptor: value.(apis.Descriptor),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
