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

import "reflect"

// Descriptor is the resolved, immutable guard definition of one type.
type Descriptor interface {
	// Type is the guarded type.
	Type() reflect.Type
	// Name is the short type name used in messages.
	Name() string
	// Config is the configuration the guard was defined with.
	Config() Config
}

// Registry maps guarded types to their descriptors. A type is defined once;
// later definitions must agree with the first.
type Registry interface {
	// Register stores d for t. If t is already registered with an equal
	// configuration the existing descriptor is returned; a different
	// configuration is a conflict.
	Register(t reflect.Type, d Descriptor) (Descriptor, error)
	// Lookup returns the descriptor for t (pointers to t resolve to t).
	Lookup(t reflect.Type) (Descriptor, bool)
	// Entries returns a snapshot for diagnostics (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (type, descriptor) association in a Registry snapshot.
type Entry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Descriptor is the guard definition.
	Descriptor Descriptor
}
