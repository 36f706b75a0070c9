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

// Package lazyfreeze makes values immutable once their hash has been taken.
//
// A value that has been used as a key (a Go map keyed by its hash, a set,
// a cache) must not change the state its hash was computed from: once it
// does, the container can no longer find it. lazyfreeze turns that rule
// into a one-way state machine. A guarded value starts Mutable; the first
// successful call to its identity operation flips it to Frozen, and from
// then on every mutation of hash-relevant state is rejected with a
// *FrozenMutationError.
//
// # Design
//
// The guard is applied once per type, at definition time:
//
//	var people = lazyfreeze.MustDefine[Person](config.WithFreezeFields("Name", "Age"))
//
// Define runs the eligibility check (the type must be concrete and provide
// an identity operation, apis.Hasher or apis.FieldHasher), enumerates the
// type's exported fields, and captures the table of the type's original
// mutating operations. The result is an immutable Guard shared by every
// instance and recorded in a process-wide Registry.
//
// Instances are wrapped in an *Object:
//
//	p := people.New(Person{Name: "Alice", Age: 30})
//	_ = p.Set("Age", 31)   // ok, still mutable
//	key := p.Hash()        // freezes
//	err := p.Set("Age", 32) // *FrozenMutationError
//
// Object is the only route to the guarded operations: field set/delete,
// item set/delete, and the compound-assignment operators (Apply). Each one
// checks the instance's freeze record before delegating to the original
// operation.
//
// # Scope
//
// Which fields are protected is decided when the instance freezes:
//
//   - all (default): every field.
//   - explicit: exactly the configured names.
//   - dynamic: exactly the fields the identity computation read through its
//     apis.FieldReader. Requires apis.FieldHasher.
//
// Item and in-place operations cannot be attributed to a single field and
// are rejected once frozen regardless of scope. An identity computation
// that reads no field under the dynamic scope leaves every field mutable;
// the freeze event reports this as EmptyScope.
//
// # Diagnostics
//
// With config.WithDebug(true) the stack of the freezing Hash call is
// captured and rendered into every later rejection, so a caller can see
// where the value was first hashed.
//
// # Concurrency model
//
// Each Object serializes the freeze transition and every guarded mutation
// with its own mutex, so no write can land while the scope is being
// resolved. The freeze record is published through an atomic pointer and
// read lock-free by Frozen and by the cached Hash path. The identity
// operation runs under the instance lock and must not call back into the
// same Object.
//
// Values reachable through a frozen value (maps, slices, pointers held in
// its fields) are not protected.
package lazyfreeze
