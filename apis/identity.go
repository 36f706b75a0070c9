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

// Hasher is the identity operation of a guarded type. The value must be
// consistent with the type's notion of equality.
type Hasher interface {
	Hash() uint64
}

// FieldHasher is an identity operation that reads fields through r.
// Reads made through r are what the dynamic scope observes, so a type
// defined with ScopeDynamic must implement FieldHasher.
type FieldHasher interface {
	HashFields(r FieldReader) uint64
}

// FieldReader gives an identity computation read access to the declared
// fields of the instance being hashed.
type FieldReader interface {
	// Field returns the current value of the named field.
	// It panics if the type declares no such field.
	Field(name string) any
}
