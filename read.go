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

import "github.com/UriyaHarpeness/lazy-freeze/apis"

// Read returns the named field through r asserted to V, or the zero V if
// the field holds a different type.
//
//	func (p *Person) HashFields(r apis.FieldReader) uint64 {
//		return hashing.Of(lazyfreeze.Read[string](r, "Name"), lazyfreeze.Read[int](r, "Age"))
//	}
func Read[V any](r apis.FieldReader, name string) V {
	v, _ := r.Field(name).(V)
	return v
}
