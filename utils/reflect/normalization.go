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

package reflect

import (
	"errors"
	"reflect"
)

// MaxUnwrap limits pointer unwrapping depth.
// A value of 8 should be sufficient for all practical purposes.
const MaxUnwrap = 8

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectNotConcrete indicates that the provided type (after unwrapping
	// pointers) is a func, interface, or unsafe pointer, or that unwrapping
	// exceeded MaxUnwrap.
	ErrReflectNotConcrete = errors.New("reflect: type is not a concrete guardable type")
)

// Normalize unwraps pointers and returns the concrete type underneath, or an
// error if none is found.
//
// Unwrapping policy:
//   - ptr -> Elem(), at most MaxUnwrap times
//   - func/interface/unsafe pointer -> ErrReflectNotConcrete
//   - default: return t
func Normalize(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	for i := 0; t.Kind() == reflect.Pointer; i++ {
		if i == MaxUnwrap {
			return nil, ErrReflectNotConcrete
		}
		t = t.Elem()
	}
	if !Concrete(t) {
		return nil, ErrReflectNotConcrete
	}
	return t, nil
}

// Concrete reports whether t can carry guarded instance state.
func Concrete(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Invalid, reflect.Func, reflect.Interface, reflect.UnsafePointer, reflect.Pointer:
		return false
	default:
		return true
	}
}
