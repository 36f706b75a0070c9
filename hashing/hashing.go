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

// Package hashing provides helpers for writing identity operations.
//
// Go has no built-in hash for arbitrary values, so guarded types usually
// combine their fields with Of:
//
//	func (p *Person) Hash() uint64 { return hashing.Of(p.Name, p.Age) }
package hashing

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure/v2"
)

// Sum hashes values as an ordered tuple. Structs, maps, slices and
// pointers are hashed structurally; map iteration order does not matter.
func Sum(values ...any) (uint64, error) {
	h, err := hashstructure.Hash(values, hashstructure.FormatV2, &hashstructure.HashOptions{
		Hasher: xxhash.New(),
	})
	if err != nil {
		return 0, fmt.Errorf("hashing: %w", err)
	}
	return h, nil
}

// Of is like Sum but panics if a value cannot be hashed (for example a
// func or channel). Identity operations have no error return, so an
// unhashable field is a programming error.
func Of(values ...any) uint64 {
	h, err := Sum(values...)
	if err != nil {
		panic(err)
	}
	return h
}

// String hashes a single string without reflection.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}
