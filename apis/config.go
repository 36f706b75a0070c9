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
	"reflect"
	"slices"
)

// ScopePolicy selects how the protected field set is computed when an
// instance freezes.
type ScopePolicy uint8

const (
	// ScopeAll protects every field once frozen.
	ScopeAll ScopePolicy = iota
	// ScopeDynamic protects exactly the fields read by the identity computation.
	ScopeDynamic
	// ScopeExplicit protects a fixed, caller-supplied set of fields.
	ScopeExplicit
)

// String returns the configuration spelling of the policy.
func (p ScopePolicy) String() string {
	switch p {
	case ScopeAll:
		return "all"
	case ScopeDynamic:
		return "dynamic"
	case ScopeExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// Scope describes which fields become protected at freeze time.
// Fields is only meaningful for ScopeExplicit.
type Scope struct {
	Policy ScopePolicy
	Fields []string
}

// Config carries the guard knobs resolved once when a type is defined.
// It is passed by value and must be treated as immutable afterwards.
type Config struct {
	// Debug captures a stack trace when the instance freezes and renders it
	// into every later FrozenMutationError.
	Debug bool

	// Scope controls which fields are protected after freezing.
	Scope Scope

	// CacheHash memoizes the identity value once the instance is frozen.
	CacheHash bool

	// Observer, when non-nil, is notified of freezes and rejections.
	// The guard itself never logs.
	Observer Observer
}

// Equal reports whether c and o describe the same guard behavior.
func (c Config) Equal(o Config) bool {
	if c.Debug != o.Debug || c.CacheHash != o.CacheHash || c.Scope.Policy != o.Scope.Policy {
		return false
	}
	if c.Scope.Policy == ScopeExplicit && !slices.Equal(c.Scope.Fields, o.Scope.Fields) {
		return false
	}
	return sameObserver(c.Observer, o.Observer)
}

// sameObserver compares observers without panicking on uncomparable
// dynamic types.
func sameObserver(a, b Observer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
