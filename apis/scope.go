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
	"slices"
	"strings"
)

// Protected is the write-once set of field names protected after an
// instance freezes. The zero value protects nothing.
type Protected struct {
	all   bool
	names map[string]struct{}
}

// ProtectAll returns the sentinel set covering every field.
func ProtectAll() Protected {
	return Protected{all: true}
}

// ProtectFields returns a set covering exactly names.
func ProtectFields(names ...string) Protected {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return Protected{names: m}
}

// All reports whether p is the "all" sentinel.
func (p Protected) All() bool { return p.all }

// Covers reports whether mutating the named field must be rejected.
func (p Protected) Covers(name string) bool {
	if p.all {
		return true
	}
	_, ok := p.names[name]
	return ok
}

// Empty reports whether p protects no field at all.
func (p Protected) Empty() bool { return !p.all && len(p.names) == 0 }

// Names returns the protected names in sorted order, or nil for the
// "all" sentinel.
func (p Protected) Names() []string {
	if p.all {
		return nil
	}
	out := make([]string, 0, len(p.names))
	for n := range p.names {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

func (p Protected) String() string {
	if p.all {
		return "all"
	}
	return "{" + strings.Join(p.Names(), ", ") + "}"
}

// ScopeStrategy computes the protected set for one scope policy.
// Implementations must be safe for concurrent use.
type ScopeStrategy interface {
	// Tracks reports whether field reads made by the identity computation
	// have to be recorded while the instance freezes.
	Tracks() bool

	// Resolve finalizes the protected set. read holds the names recorded
	// during the freezing computation and is nil when Tracks is false.
	Resolve(read []string) Protected
}
