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
	"github.com/UriyaHarpeness/lazy-freeze/apis"
	"github.com/UriyaHarpeness/lazy-freeze/builder"
)

// Guard is the definition of a guarded type T. It is immutable and safe
// for concurrent use.
type Guard[T any] struct {
	desc *builder.Descriptor
}

// Wrap guards the value v points to. All later mutations must go through
// the returned Object. A nil v wraps a new zero T.
func (g *Guard[T]) Wrap(v *T) *Object[T] {
	if v == nil {
		v = new(T)
	}
	return &Object[T]{desc: g.desc, v: v}
}

// New guards a copy of v.
func (g *Guard[T]) New(v T) *Object[T] {
	return g.Wrap(&v)
}

// Descriptor returns the resolved definition.
func (g *Guard[T]) Descriptor() apis.Descriptor { return g.desc }

// Config returns the configuration the guard was defined with.
func (g *Guard[T]) Config() apis.Config { return g.desc.Config() }

// Fields returns the declared field names in declaration order.
func (g *Guard[T]) Fields() []string { return g.desc.Fields() }

// Supports reports whether T defines op.
func (g *Guard[T]) Supports(op apis.Op) bool { return g.desc.Ops().Has(op) }
