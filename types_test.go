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

package lazyfreeze_test

import (
	"sync/atomic"

	lazyfreeze "github.com/UriyaHarpeness/lazy-freeze"
	"github.com/UriyaHarpeness/lazy-freeze/apis"
	"github.com/UriyaHarpeness/lazy-freeze/hashing"
)

type person struct {
	Name string `freeze:"name"`
	Age  int    `freeze:"age"`
}

func (p *person) Hash() uint64 { return hashing.Of(p.Name, p.Age) }

type profile struct {
	Name        string `freeze:"name"`
	Age         int    `freeze:"age"`
	Description string `freeze:"description"`
}

func (p *profile) Hash() uint64 { return hashing.Of(p.Name, p.Age) }

// point reads Y through a helper so reads are tracked transitively. The
// second and later computations also read Label.
type point struct {
	X, Y  int
	Label string
	calls int
}

func (p *point) HashFields(r apis.FieldReader) uint64 {
	p.calls++
	h := hashing.Of(lazyfreeze.Read[int](r, "X"), readY(r))
	if p.calls > 1 {
		_ = lazyfreeze.Read[string](r, "Label")
	}
	return h
}

func readY(r apis.FieldReader) int { return lazyfreeze.Read[int](r, "Y") }

// blind reads no field at all.
type blind struct {
	Value int
}

func (blind) HashFields(apis.FieldReader) uint64 { return 42 }

// flaky panics from its identity while Broken is set.
type flaky struct {
	Broken bool
	Value  int
}

func (f *flaky) HashFields(r apis.FieldReader) uint64 {
	if f.Broken {
		panic("flaky identity")
	}
	return uint64(lazyfreeze.Read[int](r, "Value"))
}

type bag map[string]int

func (b bag) Hash() uint64 { return hashing.Of(map[string]int(b)) }

type counter struct {
	N     int
	Label string
}

func (c *counter) Hash() uint64 { return hashing.Of(c.N) }

func (c *counter) AddAssign(x any) error { c.N += x.(int); return nil }

type noHash struct{ V int }

type traced struct{ V int }

func (t *traced) Hash() uint64 { return uint64(t.V) }

// events counts observer callbacks.
type events struct {
	frozen   atomic.Int32
	rejected atomic.Int32
	last     atomic.Pointer[apis.FreezeEvent]
}

func (e *events) Frozen(ev apis.FreezeEvent) {
	e.frozen.Add(1)
	e.last.Store(&ev)
}

func (e *events) Rejected(*apis.FrozenMutationError) { e.rejected.Add(1) }
