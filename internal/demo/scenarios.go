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

// Package demo holds sample guarded types and runnable scenarios showing
// the guard's behavior. It backs the lazyfreeze demo command.
package demo

import (
	"errors"
	"fmt"

	lazyfreeze "github.com/UriyaHarpeness/lazy-freeze"
	"github.com/UriyaHarpeness/lazy-freeze/apis"
)

// Step is one action taken by a scenario and its outcome.
type Step struct {
	// Action describes what was attempted.
	Action string
	// Err is the error the action returned.
	Err error
	// Want is the expected error kind, nil when the action should succeed.
	Want error
	// Note marks purely informational steps.
	Note bool
}

// OK reports whether the step behaved as expected.
func (s Step) OK() bool {
	if s.Want == nil {
		return s.Err == nil
	}
	return errors.Is(s.Err, s.Want)
}

// Scenario is a named demonstration.
type Scenario struct {
	Name  string
	Title string
	Run   func() []Step
}

// Scenarios returns every scenario in presentation order.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "person", Title: "Person", Run: runPerson},
		{Name: "dict", Title: "Dictionary", Run: runDict},
		{Name: "map-key", Title: "Using as a map key", Run: runMapKey},
		{Name: "inherited", Title: "Inherited hash", Run: runInherited},
		{Name: "no-hash", Title: "Missing identity operation", Run: runNoHash},
		{Name: "in-place", Title: "In-place operations", Run: runInPlace},
		{Name: "deletion", Title: "Deletion protection", Run: runDeletion},
		{Name: "debug", Title: "Debug stack traces", Run: runDebug},
		{Name: "explicit", Title: "Explicit scope", Run: runExplicit},
		{Name: "dynamic", Title: "Dynamic scope", Run: runDynamic},
	}
}

// Find returns the scenario with the given name.
func Find(name string) (Scenario, bool) {
	for _, s := range Scenarios() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// recorder accumulates steps.
type recorder struct {
	steps []Step
}

func (r *recorder) ok(action string, err error) {
	r.steps = append(r.steps, Step{Action: action, Err: err})
}

func (r *recorder) fail(action string, err, want error) {
	r.steps = append(r.steps, Step{Action: action, Err: err, Want: want})
}

func (r *recorder) note(format string, args ...any) {
	r.steps = append(r.steps, Step{Action: fmt.Sprintf(format, args...), Note: true})
}

func runPerson() []Step {
	var r recorder
	p := personGuard.New(Person{Name: "Alice", Age: 30})
	r.note("created %v", p.Value())
	r.ok("age = 31 before hash", p.Set("age", 31))
	r.note("hash = %#x, frozen = %t", p.Hash(), p.Frozen())
	r.fail("age = 32 after hash", p.Set("age", 32), apis.ErrFrozen)
	return r.steps
}

func runDict() []Step {
	var r recorder
	d := dictGuard.New(CustomDict{"a": 1, "b": 2})
	r.ok(`d["c"] = 3 before hash`, d.SetItem("c", 3))
	r.note("hash = %#x", d.Hash())
	r.fail(`d["d"] = 4 after hash`, d.SetItem("d", 4), apis.ErrFrozen)
	r.fail(`delete(d, "a") after hash`, d.DeleteItem("a"), apis.ErrFrozen)
	return r.steps
}

func runMapKey() []Step {
	var r recorder
	p1 := personGuard.New(Person{Name: "Bob", Age: 25})
	p2 := personGuard.New(Person{Name: "Carol", Age: 35})
	people := map[uint64]string{p1.Hash(): "first person", p2.Hash(): "second person"}
	r.note("lookup p1: %s", people[p1.Hash()])
	r.fail("p1.age = 26 while used as a key", p1.Set("age", 26), apis.ErrFrozen)

	p3 := personGuard.New(Person{Name: "Bob", Age: 25})
	var err error
	if got, ok := people[p3.Hash()]; !ok || got != "first person" {
		err = fmt.Errorf("equal person not found, got %q", got)
	}
	r.ok("lookup with an equal person", err)
	return r.steps
}

func runInherited() []Step {
	var r recorder
	c := childGuard.New(Child{Base: Base{Key: "k"}, Value: 42})
	r.ok("value = 43 before hash", c.Set("Value", 43))
	r.note("hash = %#x", c.Hash())
	r.fail("value = 44 after hash", c.Set("Value", 44), apis.ErrFrozen)
	return r.steps
}

func runNoHash() []Step {
	var r recorder
	_, err := lazyfreeze.DefineIn[NoHash](nil)
	r.fail("define a type without Hash", err, apis.ErrMissingIdentity)
	_, err = lazyfreeze.DefineIn[func()](nil)
	r.fail("define a func type", err, apis.ErrNotAType)
	return r.steps
}

func runInPlace() []Step {
	var r recorder
	c := counterGuard.New(Counter{Value: 10})
	r.ok("c += 5 before hash", c.Apply(apis.OpAdd, 5))
	r.note("value = %d, hash = %#x", c.Value().Value, c.Hash())
	r.fail("c += 3 after hash", c.Apply(apis.OpAdd, 3), apis.ErrFrozen)
	r.fail("c -= 2 after hash", c.Apply(apis.OpSub, 2), apis.ErrFrozen)
	r.fail("c *= 2 (never defined)", c.Apply(apis.OpMul, 2), apis.ErrUnsupported)
	return r.steps
}

func runDeletion() []Step {
	var r recorder
	c := containerGuard.New(NewContainer(map[string]any{"name": "Test", "count": 42}))
	r.ok("delete attribute count before hash", c.Delete("count"))
	r.ok(`delete item "name" before hash`, c.DeleteItem("name"))
	r.note("hash = %#x", c.Hash())
	r.fail("delete attribute name after hash", c.Delete("name"), apis.ErrFrozen)
	r.fail(`delete item "count" after hash`, c.DeleteItem("count"), apis.ErrFrozen)
	return r.steps
}

func runDebug() []Step {
	var r recorder
	p := debugPersonGuard.New(DebugPerson{Name: "Bob", Age: 25})
	hashForLookup(p)
	err := p.Set("age", 999)
	r.fail("age = 999 after hashing in hashForLookup", err, apis.ErrFrozen)
	if err != nil {
		r.note("%v", err)
	}
	return r.steps
}

// hashForLookup stands in for code far away from the mutation that hashed
// the value; the debug trace points here.
//
//go:noinline
func hashForLookup(p *lazyfreeze.Object[DebugPerson]) uint64 {
	return p.Hash()
}

func runExplicit() []Step {
	var r recorder
	p := profileGuard.New(Profile{Name: "Alice", Age: 30, Description: "engineer"})
	r.note("hash = %#x", p.Hash())
	r.ok("description = ... after hash", p.Set("description", "senior engineer"))
	r.fail("name = Alicia after hash", p.Set("name", "Alicia"), apis.ErrFrozen)
	r.fail("age = 31 after hash", p.Set("age", 31), apis.ErrFrozen)
	return r.steps
}

func runDynamic() []Step {
	var r recorder
	p := pointGuard.New(Point{X: 1, Y: 2, Label: "origin-ish"})
	first := p.Hash()
	prot, _ := p.Protected()
	r.note("hash = %#x, protected = %v", first, prot)
	var err error
	if again := p.Hash(); again != first {
		err = fmt.Errorf("cached hash changed: %#x != %#x", again, first)
	}
	r.ok("hash again returns the cached value", err)
	r.ok("label = moved after hash", p.Set("Label", "moved"))
	r.fail("x = 5 after hash", p.Set("X", 5), apis.ErrFrozen)
	return r.steps
}
