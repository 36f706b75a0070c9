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

package demo

import (
	"fmt"
	"maps"

	lazyfreeze "github.com/UriyaHarpeness/lazy-freeze"
	"github.com/UriyaHarpeness/lazy-freeze/apis"
	"github.com/UriyaHarpeness/lazy-freeze/config"
	"github.com/UriyaHarpeness/lazy-freeze/hashing"
)

// Person is a plain record whose identity covers every field.
type Person struct {
	Name string `freeze:"name"`
	Age  int    `freeze:"age"`
}

func (p *Person) Hash() uint64 { return hashing.Of(p.Name, p.Age) }

func (p Person) String() string { return fmt.Sprintf("Person(name=%q, age=%d)", p.Name, p.Age) }

// DebugPerson is Person guarded with stack capture enabled.
type DebugPerson struct {
	Name string `freeze:"name"`
	Age  int    `freeze:"age"`
}

func (p *DebugPerson) Hash() uint64 { return hashing.Of(p.Name, p.Age) }

// CustomDict is a map type; its item operations come from the map kind.
type CustomDict map[string]int

func (d CustomDict) Hash() uint64 { return hashing.Of(map[string]int(d)) }

// Base supplies an identity operation to types that embed it.
type Base struct {
	Key string
}

func (b Base) Hash() uint64 { return hashing.String(b.Key) }

// Child gets its identity from the embedded Base.
type Child struct {
	Base
	Value int
}

// Counter supports += and -= with an int or another Counter.
type Counter struct {
	Value int
}

func (c *Counter) Hash() uint64 { return hashing.Of(c.Value) }

func (c *Counter) AddAssign(operand any) error {
	n, err := counterOperand(operand)
	if err != nil {
		return err
	}
	c.Value += n
	return nil
}

func (c *Counter) SubAssign(operand any) error {
	n, err := counterOperand(operand)
	if err != nil {
		return err
	}
	c.Value -= n
	return nil
}

func counterOperand(operand any) (int, error) {
	switch v := operand.(type) {
	case int:
		return v, nil
	case Counter:
		return v.Value, nil
	case *Counter:
		return v.Value, nil
	default:
		return 0, fmt.Errorf("demo: unsupported operand %T for Counter", operand)
	}
}

// Container keeps open-ended attributes and items, and supplies its own
// field and item operations.
type Container struct {
	Attrs map[string]any
	Items map[string]any
}

// NewContainer returns a Container holding kv both as attributes and items.
func NewContainer(kv map[string]any) Container {
	return Container{Attrs: maps.Clone(kv), Items: maps.Clone(kv)}
}

func (c *Container) Hash() uint64 { return hashing.Of(c.Attrs) }

func (c *Container) SetField(name string, value any) error {
	if c.Attrs == nil {
		c.Attrs = make(map[string]any)
	}
	c.Attrs[name] = value
	return nil
}

func (c *Container) DeleteField(name string) error {
	delete(c.Attrs, name)
	return nil
}

func (c *Container) SetItem(key, value any) error {
	k, ok := key.(string)
	if !ok {
		return fmt.Errorf("demo: container keys are strings, got %T", key)
	}
	if c.Items == nil {
		c.Items = make(map[string]any)
	}
	c.Items[k] = value
	return nil
}

func (c *Container) DeleteItem(key any) error {
	k, _ := key.(string)
	delete(c.Items, k)
	return nil
}

// Profile protects only name and age; description stays editable.
type Profile struct {
	Name        string `freeze:"name"`
	Age         int    `freeze:"age"`
	Description string `freeze:"description"`
}

func (p *Profile) Hash() uint64 { return hashing.Of(p.Name, p.Age) }

// Point's identity reads X and Y; Label is discovered as unprotected.
type Point struct {
	X, Y  int
	Label string
}

func (p *Point) HashFields(r apis.FieldReader) uint64 {
	return hashing.Of(lazyfreeze.Read[int](r, "X"), lazyfreeze.Read[int](r, "Y"))
}

// NoHash has no identity operation and cannot be guarded.
type NoHash struct {
	Value int
}

// Record is the sample type used by Probe. Its identity reads ID and Name.
type Record struct {
	ID    string   `freeze:"id"`
	Name  string   `freeze:"name"`
	Notes string   `freeze:"notes"`
	Tags  []string `freeze:"tags"`
}

func (r *Record) HashFields(fr apis.FieldReader) uint64 {
	return hashing.Of(lazyfreeze.Read[string](fr, "id"), lazyfreeze.Read[string](fr, "name"))
}

func (r *Record) SetItem(key, value any) error {
	i, ok := key.(int)
	if !ok || i < 0 || i >= len(r.Tags) {
		return fmt.Errorf("demo: no tag at %v", key)
	}
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("demo: tags are strings, got %T", value)
	}
	r.Tags[i] = s
	return nil
}

var (
	personGuard      = lazyfreeze.MustDefine[Person]()
	debugPersonGuard = lazyfreeze.MustDefine[DebugPerson](config.WithDebug(true))
	dictGuard        = lazyfreeze.MustDefine[CustomDict]()
	childGuard       = lazyfreeze.MustDefine[Child]()
	counterGuard     = lazyfreeze.MustDefine[Counter]()
	containerGuard   = lazyfreeze.MustDefine[Container]()
	profileGuard     = lazyfreeze.MustDefine[Profile](config.WithFreezeFields("name", "age"))
	pointGuard       = lazyfreeze.MustDefine[Point](config.WithFreezeRead(), config.WithCacheHash(true))
)
