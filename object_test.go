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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lazyfreeze "github.com/UriyaHarpeness/lazy-freeze"
	"github.com/UriyaHarpeness/lazy-freeze/apis"
	"github.com/UriyaHarpeness/lazy-freeze/builder"
	"github.com/UriyaHarpeness/lazy-freeze/config"
	"github.com/UriyaHarpeness/lazy-freeze/registry"
)

func define[T any](t *testing.T, opts ...config.Option) *lazyfreeze.Guard[T] {
	t.Helper()
	g, err := lazyfreeze.DefineIn[T](registry.New(), opts...)
	require.NoError(t, err)
	return g
}

func TestPersonScenario(t *testing.T) {
	g := define[person](t)
	p := g.New(person{Name: "Alice", Age: 30})

	require.False(t, p.Frozen())
	require.NoError(t, p.Set("age", 31))
	assert.Equal(t, 31, p.Value().Age)

	h := p.Hash()
	assert.True(t, p.Frozen())

	err := p.Set("age", 32)
	var fme *lazyfreeze.FrozenMutationError
	require.ErrorAs(t, err, &fme)
	assert.ErrorIs(t, err, lazyfreeze.ErrFrozen)
	assert.Equal(t, apis.OpSetField, fme.Op)
	assert.Equal(t, "age", fme.Target)
	assert.Equal(t, `lazyfreeze: cannot modify field "age" of person after its hash has been taken`, err.Error())
	assert.Equal(t, 31, p.Value().Age)
	assert.Equal(t, h, p.Hash())
}

func TestPreFreezeMutability(t *testing.T) {
	g := define[person](t)
	p := g.New(person{Name: "a", Age: 1})

	for i := 0; i < 10; i++ {
		require.NoError(t, p.Set("age", i))
	}
	require.NoError(t, p.Delete("name"))
	assert.Equal(t, person{Age: 9}, p.Value())
	assert.False(t, p.Frozen())
	assert.Equal(t, "person(mutable)", p.String())
}

func TestFreezeMonotonic(t *testing.T) {
	g := define[person](t)
	p := g.New(person{Name: "a"})
	p.Hash()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, p.Set("name", "b"), apis.ErrFrozen)
		assert.ErrorIs(t, p.Delete("name"), apis.ErrFrozen)
		p.Hash()
		assert.True(t, p.Frozen())
	}
	prot, ok := p.Protected()
	require.True(t, ok)
	assert.True(t, prot.All())
	assert.Equal(t, "person(frozen all)", p.String())
}

func TestExplicitScenario(t *testing.T) {
	g := define[profile](t, config.WithFreezeFields("name", "age"))
	p := g.New(profile{Name: "Alice", Age: 30, Description: "engineer"})
	p.Hash()

	require.NoError(t, p.Set("description", "senior engineer"))
	assert.Equal(t, "senior engineer", p.Value().Description)
	assert.ErrorIs(t, p.Set("name", "Alicia"), apis.ErrFrozen)
	assert.ErrorIs(t, p.Set("age", 31), apis.ErrFrozen)
	assert.ErrorIs(t, p.Delete("name"), apis.ErrFrozen)
	require.NoError(t, p.Delete("description"))

	prot, _ := p.Protected()
	assert.Equal(t, []string{"age", "name"}, prot.Names())
}

func TestExplicitEmptyScope(t *testing.T) {
	g := define[counter](t, config.WithFreezeFields())
	c := g.New(counter{N: 1})
	c.Hash()

	require.NoError(t, c.Set("N", 5))
	assert.ErrorIs(t, c.Apply(apis.OpAdd, 1), apis.ErrFrozen)
}

func TestDynamicScope(t *testing.T) {
	g := define[point](t, config.WithFreezeRead())
	p := g.New(point{X: 1, Y: 2, Label: "a"})

	first := p.Hash()
	prot, ok := p.Protected()
	require.True(t, ok)
	assert.Equal(t, []string{"X", "Y"}, prot.Names())

	require.NoError(t, p.Set("Label", "b"))
	assert.ErrorIs(t, p.Set("X", 9), apis.ErrFrozen)
	assert.ErrorIs(t, p.Set("Y", 9), apis.ErrFrozen)

	// Later computations reading more fields do not widen the scope.
	assert.Equal(t, first, p.Hash())
	prot, _ = p.Protected()
	assert.Equal(t, []string{"X", "Y"}, prot.Names())
	require.NoError(t, p.Set("Label", "c"))
	assert.Equal(t, 2, p.Unwrap().calls)
}

func TestCachedHash(t *testing.T) {
	g := define[point](t, config.WithFreezeRead(), config.WithCacheHash(true))
	p := g.New(point{X: 1, Y: 2})

	first := p.Hash()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.Hash())
	}
	assert.Equal(t, 1, p.Unwrap().calls)
}

func TestDynamicEmptyScope(t *testing.T) {
	obs := &events{}
	g := define[blind](t, config.WithFreezeRead(), config.WithObserver(obs))
	b := g.New(blind{Value: 1})

	assert.Equal(t, uint64(42), b.Hash())
	prot, ok := b.Protected()
	require.True(t, ok)
	assert.True(t, prot.Empty())
	require.NoError(t, b.Set("Value", 2))

	ev := obs.last.Load()
	require.NotNil(t, ev)
	assert.True(t, ev.EmptyScope)
	assert.Equal(t, "blind", ev.Type)
}

func TestPanickingIdentityLeavesMutable(t *testing.T) {
	g := define[flaky](t, config.WithFreezeRead())
	f := g.New(flaky{Broken: true, Value: 3})

	assert.Panics(t, func() { f.Hash() })
	assert.False(t, f.Frozen())
	require.NoError(t, f.Set("Broken", false))

	assert.Equal(t, uint64(3), f.Hash())
	assert.True(t, f.Frozen())
	prot, _ := f.Protected()
	assert.Equal(t, []string{"Value"}, prot.Names())
}

func TestItemsRejectedRegardlessOfScope(t *testing.T) {
	g := define[bag](t, config.WithFreezeFields())
	b := g.New(bag{"a": 1})

	require.NoError(t, b.SetItem("b", 2))
	require.NoError(t, b.DeleteItem("a"))
	assert.Equal(t, bag{"b": 2}, b.Value())

	b.Hash()
	err := b.SetItem("c", 3)
	assert.ErrorIs(t, err, apis.ErrFrozen)
	assert.Equal(t, `lazyfreeze: cannot modify item "c" of bag after its hash has been taken`, err.Error())
	assert.ErrorIs(t, b.DeleteItem("b"), apis.ErrFrozen)
	assert.Equal(t, bag{"b": 2}, b.Value())
}

func TestInPlaceRejectedRegardlessOfScope(t *testing.T) {
	g := define[counter](t, config.WithFreezeFields("Label"))
	c := g.New(counter{N: 10})

	require.NoError(t, c.Apply(apis.OpAdd, 5))
	c.Hash()

	err := c.Apply(apis.OpAdd, 1)
	assert.ErrorIs(t, err, apis.ErrFrozen)
	assert.Contains(t, err.Error(), "apply in-place addition to counter")
	assert.Equal(t, 15, c.Value().N)
	require.NoError(t, c.Set("N", 0))
}

func TestUnsupportedOperations(t *testing.T) {
	g := define[person](t)
	p := g.New(person{})

	assert.False(t, g.Supports(apis.OpSetItem))
	assert.ErrorIs(t, p.SetItem("k", 1), apis.ErrUnsupported)
	assert.ErrorIs(t, p.Apply(apis.OpAdd, 1), apis.ErrUnsupported)
	assert.ErrorIs(t, p.Apply(apis.OpSetField, 1), apis.ErrUnsupported)

	p.Hash()
	assert.ErrorIs(t, p.DeleteItem("k"), apis.ErrUnsupported)
	assert.NotErrorIs(t, p.DeleteItem("k"), apis.ErrFrozen)
}

func TestDebugTrace(t *testing.T) {
	g := define[traced](t, config.WithDebug(true))
	v := g.New(traced{V: 1})
	assert.Empty(t, v.Trace())

	v.Hash()
	require.NotEmpty(t, v.Trace())
	assert.Contains(t, v.Trace(), "TestDebugTrace")

	err := v.Set("V", 2)
	require.ErrorIs(t, err, apis.ErrFrozen)
	assert.Contains(t, err.Error(), "hash was calculated at:")
	assert.Contains(t, err.Error(), "TestDebugTrace")
}

func TestNoDebugTrace(t *testing.T) {
	g := define[traced](t)
	v := g.New(traced{V: 1})
	v.Hash()

	err := v.Set("V", 2)
	require.ErrorIs(t, err, apis.ErrFrozen)
	assert.NotContains(t, err.Error(), "hash was calculated at:")
	assert.Empty(t, v.Trace())
}

func TestObserver(t *testing.T) {
	obs := &events{}
	g := define[person](t, config.WithObserver(obs))
	p := g.New(person{Name: "a"})

	require.NoError(t, p.Set("age", 1))
	p.Hash()
	p.Hash()
	assert.ErrorIs(t, p.Set("age", 2), apis.ErrFrozen)

	assert.Equal(t, int32(1), obs.frozen.Load())
	assert.Equal(t, int32(1), obs.rejected.Load())
	ev := obs.last.Load()
	require.NotNil(t, ev)
	assert.Equal(t, "person", ev.Type)
	assert.True(t, ev.Protected.All())
	assert.False(t, ev.EmptyScope)
}

func TestGetAndWrap(t *testing.T) {
	g := define[person](t)
	p := g.Wrap(nil)
	assert.Equal(t, person{}, p.Value())

	require.NoError(t, p.Set("name", "z"))
	v, err := p.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "z", v)

	_, err = p.Get("Name")
	assert.ErrorIs(t, err, builder.ErrNoField)

	src := &person{Name: "shared"}
	w := g.Wrap(src)
	require.NoError(t, w.Set("age", 7))
	assert.Equal(t, 7, src.Age)
	assert.Same(t, src, w.Unwrap())
}

func TestSetValueTypeMismatch(t *testing.T) {
	g := define[person](t)
	p := g.New(person{})
	assert.ErrorIs(t, p.Set("age", "old"), builder.ErrValueType)
	assert.ErrorIs(t, p.Set("missing", 1), builder.ErrNoField)
}
