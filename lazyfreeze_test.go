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
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lazyfreeze "github.com/UriyaHarpeness/lazy-freeze"
	"github.com/UriyaHarpeness/lazy-freeze/apis"
	"github.com/UriyaHarpeness/lazy-freeze/config"
	"github.com/UriyaHarpeness/lazy-freeze/registry"
)

func TestDefine_ConfigurationErrors(t *testing.T) {
	var ce *lazyfreeze.ConfigurationError

	_, err := lazyfreeze.DefineIn[noHash](nil)
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, lazyfreeze.ErrMissingIdentity)
	assert.Equal(t, "noHash", ce.Type)

	_, err = lazyfreeze.DefineIn[func()](nil)
	assert.ErrorIs(t, err, lazyfreeze.ErrNotAType)

	_, err = lazyfreeze.DefineIn[*person](nil)
	assert.ErrorIs(t, err, lazyfreeze.ErrNotAType)

	_, err = lazyfreeze.DefineIn[apis.Hasher](nil)
	assert.ErrorIs(t, err, lazyfreeze.ErrNotAType)

	_, err = lazyfreeze.DefineIn[person](nil, config.WithFreezeFields("nickname"))
	assert.ErrorIs(t, err, lazyfreeze.ErrUnknownField)

	_, err = lazyfreeze.DefineIn[person](nil, config.WithFreezeRead())
	assert.ErrorIs(t, err, lazyfreeze.ErrMissingIdentity)
}

func TestMustDefinePanics(t *testing.T) {
	assert.Panics(t, func() { lazyfreeze.MustDefine[noHash]() })
}

func TestDefine_RegistryIdempotent(t *testing.T) {
	reg := registry.New()
	g1, err := lazyfreeze.DefineIn[profile](reg, config.WithFreezeFields("name", "age"))
	require.NoError(t, err)
	g2, err := lazyfreeze.DefineIn[profile](reg, config.WithFreezeFields("age", "name"))
	require.NoError(t, err)

	assert.Same(t, g1.Descriptor(), g2.Descriptor())
	assert.Equal(t, 1, reg.Count())
}

func TestDefine_RegistryConflict(t *testing.T) {
	reg := registry.New()
	_, err := lazyfreeze.DefineIn[profile](reg)
	require.NoError(t, err)
	_, err = lazyfreeze.DefineIn[profile](reg, config.WithDebug(true))
	assert.ErrorIs(t, err, registry.ErrConflictingRegistration)
}

func TestDefine_GlobalRegistry(t *testing.T) {
	prev := lazyfreeze.Registry()
	lazyfreeze.SetRegistry(registry.New())
	t.Cleanup(func() { lazyfreeze.SetRegistry(prev) })

	g, err := lazyfreeze.Define[person]()
	require.NoError(t, err)

	d, ok := lazyfreeze.Lookup(reflect.TypeFor[*person]())
	require.True(t, ok)
	assert.Same(t, g.Descriptor(), d)
	assert.Equal(t, "person", d.Name())

	lazyfreeze.SetRegistry(nil)
	assert.Equal(t, 1, lazyfreeze.Registry().Count())
}

func TestGuardIntrospection(t *testing.T) {
	g := define[profile](t, config.WithFreezeFields("name"), config.WithCacheHash(true))
	assert.Equal(t, []string{"name", "age", "description"}, g.Fields())
	assert.True(t, g.Config().CacheHash)
	assert.Equal(t, apis.ScopeExplicit, g.Config().Scope.Policy)
	assert.True(t, g.Supports(apis.OpSetField))
	assert.True(t, g.Supports(apis.OpDeleteField))
	assert.Equal(t, reflect.TypeFor[profile](), g.Descriptor().Type())
}

func TestGetAfterFreeze(t *testing.T) {
	g := define[point](t, config.WithFreezeRead())
	p := g.New(point{X: 4, Y: 5})
	p.Hash()

	v, err := p.Get("X")
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

type mapReader map[string]any

func (m mapReader) Field(name string) any { return m[name] }

func TestRead(t *testing.T) {
	r := mapReader{"n": 3, "s": "x"}
	assert.Equal(t, 3, lazyfreeze.Read[int](r, "n"))
	assert.Equal(t, "x", lazyfreeze.Read[string](r, "s"))
	assert.Equal(t, 0, lazyfreeze.Read[int](r, "s"))
}
