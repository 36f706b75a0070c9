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
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/UriyaHarpeness/lazy-freeze/apis"
	"github.com/UriyaHarpeness/lazy-freeze/config"
)

// TestConcurrentHashAndSet races freezes against mutations on one
// instance. Every Hash result must match the frozen state and exactly one
// freeze must be observed.
func TestConcurrentHashAndSet(t *testing.T) {
	obs := &events{}
	g := define[person](t, config.WithObserver(obs))
	p := g.New(person{Name: "race"})

	workers := runtime.GOMAXPROCS(0) * 4
	hashes := make([]uint64, workers)

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for i := 0; i < 200; i++ {
				if err := p.Set("age", w*1000+i); err != nil && !errors.Is(err, apis.ErrFrozen) {
					return err
				}
			}
			hashes[w] = p.Hash()
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	require.True(t, p.Frozen())
	final := p.Hash()
	for w, h := range hashes {
		assert.Equalf(t, final, h, "worker %d", w)
	}
	assert.Equal(t, int32(1), obs.frozen.Load())
}

// TestConcurrentDynamicFreeze freezes many instances concurrently while
// other goroutines hammer the unprotected field.
func TestConcurrentDynamicFreeze(t *testing.T) {
	g := define[point](t, config.WithFreezeRead(), config.WithCacheHash(true))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0) * 4)
	for i := 0; i < 64; i++ {
		eg.Go(func() error {
			p := g.New(point{X: i, Y: -i})
			done := make(chan struct{})
			go func() {
				defer close(done)
				for j := 0; j < 100; j++ {
					_ = p.Set("Label", fmt.Sprint(j))
				}
			}()
			h := p.Hash()
			<-done
			if p.Hash() != h {
				return fmt.Errorf("instance %d: cached hash changed", i)
			}
			if err := p.Set("X", 0); !errors.Is(err, apis.ErrFrozen) {
				return fmt.Errorf("instance %d: X not protected: %v", i, err)
			}
			return p.Set("Label", "final")
		})
	}
	require.NoError(t, eg.Wait())
}
