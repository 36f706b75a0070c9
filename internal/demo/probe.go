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
	lazyfreeze "github.com/UriyaHarpeness/lazy-freeze"
	"github.com/UriyaHarpeness/lazy-freeze/apis"
	"github.com/UriyaHarpeness/lazy-freeze/config"
	"github.com/UriyaHarpeness/lazy-freeze/registry"
)

// ProbeResult is the outcome of one post-freeze mutation attempted by Probe.
type ProbeResult struct {
	Op     apis.Op
	Target string
	Err    error
}

// Allowed reports whether the mutation went through.
func (p ProbeResult) Allowed() bool { return p.Err == nil }

// Probe defines Record under cfg, freezes a sample instance and attempts
// every kind of mutation, reporting which ones the guard lets through.
// The definition lives in a private registry so repeated probes with
// different configurations do not conflict.
func Probe(cfg apis.Config) (apis.Protected, []ProbeResult, error) {
	g, err := lazyfreeze.DefineIn[Record](registry.New(), config.WithConfig(cfg))
	if err != nil {
		return apis.Protected{}, nil, err
	}
	rec := g.New(Record{ID: "r-1", Name: "sample", Notes: "n/a", Tags: []string{"a", "b"}})
	rec.Hash()
	prot, _ := rec.Protected()

	var out []ProbeResult
	for _, f := range g.Fields() {
		var v any = "changed"
		if f == "tags" {
			v = []string{"changed"}
		}
		out = append(out, ProbeResult{Op: apis.OpSetField, Target: f, Err: rec.Set(f, v)})
	}
	out = append(out,
		ProbeResult{Op: apis.OpSetItem, Target: "0", Err: rec.SetItem(0, "z")},
		ProbeResult{Op: apis.OpAdd, Err: rec.Apply(apis.OpAdd, 1)},
	)
	return prot, out, nil
}
