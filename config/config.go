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

package config

import (
	"slices"

	"github.com/UriyaHarpeness/lazy-freeze/apis"
)

const (
	// DefaultDebug represents the default for Debug.
	// Stack capture is off unless asked for.
	DefaultDebug = false
	// DefaultCacheHash represents the default for CacheHash.
	DefaultCacheHash = false
	// DefaultScopePolicy represents the default scope policy.
	// Every field is protected once frozen.
	DefaultScopePolicy = apis.ScopeAll
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Scope = normalizeScope(cfg.Scope)
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Debug:     DefaultDebug,
		CacheHash: DefaultCacheHash,
		Scope:     apis.Scope{Policy: DefaultScopePolicy},
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithDebug sets the Debug option.
func WithDebug(debug bool) Option {
	return func(c *apis.Config) {
		c.Debug = debug
	}
}

// WithCacheHash sets the CacheHash option.
func WithCacheHash(cache bool) Option {
	return func(c *apis.Config) {
		c.CacheHash = cache
	}
}

// WithScope sets the scope verbatim.
func WithScope(s apis.Scope) Option {
	return func(c *apis.Config) {
		c.Scope = apis.Scope{Policy: s.Policy, Fields: slices.Clone(s.Fields)}
	}
}

// WithFreezeAll protects every field once frozen.
func WithFreezeAll() Option {
	return WithScope(apis.Scope{Policy: apis.ScopeAll})
}

// WithFreezeRead protects exactly the fields the identity computation reads.
func WithFreezeRead() Option {
	return WithScope(apis.Scope{Policy: apis.ScopeDynamic})
}

// WithFreezeFields protects exactly the named fields.
// An empty list protects no field; items and in-place operators are still
// rejected after freezing.
func WithFreezeFields(names ...string) Option {
	return WithScope(apis.Scope{Policy: apis.ScopeExplicit, Fields: names})
}

// WithConfig replaces the whole configuration with cfg. Options given after
// it still apply.
func WithConfig(cfg apis.Config) Option {
	return func(c *apis.Config) {
		*c = cfg
		c.Scope.Fields = slices.Clone(cfg.Scope.Fields)
	}
}

// WithObserver sets the Observer option.
func WithObserver(o apis.Observer) Option {
	return func(c *apis.Config) {
		c.Observer = o
	}
}

// normalizeScope sorts and de-duplicates explicit fields and drops fields
// for the other policies.
func normalizeScope(s apis.Scope) apis.Scope {
	if s.Policy != apis.ScopeExplicit {
		return apis.Scope{Policy: s.Policy}
	}
	fields := slices.Clone(s.Fields)
	slices.Sort(fields)
	fields = slices.Compact(fields)
	if fields == nil {
		fields = []string{}
	}
	return apis.Scope{Policy: apis.ScopeExplicit, Fields: fields}
}
