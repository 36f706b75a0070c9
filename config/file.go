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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/UriyaHarpeness/lazy-freeze/apis"
)

// ErrFieldsWithoutExplicit is returned when a file lists fields for a scope
// policy other than explicit.
var ErrFieldsWithoutExplicit = errors.New("lazyfreeze(config): fields are only valid with the explicit scope")

var validate = validator.New()

// File is the on-disk form of a guard configuration:
//
//	debug: true
//	cache_hash: false
//	scope: dynamic            # all | dynamic | explicit
//
// The scope may also be given as a list of fields, which selects the
// explicit policy, or as a mapping with policy and fields keys.
type File struct {
	Debug     bool      `yaml:"debug"`
	CacheHash bool      `yaml:"cache_hash"`
	Scope     FileScope `yaml:"scope"`
}

// FileScope is the scope node of a File.
type FileScope struct {
	Policy string   `yaml:"policy" validate:"omitempty,oneof=all dynamic explicit"`
	Fields []string `yaml:"fields" validate:"dive,required"`
}

// UnmarshalYAML accepts a policy scalar, a field sequence, or a mapping.
func (s *FileScope) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&s.Policy)
	case yaml.SequenceNode:
		s.Policy = apis.ScopeExplicit.String()
		return value.Decode(&s.Fields)
	case yaml.MappingNode:
		type plain FileScope
		return value.Decode((*plain)(s))
	default:
		return fmt.Errorf("lazyfreeze(config): invalid scope node at line %d", value.Line)
	}
}

// Options converts the file into functional options.
func (f File) Options() []Option {
	opts := []Option{WithDebug(f.Debug), WithCacheHash(f.CacheHash)}
	switch f.Scope.Policy {
	case "dynamic":
		opts = append(opts, WithFreezeRead())
	case "explicit":
		opts = append(opts, WithFreezeFields(f.Scope.Fields...))
	default:
		opts = append(opts, WithFreezeAll())
	}
	return opts
}

// Load decodes and validates a YAML guard configuration. extra options are
// applied after the file's own settings.
func Load(r io.Reader, extra ...Option) (apis.Config, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return apis.Config{}, fmt.Errorf("lazyfreeze(config): decode: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return apis.Config{}, fmt.Errorf("lazyfreeze(config): validate: %w", err)
	}
	if len(f.Scope.Fields) > 0 && f.Scope.Policy != "explicit" {
		return apis.Config{}, ErrFieldsWithoutExplicit
	}
	return NewConfig(append(f.Options(), extra...)...), nil
}

// LoadFile reads the configuration at path.
func LoadFile(path string, extra ...Option) (apis.Config, error) {
	fh, err := os.Open(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("lazyfreeze(config): %w", err)
	}
	defer fh.Close()
	return Load(fh, extra...)
}
