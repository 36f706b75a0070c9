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

package builder

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/UriyaHarpeness/lazy-freeze/apis"
	"github.com/UriyaHarpeness/lazy-freeze/resolver"
	"github.com/UriyaHarpeness/lazy-freeze/strategy"
	uref "github.com/UriyaHarpeness/lazy-freeze/utils/reflect"
)

var (
	hasherType      = reflect.TypeFor[apis.Hasher]()
	fieldHasherType = reflect.TypeFor[apis.FieldHasher]()
)

// Descriptor is the resolved guard definition of one type. It is built once
// by Build and never mutated afterwards, so it is safe to share.
type Descriptor struct {
	typ    reflect.Type
	name   string
	cfg    apis.Config
	scope  apis.ScopeStrategy
	fields []uref.Field
	byName map[string]uref.Field
	// tracked is set when the identity reads through an apis.FieldReader.
	tracked bool
	ops     Operations
}

// Ensure Descriptor implements apis.Descriptor.
var _ apis.Descriptor = (*Descriptor)(nil)

// Build runs the eligibility check for t and captures its operation table.
// t must be the non-pointer type; instances are handled through *t.
func Build(t reflect.Type, cfg apis.Config) (*Descriptor, error) {
	if err := checkType(t); err != nil {
		return nil, err
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}

	pt := reflect.PointerTo(t)
	tracked := pt.Implements(fieldHasherType)
	if !tracked && !pt.Implements(hasherType) {
		return nil, &apis.ConfigurationError{
			Type:   name,
			Kind:   apis.ErrMissingIdentity,
			Detail: fmt.Sprintf("%s must implement Hash() uint64 or HashFields(apis.FieldReader) uint64; the value should be consistent with equality", name),
		}
	}
	if cfg.Scope.Policy == apis.ScopeDynamic && !tracked {
		return nil, &apis.ConfigurationError{
			Type:   name,
			Kind:   apis.ErrMissingIdentity,
			Detail: fmt.Sprintf("%s must implement HashFields(apis.FieldReader) uint64 to use the dynamic scope", name),
		}
	}

	fields, err := uref.Fields(t)
	if err != nil {
		var dup *uref.DuplicateFieldError
		if errors.As(err, &dup) {
			return nil, &apis.ConfigurationError{Type: name, Kind: apis.ErrDuplicateField, Detail: err.Error()}
		}
		return nil, err
	}
	byName := make(map[string]uref.Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	if cfg.Scope.Policy == apis.ScopeExplicit {
		for _, n := range cfg.Scope.Fields {
			if _, ok := byName[n]; !ok {
				return nil, &apis.ConfigurationError{
					Type:   name,
					Kind:   apis.ErrUnknownField,
					Detail: fmt.Sprintf("%s declares no field %q named in the explicit scope", name, n),
				}
			}
		}
	}

	return &Descriptor{
		typ:     t,
		name:    name,
		cfg:     cfg,
		scope:   strategy.New(cfg.Scope),
		fields:  fields,
		byName:  byName,
		tracked: tracked,
		ops:     captureOperations(t, name, byName),
	}, nil
}

// checkType rejects values that cannot be guarded as a type.
func checkType(t reflect.Type) error {
	if t == nil {
		return &apis.ConfigurationError{Type: "<nil>", Kind: apis.ErrNotAType, Detail: "the guard can only be applied to types, got <nil>"}
	}
	if t.Kind() == reflect.Pointer {
		return &apis.ConfigurationError{
			Type:   t.String(),
			Kind:   apis.ErrNotAType,
			Detail: fmt.Sprintf("the guard must be applied to the element type, got pointer type %s", t),
		}
	}
	if _, err := uref.Normalize(t); err != nil {
		return &apis.ConfigurationError{
			Type:   t.String(),
			Kind:   apis.ErrNotAType,
			Detail: fmt.Sprintf("the guard can only be applied to concrete types, got %s which is of kind '%s'", t, t.Kind()),
		}
	}
	return nil
}

// Type returns the guarded type.
func (d *Descriptor) Type() reflect.Type { return d.typ }

// Name returns the short type name used in messages.
func (d *Descriptor) Name() string { return d.name }

// Config returns the configuration the guard was built with.
func (d *Descriptor) Config() apis.Config { return d.cfg }

// Scope returns the scope strategy resolved from the configuration.
func (d *Descriptor) Scope() apis.ScopeStrategy { return d.scope }

// Ops returns the captured operation table.
func (d *Descriptor) Ops() *Operations { return &d.ops }

// Fields returns the declared field names in declaration order.
func (d *Descriptor) Fields() []string {
	out := make([]string, len(d.fields))
	for i, f := range d.fields {
		out[i] = f.Name
	}
	return out
}

// HasField reports whether the type declares the named field.
func (d *Descriptor) HasField(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// Reader returns an apis.FieldReader over target, which must be a non-nil
// pointer to the guarded type. track starts read recording.
func (d *Descriptor) Reader(target any, track bool) *resolver.Tracker {
	return resolver.New(reflect.ValueOf(target).Elem(), d.byName, d.name, track)
}

// Identity runs the type's original identity operation against target
// using r for tracked reads.
func (d *Descriptor) Identity(target any, r apis.FieldReader) uint64 {
	if d.tracked {
		return target.(apis.FieldHasher).HashFields(r)
	}
	return target.(apis.Hasher).Hash()
}
