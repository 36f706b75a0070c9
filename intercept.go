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

package lazyfreeze

import (
	"fmt"

	"github.com/UriyaHarpeness/lazy-freeze/apis"
)

// Set assigns value to the named field. Once frozen, the assignment is
// rejected if the field is protected.
func (o *Object[T]) Set(name string, value any) error {
	return o.intercept(apis.OpSetField, name, func() error {
		return o.desc.Ops().SetField(o.v, name, value)
	})
}

// Delete removes the named field. The default deletion resets the field to
// its zero value. Once frozen, it is rejected if the field is protected.
func (o *Object[T]) Delete(name string) error {
	return o.intercept(apis.OpDeleteField, name, func() error {
		return o.desc.Ops().DeleteField(o.v, name)
	})
}

// SetItem assigns value at key. Once frozen, it is always rejected.
func (o *Object[T]) SetItem(key, value any) error {
	return o.intercept(apis.OpSetItem, fmt.Sprint(key), func() error {
		return o.desc.Ops().SetItem(o.v, key, value)
	})
}

// DeleteItem removes the item at key. Once frozen, it is always rejected.
func (o *Object[T]) DeleteItem(key any) error {
	return o.intercept(apis.OpDeleteItem, fmt.Sprint(key), func() error {
		return o.desc.Ops().DeleteItem(o.v, key)
	})
}

// Apply runs the compound-assignment operator op with operand, e.g.
// Apply(apis.OpAdd, 5) for "+= 5". Once frozen, it is always rejected.
func (o *Object[T]) Apply(op apis.Op, operand any) error {
	if !op.IsInPlace() {
		return fmt.Errorf("%w: %s is not an in-place operator", apis.ErrUnsupported, op)
	}
	return o.intercept(op, "", func() error {
		return o.desc.Ops().InPlace(op, o.v, operand)
	})
}

// intercept is the single gate in front of every mutating operation.
func (o *Object[T]) intercept(op apis.Op, target string, call func() error) error {
	if !o.desc.Ops().Has(op) {
		return fmt.Errorf("%w: %s does not define %s", apis.ErrUnsupported, o.desc.Name(), op)
	}
	rejected, err := o.delegate(op, target, call)
	if rejected != nil {
		if obs := o.desc.Config().Observer; obs != nil {
			obs.Rejected(rejected)
		}
		return rejected
	}
	return err
}

// delegate checks the freeze record under the instance lock and either
// rejects or runs call.
func (o *Object[T]) delegate(op apis.Op, target string, call func() error) (*apis.FrozenMutationError, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	rec := o.rec.Load()
	if rec == nil {
		return nil, call()
	}
	// Field operations honor the scope; items and operators cannot be
	// attributed to one field and are always rejected.
	if op.IsField() && !rec.protected.Covers(target) {
		return nil, call()
	}
	return &apis.FrozenMutationError{
		Type:   o.desc.Name(),
		Op:     op,
		Target: target,
		Trace:  rec.trace,
	}, nil
}
