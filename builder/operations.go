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
	uref "github.com/UriyaHarpeness/lazy-freeze/utils/reflect"
)

var (
	// ErrNoField is returned by the default field operations for names the
	// type does not declare.
	ErrNoField = errors.New("lazyfreeze(builder): no such field")
	// ErrValueType is returned when a value or key is not assignable to the
	// destination type.
	ErrValueType = errors.New("lazyfreeze(builder): value type mismatch")
	// ErrIndexRange is returned by the default slice/array item assignment
	// for out-of-range indices.
	ErrIndexRange = errors.New("lazyfreeze(builder): index out of range")
)

// Operations is the table of a type's original (pre-guard) mutating
// operations. A nil entry means the type never defined the operation.
// Every target argument is a non-nil pointer to the guarded type.
type Operations struct {
	setField    func(target any, name string, value any) error
	deleteField func(target any, name string) error
	setItem     func(target any, key, value any) error
	deleteItem  func(target any, key any) error
	inPlace     [apis.NumOps]func(target any, operand any) error
}

// Has reports whether the type defines op.
func (o *Operations) Has(op apis.Op) bool {
	switch op {
	case apis.OpSetField:
		return o.setField != nil
	case apis.OpDeleteField:
		return o.deleteField != nil
	case apis.OpSetItem:
		return o.setItem != nil
	case apis.OpDeleteItem:
		return o.deleteItem != nil
	}
	return op.IsInPlace() && o.inPlace[op] != nil
}

// SetField delegates to the original field assignment.
func (o *Operations) SetField(target any, name string, value any) error {
	return o.setField(target, name, value)
}

// DeleteField delegates to the original field deletion.
func (o *Operations) DeleteField(target any, name string) error {
	return o.deleteField(target, name)
}

// SetItem delegates to the original item assignment.
func (o *Operations) SetItem(target any, key, value any) error {
	return o.setItem(target, key, value)
}

// DeleteItem delegates to the original item deletion.
func (o *Operations) DeleteItem(target any, key any) error {
	return o.deleteItem(target, key)
}

// InPlace delegates to the original compound-assignment operator op.
func (o *Operations) InPlace(op apis.Op, target any, operand any) error {
	return o.inPlace[op](target, operand)
}

// inPlaceCapabilities binds each compound-assignment kind to the interface
// that provides it.
var inPlaceCapabilities = []struct {
	op    apis.Op
	iface reflect.Type
	call  func(target any, operand any) error
}{
	{apis.OpAdd, reflect.TypeFor[apis.AddAssigner](), func(t, x any) error { return t.(apis.AddAssigner).AddAssign(x) }},
	{apis.OpSub, reflect.TypeFor[apis.SubAssigner](), func(t, x any) error { return t.(apis.SubAssigner).SubAssign(x) }},
	{apis.OpMul, reflect.TypeFor[apis.MulAssigner](), func(t, x any) error { return t.(apis.MulAssigner).MulAssign(x) }},
	{apis.OpTrueDiv, reflect.TypeFor[apis.TrueDivAssigner](), func(t, x any) error { return t.(apis.TrueDivAssigner).TrueDivAssign(x) }},
	{apis.OpFloorDiv, reflect.TypeFor[apis.FloorDivAssigner](), func(t, x any) error { return t.(apis.FloorDivAssigner).FloorDivAssign(x) }},
	{apis.OpMod, reflect.TypeFor[apis.ModAssigner](), func(t, x any) error { return t.(apis.ModAssigner).ModAssign(x) }},
	{apis.OpPow, reflect.TypeFor[apis.PowAssigner](), func(t, x any) error { return t.(apis.PowAssigner).PowAssign(x) }},
	{apis.OpLShift, reflect.TypeFor[apis.LShiftAssigner](), func(t, x any) error { return t.(apis.LShiftAssigner).LShiftAssign(x) }},
	{apis.OpRShift, reflect.TypeFor[apis.RShiftAssigner](), func(t, x any) error { return t.(apis.RShiftAssigner).RShiftAssign(x) }},
	{apis.OpAnd, reflect.TypeFor[apis.AndAssigner](), func(t, x any) error { return t.(apis.AndAssigner).AndAssign(x) }},
	{apis.OpXor, reflect.TypeFor[apis.XorAssigner](), func(t, x any) error { return t.(apis.XorAssigner).XorAssign(x) }},
	{apis.OpOr, reflect.TypeFor[apis.OrAssigner](), func(t, x any) error { return t.(apis.OrAssigner).OrAssign(x) }},
	{apis.OpMatMul, reflect.TypeFor[apis.MatMulAssigner](), func(t, x any) error { return t.(apis.MatMulAssigner).MatMulAssign(x) }},
}

var (
	fieldSetterType  = reflect.TypeFor[apis.FieldSetter]()
	fieldDeleterType = reflect.TypeFor[apis.FieldDeleter]()
	itemSetterType   = reflect.TypeFor[apis.ItemSetter]()
	itemDeleterType  = reflect.TypeFor[apis.ItemDeleter]()
)

// captureOperations builds the operation table of t from the method set of
// *t, falling back to reflective defaults where Go supports the operation
// natively.
func captureOperations(t reflect.Type, name string, fields map[string]uref.Field) Operations {
	pt := reflect.PointerTo(t)
	var ops Operations

	// Field operations are always present.
	if pt.Implements(fieldSetterType) {
		ops.setField = func(target any, field string, value any) error {
			return target.(apis.FieldSetter).SetField(field, value)
		}
	} else {
		ops.setField = func(target any, field string, value any) error {
			f, ok := fields[field]
			if !ok {
				return fmt.Errorf("%w: %s has no field %q", ErrNoField, name, field)
			}
			return assign(reflect.ValueOf(target).Elem().Field(f.Index), value)
		}
	}
	if pt.Implements(fieldDeleterType) {
		ops.deleteField = func(target any, field string) error {
			return target.(apis.FieldDeleter).DeleteField(field)
		}
	} else {
		ops.deleteField = func(target any, field string) error {
			f, ok := fields[field]
			if !ok {
				return fmt.Errorf("%w: %s has no field %q", ErrNoField, name, field)
			}
			reflect.ValueOf(target).Elem().Field(f.Index).SetZero()
			return nil
		}
	}

	// Item operations: explicit capability first, then native container kinds.
	switch {
	case pt.Implements(itemSetterType):
		ops.setItem = func(target any, key, value any) error {
			return target.(apis.ItemSetter).SetItem(key, value)
		}
	case t.Kind() == reflect.Map:
		ops.setItem = setMapItem
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		ops.setItem = setIndexedItem
	}
	switch {
	case pt.Implements(itemDeleterType):
		ops.deleteItem = func(target any, key any) error {
			return target.(apis.ItemDeleter).DeleteItem(key)
		}
	case t.Kind() == reflect.Map:
		ops.deleteItem = deleteMapItem
	}

	for _, c := range inPlaceCapabilities {
		if pt.Implements(c.iface) {
			ops.inPlace[c.op] = c.call
		}
	}
	return ops
}

// assign stores value into dst. A nil value zeroes dst if its kind can
// hold nil.
func assign(dst reflect.Value, value any) error {
	src, err := valueFor(value, dst.Type())
	if err != nil {
		return err
	}
	dst.Set(src)
	return nil
}

// valueFor converts v into a reflect.Value assignable to t.
func valueFor(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: cannot use nil as %s", ErrValueType, t)
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: cannot use %s as %s", ErrValueType, rv.Type(), t)
	}
	return rv, nil
}

func setMapItem(target any, key, value any) error {
	m := reflect.ValueOf(target).Elem()
	k, err := valueFor(key, m.Type().Key())
	if err != nil {
		return err
	}
	v, err := valueFor(value, m.Type().Elem())
	if err != nil {
		return err
	}
	if m.IsNil() {
		m.Set(reflect.MakeMap(m.Type()))
	}
	m.SetMapIndex(k, v)
	return nil
}

func deleteMapItem(target any, key any) error {
	m := reflect.ValueOf(target).Elem()
	k, err := valueFor(key, m.Type().Key())
	if err != nil {
		return err
	}
	if m.IsNil() {
		return nil
	}
	m.SetMapIndex(k, reflect.Value{})
	return nil
}

func setIndexedItem(target any, key, value any) error {
	s := reflect.ValueOf(target).Elem()
	i, ok := key.(int)
	if !ok {
		return fmt.Errorf("%w: index must be int, got %T", ErrValueType, key)
	}
	if i < 0 || i >= s.Len() {
		return fmt.Errorf("%w: index %d with length %d", ErrIndexRange, i, s.Len())
	}
	v, err := valueFor(value, s.Type().Elem())
	if err != nil {
		return err
	}
	s.Index(i).Set(v)
	return nil
}
