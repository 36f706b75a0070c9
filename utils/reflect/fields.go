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

package reflect

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// TagName is the struct tag controlling guard field names.
// `freeze:"name"` renames a field and `freeze:"-"` hides it from the guard.
const TagName = "freeze"

// Field is a struct field visible to the guard.
type Field struct {
	// Name is the guard-level name (tag override or Go field name).
	Name string
	// Index is the field index in its struct.
	Index int
	// Type is the field type.
	Type reflect.Type
}

// DuplicateFieldError reports two struct fields mapping to the same name.
type DuplicateFieldError struct {
	Type reflect.Type
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("reflect: %s declares field name %q more than once", e.Type, e.Name)
}

type fieldsResult struct {
	fields []Field
	err    error
}

// fieldCache caches field enumeration by struct type.
var fieldCache sync.Map // key: reflect.Type, val: fieldsResult

// Fields returns the exported fields of struct type t in declaration order.
// Non-struct types declare no fields. Embedded fields are treated as a
// single field named after their type; their members are not promoted.
func Fields(t reflect.Type) ([]Field, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, nil
	}
	if v, ok := fieldCache.Load(t); ok {
		r := v.(fieldsResult)
		return r.fields, r.err
	}

	var (
		out  []Field
		err  error
		seen = make(map[string]struct{}, t.NumField())
	)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup(TagName); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		if _, dup := seen[name]; dup {
			err = &DuplicateFieldError{Type: t, Name: name}
			out = nil
			break
		}
		seen[name] = struct{}{}
		out = append(out, Field{Name: name, Index: i, Type: sf.Type})
	}

	fieldCache.Store(t, fieldsResult{fields: out, err: err})
	return out, err
}
