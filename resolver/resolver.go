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

package resolver

import (
	"fmt"
	"reflect"

	"github.com/UriyaHarpeness/lazy-freeze/apis"
	uref "github.com/UriyaHarpeness/lazy-freeze/utils/reflect"
)

// Tracker is the apis.FieldReader handed to identity computations.
// While tracking it records the name of every field read; the record only
// lives for one identity call and is discarded by the caller afterwards.
//
// A Tracker is not safe for concurrent use; the owning instance serializes
// identity calls.
type Tracker struct {
	// target is the addressable struct value being hashed.
	target reflect.Value
	// fields maps guard names to struct fields.
	fields map[string]uref.Field
	// typ is used in panic messages.
	typ string
	// reads is non-nil only while resolving.
	reads map[string]struct{}
}

// Ensure Tracker implements apis.FieldReader.
var _ apis.FieldReader = (*Tracker)(nil)

// New creates a Tracker over target. When track is set the Tracker starts
// in resolving mode with an empty read set.
func New(target reflect.Value, fields map[string]uref.Field, typ string, track bool) *Tracker {
	t := &Tracker{target: target, fields: fields, typ: typ}
	if track {
		t.reads = make(map[string]struct{}, len(fields))
	}
	return t
}

// Field returns the current value of the named field, recording the read
// while resolving.
func (t *Tracker) Field(name string) any {
	f, ok := t.fields[name]
	if !ok {
		panic(fmt.Sprintf("lazyfreeze: %s declares no field %q", t.typ, name))
	}
	if t.reads != nil {
		t.reads[name] = struct{}{}
	}
	return t.target.Field(f.Index).Interface()
}

// Resolving reports whether reads are being recorded.
func (t *Tracker) Resolving() bool { return t.reads != nil }

// Finish ends resolution and returns the recorded names. It returns nil if
// the Tracker was not resolving.
func (t *Tracker) Finish() []string {
	if t.reads == nil {
		return nil
	}
	out := make([]string, 0, len(t.reads))
	for n := range t.reads {
		out = append(out, n)
	}
	t.reads = nil
	return out
}
