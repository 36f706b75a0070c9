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

// Package stack captures call stacks for freeze diagnostics.
package stack

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Capture renders the calling goroutine's stack, one "function\n\tfile:line"
// pair per frame. skip drops that many frames above the caller of Capture.
func Capture(skip int) string {
	// pkg/errors records frames starting at the caller of New, i.e. Capture.
	st := pkgerrors.New("").(stackTracer).StackTrace()
	skip++
	if skip >= len(st) {
		return ""
	}
	return strings.TrimPrefix(fmt.Sprintf("%+v", st[skip:]), "\n")
}
