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

package strategy

import (
	"github.com/UriyaHarpeness/lazy-freeze/apis"
)

// New returns the apis.ScopeStrategy implementing s.
// Unknown policies fall back to protecting everything.
func New(s apis.Scope) apis.ScopeStrategy {
	switch s.Policy {
	case apis.ScopeDynamic:
		return NewDynamicStrategy()
	case apis.ScopeExplicit:
		return NewExplicitStrategy(s.Fields...)
	default:
		return NewAllStrategy()
	}
}
