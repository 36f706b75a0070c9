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

// NewExplicitStrategy creates an apis.ScopeStrategy that protects exactly
// names. The set is built once and shared by every instance.
func NewExplicitStrategy(names ...string) apis.ScopeStrategy {
	return explicitStrategy{protected: apis.ProtectFields(names...)}
}

// explicitStrategy resolves to a fixed caller-supplied set.
type explicitStrategy struct {
	protected apis.Protected
}

// Ensure explicitStrategy implements apis.ScopeStrategy.
var _ apis.ScopeStrategy = (*explicitStrategy)(nil)

func (explicitStrategy) Tracks() bool { return false }

// Resolve returns the configured set verbatim.
func (s explicitStrategy) Resolve([]string) apis.Protected { return s.protected }
