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

// NewAllStrategy creates an apis.ScopeStrategy that protects every field.
func NewAllStrategy() apis.ScopeStrategy {
	return allStrategy{}
}

// allStrategy resolves to the "all" sentinel without looking at reads.
type allStrategy struct{}

// Ensure allStrategy implements apis.ScopeStrategy.
var _ apis.ScopeStrategy = (*allStrategy)(nil)

func (allStrategy) Tracks() bool { return false }

func (allStrategy) Resolve([]string) apis.Protected { return apis.ProtectAll() }
