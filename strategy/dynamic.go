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

// NewDynamicStrategy creates an apis.ScopeStrategy that protects the fields
// read by the identity computation that froze the instance.
func NewDynamicStrategy() apis.ScopeStrategy {
	return dynamicStrategy{}
}

// dynamicStrategy freezes the recorded read set. An identity computation
// that reads nothing yields an empty set; field writes then stay allowed.
type dynamicStrategy struct{}

// Ensure dynamicStrategy implements apis.ScopeStrategy.
var _ apis.ScopeStrategy = (*dynamicStrategy)(nil)

func (dynamicStrategy) Tracks() bool { return true }

func (dynamicStrategy) Resolve(read []string) apis.Protected {
	return apis.ProtectFields(read...)
}
