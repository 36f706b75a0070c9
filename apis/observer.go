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

package apis

// FreezeEvent describes a completed Mutable -> Frozen transition.
type FreezeEvent struct {
	// Type is the name of the guarded type.
	Type string
	// Hash is the identity value computed by the freezing call.
	Hash uint64
	// Protected is the finalized protected set.
	Protected Protected
	// EmptyScope is set when the scope resolved to no fields, leaving every
	// field mutable after freezing.
	EmptyScope bool
	// Trace is the captured stack when debug is enabled.
	Trace string
}

// Observer receives guard events. Calls are made synchronously, after the
// instance lock is released, and must not block.
type Observer interface {
	Frozen(ev FreezeEvent)
	Rejected(err *FrozenMutationError)
}
