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

import "fmt"

// Op identifies a mutating operation kind intercepted by the guard.
type Op uint8

const (
	OpSetField Op = iota
	OpDeleteField
	OpSetItem
	OpDeleteItem
	OpAdd
	OpSub
	OpMul
	OpTrueDiv
	OpFloorDiv
	OpMod
	OpPow
	OpLShift
	OpRShift
	OpAnd
	OpXor
	OpOr
	OpMatMul

	// NumOps is the number of operation kinds.
	NumOps = int(OpMatMul) + 1
)

var opNames = [NumOps]string{
	OpSetField:    "set-field",
	OpDeleteField: "delete-field",
	OpSetItem:     "set-item",
	OpDeleteItem:  "delete-item",
	OpAdd:         "add",
	OpSub:         "sub",
	OpMul:         "mul",
	OpTrueDiv:     "truediv",
	OpFloorDiv:    "floordiv",
	OpMod:         "mod",
	OpPow:         "pow",
	OpLShift:      "lshift",
	OpRShift:      "rshift",
	OpAnd:         "and",
	OpXor:         "xor",
	OpOr:          "or",
	OpMatMul:      "matmul",
}

// inPlaceNames is used in error messages for the compound-assignment kinds.
var inPlaceNames = [NumOps]string{
	OpAdd:      "addition",
	OpSub:      "subtraction",
	OpMul:      "multiplication",
	OpTrueDiv:  "division",
	OpFloorDiv: "floor division",
	OpMod:      "modulo",
	OpPow:      "power",
	OpLShift:   "left shift",
	OpRShift:   "right shift",
	OpAnd:      "bitwise AND",
	OpXor:      "bitwise XOR",
	OpOr:       "bitwise OR",
	OpMatMul:   "matrix multiplication",
}

func (o Op) String() string {
	if int(o) < NumOps {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// IsField reports whether o mutates a single named field. Only field
// operations are subject to scope checks.
func (o Op) IsField() bool { return o == OpSetField || o == OpDeleteField }

// IsItem reports whether o mutates an indexed item.
func (o Op) IsItem() bool { return o == OpSetItem || o == OpDeleteItem }

// IsInPlace reports whether o is a compound-assignment operator.
func (o Op) IsInPlace() bool { return o >= OpAdd && int(o) < NumOps }

// InPlaceOps lists the compound-assignment kinds in declaration order.
func InPlaceOps() []Op {
	ops := make([]Op, 0, NumOps-int(OpAdd))
	for o := OpAdd; int(o) < NumOps; o++ {
		ops = append(ops, o)
	}
	return ops
}

// describe renders "<verb> <target> of <type>" for error messages.
func (o Op) describe(target, typ string) string {
	switch o {
	case OpSetField:
		return fmt.Sprintf("modify field %q of %s", target, typ)
	case OpDeleteField:
		return fmt.Sprintf("delete field %q from %s", target, typ)
	case OpSetItem:
		return fmt.Sprintf("modify item %q of %s", target, typ)
	case OpDeleteItem:
		return fmt.Sprintf("delete item %q from %s", target, typ)
	}
	if o.IsInPlace() {
		return fmt.Sprintf("apply in-place %s to %s", inPlaceNames[o], typ)
	}
	return fmt.Sprintf("apply %s to %s", o, typ)
}

// FieldSetter overrides the default reflective field assignment.
type FieldSetter interface {
	SetField(name string, value any) error
}

// FieldDeleter overrides the default field deletion, which resets the
// field to its zero value.
type FieldDeleter interface {
	DeleteField(name string) error
}

// ItemSetter provides indexed-item assignment.
type ItemSetter interface {
	SetItem(key, value any) error
}

// ItemDeleter provides indexed-item deletion.
type ItemDeleter interface {
	DeleteItem(key any) error
}

// Compound-assignment capabilities. A guarded type supports an in-place
// operator only if its pointer type implements the matching interface.
type (
	AddAssigner      interface{ AddAssign(operand any) error }
	SubAssigner      interface{ SubAssign(operand any) error }
	MulAssigner      interface{ MulAssign(operand any) error }
	TrueDivAssigner  interface{ TrueDivAssign(operand any) error }
	FloorDivAssigner interface{ FloorDivAssign(operand any) error }
	ModAssigner      interface{ ModAssign(operand any) error }
	PowAssigner      interface{ PowAssign(operand any) error }
	LShiftAssigner   interface{ LShiftAssign(operand any) error }
	RShiftAssigner   interface{ RShiftAssign(operand any) error }
	AndAssigner      interface{ AndAssign(operand any) error }
	XorAssigner      interface{ XorAssign(operand any) error }
	OrAssigner       interface{ OrAssign(operand any) error }
	MatMulAssigner   interface{ MatMulAssign(operand any) error }
)
