/*
 * lc3vm - ADD, AND, NOT
 *
 * Copyright 2026, lc3vm contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package vm

import "github.com/go-lc3/lc3vm/internal/bits"

// immMask is the 5-bit immediate field used by ADD and AND in
// immediate mode. The original source masks with 0x15 in ADD, which
// spec.md flags as a bug; both opcodes use the correct 0x1F here.
const immMask = 0x1F

func opAdd(vm *VM, instr uint16) {
	r0, r1 := dr(instr), sr1(instr)
	var result uint16
	if instr&0x20 != 0 {
		imm5 := bits.SignExtend(instr&immMask, 5)
		result = vm.Reg.R[r1] + imm5
	} else {
		result = vm.Reg.R[r1] + vm.Reg.R[sr2(instr)]
	}
	vm.Reg.R[r0] = result
	vm.Reg.UpdateFlags(r0)
}

func opAnd(vm *VM, instr uint16) {
	r0, r1 := dr(instr), sr1(instr)
	var result uint16
	if instr&0x20 != 0 {
		imm5 := bits.SignExtend(instr&immMask, 5)
		result = vm.Reg.R[r1] & imm5
	} else {
		result = vm.Reg.R[r1] & vm.Reg.R[sr2(instr)]
	}
	vm.Reg.R[r0] = result
	vm.Reg.UpdateFlags(r0)
}

func opNot(vm *VM, instr uint16) {
	r0, r1 := dr(instr), sr1(instr)
	vm.Reg.R[r0] = ^vm.Reg.R[r1]
	vm.Reg.UpdateFlags(r0)
}
