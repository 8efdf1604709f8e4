/*
 * lc3vm - LD, ST, LDR, STR, LDI, STI, LEA
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

func opLd(vm *VM, instr uint16) {
	r0 := dr(instr)
	offset := bits.SignExtend(instr&0x1FF, 9)
	vm.Reg.R[r0] = vm.Mem.Read(vm.Reg.PC + offset)
	vm.Reg.UpdateFlags(r0)
}

func opSt(vm *VM, instr uint16) {
	offset := bits.SignExtend(instr&0x1FF, 9)
	vm.Mem.Write(vm.Reg.PC+offset, vm.Reg.R[dr(instr)])
}

func opLdr(vm *VM, instr uint16) {
	r0, base := dr(instr), sr1(instr)
	offset := bits.SignExtend(instr&0x3F, 6)
	vm.Reg.R[r0] = vm.Mem.Read(vm.Reg.R[base] + offset)
	vm.Reg.UpdateFlags(r0)
}

func opStr(vm *VM, instr uint16) {
	base := sr1(instr)
	offset := bits.SignExtend(instr&0x3F, 6)
	vm.Mem.Write(vm.Reg.R[base]+offset, vm.Reg.R[dr(instr)])
}

func opLdi(vm *VM, instr uint16) {
	r0 := dr(instr)
	offset := bits.SignExtend(instr&0x1FF, 9)
	pointer := vm.Mem.Read(vm.Reg.PC + offset)
	vm.Reg.R[r0] = vm.Mem.Read(pointer)
	vm.Reg.UpdateFlags(r0)
}

func opSti(vm *VM, instr uint16) {
	offset := bits.SignExtend(instr&0x1FF, 9)
	pointer := vm.Mem.Read(vm.Reg.PC + offset)
	vm.Mem.Write(pointer, vm.Reg.R[dr(instr)])
}

// opLea updates flags, matching this spec's choice on the open
// question of whether LEA should set COND (see DESIGN.md).
func opLea(vm *VM, instr uint16) {
	r0 := dr(instr)
	offset := bits.SignExtend(instr&0x1FF, 9)
	vm.Reg.R[r0] = vm.Reg.PC + offset
	vm.Reg.UpdateFlags(r0)
}
