/*
 * lc3vm - BR, JMP/RET, JSR/JSRR
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

func opBr(vm *VM, instr uint16) {
	condFlags := (instr >> 9) & 0x7
	if condFlags&vm.Reg.Cond != 0 {
		offset := bits.SignExtend(instr&0x1FF, 9)
		vm.Reg.PC += offset
	}
}

// opJmp handles both JMP and RET: RET is JMP R7.
func opJmp(vm *VM, instr uint16) {
	vm.Reg.PC = vm.Reg.R[sr1(instr)]
}

func opJsr(vm *VM, instr uint16) {
	vm.Reg.R[7] = vm.Reg.PC
	if instr&0x0800 != 0 {
		offset := bits.SignExtend(instr&0x7FF, 11)
		vm.Reg.PC += offset
	} else {
		vm.Reg.PC = vm.Reg.R[sr1(instr)]
	}
}
