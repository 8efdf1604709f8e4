/*
 * lc3vm - Opcode decode table
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

// Opcodes, bits 15-12 of the instruction word.
const (
	opBR   uint16 = 0b0000
	opADD  uint16 = 0b0001
	opLD   uint16 = 0b0010
	opST   uint16 = 0b0011
	opJSR  uint16 = 0b0100
	opAND  uint16 = 0b0101
	opLDR  uint16 = 0b0110
	opSTR  uint16 = 0b0111
	opRTI  uint16 = 0b1000
	opNOT  uint16 = 0b1001
	opLDI  uint16 = 0b1010
	opSTI  uint16 = 0b1011
	opJMP  uint16 = 0b1100
	opRES  uint16 = 0b1101
	opLEA  uint16 = 0b1110
	opTRAP uint16 = 0b1111
)

// dispatch routes a decoded opcode to its handler. RES and RTI are
// left nil: Step treats a nil entry as the fatal illegal-opcode
// condition, which is exactly what both reserved opcodes are.
var dispatch = [16]opHandler{
	opBR:   opBr,
	opADD:  opAdd,
	opLD:   opLd,
	opST:   opSt,
	opJSR:  opJsr,
	opAND:  opAnd,
	opLDR:  opLdr,
	opSTR:  opStr,
	opRTI:  nil,
	opNOT:  opNot,
	opLDI:  opLdi,
	opSTI:  opSti,
	opJMP:  opJmp,
	opRES:  nil,
	opLEA:  opLea,
	opTRAP: opTrap,
}
