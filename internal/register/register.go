/*
 * lc3vm - Architectural register file
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

package register

const (
	// Count is the number of general-purpose registers, R0-R7.
	Count = 8

	// ResetPC is the program counter's value on reset.
	ResetPC uint16 = 0x3000
)

// Condition flags. Exactly one is set in Cond at any time.
const (
	FlagPos uint16 = 1 << 0 // P
	FlagZro uint16 = 1 << 1 // Z
	FlagNeg uint16 = 1 << 2 // N
)

// File is the architectural register file: eight general registers,
// the program counter and the one-hot condition flag.
type File struct {
	R    [Count]uint16
	PC   uint16
	Cond uint16
}

// New returns a register file in its reset state: PC = 0x3000,
// Cond = Z, all general registers zero.
func New() *File {
	return &File{PC: ResetPC, Cond: FlagZro}
}

// UpdateFlags sets Cond from the signed interpretation of R[r].
func (f *File) UpdateFlags(r uint16) {
	switch {
	case f.R[r] == 0:
		f.Cond = FlagZro
	case f.R[r]&0x8000 != 0:
		f.Cond = FlagNeg
	default:
		f.Cond = FlagPos
	}
}
