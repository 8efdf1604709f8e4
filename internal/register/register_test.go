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

import "testing"

func TestNewResetState(t *testing.T) {
	f := New()
	if f.PC != 0x3000 {
		t.Errorf("PC = %#04x, want 0x3000", f.PC)
	}
	if f.Cond != FlagZro {
		t.Errorf("Cond = %#x, want FlagZro", f.Cond)
	}
	for i, r := range f.R {
		if r != 0 {
			t.Errorf("R[%d] = %#04x, want 0", i, r)
		}
	}
}

func TestUpdateFlagsOneHot(t *testing.T) {
	cases := []struct {
		val  uint16
		want uint16
	}{
		{0x0000, FlagZro},
		{0x0001, FlagPos},
		{0x7FFF, FlagPos},
		{0x8000, FlagNeg},
		{0xFFFF, FlagNeg},
	}
	f := New()
	for _, c := range cases {
		f.R[3] = c.val
		f.UpdateFlags(3)
		if f.Cond != c.want {
			t.Errorf("UpdateFlags after R=%#04x: Cond = %#x, want %#x", c.val, f.Cond, c.want)
		}
		// Exactly one bit set.
		if f.Cond&(f.Cond-1) != 0 {
			t.Errorf("Cond %#x is not one-hot", f.Cond)
		}
	}
}
