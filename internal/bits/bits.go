/*
 * lc3vm - Bit manipulation helpers
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

// Package bits holds the handful of bit-twiddling primitives the LC-3
// decoder needs: sign extension of narrow operand fields and the
// byte swap used by the big-endian image format.
package bits

// SignExtend treats value as a width-bit two's-complement integer
// (1 <= width <= 16) and widens it to a 16-bit two's-complement value.
func SignExtend(value uint16, width uint) uint16 {
	if width == 0 || width >= 16 {
		return value
	}
	if (value>>(width-1))&0x1 != 0 {
		value |= 0xFFFF << width
	}
	return value
}

// Swap16 exchanges the high and low bytes of w.
func Swap16(w uint16) uint16 {
	return (w << 8) | (w >> 8)
}
