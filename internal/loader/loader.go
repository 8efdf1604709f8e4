/*
 * lc3vm - Object image loader
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

// Package loader parses LC-3 object images: a big-endian origin word
// followed by the image body, and deposits the body at the origin.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/go-lc3/lc3vm/internal/bits"
	"github.com/go-lc3/lc3vm/internal/memory"
)

// LoadFile opens path and loads its image into mem. It returns the
// origin the image was placed at and the number of body words read.
func LoadFile(mem *memory.Memory, path string) (origin uint16, count int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("lc3: %w", err)
	}
	defer f.Close()

	return Load(mem, f)
}

// Load reads a big-endian object image from r and deposits it into mem
// starting at the origin word. Partial images (fewer than
// memory.Size-origin body words) are valid; Load stops at EOF.
func Load(mem *memory.Memory, r io.Reader) (origin uint16, count int, err error) {
	origin, err = readWord(r)
	if err != nil {
		if err == io.EOF {
			return 0, 0, fmt.Errorf("lc3: empty image")
		}
		return 0, 0, fmt.Errorf("lc3: reading origin: %w", err)
	}

	addr := origin
	for {
		w, err := readWord(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return origin, count, fmt.Errorf("lc3: reading image body: %w", err)
		}
		mem.Write(addr, w)
		addr++
		count++
		if addr == 0 {
			// Wrapped past the top of the address space; the image is
			// truncated to what fits, matching the original's
			// MEMORY_MAX-origin read bound.
			break
		}
	}
	return origin, count, nil
}

// readWord reads one big-endian 16-bit word. End of input, whether
// clean or after a single dangling byte, is reported as io.EOF (the
// dangling byte is dropped); any other read failure is an error.
func readWord(r io.Reader) (uint16, error) {
	var buf [2]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if n == 0 && err == io.EOF {
			return 0, io.EOF
		}
		if err == io.ErrUnexpectedEOF {
			return 0, io.EOF
		}
		return 0, err
	}
	// Bytes land in file order, which is host-endian-neutral as raw
	// storage; Swap16 turns that into the big-endian word the image
	// format actually specifies.
	raw := uint16(buf[1])<<8 | uint16(buf[0])
	return bits.Swap16(raw), nil
}
