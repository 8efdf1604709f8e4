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

package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-lc3/lc3vm/internal/memory"
)

func beImage(words ...uint16) []byte {
	buf := make([]byte, 0, len(words)*2)
	for _, w := range words {
		buf = append(buf, byte(w>>8), byte(w))
	}
	return buf
}

func TestLoadPlacesBodyAtOrigin(t *testing.T) {
	img := beImage(0x3000, 0xAAAA, 0xBBBB, 0xCCCC)
	m := memory.New()
	origin, count, err := Load(m, bytes.NewReader(img))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if origin != 0x3000 {
		t.Errorf("origin = %#04x, want 0x3000", origin)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if got := m.Read(0x3000); got != 0xAAAA {
		t.Errorf("mem[0x3000] = %#04x, want 0xaaaa", got)
	}
	if got := m.Read(0x3001); got != 0xBBBB {
		t.Errorf("mem[0x3001] = %#04x, want 0xbbbb", got)
	}
	if got := m.Read(0x3002); got != 0xCCCC {
		t.Errorf("mem[0x3002] = %#04x, want 0xcccc", got)
	}
}

func TestLoadFirstWordNotSkipped(t *testing.T) {
	// Regression for the source bug in spec.md 9(c): the first body
	// word must be byte-swapped and stored, not silently dropped.
	img := beImage(0x3000, 0x1234)
	m := memory.New()
	if _, _, err := Load(m, bytes.NewReader(img)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := m.Read(0x3000); got != 0x1234 {
		t.Errorf("first body word = %#04x, want 0x1234", got)
	}
}

func TestLoadPartialImageIsValid(t *testing.T) {
	img := beImage(0x3000, 0x1111)
	// Truncate after one full word plus one dangling byte.
	img = append(img, 0xFF)
	m := memory.New()
	origin, count, err := Load(m, bytes.NewReader(img))
	if err != nil {
		t.Fatalf("Load with trailing partial word: %v", err)
	}
	if origin != 0x3000 || count != 1 {
		t.Errorf("origin/count = %#04x/%d, want 0x3000/1", origin, count)
	}
}

func TestLoadEmptyImageErrors(t *testing.T) {
	m := memory.New()
	if _, _, err := Load(m, bytes.NewReader(nil)); err == nil {
		t.Error("Load of empty reader: want error, got nil")
	}
}

func TestLoadFileMissingErrors(t *testing.T) {
	m := memory.New()
	if _, _, err := LoadFile(m, filepath.Join(t.TempDir(), "does-not-exist.obj")); err == nil {
		t.Error("LoadFile of missing path: want error, got nil")
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.obj")
	img := beImage(0x3000, 0x5555)
	if err := os.WriteFile(path, img, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	m := memory.New()
	origin, count, err := LoadFile(m, path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if origin != 0x3000 || count != 1 {
		t.Errorf("origin/count = %#04x/%d, want 0x3000/1", origin, count)
	}
	if got := m.Read(0x3000); got != 0x5555 {
		t.Errorf("mem[0x3000] = %#04x, want 0x5555", got)
	}
}

func TestLoadMultipleImagesOverlap(t *testing.T) {
	m := memory.New()
	if _, _, err := Load(m, bytes.NewReader(beImage(0x3000, 0x1111, 0x2222))); err != nil {
		t.Fatalf("first Load: %v", err)
	}
	if _, _, err := Load(m, bytes.NewReader(beImage(0x3001, 0x9999))); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if got := m.Read(0x3000); got != 0x1111 {
		t.Errorf("mem[0x3000] = %#04x, want 0x1111 (untouched by second image)", got)
	}
	if got := m.Read(0x3001); got != 0x9999 {
		t.Errorf("mem[0x3001] = %#04x, want 0x9999 (overwritten by second image)", got)
	}
}
