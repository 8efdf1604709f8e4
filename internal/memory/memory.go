/*
 * lc3vm - Flat 16-bit address space with memory-mapped keyboard I/O
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

package memory

const (
	// Size is the number of addressable 16-bit cells.
	Size = 1 << 16

	// KBSR is the keyboard status register: bit 15 set iff a key is ready.
	KBSR uint16 = 0xFE00
	// KBDR is the keyboard data register: the last polled character.
	KBDR uint16 = 0xFE02

	kbsrReady uint16 = 0x8000
)

// KeyPoller is the host collaborator that backs the keyboard-status
// memory-mapped registers. It is satisfied by internal/host.Host and by
// the fake used in tests.
type KeyPoller interface {
	// KeyReady reports whether a key is available without blocking,
	// consuming it from the host if so.
	KeyReady() bool
	// LastKey returns the most recently polled character.
	LastKey() uint16
}

// Memory is the LC-3's flat 65536-word address space.
type Memory struct {
	cells  [Size]uint16
	poller KeyPoller
}

// New returns a zero-initialized memory with no keyboard backing; reads
// of KBSR always report not-ready and KBDR always reads zero until
// SetKeyPoller is called.
func New() *Memory {
	return &Memory{}
}

// SetKeyPoller installs the host adapter that answers KBSR/KBDR reads.
func (m *Memory) SetKeyPoller(p KeyPoller) {
	m.poller = p
}

// Read returns the value at addr, intercepting the two memory-mapped
// keyboard registers.
func (m *Memory) Read(addr uint16) uint16 {
	switch addr {
	case KBSR:
		if m.poller != nil && m.poller.KeyReady() {
			return kbsrReady
		}
		return 0
	case KBDR:
		if m.poller != nil {
			return m.poller.LastKey()
		}
		return 0
	default:
		return m.cells[addr]
	}
}

// Write stores value at addr. Writes to KBSR/KBDR are accepted but have
// no architectural effect, per the ISA.
func (m *Memory) Write(addr, value uint16) {
	if addr == KBSR || addr == KBDR {
		return
	}
	m.cells[addr] = value
}
