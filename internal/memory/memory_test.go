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

import "testing"

type fakePoller struct {
	ready bool
	key   uint16
	polls int
}

func (f *fakePoller) KeyReady() bool {
	f.polls++
	return f.ready
}

func (f *fakePoller) LastKey() uint16 {
	return f.key
}

func TestReadWriteRoundTrip(t *testing.T) {
	m := New()
	for _, addr := range []uint16{0x0000, 0x3000, 0x4242, 0xFDFF, 0xFFFF} {
		m.Write(addr, 0xBEEF)
		if got := m.Read(addr); got != 0xBEEF {
			t.Errorf("Read(%#04x) = %#04x, want 0xbeef", addr, got)
		}
	}
}

func TestKBSRNoPoller(t *testing.T) {
	m := New()
	if got := m.Read(KBSR); got != 0 {
		t.Errorf("Read(KBSR) with no poller = %#04x, want 0", got)
	}
	if got := m.Read(KBDR); got != 0 {
		t.Errorf("Read(KBDR) with no poller = %#04x, want 0", got)
	}
}

func TestKBSRReadyBit(t *testing.T) {
	m := New()
	p := &fakePoller{ready: true, key: 'Q'}
	m.SetKeyPoller(p)

	got := m.Read(KBSR)
	if got != kbsrReady {
		t.Fatalf("Read(KBSR) = %#04x, want %#04x", got, kbsrReady)
	}
	if got&0x7FFF != 0 {
		t.Errorf("Read(KBSR) low 15 bits = %#04x, want 0", got&0x7FFF)
	}

	p.ready = false
	if got := m.Read(KBSR); got != 0 {
		t.Errorf("Read(KBSR) after key consumed = %#04x, want 0", got)
	}
}

func TestKBSRRepolls(t *testing.T) {
	m := New()
	p := &fakePoller{ready: true}
	m.SetKeyPoller(p)

	m.Read(KBSR)
	m.Read(KBSR)
	m.Read(KBSR)
	if p.polls != 3 {
		t.Errorf("KBSR polled %d times, want 3 (no caching across reads)", p.polls)
	}
}

func TestKBDRReturnsLatchedKey(t *testing.T) {
	m := New()
	p := &fakePoller{ready: true, key: 'x'}
	m.SetKeyPoller(p)
	if got := m.Read(KBDR); got != uint16('x') {
		t.Errorf("Read(KBDR) = %#04x, want %#04x", got, uint16('x'))
	}
}

func TestWritesToMMIOAreInert(t *testing.T) {
	m := New()
	p := &fakePoller{ready: true, key: 'z'}
	m.SetKeyPoller(p)

	m.Write(KBSR, 0x1234)
	m.Write(KBDR, 0x5678)

	if got := m.Read(KBSR); got != kbsrReady {
		t.Errorf("Read(KBSR) after write = %#04x, want %#04x (write must be inert)", got, kbsrReady)
	}
	if got := m.Read(KBDR); got != uint16('z') {
		t.Errorf("Read(KBDR) after write = %#04x, want %#04x (write must be inert)", got, uint16('z'))
	}
}
