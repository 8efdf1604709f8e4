/*
 * lc3vm - Host terminal adapter
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

// Package host adapts the controlling terminal to what the LC-3 traps
// and memory-mapped keyboard registers need: non-canonical (raw) input
// with no OS-level echo, a blocking single-character read for GETC/IN,
// and a non-blocking "is a key ready" poll for KBSR.
package host

import (
	"errors"
	"sync"
)

// ErrClosed is returned by ReadKey once the host has been stopped.
var ErrClosed = errors.New("host: closed")

// KeyReader is the blocking side of the adapter; it backs GETC and IN.
type KeyReader interface {
	ReadKey() (byte, error)
}

// Host reads stdin through a background goroutine into a one-deep
// latch so the same byte stream can serve both GETC's blocking read
// and KBSR's non-blocking poll.
type Host struct {
	keys     chan byte
	stopCh   chan struct{}
	done     chan struct{}
	lastKey  uint16
	stopOnce sync.Once
	restore  func()
}

func newHost() *Host {
	return &Host{
		keys:   make(chan byte, 1),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Stop terminates the background reader and restores the terminal to
// the state it was in before New, on every exit path. Safe to call
// more than once and safe to call on a Host whose New failed partway
// (restore is only invoked if one was installed).
func (h *Host) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.restore != nil {
		h.restore()
	}
}

// ReadKey blocks until a byte is available or the host is stopped.
func (h *Host) ReadKey() (byte, error) {
	select {
	case b, ok := <-h.keys:
		if !ok {
			return 0, ErrClosed
		}
		return b, nil
	case <-h.stopCh:
		return 0, ErrClosed
	}
}

// KeyReady reports whether a key is available without blocking. If one
// is, it is consumed and latched for the following LastKey call, per
// the KBSR/KBDR contract in the ISA.
func (h *Host) KeyReady() bool {
	select {
	case b, ok := <-h.keys:
		if !ok {
			return false
		}
		h.lastKey = uint16(b)
		return true
	default:
		return false
	}
}

// LastKey returns the most recently latched character.
func (h *Host) LastKey() uint16 {
	return h.lastKey
}

// FakeHost is an in-memory KeyReader/memory.KeyPoller stand-in for
// tests, with no terminal or goroutine involved.
type FakeHost struct {
	pending []byte
	lastKey uint16
}

// NewFakeHost returns a FakeHost that will yield the given bytes in
// order, then report not-ready / ErrClosed forever after.
func NewFakeHost(bytes ...byte) *FakeHost {
	return &FakeHost{pending: append([]byte(nil), bytes...)}
}

func (f *FakeHost) ReadKey() (byte, error) {
	if len(f.pending) == 0 {
		return 0, ErrClosed
	}
	b := f.pending[0]
	f.pending = f.pending[1:]
	return b, nil
}

func (f *FakeHost) KeyReady() bool {
	if len(f.pending) == 0 {
		return false
	}
	f.lastKey = uint16(f.pending[0])
	f.pending = f.pending[1:]
	return true
}

func (f *FakeHost) LastKey() uint16 {
	return f.lastKey
}

// Push appends bytes for a later ReadKey/KeyReady to consume.
func (f *FakeHost) Push(b ...byte) {
	f.pending = append(f.pending, b...)
}
