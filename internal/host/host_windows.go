//go:build windows

/*
 * lc3vm - Host terminal adapter (windows)
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

package host

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// New puts the controlling terminal into raw mode and starts reading
// stdin in the background. Windows offers no non-blocking stdin read,
// so the reader goroutine blocks per byte; KeyReady still reports
// correctly since it only inspects the channel the goroutine feeds.
func New() (*Host, error) {
	h := newHost()
	fd := int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		close(h.done)
		return nil, fmt.Errorf("host: failed to set raw mode: %w", err)
	}

	h.restore = func() {
		_ = term.Restore(fd, oldState)
	}

	go h.readLoop()
	return h, nil
}

func (h *Host) readLoop() {
	defer close(h.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		n, err := os.Stdin.Read(buf)
		if n > 0 {
			select {
			case h.keys <- buf[0]:
			case <-h.stopCh:
				return
			}
		}
		if err != nil {
			return
		}
	}
}
