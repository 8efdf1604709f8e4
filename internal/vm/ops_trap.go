/*
 * lc3vm - TRAP and the six service routines
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

// Trap vectors, the low byte of a TRAP instruction.
const (
	trapGetc  uint16 = 0x20
	trapOut   uint16 = 0x21
	trapPuts  uint16 = 0x22
	trapIn    uint16 = 0x23
	trapPutsp uint16 = 0x24
	trapHalt  uint16 = 0x25
)

// flusher is satisfied by buffered writers (e.g. *bufio.Writer); main
// wraps stdout in one so interactive output isn't held back, and each
// character-producing trap flushes it per spec.md 5 ("a crashing
// program still emits its last output").
type flusher interface {
	Flush() error
}

func flush(vm *VM) {
	if f, ok := vm.Out.(flusher); ok {
		_ = f.Flush()
	}
}

func opTrap(vm *VM, instr uint16) {
	vm.Reg.R[7] = vm.Reg.PC

	switch instr & 0xFF {
	case trapGetc:
		trapGetchar(vm)
	case trapOut:
		trapPutchar(vm)
	case trapPuts:
		trapPutstring(vm)
	case trapIn:
		trapInchar(vm)
	case trapPutsp:
		trapPutstringPacked(vm)
	case trapHalt:
		trapHaltRun(vm)
	default:
		vm.Logger.Error("unknown trap vector", "vector", instr&0xFF, "pc", vm.Reg.PC-1)
		vm.halt = haltUnknownTrap
	}
}

func trapGetchar(vm *VM) {
	b, err := vm.In.ReadKey()
	if err != nil {
		vm.Logger.Warn("GETC: host read failed", "err", err)
		b = 0
	}
	vm.Reg.R[0] = uint16(b)
	vm.Reg.UpdateFlags(0)
}

func trapPutchar(vm *VM) {
	_, _ = vm.Out.Write([]byte{byte(vm.Reg.R[0])})
	flush(vm)
}

func trapPutstring(vm *VM) {
	addr := vm.Reg.R[0]
	for {
		c := vm.Mem.Read(addr)
		if c == 0 {
			break
		}
		_, _ = vm.Out.Write([]byte{byte(c)})
		addr++
	}
	flush(vm)
}

func trapInchar(vm *VM) {
	_, _ = vm.Out.Write([]byte("Enter a character: "))
	b, err := vm.In.ReadKey()
	if err != nil {
		vm.Logger.Warn("IN: host read failed", "err", err)
		b = 0
	}
	_, _ = vm.Out.Write([]byte{b})
	vm.Reg.R[0] = uint16(b)
	vm.Reg.UpdateFlags(0)
	flush(vm)
}

func trapPutstringPacked(vm *VM) {
	addr := vm.Reg.R[0]
	for {
		c := vm.Mem.Read(addr)
		if c == 0 {
			break
		}
		low := byte(c & 0xFF)
		_, _ = vm.Out.Write([]byte{low})
		if high := byte(c >> 8); high != 0 {
			_, _ = vm.Out.Write([]byte{high})
		}
		addr++
	}
	flush(vm)
}

func trapHaltRun(vm *VM) {
	_, _ = vm.Out.Write([]byte("HALT\n"))
	flush(vm)
	vm.halt = haltTrap
}
