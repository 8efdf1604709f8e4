/*
 * lc3vm - LC-3 interpreter core
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

// Package vm is the LC-3 instruction interpreter: fetch, decode,
// dispatch to the fourteen live opcode handlers, and the six trap
// routines they can fall into.
package vm

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-lc3/lc3vm/internal/host"
	"github.com/go-lc3/lc3vm/internal/memory"
	"github.com/go-lc3/lc3vm/internal/register"
)

// haltReason distinguishes why the run loop stopped.
type haltReason int

const (
	haltNone haltReason = iota
	haltTrap
	haltIllegalOpcode
	haltUnknownTrap
)

// VM bundles the architectural state (memory, registers) with the
// collaborators the trap routines need (a blocking key reader for
// GETC/IN, an output sink for OUT/PUTS/IN/PUTSP) into the single value
// threaded through the interpreter loop.
type VM struct {
	Mem *memory.Memory
	Reg *register.File

	In     host.KeyReader
	Out    io.Writer
	Logger *slog.Logger

	halt haltReason
}

// New returns a VM in its reset state (§3: PC = 0x3000, COND = Z, all
// general registers zero) with no memory contents loaded.
func New(in host.KeyReader, out io.Writer, logger *slog.Logger) *VM {
	if logger == nil {
		logger = slog.Default()
	}
	return &VM{
		Mem:    memory.New(),
		Reg:    register.New(),
		In:     in,
		Out:    out,
		Logger: logger,
	}
}

// opHandler executes the instruction whose low 12 bits are instr&0xFFF
// (the full instr is passed so handlers can extract their own fields).
type opHandler func(vm *VM, instr uint16)

// Step fetches, decodes and executes exactly one instruction. It
// returns true once the run loop should stop (HALT, illegal opcode, or
// an unknown trap vector); Run's returned error distinguishes which.
func (vm *VM) Step() bool {
	instr := vm.Mem.Read(vm.Reg.PC)
	vm.Reg.PC++

	op := instr >> 12
	handler := dispatch[op]
	if handler == nil {
		vm.Logger.Error("illegal opcode", "opcode", op, "pc", vm.Reg.PC-1)
		vm.halt = haltIllegalOpcode
		return true
	}
	handler(vm, instr)
	return vm.halt != haltNone
}

// Run executes instructions until HALT or a fatal condition. It
// returns nil for a normal TRAP HALT and a descriptive error for an
// illegal opcode or unknown trap vector — both "fatal" per the ISA,
// but only the latter are logged as operator-visible failures.
func (vm *VM) Run() error {
	for !vm.Step() {
	}
	switch vm.halt {
	case haltTrap:
		return nil
	case haltIllegalOpcode:
		return fmt.Errorf("lc3: illegal opcode at pc=%#04x", vm.Reg.PC-1)
	case haltUnknownTrap:
		return fmt.Errorf("lc3: unknown trap vector at pc=%#04x", vm.Reg.PC-1)
	default:
		return nil
	}
}

// Common operand fields, shared by every handler that needs them.
func dr(instr uint16) uint16  { return (instr >> 9) & 0x7 }
func sr1(instr uint16) uint16 { return (instr >> 6) & 0x7 }
func sr2(instr uint16) uint16 { return instr & 0x7 }
