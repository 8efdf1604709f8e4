/*
 * lc3vm - Main process
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

package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/go-lc3/lc3vm/internal/host"
	"github.com/go-lc3/lc3vm/internal/loader"
	"github.com/go-lc3/lc3vm/internal/register"
	"github.com/go-lc3/lc3vm/internal/vm"
	"github.com/go-lc3/lc3vm/internal/vmlog"
)

var logger *slog.Logger

func main() {
	optHelp := getopt.BoolLong("help", 'h', "Show usage")
	getopt.SetParameters("image-file [image-file ...]")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelWarn)
	logger = slog.New(vmlog.New(os.Stderr, programLevel.Level()))
	slog.SetDefault(logger)

	images := getopt.Args()
	if len(images) == 0 {
		getopt.Usage()
		os.Exit(2)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	h, err := host.New()
	if err != nil {
		logger.Error("failed to start host terminal adapter", "err", err)
		os.Exit(1)
	}
	defer h.Stop()

	machine := vm.New(h, out, logger)
	machine.Mem.SetKeyPoller(h)

	for _, path := range images {
		origin, count, err := loader.LoadFile(machine.Mem, path)
		if err != nil {
			// os.Exit skips deferred calls, so restore the terminal here.
			h.Stop()
			fmt.Printf("failed to load image: %s\n", path)
			os.Exit(1)
		}
		logger.Debug("image loaded", "path", path, "origin", origin, "words", count)
	}

	machine.Reg.PC = register.ResetPC
	machine.Reg.Cond = register.FlagZro

	if err := machine.Run(); err != nil {
		out.Flush()
		h.Stop()
		logger.Error(err.Error())
		os.Exit(1)
	}
}
