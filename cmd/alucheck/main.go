// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command alucheck runs the ALU test sequence against a simulated device.
//
// By default, the device is the gate level ALU from hwlib. The -model flag
// selects a Lua model instead (see sim.LuaModel).
//
// Exit status is 0 if all checks pass, 1 on a failed check or device error
// and 2 on usage errors.
//
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/db47h/alucheck"
	"github.com/db47h/alucheck/hwlib"
	"github.com/db47h/alucheck/sim"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const (
	exitOK = iota
	exitFail
	exitUsage
)

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := alucheck.DefaultConfig()
	var (
		settle, reset, half uint64
		model, color        string
		seed                int64
		workers             int
		quiet, states       bool
	)
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Uint64Var(&settle, "settle", uint64(cfg.Settle), "settle time between applying a vector and sampling")
	fs.Uint64Var(&reset, "reset", uint64(cfg.ResetSettle), "time spent in reset")
	fs.Uint64Var(&half, "half-period", uint64(cfg.HalfPeriod), "clock half period")
	fs.Int64Var(&seed, "seed", alucheck.DefaultSeed, "random sweep seed")
	fs.IntVar(&cfg.RandomCount, "random", cfg.RandomCount, "random sweep length")
	fs.StringVar(&model, "model", "", "Lua `file` implementing the device (default: built-in circuit)")
	fs.IntVar(&workers, "workers", 0, "circuit worker goroutines, 0 for GOMAXPROCS")
	fs.BoolVar(&quiet, "q", false, "do not log every vector")
	fs.BoolVar(&states, "states", false, "log state transitions")
	fs.StringVar(&color, "color", "auto", "color status line: auto, always or never")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags]\n", args[0])
		fs.PrintDefaults()
	}
	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return exitUsage
	}
	useColor, err := colorMode(color, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	cfg.Settle = alucheck.Duration(settle)
	cfg.ResetSettle = alucheck.Duration(reset)
	cfg.HalfPeriod = alucheck.Duration(half)
	if cfg.RandomCount < 0 {
		fmt.Fprintln(stderr, "-random must not be negative")
		return exitUsage
	}

	var m sim.Model
	if model != "" {
		m, err = sim.LoadLuaModel(model)
	} else {
		m, err = sim.NewCircuitModel(workers, hwlib.ALU)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%+v\n", err)
		return exitFail
	}

	l := log.New(stdout, "", 0)
	dev := sim.NewDevice(m)
	seq := alucheck.NewSequencer(dev, cfg, rand.New(rand.NewSource(seed)), &alucheck.LogReporter{Log: l, Quiet: quiet, States: states})
	_, err = seq.Run(context.Background())
	if cerr := dev.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		l.Print(status(useColor, false) + " " + describe(err, seq.State()))
		return exitFail
	}
	l.Print(status(useColor, true))
	return exitOK
}

func colorMode(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	}
	return false, errors.Errorf("invalid -color value %q", mode)
}

func status(color, ok bool) string {
	s, c := "FAIL", ansiRed
	if ok {
		s, c = "PASS", ansiGreen
	}
	if !color {
		return s
	}
	return c + s + ansiReset
}

func describe(err error, st alucheck.State) string {
	switch e := errors.Cause(err).(type) {
	case *alucheck.MismatchError:
		return fmt.Sprintf("in %s: %v", st, e)
	case *alucheck.EncodingError:
		return fmt.Sprintf("in %s: invalid vector: %v", st, err)
	}
	return fmt.Sprintf("in %s: device error: %v", st, err)
}
