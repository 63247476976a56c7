// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alucheck

import (
	"context"
	"strconv"
)

// A Line identifies a signal line of the device under test.
//
type Line int

// Device lines.
//
const (
	UIIn   Line = iota // primary input: packed operands or raw byte
	UIOIn              // secondary input: opcode in the low nibble
	Clk                // clock
	RstN               // active low reset
	Ena                // enable, held high for the whole run
	UOOut              // primary output: result
	UIOOut             // secondary output: status, never asserted
	NumLines
)

var lineNames = [...]string{
	UIIn:   "ui_in",
	UIOIn:  "uio_in",
	Clk:    "clk",
	RstN:   "rst_n",
	Ena:    "ena",
	UOOut:  "uo_out",
	UIOOut: "uio_out",
}

func (l Line) String() string {
	if l >= 0 && l < NumLines {
		return lineNames[l]
	}
	return "Line(" + strconv.Itoa(int(l)) + ")"
}

// Duration is an amount of simulated time, in device time units.
//
type Duration uint64

// A Handle is the view of the device under test from a single process on the
// device's timeline.
//
type Handle interface {
	// Set drives line l with value v. Successive calls to Set without a
	// call to Advance in between are seen by the device as a single change.
	Set(l Line, v uint8)
	// Get returns the current value of line l.
	Get(l Line) uint8
	// Advance suspends the calling process until d units of simulated time
	// have elapsed. Errors come from the device or its simulation substrate
	// and must be propagated as is.
	Advance(ctx context.Context, d Duration) error
}

// A Device is a device under test. The process that owns the Device uses its
// Handle methods directly; background processes are started with Fork.
//
type Device interface {
	Handle
	// Fork starts fn as a background process sharing the device timeline.
	// Fork does not wait for fn to return. fn should return once ctx is
	// done or Advance fails.
	Fork(ctx context.Context, fn func(ctx context.Context, h Handle))
}
