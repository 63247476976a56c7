// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"testing"

	hw "github.com/db47h/alucheck/hwsim"
	hl "github.com/db47h/alucheck/hwlib"
)

func TestDFF(t *testing.T) {
	var in, out uint64
	var clk bool

	dff4, err := hw.Chip("DFF4", "in[4], clk", "out[4]",
		hl.DFF("in=in[0], clk=clk, out=out[0]"),
		hl.DFF("in=in[1], clk=clk, out=out[1]"),
		hl.DFF("in=in[2], clk=clk, out=out[2]"),
		hl.DFF("in=in[3], clk=clk, out=out[3]"),
	)
	if err != nil {
		t.Fatal(err)
	}
	c, err := hw.NewCircuit(0,
		hl.InputN(4, func() uint64 { return in })("out=in"),
		hl.Input(func() bool { return clk })("out=clk"),
		dff4("in=in, clk=clk, out=out"),
		hl.OutputN(4, func(o uint64) { out = o })("in=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	var prev uint64
	for i := uint64(15); i < 16; i-- {
		in = i
		c.Run(3)
		if out != prev {
			t.Fatalf("input %d, clk low: out = %d, expected %d", i, out, prev)
		}
		clk = true
		c.Run(3)
		if out != i {
			t.Fatalf("input %d, rising edge: out = %d", i, out)
		}
		in = ^i & 0xF
		c.Run(3)
		if out != i {
			t.Fatalf("input changed while clk high: out = %d, expected %d", out, i)
		}
		clk = false
		c.Run(3)
		prev = i
	}
}

func TestRegister8(t *testing.T) {
	var (
		in            uint64
		clk, rst, ena bool
		out           uint64
	)
	c, err := hw.NewCircuit(0,
		hl.InputN(8, func() uint64 { return in })("out=in"),
		hl.Input(func() bool { return clk })("out=clk"),
		hl.Input(func() bool { return !rst })("out=rst_n"),
		hl.Input(func() bool { return ena })("out=ena"),
		hl.Register8("in=in, clk=clk, rst_n=rst_n, ena=ena, out=out"),
		hl.OutputN(8, func(v uint64) { out = v })("in=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	step := func(msg string, exp uint64) {
		t.Helper()
		c.Run(3)
		if out != exp {
			t.Fatalf("%s: out = %02x, expected %02x", msg, out, exp)
		}
	}

	rst, ena, in = true, true, 0x5A
	step("reset", 0)
	clk = true
	step("rising edge in reset", 0)
	clk = false
	rst = false
	step("reset released", 0)
	clk = true
	step("rising edge", 0x5A)
	in = 0x11
	step("clk high", 0x5A)
	clk = false
	step("falling edge", 0x5A)
	ena = false
	clk = true
	step("disabled", 0x5A)
	clk = false
	ena = true
	step("enabled, clk low", 0x5A)
	clk = true
	step("enabled, rising edge", 0x11)
	rst = true
	step("async reset", 0)
}

func TestBit(t *testing.T) {
	var in, clk, rst, ena, out bool
	c, err := hw.NewCircuit(0,
		hl.Input(func() bool { return in })("out=in"),
		hl.Input(func() bool { return clk })("out=clk"),
		hl.Input(func() bool { return !rst })("out=rst_n"),
		hl.Input(func() bool { return ena })("out=ena"),
		hl.Bit("in=in, clk=clk, rst_n=rst_n, ena=ena, out=out"),
		hl.Output(func(v bool) { out = v })("in=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	step := func(msg string, exp bool) {
		t.Helper()
		c.Run(6)
		if out != exp {
			t.Fatalf("%s: out = %v, expected %v", msg, out, exp)
		}
	}

	rst, ena, in = true, true, true
	step("reset", false)
	clk = true
	step("rising edge in reset", false)
	clk = false
	step("clk low in reset", false)
	rst = false
	step("reset released", false)
	clk = true
	step("rising edge", true)
	in = false
	step("clk high", true)
	clk = false
	step("falling edge", true)
	ena = false
	step("disabled, clk low", true)
	clk = true
	step("disabled, rising edge", true)
	clk, ena = false, true
	step("enabled, clk low", true)
	clk = true
	step("enabled, rising edge", false)
	clk, in = false, true
	step("clk low", false)
	clk = true
	step("rising edge", true)
	rst = true
	step("async reset", false)
	rst = false
	step("reset released without a clock edge", true)
}
