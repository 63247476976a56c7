// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"strconv"
	"testing"

	hw "github.com/db47h/alucheck/hwsim"
	hl "github.com/db47h/alucheck/hwlib"
	"github.com/db47h/alucheck/hwtest"
)

// refAdder returns a behavioral part with the given pins. Its outputs, lsb
// first, are set to f of its input pins.
func refAdder(name string, ins, outs string, f func(c *hw.Circuit, in []int) uint64) hw.NewPartFn {
	spec := &hw.PartSpec{Name: name, Inputs: hw.IO(ins), Outputs: hw.IO(outs)}
	spec.Mount = func(s *hw.Socket) []hw.Component {
		in := make([]int, len(spec.Inputs))
		for i, n := range spec.Inputs {
			in[i] = s.Pin(n)
		}
		out := make([]int, len(spec.Outputs))
		for i, n := range spec.Outputs {
			out[i] = s.Pin(n)
		}
		return []hw.Component{func(c *hw.Circuit) { hl.SetUint64(c, out, f(c, in)) }}
	}
	return spec.NewPart
}

// popcount of the input pins.
func sumBits(c *hw.Circuit, in []int) uint64 {
	var n uint64
	for _, p := range in {
		if c.Get(p) {
			n++
		}
	}
	return n
}

func TestHalfAdder(t *testing.T) {
	hwtest.ComparePart(t, 4, hl.HalfAdder, refAdder("refHalfAdder", "a, b", "s, c", sumBits))
}

func TestHalfAdder_from_nand(t *testing.T) {
	h, err := hw.Chip("nandHalfAdder", "a, b", "s, c",
		hl.Nand("a=a, b=b, out=nandAB"),
		hl.Nand("a=a, b=nandAB, out=w0"),
		hl.Nand("a=b, b=nandAB, out=w1"),
		hl.Nand("a=w0, b=w1, out=s"),
		hl.Nand("a=nandAB, b=nandAB, out=c"),
	)
	if err != nil {
		t.Fatal(err)
	}
	hwtest.ComparePart(t, 6, hl.HalfAdder, h)
}

func TestFullAdder(t *testing.T) {
	hwtest.ComparePart(t, 6, hl.FullAdder, refAdder("refFullAdder", "a, b, cin", "s, cout", sumBits))
}

func TestAdderN(t *testing.T) {
	for _, bits := range []int{1, 4, 8} {
		n := strconv.Itoa(bits)
		ref := refAdder("refAdder"+n, "a["+n+"], b["+n+"]", "out["+n+"], c", func(c *hw.Circuit, in []int) uint64 {
			return hl.Uint64(c, in[:bits]) + hl.Uint64(c, in[bits:])
		})
		t.Run(n, func(t *testing.T) {
			// two steps per FullAdder stage, plus input and output.
			hwtest.ComparePart(t, 2*bits+4, hl.AdderN(bits), ref)
		})
	}
}

func exhaustive4(t *testing.T, name string, part hw.NewPartFn, outBits int, f func(a, b uint64) uint64) {
	t.Helper()
	op, dispose := binOp(t, part, 4, outBits)
	defer dispose()
	for a := uint64(0); a < 16; a++ {
		for b := uint64(0); b < 16; b++ {
			if got, exp := op(a, b), f(a, b); got != exp {
				t.Fatalf("%s(%d, %d) = %d, expected %d", name, a, b, got, exp)
			}
		}
	}
}

func TestAdderN_carry(t *testing.T) {
	// carry folded into out[4]
	add, err := hw.Chip("ADD4C", "a[4], b[4]", "out[5]",
		hl.AdderN(4)("a=a, b=b, out=out[0..3], c=out[4]"),
	)
	if err != nil {
		t.Fatal(err)
	}
	exhaustive4(t, "ADD", add, 5, func(a, b uint64) uint64 { return a + b })
}

func TestSubSatN(t *testing.T) {
	exhaustive4(t, "SUB", hl.SubSatN(4), 4, func(a, b uint64) uint64 {
		if b > a {
			return 0
		}
		return a - b
	})
}

func TestMulN(t *testing.T) {
	exhaustive4(t, "MUL", hl.MulN(4), 8, func(a, b uint64) uint64 { return a * b })
}

func TestDivN(t *testing.T) {
	exhaustive4(t, "DIV", hl.DivN(4), 4, func(a, b uint64) uint64 {
		if b == 0 {
			return 0
		}
		return a / b
	})
}

func TestDivN_dz(t *testing.T) {
	var b uint64
	var dz bool
	c, err := hw.NewCircuit(0,
		hl.InputN(4, func() uint64 { return b })("out=b"),
		hl.DivN(4)("a[0..3]=true, b=b, dz=dz"),
		hl.Output(func(v bool) { dz = v })("in=dz"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	for b = 0; b < 16; b++ {
		c.Run(3)
		if dz != (b == 0) {
			t.Fatalf("b = %d: dz = %v", b, dz)
		}
	}
}
