// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"fmt"
	"strconv"

	"github.com/db47h/alucheck/hwsim"
)

var halfAdder = mustChip("HalfAdder", "a, b", "s, c",
	Xor("a=a, b=b, out=s"),
	And("a=a, b=b, out=c"),
)

// HalfAdder returns a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(w string) hwsim.Part { return halfAdder(w) }

var fullAdder = mustChip("FullAdder", "a, b, cin", "s, cout",
	HalfAdder("a=a, b=b, s=s0, c=c0"),
	HalfAdder("a=s0, b=cin, s=s, c=c1"),
	Or("a=c0, b=c1, out=cout"),
)

// FullAdder returns a 3 bits adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(w string) hwsim.Part { return fullAdder(w) }

// AdderN returns a N-bits ripple carry adder. Its propagation delay grows with
// bits, by two steps per FullAdder stage.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
//	Function: out = lsb(a + b), c = carry out
//
func AdderN(bits int) hwsim.NewPartFn {
	carry := func(i int) string {
		if i == bits-1 {
			return pCarry
		}
		return "carry" + strconv.Itoa(i)
	}
	parts := []hwsim.Part{HalfAdder("a=a[0], b=b[0], s=out[0], c=" + carry(0))}
	for i := 1; i < bits; i++ {
		parts = append(parts, FullAdder(fmt.Sprintf("a=a[%d], b=b[%d], cin=%s, s=out[%d], cout=%s",
			i, i, carry(i-1), i, carry(i))))
	}
	n := strconv.Itoa(bits)
	return mustChip("Adder"+n, "a["+n+"], b["+n+"]", "out["+n+"], c", parts...)
}

// SubSatN returns a N-bits saturating subtractor.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
//	Function: if a >= b { out = a - b; c = 0 } else { out = 0; c = 1 }
//
func SubSatN(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "SubSat" + strconv.Itoa(bits),
		Inputs:  bus(bits, pA, pB),
		Outputs: append(bus(bits, pOut), pCarry),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			a, b := s.Bus(pA, bits), s.Bus(pB, bits)
			out, borrow := s.Bus(pOut, bits), s.Pin(pCarry)
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					va, vb := Uint64(c, a), Uint64(c, b)
					if va < vb {
						SetUint64(c, out, 0)
						c.Set(borrow, true)
						return
					}
					SetUint64(c, out, va-vb)
					c.Set(borrow, false)
				}}
		}}).NewPart
}

// MulN returns a N-bits multiplier with a 2N-bits result.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[2*bits]
//	Function: out = a * b
//
func MulN(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "Mul" + strconv.Itoa(bits),
		Inputs:  bus(bits, pA, pB),
		Outputs: bus(2*bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			a, b := s.Bus(pA, bits), s.Bus(pB, bits)
			out := s.Bus(pOut, 2*bits)
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					SetUint64(c, out, Uint64(c, a)*Uint64(c, b))
				}}
		}}).NewPart
}

// DivN returns a N-bits divider. Division by zero yields zero and sets dz.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], dz
//	Function: if b != 0 { out = a / b; dz = 0 } else { out = 0; dz = 1 }
//
func DivN(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "Div" + strconv.Itoa(bits),
		Inputs:  bus(bits, pA, pB),
		Outputs: append(bus(bits, pOut), "dz"),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			a, b := s.Bus(pA, bits), s.Bus(pB, bits)
			out, dz := s.Bus(pOut, bits), s.Pin("dz")
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					vb := Uint64(c, b)
					if vb == 0 {
						SetUint64(c, out, 0)
						c.Set(dz, true)
						return
					}
					SetUint64(c, out, Uint64(c, a)/vb)
					c.Set(dz, false)
				}}
		}}).NewPart
}
