// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/alucheck/hwsim"
)

// boolean functions shared by the single bit and N-bits gates.
func and2(a, b bool) bool  { return a && b }
func nand2(a, b bool) bool { return !(a && b) }
func or2(a, b bool) bool   { return a || b }
func nor2(a, b bool) bool  { return !(a || b) }
func xor2(a, b bool) bool  { return a != b }

var notGate = &hwsim.PartSpec{
	Name:    "NOT",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *hwsim.Socket) []hwsim.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		return []hwsim.Component{
			func(c *hwsim.Circuit) { c.Set(out, !c.Get(in)) },
		}
	},
}

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Not(w string) hwsim.Part { return notGate.NewPart(w) }

func gate2(name string, f func(a, b bool) bool) *hwsim.PartSpec {
	return &hwsim.PartSpec{
		Name:    name,
		Inputs:  []string{pA, pB},
		Outputs: []string{pOut},
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			a, b, out := s.Pin(pA), s.Pin(pB), s.Pin(pOut)
			return []hwsim.Component{
				func(c *hwsim.Circuit) { c.Set(out, f(c.Get(a), c.Get(b))) },
			}
		},
	}
}

var (
	andGate  = gate2("AND", and2)
	nandGate = gate2("NAND", nand2)
	orGate   = gate2("OR", or2)
	norGate  = gate2("NOR", nor2)
	xorGate  = gate2("XOR", xor2)
)

// And returns an AND gate. All two input gates have inputs a and b and output
// out:
//
//	And:  out = a && b
//	Nand: out = !(a && b)
//	Or:   out = a || b
//	Nor:  out = !(a || b)
//	Xor:  out = a != b
//
func And(w string) hwsim.Part { return andGate.NewPart(w) }

// Nand returns a NAND gate. See And.
func Nand(w string) hwsim.Part { return nandGate.NewPart(w) }

// Or returns an OR gate. See And.
func Or(w string) hwsim.Part { return orGate.NewPart(w) }

// Nor returns a NOR gate. See And.
func Nor(w string) hwsim.Part { return norGate.NewPart(w) }

// Xor returns a XOR gate. See And.
func Xor(w string) hwsim.Part { return xorGate.NewPart(w) }

// NotN returns a N-bits NOT gate.
//
//	Inputs: in[bits]
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = !in[i] }
//
func NotN(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "NOT" + strconv.Itoa(bits),
		Inputs:  bus(bits, pIn),
		Outputs: bus(bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			in, out := s.Bus(pIn, bits), s.Bus(pOut, bits)
			return []hwsim.Component{func(c *hwsim.Circuit) {
				for i, p := range in {
					c.Set(out[i], !c.Get(p))
				}
			}}
		}}).NewPart
}

// GateN returns a N-bits gate applying f bitwise.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = f(a[i], b[i]) }
//
func GateN(name string, bits int, f func(a, b bool) bool) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    name + strconv.Itoa(bits),
		Inputs:  bus(bits, pA, pB),
		Outputs: bus(bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			a, b, out := s.Bus(pA, bits), s.Bus(pB, bits), s.Bus(pOut, bits)
			return []hwsim.Component{func(c *hwsim.Circuit) {
				for i := range out {
					c.Set(out[i], f(c.Get(a[i]), c.Get(b[i])))
				}
			}}
		}}).NewPart
}

// AndN returns a N-bits AND gate.
func AndN(bits int) hwsim.NewPartFn { return GateN("AND", bits, and2) }

// OrN returns a N-bits OR gate.
func OrN(bits int) hwsim.NewPartFn { return GateN("OR", bits, or2) }

// XorN returns a N-bits XOR gate.
func XorN(bits int) hwsim.NewPartFn { return GateN("XOR", bits, xor2) }
