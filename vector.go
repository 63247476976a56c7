// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alucheck

import "math/rand"

// Kind tells how a vector is encoded and whether its result is checked.
//
type Kind int

// Vector kinds.
//
const (
	Sweep   Kind = iota // packed operands, result logged only
	Assert              // packed operands, result checked
	Encrypt             // raw byte with ENC, result checked
)

// A Vector is a unit of stimulus.
//
type Vector struct {
	Label    string
	Kind     Kind
	A, B     uint8 // 4 bits operands, Sweep and Assert
	Raw      uint8 // raw ui_in byte, Encrypt only
	Op       Opcode
	Expected uint8 // Assert and Encrypt only
}

// DirectedPairs are the operand pairs of the directed sweep.
//
var DirectedPairs = [][2]uint8{
	{0x0, 0x0}, // min
	{0xF, 0xF}, // max
	{0x3, 0x5},
	{0xF, 0x0}, // addition edge
	{0x1, 0xF}, // subtraction underflow
	{0x4, 0x0}, // division by zero
}

// DirectedSweep returns every directed pair combined with every opcode,
// pair-major, opcodes in code order.
//
func DirectedSweep() []Vector {
	vs := make([]Vector, 0, len(DirectedPairs)*len(Opcodes))
	for _, p := range DirectedPairs {
		for _, op := range Opcodes {
			vs = append(vs, Vector{Label: op.String(), Kind: Sweep, A: p[0], B: p[1], Op: op})
		}
	}
	return vs
}

// RandomSweep returns n vectors drawn from r. Draw order per vector is a, b,
// then the opcode, each uniform: a and b over [0, 15], the opcode over
// Opcodes.
//
func RandomSweep(r *rand.Rand, n int) []Vector {
	vs := make([]Vector, n)
	for i := range vs {
		a := uint8(r.Intn(16))
		b := uint8(r.Intn(16))
		op := Opcodes[r.Intn(len(Opcodes))]
		vs[i] = Vector{Label: "Random " + op.String(), Kind: Sweep, A: a, B: b, Op: op}
	}
	return vs
}

var directedAssertions = []struct {
	a, b uint8
	op   Opcode
}{
	{0x0, 0x0, ADD},
	{0xF, 0xF, SUB},
	{0x4, 0x0, DIV}, // divide by zero
	{0x1, 0xF, SUB}, // underflow
}

// DirectedAssertions returns the checked corner cases, in order, with the
// expected results given by Expected.
//
func DirectedAssertions() []Vector {
	vs := make([]Vector, len(directedAssertions))
	for i, d := range directedAssertions {
		exp, err := Expected(d.op, d.a, d.b)
		if err != nil {
			panic(err)
		}
		vs[i] = Vector{Label: "Edge " + d.op.String(), Kind: Assert, A: d.a, B: d.b, Op: d.op, Expected: exp}
	}
	return vs
}

// EncRaw is the raw byte used by the ENC assertion.
//
const EncRaw = 0x2C

// EncAssertions returns the checked ENC cases.
//
func EncAssertions() []Vector {
	return []Vector{
		{Label: "ENC", Kind: Encrypt, Raw: EncRaw, Op: ENC, Expected: ExpectedEnc(EncRaw)},
	}
}
