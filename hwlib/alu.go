// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/alucheck/hwsim"

// ALU pin declarations.
const (
	ALUInputs  = "ui_in[8], uio_in[8], clk, rst_n, ena"
	ALUOutputs = "uo_out[8], uio_out[8]"
)

// operand a is the high nibble of ui_in, b the low nibble.
const aluOperands = "a=ui_in[4..7], b=ui_in[0..3], "

var aluChip = mustChip("ALU", ALUInputs, ALUOutputs,
	AdderN(4)(aluOperands+"out=add[0..3], c=add[4]"),
	SubSatN(4)(aluOperands+"out=sub"),
	MulN(4)(aluOperands+"out=mul"),
	DivN(4)(aluOperands+"out=div"),
	AndN(4)(aluOperands+"out=and"),
	OrN(4)(aluOperands+"out=or"),
	XorN(4)(aluOperands+"out=xor"),
	NotN(4)("in=ui_in[4..7], out=not"),
	// 0xAB
	XorN(8)("a=ui_in, b[0..1]=true, b[2]=false, b[3]=true, b[4]=false, b[5]=true, b[6]=false, b[7]=true, out=enc"),

	MuxNWay(8, 9)("sel=uio_in[0..3], out=res, "+
		"in0[0..4]=add[0..4], in0[5..7]=false, "+
		"in1[0..3]=sub[0..3], in1[4..7]=false, "+
		"in2=mul, "+
		"in3[0..3]=div[0..3], in3[4..7]=false, "+
		"in4[0..3]=and[0..3], in4[4..7]=false, "+
		"in5[0..3]=or[0..3], in5[4..7]=false, "+
		"in6[0..3]=xor[0..3], in6[4..7]=false, "+
		"in7[0..3]=not[0..3], in7[4..7]=false, "+
		"in8=enc"),

	Register8("in=res, clk=clk, rst_n=rst_n, ena=ena, out=uo_out"),

	// status: uio_out[0] is set when the result is zero, other bits read 0.
	zero8("in=res, out=z"),
	Bit("in=z, clk=clk, rst_n=rst_n, ena=ena, out=uio_out[0]"),
	Bit("in=false, clk=clk, rst_n=rst_n, ena=ena, out=uio_out[1..7]"),
)

var zero8 = mustChip("ZERO8", "in[8]", "out",
	Nor("a=in[0], b=in[1], out=z0"),
	Nor("a=in[2], b=in[3], out=z1"),
	Nor("a=in[4], b=in[5], out=z2"),
	Nor("a=in[6], b=in[7], out=z3"),
	Nand("a=z0, b=z1, out=nz_lo"),
	Nand("a=z2, b=z3, out=nz_hi"),
	Or("a=nz_lo, b=nz_hi, out=nz"),
	Not("in=nz, out=out"),
)

// ALU returns a reference model of the 4 bits ALU, usable as a simulated
// device under test.
//
//	Inputs: ui_in[8], uio_in[8], clk, rst_n, ena
//	Outputs: uo_out[8], uio_out[8]
//	Function: a, b = ui_in[4..7], ui_in[0..3]
//	          op = uio_in[0..3]
//	          ADD(0): a + b        SUB(1): a - b, 0 if a < b
//	          MUL(2): a * b        DIV(3): a / b, 0 if b == 0
//	          AND(4): a & b        OR(5): a | b
//	          XOR(6): a ^ b        NOT(7): ^a & 0xF
//	          ENC(8): ui_in ^ 0xAB
//	          other opcodes: 0
//	          uo_out is registered on clk rising edge when ena is high and is
//	          cleared while rst_n is low. uio_out[0] is the zero flag.
//
func ALU(c string) hwsim.Part { return aluChip(c) }
