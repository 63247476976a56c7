// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package alucheck is a verification harness for a small 4 bits ALU exposed as a
device with an 8 bits input bus (ui_in), an 8 bits bidirectional bus (uio_in /
uio_out), an 8 bits output bus (uo_out), a clock, an active low reset and an
enable line.

A Sequencer starts a free running clock, resets the device and then runs four
phases of stimulus:

	DIRECTED_SWEEP   6 operand pairs x 9 opcodes, logged only
	RANDOM_SWEEP     900 seeded random vectors, logged only
	DIRECTED_ASSERT  ADD(0,0)=0, SUB(15,15)=0, DIV(4,0)=0, SUB(1,15)=0
	ENC_ASSERT       ENC(0b00101100) = 0b00101100 ^ 0xAB

Operands are packed as (a << 4) | b on ui_in, the opcode goes to the low
nibble of uio_in. Every vector is applied, left to settle for a fixed delay and
sampled. The run stops at the first mismatch.

The device is reached through the Device interface; package sim provides
simulated implementations.
*/
package alucheck
