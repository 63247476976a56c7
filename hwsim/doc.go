// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hwsim is a naive step based hardware simulator used to build simulated
devices for the alucheck harness.

Parts are described by a PartSpec (pin names and a MountFn) and composed into
bigger parts with Chip. Connections between a part's pins and the wires of its
container are written as strings:

	hwlib.AdderN(4)("a=ui_in[4..7], b=ui_in[0..3], out=sum[0..3], c=sum[4]")

A bus pin connected without an index ("in=res") is connected bit by bit to the
wire bus of the same width.

A Circuit runs the mounted components in lock step: every component reads the
wire states of step n and writes the states of step n+1. There is no built-in
clock; clocks are plain input pins driven from outside the circuit.
*/
package hwsim
