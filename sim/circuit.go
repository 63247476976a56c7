// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sim

import (
	"github.com/db47h/alucheck"
	"github.com/db47h/alucheck/hwlib"
	"github.com/db47h/alucheck/hwsim"
	"github.com/pkg/errors"
)

// dutWiring connects a device under test to the device lines.
const dutWiring = "ui_in=ui_in, uio_in=uio_in, clk=clk, rst_n=rst_n, ena=ena, uo_out=uo_out, uio_out=uio_out"

// CircuitModel is a Model backed by a hwsim circuit. Each unit of time is one
// circuit step.
//
type CircuitModel struct {
	c *hwsim.Circuit
	l *Lines
}

// NewCircuitModel builds a circuit around dut. The part built by dut must have
// the pins of hwlib.ALU:
//
//	Inputs: ui_in[8], uio_in[8], clk, rst_n, ena
//	Outputs: uo_out[8], uio_out[8]
//
// See hwsim.NewCircuit for the meaning of workers.
//
func NewCircuitModel(workers int, dut hwsim.NewPartFn) (*CircuitModel, error) {
	m := new(CircuitModel)
	in8 := func(l alucheck.Line) func() uint64 {
		return func() uint64 { return uint64(m.l[l]) }
	}
	in1 := func(l alucheck.Line) func() bool {
		return func() bool { return m.l[l] != 0 }
	}
	out8 := func(l alucheck.Line) func(uint64) {
		return func(v uint64) { m.l[l] = uint8(v) }
	}
	c, err := hwsim.NewCircuit(workers,
		hwlib.InputN(8, in8(alucheck.UIIn))("out=ui_in"),
		hwlib.InputN(8, in8(alucheck.UIOIn))("out=uio_in"),
		hwlib.Input(in1(alucheck.Clk))("out=clk"),
		hwlib.Input(in1(alucheck.RstN))("out=rst_n"),
		hwlib.Input(in1(alucheck.Ena))("out=ena"),
		dut(dutWiring),
		hwlib.OutputN(8, out8(alucheck.UOOut))("in=uo_out"),
		hwlib.OutputN(8, out8(alucheck.UIOOut))("in=uio_out"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build device circuit")
	}
	m.c = c
	return m, nil
}

// Step implements Model.
//
func (m *CircuitModel) Step(l *Lines) error {
	m.l = l
	m.c.Step()
	return nil
}

// Close implements Model.
//
func (m *CircuitModel) Close() error {
	m.c.Dispose()
	return nil
}

// Steps returns the number of circuit steps run so far.
//
func (m *CircuitModel) Steps() uint64 { return m.c.Steps() }
