// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim_test

import (
	"testing"

	hw "github.com/db47h/alucheck/hwsim"
	hl "github.com/db47h/alucheck/hwlib"
)

func TestNewCircuit_empty(t *testing.T) {
	if _, err := hw.NewCircuit(0); err == nil {
		t.Fatal("expected an error for an empty part list")
	}
}

func TestCircuit_propagation(t *testing.T) {
	for _, workers := range []int{0, 1, 2, 16} {
		var in, out bool
		c, err := hw.NewCircuit(workers,
			hl.Input(func() bool { return in })("out=x"),
			hl.Not("in=x, out=notX"),
			hl.Output(func(v bool) { out = v })("in=notX"),
		)
		if err != nil {
			t.Fatal(err)
		}
		// one step per level: input, gate, output.
		in = true
		c.Run(2)
		if !out {
			t.Errorf("workers=%d: out = %v after 2 steps, expected true", workers, out)
		}
		c.Step()
		if out {
			t.Errorf("workers=%d: out = %v after 3 steps, expected false", workers, out)
		}
		if c.Steps() != 3 {
			t.Errorf("workers=%d: Steps() = %d, expected 3", workers, c.Steps())
		}
		if c.Size() != 4 { // 3 parts + constants
			t.Errorf("workers=%d: Size() = %d, expected 4", workers, c.Size())
		}
		c.Dispose()
	}
}

func TestCircuit_constant_inputs(t *testing.T) {
	var out uint64
	c, err := hw.NewCircuit(0,
		hl.OutputN(4, func(v uint64) { out = v })("in[0]=true, in[1]=false, in[2]=true"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	c.Step()
	if out != 5 {
		t.Fatalf("out = %d, expected 5", out)
	}
}
