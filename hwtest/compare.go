// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/alucheck/hwlib"
	"github.com/db47h/alucheck/hwsim"
)

func connString(pins ...[]string) string {
	var b strings.Builder
	for _, ps := range pins {
		for _, n := range ps {
			if b.Len() > 0 {
				b.WriteRune(',')
			}
			b.WriteString(n)
			b.WriteRune('=')
			b.WriteString(n)
		}
	}
	return b.String()
}

func randBool(r *rand.Rand) bool {
	return r.Int63()&(1<<62) != 0
}

// ComparePart takes two combinational parts and compares their outputs given
// the same inputs. Both parts must have the same Input/Output interface.
// Outputs are compared after steps simulation steps.
//
// Up to 12 input pins are tested exhaustively, larger parts are tested with
// 4096 random input combinations.
//
func ComparePart(t *testing.T, steps int, part1 hwsim.NewPartFn, part2 hwsim.NewPartFn) {
	t.Helper()

	ps1, ps2 := part1("").PartSpec, part2("").PartSpec

	// compare specs
	if len(ps1.Inputs) != len(ps2.Inputs) {
		t.Fatal("len(ps1.Inputs) != len(ps2.Inputs)")
	}
	if len(ps1.Outputs) != len(ps2.Outputs) {
		t.Fatal("len(ps1.Outputs) != len(ps2.Outputs)")
	}
	for i := range ps1.Inputs {
		if ps1.Inputs[i] != ps2.Inputs[i] {
			t.Fatalf("ps1.Inputs[i] = %q != ps2.Inputs[i] = %q", ps1.Inputs[i], ps2.Inputs[i])
		}
	}
	for i := range ps1.Outputs {
		if ps1.Outputs[i] != ps2.Outputs[i] {
			t.Fatalf("ps1.Outputs[i] = %q != ps2.Outputs[i] = %q", ps1.Outputs[i], ps2.Outputs[i])
		}
	}

	inputs := make([]bool, len(ps1.Inputs))
	outputs := make([][2]bool, len(ps1.Outputs))

	// each part gets its own set of output wires: "p1_<pin>" and "p2_<pin>".
	var c1, c2 strings.Builder
	c1.WriteString(connString(ps1.Inputs))
	c2.WriteString(connString(ps1.Inputs))
	var parts hwsim.Parts
	for i, n := range ps1.Inputs {
		k := i
		parts = append(parts, hwlib.Input(func() bool { return inputs[k] })("out="+n))
	}
	for i, o := range ps1.Outputs {
		k := i
		w1, w2 := "p1_"+o, "p2_"+o
		fmt.Fprintf(&c1, ",%s=%s", o, w1)
		fmt.Fprintf(&c2, ",%s=%s", o, w2)
		parts = append(parts,
			hwlib.Output(func(b bool) { outputs[k][0] = b })("in="+w1),
			hwlib.Output(func(b bool) { outputs[k][1] = b })("in="+w2))
	}
	parts = append(parts, part1(strings.TrimPrefix(c1.String(), ",")), part2(strings.TrimPrefix(c2.String(), ",")))

	c, err := hwsim.NewCircuit(0, parts...)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	errString := func(oname string, ex, got bool) string {
		var b strings.Builder
		for i, n := range ps1.Inputs {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", n, inputs[i])
		}
		return fmt.Sprintf("\nExpected %s => %s=%v\nGot %v", b.String(), oname, ex, got)
	}
	check := func() {
		t.Helper()
		c.Run(steps)
		for o, out := range outputs {
			if out[0] != out[1] {
				t.Fatal(errString(ps1.Outputs[o], out[0], out[1]))
			}
		}
	}

	start := time.Now()
	if n := len(inputs); n <= 12 {
		for i := 0; i < 1<<uint(n); i++ {
			for bit := range inputs {
				inputs[bit] = i&(1<<uint(bit)) != 0
			}
			check()
		}
	} else {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		for i := 0; i < 1<<12; i++ {
			for in := range inputs {
				inputs[in] = randBool(r)
			}
			check()
		}
	}
	t.Logf("%d components. %d steps in %v.", c.Size(), c.Steps(), time.Since(start))
}
