// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable parts for hwsim, and a
// reference ALU built from them.
//
package hwlib

import (
	"github.com/db47h/alucheck/hwsim"
)

// common pin names
const (
	pA     = "a"
	pB     = "b"
	pIn    = "in"
	pSel   = "sel"
	pOut   = "out"
	pClk   = "clk"
	pCarry = "c"
)

// make a bus name
func bus(bits int, names ...string) []string {
	b := make([]string, 0, len(names)*bits)
	for _, n := range names {
		for j := 0; j < bits; j++ {
			b = append(b, hwsim.BusPinName(n, j))
		}
	}
	return b
}

// mustChip is hwsim.Chip for parts defined in this package.
func mustChip(name string, inputs, outputs string, parts ...hwsim.Part) hwsim.NewPartFn {
	c, err := hwsim.Chip(name, inputs, outputs, parts...)
	if err != nil {
		panic(err)
	}
	return c
}
