// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"math/bits"
	"strconv"

	"github.com/db47h/alucheck/hwsim"
)

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(w string) hwsim.Part { return mux.NewPart(w) }

var mux = hwsim.PartSpec{
	Name:    "MUX",
	Inputs:  []string{pA, pB, pSel},
	Outputs: []string{pOut},
	Mount: func(s *hwsim.Socket) []hwsim.Component {
		a, b, sel, out := s.Pin(pA), s.Pin(pB), s.Pin(pSel), s.Pin(pOut)
		return []hwsim.Component{func(c *hwsim.Circuit) {
			if c.Get(sel) {
				c.Set(out, c.Get(b))
			} else {
				c.Set(out, c.Get(a))
			}
		}}
	},
}

// SelBits returns the width of the selector bus of a MuxNWay with the given
// number of ways.
//
func SelBits(ways int) int {
	if ways < 2 {
		return 1
	}
	return bits.Len(uint(ways - 1))
}

// MuxNWay returns a N-bits multiplexer with the given number of ways.
//
//	Inputs: sel[SelBits(ways)], in0[n], in1[n], ..., in<ways-1>[n]
//	Outputs: out[n]
//	Function: if sel < ways { out = in<sel> } else { out = 0 }
//
func MuxNWay(n, ways int) hwsim.NewPartFn {
	sb := SelBits(ways)
	ins := make([]string, 0, ways)
	for i := 0; i < ways; i++ {
		ins = append(ins, pIn+strconv.Itoa(i))
	}
	return (&hwsim.PartSpec{
		Name:    "Mux" + strconv.Itoa(n) + "Way" + strconv.Itoa(ways),
		Inputs:  append(bus(sb, pSel), bus(n, ins...)...),
		Outputs: bus(n, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			sel, out := s.Bus(pSel, sb), s.Bus(pOut, n)
			in := make([][]int, ways)
			for i, name := range ins {
				in[i] = s.Bus(name, n)
			}
			return []hwsim.Component{func(c *hwsim.Circuit) {
				i := Uint64(c, sel)
				if i >= uint64(ways) {
					SetUint64(c, out, 0)
					return
				}
				for bit, o := range out {
					c.Set(o, c.Get(in[i][bit]))
				}
			}}
		}}).NewPart
}
