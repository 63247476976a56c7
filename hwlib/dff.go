// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/alucheck/hwsim"

// DFF returns a data flip flop clocked on the rising edge of clk.
//
//	Inputs: in, clk
//	Outputs: out
//	Function: out = in, sampled on clk rising edge.
//
func DFF(w string) hwsim.Part {
	return (&hwsim.PartSpec{
		Name:    "DFF",
		Inputs:  []string{pIn, pClk},
		Outputs: []string{pOut},
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			in, clk, out := s.Pin(pIn), s.Pin(pClk), s.Pin(pOut)
			var prev, curOut bool
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					// rising edge?
					if v := c.Get(clk); v != prev {
						prev = v
						if v {
							curOut = c.Get(in)
						}
					}
					c.Set(out, curOut)
				}}
		}}).NewPart(w)
}

var bit = mustChip("BIT", "in, clk, rst_n, ena", "out",
	Mux("a=q, b=in, sel=ena, out=d"),
	And("a=d, b=rst_n, out=next"),
	DFF("in=next, clk=clk, out=q"),
	And("a=q, b=rst_n, out=out"),
)

// Bit returns a 1 bit register. While rst_n is low, out reads false and the
// stored bit is cleared on the next clk rising edge.
//
//	Inputs: in, clk, rst_n, ena
//	Outputs: out
//	Function: if !rst_n { out = 0 } else if ena { out = in, sampled on clk rising edge }
//
func Bit(w string) hwsim.Part { return bit(w) }

// register8 is an 8 bits register with asynchronous active low reset and
// enable.
type register8 struct {
	In   [8]int `hw:"in"`
	Clk  int    `hw:"in"`
	RstN int    `hw:"in,rst_n"`
	Ena  int    `hw:"in"`
	Out  [8]int `hw:"out"`

	prev bool
	q    uint64
}

func (r *register8) Update(c *hwsim.Circuit) {
	clk := c.Get(r.Clk)
	rising := clk && !r.prev
	r.prev = clk
	switch {
	case !c.Get(r.RstN):
		r.q = 0
	case rising && c.Get(r.Ena):
		r.q = Uint64(c, r.In[:])
	}
	SetUint64(c, r.Out[:], r.q)
}

var register8Spec = hwsim.MakePart((*register8)(nil))

// Register8 returns an 8 bits register.
//
//	Inputs: in[8], clk, rst_n, ena
//	Outputs: out[8]
//	Function: if !rst_n { out = 0 } else if ena { out = in, sampled on clk rising edge }
//
func Register8(w string) hwsim.Part { return register8Spec.NewPart(w) }
