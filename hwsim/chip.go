// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"strings"

	"github.com/pkg/errors"
)

type chip struct {
	PartSpec
	parts []Part
	conns []wiring
	isOut map[string]bool
}

// wiring of a single part within a chip.
type wiring struct {
	in  map[string]string   // part input pin -> wire
	out map[string][]string // part output pin -> wires
}

type wire struct {
	pin, name string
}

// Chip composes existing parts into a new part packaged into a chip.
// The pin names specified as inputs and outputs will be the inputs
// and outputs of the chip.
//
// An Xor gate could be created like this:
//
//	xor, err := Chip("XOR", "a, b", "out",
//		hwlib.Nand("a=a, b=b, out=nandAB"),
//		hwlib.Nand("a=a, b=nandAB, out=w0"),
//		hwlib.Nand("a=b, b=nandAB, out=w1"),
//		hwlib.Nand("a=w0, b=w1, out=out"),
//	)
//
// The returned value is a function of type NewPartFn that can be used to
// compose the new part with others into other chips:
//
//	xnor, err := Chip("XNOR", "a, b", "out",
//		xor("a=a, b=b, out=xorAB"),
//		hwlib.Not("in=xorAB, out=out"),
//	)
//
// Part inputs left unconnected read False. Part outputs connected to False are
// ignored. A part output connected to several chip outputs drives the first
// one directly and the others one step later.
//
func Chip(name string, inputs, outputs string, parts ...Part) (NewPartFn, error) {
	ins, err := ParseIOSpec(inputs)
	if err != nil {
		return nil, errors.Wrapf(err, "chip %s: bad input declaration", name)
	}
	outs, err := ParseIOSpec(outputs)
	if err != nil {
		return nil, errors.Wrapf(err, "chip %s: bad output declaration", name)
	}

	c := &chip{
		PartSpec: PartSpec{Name: name, Inputs: ins, Outputs: outs},
		parts:    parts,
		conns:    make([]wiring, len(parts)),
		isOut:    make(map[string]bool, len(outs)),
	}
	drivers := make(map[string]string) // wire name -> driving pin, for error messages
	for _, n := range ins {
		drivers[n] = name + "." + n
	}
	for _, n := range outs {
		if _, ok := drivers[n]; ok {
			return nil, errors.Errorf("chip %s: pin %s declared as both input and output", name, n)
		}
		c.isOut[n] = true
	}

	for i, p := range parts {
		wr := wiring{in: make(map[string]string), out: make(map[string][]string)}
		pins := p.pins()
		for _, cn := range p.Conns {
			ws, err := connect(pins, cn)
			if err != nil {
				return nil, errors.Wrapf(err, "chip %s, part %s", name, p.Name)
			}
			for _, w := range ws {
				if pins[w.pin] {
					if _, ok := wr.in[w.pin]; ok {
						return nil, errors.Errorf("chip %s: input pin %s.%s connected more than once", name, p.Name, w.pin)
					}
					wr.in[w.pin] = w.name
					continue
				}
				switch {
				case w.name == False:
					continue
				case w.name == True:
					return nil, errors.Errorf("chip %s: output pin %s.%s connected to constant %q input", name, p.Name, w.pin, True)
				}
				if d, ok := drivers[w.name]; ok {
					return nil, errors.Errorf("chip %s: wire %s driven by both %s and %s.%s", name, w.name, d, p.Name, w.pin)
				}
				drivers[w.name] = p.Name + "." + w.pin
				wr.out[w.pin] = append(wr.out[w.pin], w.name)
			}
		}
		c.conns[i] = wr
	}

	for i, wr := range c.conns {
		for _, in := range parts[i].Inputs {
			w, ok := wr.in[in]
			if !ok || w == True || w == False {
				continue
			}
			if _, ok = drivers[w]; !ok {
				return nil, errors.Errorf("chip %s: pin %s.%s: wire %s not connected to any output", name, parts[i].Name, in, w)
			}
		}
	}
	for _, o := range outs {
		if _, ok := drivers[o]; !ok {
			return nil, errors.Errorf("chip %s: output pin %s not connected", name, o)
		}
	}

	c.Mount = c.mount
	return c.PartSpec.NewPart, nil
}

// connect pairs the part pins and wires of a single connection. A bus pin
// named without an index is expanded to the whole bus.
//
func connect(pins map[string]bool, cn Connection) ([]wire, error) {
	pp, cp := cn.PP, cn.CP
	if len(pp) == 1 {
		if _, ok := pins[pp[0]]; !ok {
			if bus := busPins(pins, pp[0]); len(bus) > 0 {
				pp = bus
				if len(cp) == 1 && !strings.ContainsRune(cp[0], '[') && cp[0] != True && cp[0] != False {
					cp = make([]string, len(bus))
					for i := range cp {
						cp[i] = BusPinName(cn.CP[0], i)
					}
				}
			}
		}
	}
	for _, p := range pp {
		if _, ok := pins[p]; !ok {
			return nil, errors.Errorf("invalid pin name %s", p)
		}
	}
	var ws []wire
	switch {
	case len(pp) == len(cp):
		for i := range pp {
			ws = append(ws, wire{pp[i], cp[i]})
		}
	case len(pp) == 1:
		for _, n := range cp {
			ws = append(ws, wire{pp[0], n})
		}
	case len(cp) == 1:
		for _, p := range pp {
			ws = append(ws, wire{p, cp[0]})
		}
	default:
		return nil, errors.Errorf("pin count mismatch in pin mapping %s=%s", strings.Join(cn.PP, ","), strings.Join(cn.CP, ","))
	}
	return ws, nil
}

func busPins(pins map[string]bool, name string) []string {
	var bus []string
	for i := 0; ; i++ {
		n := BusPinName(name, i)
		if _, ok := pins[n]; !ok {
			return bus
		}
		bus = append(bus, n)
	}
}

func (c *chip) mount(s *Socket) []Component {
	wires := map[string]int{False: cstFalse, True: cstTrue}
	for _, n := range c.Inputs {
		wires[n] = s.Pin(n)
	}
	for _, n := range c.Outputs {
		wires[n] = s.Pin(n)
	}

	// outputs first so that every wire has a pin number before inputs are
	// resolved.
	var cs []Component
	subs := make([]*Socket, len(c.parts))
	for i, p := range c.parts {
		sub := newSocket(s.c)
		for _, o := range p.Outputs {
			ws := c.conns[i].out[o]
			n := -1
			for _, w := range ws {
				if !c.isOut[w] {
					continue
				}
				if n < 0 {
					n = wires[w]
				} else {
					cs = append(cs, copyPin(n, wires[w]))
				}
			}
			if n < 0 {
				n = s.c.allocPin()
			}
			for _, w := range ws {
				if !c.isOut[w] {
					wires[w] = n
				}
			}
			sub.m[o] = n
		}
		subs[i] = sub
	}

	for i, p := range c.parts {
		sub := subs[i]
		for _, in := range p.Inputs {
			n := cstFalse
			if w, ok := c.conns[i].in[in]; ok {
				n = wires[w]
			}
			sub.m[in] = n
		}
		cs = append(cs, p.Mount(sub)...)
	}
	return cs
}

func copyPin(from, to int) Component {
	return func(c *Circuit) { c.Set(to, c.Get(from)) }
}
