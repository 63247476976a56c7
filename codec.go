// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alucheck

import (
	"context"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// An Opcode selects the ALU operation. Its code is carried in the low nibble
// of uio_in.
//
type Opcode uint8

// Opcodes. Codes 9 to 15 are reserved.
//
const (
	ADD Opcode = iota
	SUB
	MUL
	DIV
	AND
	OR
	XOR
	NOT
	ENC
)

// Opcodes lists all defined opcodes in code order.
//
var Opcodes = []Opcode{ADD, SUB, MUL, DIV, AND, OR, XOR, NOT, ENC}

var opNames = [...]string{"ADD", "SUB", "MUL", "DIV", "AND", "OR", "XOR", "NOT", "ENC"}

func (op Opcode) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "Opcode(" + strconv.Itoa(int(op)) + ")"
}

// ParseOpcode returns the opcode with the given name.
//
func ParseOpcode(name string) (Opcode, error) {
	for i, n := range opNames {
		if n == name {
			return Opcode(i), nil
		}
	}
	return 0, errors.Errorf("unknown opcode %q", name)
}

// EncodeOperands packs two 4 bits operands into a byte, a in the high nibble.
//
func EncodeOperands(a, b uint8) (uint8, error) {
	if a > 0xF {
		return 0, &EncodingError{Field: "a", Value: a, Bits: 4}
	}
	if b > 0xF {
		return 0, &EncodingError{Field: "b", Value: b, Bits: 4}
	}
	return a<<4 | b, nil
}

// EncodeOpcode returns the code of op. Reserved codes are rejected.
//
func EncodeOpcode(op Opcode) (uint8, error) {
	if op > ENC {
		return 0, &EncodingError{Field: "opcode", Value: uint8(op), Bits: 4}
	}
	return uint8(op), nil
}

// Encode returns the ui_in and uio_in values for v.
//
func Encode(v Vector) (primary, secondary uint8, err error) {
	if v.Kind == Encrypt {
		primary = v.Raw
	} else if primary, err = EncodeOperands(v.A, v.B); err != nil {
		return 0, 0, err
	}
	if secondary, err = EncodeOpcode(v.Op); err != nil {
		return 0, 0, err
	}
	return primary, secondary, nil
}

// Validate checks that every vector in vs can be encoded.
//
func Validate(vs []Vector) error {
	for i := range vs {
		if _, _, err := Encode(vs[i]); err != nil {
			return errors.Wrapf(err, "vector %d (%s)", i, vs[i].Label)
		}
	}
	return nil
}

// An Observation is the state of the device outputs sampled after a vector
// has settled.
//
type Observation struct {
	Result uint8 // uo_out
	Status uint8 // uio_out
}

// Codec applies vectors to a device and samples its outputs.
//
type Codec struct {
	H      Handle
	Settle Duration // delay between Apply and sampling
	// Tap, if not nil, receives the ui_in and uio_in bytes of every applied
	// vector.
	Tap io.Writer
}

// Apply writes the encoded vector to ui_in and uio_in. Both lines change at
// the same simulated time.
//
func (c *Codec) Apply(v Vector) error {
	p, s, err := Encode(v)
	if err != nil {
		return err
	}
	c.H.Set(UIIn, p)
	c.H.Set(UIOIn, s)
	if c.Tap != nil {
		if _, err = c.Tap.Write([]byte{p, s}); err != nil {
			return errors.Wrap(err, "stimulus tap")
		}
	}
	return nil
}

// Sample waits for the settle delay and reads uo_out and uio_out.
//
func (c *Codec) Sample(ctx context.Context) (Observation, error) {
	if err := c.H.Advance(ctx, c.Settle); err != nil {
		return Observation{}, err
	}
	return Observation{Result: c.H.Get(UOOut), Status: c.H.Get(UIOOut)}, nil
}
