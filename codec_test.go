// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alucheck_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/db47h/alucheck"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type setOp struct {
	l alucheck.Line
	v uint8
}

// handle is a Handle that records writes and waits.
type handle struct {
	lines  [alucheck.NumLines]uint8
	sets   []setOp
	waited alucheck.Duration
	err    error
}

func (h *handle) Set(l alucheck.Line, v uint8) {
	h.lines[l] = v
	h.sets = append(h.sets, setOp{l, v})
}

func (h *handle) Get(l alucheck.Line) uint8 { return h.lines[l] }

func (h *handle) Advance(ctx context.Context, d alucheck.Duration) error {
	h.waited += d
	return h.err
}

func TestEncodeOperands(t *testing.T) {
	for a := uint8(0); a < 16; a++ {
		for b := uint8(0); b < 16; b++ {
			v, err := alucheck.EncodeOperands(a, b)
			require.NoError(t, err)
			require.Equal(t, a, v>>4)
			require.Equal(t, b, v&0xF)
		}
	}
	v, err := alucheck.EncodeOperands(3, 5)
	require.NoError(t, err)
	require.Equal(t, uint8(0b00110101), v)

	_, err = alucheck.EncodeOperands(16, 0)
	var ee *alucheck.EncodingError
	require.ErrorAs(t, err, &ee)
	require.Equal(t, "a", ee.Field)
	require.EqualError(t, err, "operand a = 16 does not fit in 4 bits")

	_, err = alucheck.EncodeOperands(0, 255)
	require.ErrorAs(t, err, &ee)
	require.Equal(t, "b", ee.Field)
}

func TestEncodeOpcode(t *testing.T) {
	for i, op := range alucheck.Opcodes {
		v, err := alucheck.EncodeOpcode(op)
		require.NoError(t, err)
		require.Equal(t, uint8(i), v)
	}
	_, err := alucheck.EncodeOpcode(9)
	var ee *alucheck.EncodingError
	require.ErrorAs(t, err, &ee)
	require.Equal(t, "opcode", ee.Field)
	require.EqualError(t, err, "invalid opcode 9: not one of the 9 defined opcodes")
}

func TestOpcode_names(t *testing.T) {
	for _, op := range alucheck.Opcodes {
		p, err := alucheck.ParseOpcode(op.String())
		require.NoError(t, err)
		require.Equal(t, op, p)
	}
	require.Equal(t, "ENC", alucheck.ENC.String())
	require.Equal(t, "Opcode(12)", alucheck.Opcode(12).String())
	_, err := alucheck.ParseOpcode("NAND")
	require.Error(t, err)
}

func TestEncode(t *testing.T) {
	p, s, err := alucheck.Encode(alucheck.Vector{A: 1, B: 15, Op: alucheck.SUB})
	require.NoError(t, err)
	require.Equal(t, uint8(0x1F), p)
	require.Equal(t, uint8(1), s)

	// raw bytes bypass operand packing
	p, s, err = alucheck.Encode(alucheck.Vector{Kind: alucheck.Encrypt, Raw: 0x2C, A: 99, Op: alucheck.ENC})
	require.NoError(t, err)
	require.Equal(t, uint8(0x2C), p)
	require.Equal(t, uint8(8), s)

	_, _, err = alucheck.Encode(alucheck.Vector{A: 1, B: 2, Op: 15})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	vs := alucheck.DirectedSweep()
	require.NoError(t, alucheck.Validate(vs))
	vs[7].A = 0x10
	err := alucheck.Validate(vs)
	require.Error(t, err)
	require.Contains(t, err.Error(), "vector 7")
	var ee *alucheck.EncodingError
	require.True(t, errors.As(err, &ee))
}

func TestCodec(t *testing.T) {
	var tap bytes.Buffer
	h := &handle{}
	c := alucheck.Codec{H: h, Settle: 50, Tap: &tap}

	require.NoError(t, c.Apply(alucheck.Vector{A: 3, B: 5, Op: alucheck.MUL}))
	require.Equal(t, []setOp{{alucheck.UIIn, 0x35}, {alucheck.UIOIn, 2}}, h.sets)
	require.Zero(t, h.waited, "Apply must not advance time")
	require.Equal(t, []byte{0x35, 2}, tap.Bytes())

	h.lines[alucheck.UOOut], h.lines[alucheck.UIOOut] = 15, 1
	o, err := c.Sample(context.Background())
	require.NoError(t, err)
	require.Equal(t, alucheck.Observation{Result: 15, Status: 1}, o)
	require.Equal(t, alucheck.Duration(50), h.waited)

	// invalid vectors never reach the device
	h.sets = nil
	err = c.Apply(alucheck.Vector{A: 3, B: 16})
	require.Error(t, err)
	require.Empty(t, h.sets)

	h.err = errors.New("device gone")
	_, err = c.Sample(context.Background())
	require.Equal(t, h.err, err)
}
