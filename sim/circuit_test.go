// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sim_test

import (
	"context"
	"testing"

	"github.com/db47h/alucheck"
	"github.com/db47h/alucheck/hwlib"
	"github.com/db47h/alucheck/sim"
	"github.com/stretchr/testify/require"
)

func TestNewCircuitModel_bad_dut(t *testing.T) {
	_, err := sim.NewCircuitModel(0, hwlib.Xor)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to build device circuit")
}

func TestCircuitModel_ALU(t *testing.T) {
	m, err := sim.NewCircuitModel(2, hwlib.ALU)
	require.NoError(t, err)
	d := sim.NewDevice(m)
	ctx := context.Background()

	c := alucheck.Clock{HalfPeriod: 10}
	require.NoError(t, c.Start(ctx, d))
	require.NoError(t, alucheck.Reset(ctx, d, 50))
	require.Zero(t, d.Get(alucheck.UOOut))

	codec := alucheck.Codec{H: d, Settle: 50}
	for _, v := range []struct {
		v   alucheck.Vector
		exp uint8
	}{
		{alucheck.Vector{A: 3, B: 5, Op: alucheck.ADD}, 8},
		{alucheck.Vector{A: 15, B: 15, Op: alucheck.MUL}, 225},
		{alucheck.Vector{A: 1, B: 15, Op: alucheck.SUB}, 0},
		{alucheck.Vector{Kind: alucheck.Encrypt, Raw: 0x2C, Op: alucheck.ENC}, 0x87},
	} {
		require.NoError(t, codec.Apply(v.v))
		o, err := codec.Sample(ctx)
		require.NoError(t, err)
		require.Equal(t, v.exp, o.Result, "%s(%d, %d)", v.v.Op, v.v.A, v.v.B)
	}
	require.Equal(t, uint64(d.Now()), m.Steps())
	require.NoError(t, d.Close())
}
