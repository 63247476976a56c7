// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alucheck

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
)

// A Clock drives the clk line of a device with a fixed half period, starting
// high. Only the clock writes clk.
//
type Clock struct {
	HalfPeriod Duration
	started    int32
}

// Start forks the clock process on dev and returns immediately. The clock
// runs until ctx is done or the device fails. A Clock can be started only once.
//
func (c *Clock) Start(ctx context.Context, dev Device) error {
	if c.HalfPeriod == 0 {
		return errors.New("clock half period must be non zero")
	}
	if !atomic.CompareAndSwapInt32(&c.started, 0, 1) {
		return errors.New("clock already started")
	}
	dev.Fork(ctx, func(ctx context.Context, h Handle) {
		v := uint8(1)
		for ctx.Err() == nil {
			h.Set(Clk, v)
			if h.Advance(ctx, c.HalfPeriod) != nil {
				return
			}
			v ^= 1
		}
	})
	return nil
}
