// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alucheck

import "context"

// Reset enables the device, holds it in reset with both input buses at zero
// for settle time units, then releases reset.
//
func Reset(ctx context.Context, h Handle, settle Duration) error {
	h.Set(UIIn, 0)
	h.Set(UIOIn, 0)
	h.Set(Ena, 1)
	h.Set(RstN, 0)
	if err := h.Advance(ctx, settle); err != nil {
		return err
	}
	h.Set(RstN, 1)
	return nil
}
