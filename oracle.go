// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alucheck

import "github.com/pkg/errors"

// EncKey is the byte the ENC opcode XORs its raw input with.
//
const EncKey = 0xAB

// Expected returns the result the device must produce for op applied to the
// 4 bits operands a and b.
//
// Only ADD, SUB and DIV have a result contract:
//
//	ADD: a + b
//	SUB: a - b, clamped to 0 when b > a
//	DIV: a / b, 0 when b == 0
//
// Other opcodes return ErrUnverified. ENC works on a raw byte, see ExpectedEnc.
//
func Expected(op Opcode, a, b uint8) (uint8, error) {
	if _, err := EncodeOperands(a, b); err != nil {
		return 0, err
	}
	switch op {
	case ADD:
		return a + b, nil
	case SUB:
		if b > a {
			return 0, nil
		}
		return a - b, nil
	case DIV:
		if b == 0 {
			return 0, nil
		}
		return a / b, nil
	}
	return 0, errors.Wrap(ErrUnverified, op.String())
}

// ExpectedEnc returns the result of the ENC opcode for the raw input byte.
//
func ExpectedEnc(raw uint8) uint8 {
	return raw ^ EncKey
}
