// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alucheck

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnverified is returned by Expected for opcodes without a verified result
// contract.
//
var ErrUnverified = errors.New("no verified result for opcode")

// An EncodingError reports a stimulus value that does not fit its declared
// width. It is a programming error in the vector source and is detected before
// the vector reaches the device.
//
type EncodingError struct {
	Field string // "a", "b" or "opcode"
	Value uint8
	Bits  int
}

func (e *EncodingError) Error() string {
	if e.Field == "opcode" {
		return fmt.Sprintf("invalid opcode %d: not one of the %d defined opcodes", e.Value, len(Opcodes))
	}
	return fmt.Sprintf("operand %s = %d does not fit in %d bits", e.Field, e.Value, e.Bits)
}

// A MismatchError reports a sampled result that differs from the expected one.
//
type MismatchError struct {
	Vector   Vector
	Observed uint8
}

func (e *MismatchError) Error() string {
	v := e.Vector
	if v.Kind == Encrypt {
		return fmt.Sprintf("%s failed for a=%d: result = %08b, expected %08b", v.Op, v.Raw, e.Observed, v.Expected)
	}
	return fmt.Sprintf("%s failed for a=%d, b=%d: result = %08b, expected %08b", v.Op, v.A, v.B, e.Observed, v.Expected)
}
