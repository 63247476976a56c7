// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest_test

import (
	"testing"

	hw "github.com/db47h/alucheck/hwsim"
	hl "github.com/db47h/alucheck/hwlib"
	"github.com/db47h/alucheck/hwtest"
)

func TestComparePart(t *testing.T) {
	or, err := hw.Chip("custom_or", "a,b", "out",
		hl.Nand("a=a, b=a, out=notA"),
		hl.Nand("a=b, b=b, out=notB"),
		hl.Nand("a=notA, b=notB, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	hwtest.ComparePart(t, 5, hl.Or, or)
}

func TestComparePart_random(t *testing.T) {
	// 16 inputs: random stimulus
	xor8, err := hw.Chip("custom_xor8", "a[8], b[8]", "out[8]",
		hl.OrN(8)("a=a, b=b, out=or"),
		hl.AndN(8)("a=a, b=b, out=and"),
		hl.NotN(8)("in=and, out=nand"),
		hl.AndN(8)("a=or, b=nand, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	hwtest.ComparePart(t, 6, hl.XorN(8), xor8)
}
