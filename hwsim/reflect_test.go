// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim_test

import (
	"reflect"
	"testing"

	hw "github.com/db47h/alucheck/hwsim"
	hl "github.com/db47h/alucheck/hwlib"
	"github.com/db47h/alucheck/hwtest"
)

type mux4 struct {
	A   [4]int `hw:"in"`
	B   [4]int `hw:"in"`
	Sel int    `hw:"in"`
	Out [4]int `hw:"out"`
}

func (m *mux4) Update(c *hw.Circuit) {
	src := m.A
	if c.Get(m.Sel) {
		src = m.B
	}
	for i, pin := range src {
		c.Set(m.Out[i], c.Get(pin))
	}
}

func TestMakePart(t *testing.T) {
	m, err := hw.Chip("myMux4", "a[4], b[4], sel", "out[4]",
		hl.Mux("a=a[0], b=b[0], sel=sel, out=out[0]"),
		hl.Mux("a=a[1], b=b[1], sel=sel, out=out[1]"),
		hl.Mux("a=a[2], b=b[2], sel=sel, out=out[2]"),
		hl.Mux("a=a[3], b=b[3], sel=sel, out=out[3]"),
	)
	if err != nil {
		t.Fatal(err)
	}
	spec := hw.MakePart((*mux4)(nil))
	if spec.Name != "mux4" {
		t.Errorf("Name = %q, expected mux4", spec.Name)
	}
	hwtest.ComparePart(t, 4, m, spec.NewPart)
}

type named struct {
	RstN int `hw:"in,rst_n"`
	Q    int `hw:"out,q_out"`
	Skip int
}

func (*named) Update(*hw.Circuit) {}

func TestMakePart_pin_names(t *testing.T) {
	spec := hw.MakePart(&named{})
	if !reflect.DeepEqual(spec.Inputs, []string{"rst_n"}) {
		t.Errorf("Inputs = %v", spec.Inputs)
	}
	if !reflect.DeepEqual(spec.Outputs, []string{"q_out"}) {
		t.Errorf("Outputs = %v", spec.Outputs)
	}
}

type badTag struct {
	In int `hw:"inout"`
}

func (*badTag) Update(*hw.Circuit) {}

type badType struct {
	In bool `hw:"in"`
}

func (*badType) Update(*hw.Circuit) {}

type notStruct int

func (notStruct) Update(*hw.Circuit) {}

func TestMakePart_panics(t *testing.T) {
	data := []struct {
		name string
		u    hw.Updater
	}{
		{"tag", (*badTag)(nil)},
		{"type", (*badType)(nil)},
		{"kind", notStruct(0)},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("MakePart did not panic")
				}
			}()
			hw.MakePart(d.u)
		})
	}
}
