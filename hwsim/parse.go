// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Connection connects pins of a part (PP) to wires of its container (CP).
// Bus ranges are already expanded.
//
type Connection struct {
	PP []string // part pins
	CP []string // container pins
}

// BusPinName returns the name of pin i of bus.
//
func BusPinName(bus string, i int) string {
	return bus + "[" + strconv.Itoa(i) + "]"
}

// IO expands an I/O specification string like "a, b, bus[2]" to
// []string{"a", "b", "bus[0]", "bus[1]"}. It panics on syntax errors and is
// intended for PartSpec literals.
//
func IO(spec string) []string {
	pins, err := ParseIOSpec(spec)
	if err != nil {
		panic(err)
	}
	return pins
}

// ParseIOSpec parses the pin specification string and returns individual pin
// names, also expanding bus declarations to individual pin names.
// For example:
//
//	ParseIOSpec("in[2], sel") // returns []string{"in[0]", "in[1]", "sel"}
//
func ParseIOSpec(spec string) ([]string, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(spec, ",") {
		r, err := parseRef(f)
		if err != nil {
			return nil, errors.Wrapf(err, "in %q", spec)
		}
		if r.ranged {
			return nil, errors.Errorf("in %q: bus range not allowed in pin declaration %q", spec, r.name)
		}
		var pins []string
		if r.indexed {
			if r.lo == 0 {
				return nil, errors.Errorf("in %q: zero sized bus %q", spec, r.name)
			}
			for i := 0; i < r.lo; i++ {
				pins = append(pins, BusPinName(r.name, i))
			}
		} else {
			pins = []string{r.name}
		}
		for _, p := range pins {
			if seen[p] {
				return nil, errors.Errorf("in %q: duplicate pin %q", spec, p)
			}
			seen[p] = true
		}
		out = append(out, pins...)
	}
	return out, nil
}

// ParseConnections parses a connection string like
//
//	"a=x, b[0..3]=bus[4..7], out=y[2]"
//
// Pin ranges are expanded in the order they are written, so "x[3..0]" lists
// pins from 3 down to 0.
//
func ParseConnections(c string) ([]Connection, error) {
	if strings.TrimSpace(c) == "" {
		return nil, nil
	}
	var conns []Connection
	for _, f := range strings.Split(c, ",") {
		i := strings.IndexRune(f, '=')
		if i < 0 {
			return nil, errors.Errorf("in %q: missing '=' in %q", c, strings.TrimSpace(f))
		}
		pp, err := parseRef(f[:i])
		if err != nil {
			return nil, errors.Wrapf(err, "in %q", c)
		}
		cp, err := parseRef(f[i+1:])
		if err != nil {
			return nil, errors.Wrapf(err, "in %q", c)
		}
		conns = append(conns, Connection{PP: pp.expand(), CP: cp.expand()})
	}
	return conns, nil
}

// pinRef is a parsed pin reference: name, name[lo] or name[lo..hi].
type pinRef struct {
	name    string
	lo, hi  int
	indexed bool
	ranged  bool
}

func (r pinRef) expand() []string {
	switch {
	case r.ranged:
		step := 1
		if r.hi < r.lo {
			step = -1
		}
		pins := make([]string, 0, (r.hi-r.lo)*step+1)
		for i := r.lo; ; i += step {
			pins = append(pins, BusPinName(r.name, i))
			if i == r.hi {
				break
			}
		}
		return pins
	case r.indexed:
		return []string{BusPinName(r.name, r.lo)}
	}
	return []string{r.name}
}

func parseRef(s string) (r pinRef, err error) {
	s = strings.TrimSpace(s)
	i := strings.IndexRune(s, '[')
	if i < 0 {
		r.name = s
		return r, checkIdent(s)
	}
	r.name = strings.TrimSpace(s[:i])
	if err = checkIdent(r.name); err != nil {
		return r, err
	}
	if !strings.HasSuffix(s, "]") {
		return r, errors.Errorf("no terminating ] in %q", s)
	}
	idx := strings.TrimSpace(s[i+1 : len(s)-1])
	r.indexed = true
	if j := strings.Index(idx, ".."); j >= 0 {
		r.ranged = true
		if r.lo, err = parseIndex(idx[:j]); err != nil {
			return r, err
		}
		r.hi, err = parseIndex(idx[j+2:])
		return r, err
	}
	r.lo, err = parseIndex(idx)
	return r, err
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, errors.Errorf("invalid bus index %q", s)
	}
	return n, nil
}

func checkIdent(s string) error {
	if s == "" {
		return errors.New("empty pin name")
	}
	for i, r := range s {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return errors.Errorf("invalid pin name %q", s)
		}
	}
	return nil
}
