// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alucheck

import (
	"context"
	"encoding/hex"
	"math/rand"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// State is the state of a Sequencer.
//
type State int

// Sequencer states, in run order.
//
const (
	Init State = iota
	Resetting
	DirectedSweepPhase
	RandomSweepPhase
	DirectedAssertPhase
	EncAssertPhase
	Done
)

var stateNames = [...]string{
	"INIT",
	"RESETTING",
	"DIRECTED_SWEEP",
	"RANDOM_SWEEP",
	"DIRECTED_ASSERT",
	"ENC_ASSERT",
	"DONE",
}

func (s State) String() string {
	if s >= Init && s <= Done {
		return stateNames[s]
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Config holds the timing and stimulus parameters of a run.
//
type Config struct {
	Settle      Duration // wait between applying a vector and sampling
	ResetSettle Duration // time spent in reset
	HalfPeriod  Duration // clock half period
	RandomCount int      // random sweep length
}

// DefaultSeed seeds the reference random sweep.
//
const DefaultSeed = 42

// DefaultConfig returns the reference timing and stimulus parameters.
//
func DefaultConfig() Config {
	return Config{
		Settle:      50,
		ResetSettle: 50,
		HalfPeriod:  10,
		RandomCount: 900,
	}
}

// A Sequencer runs the test phases against a device.
//
type Sequencer struct {
	dev   Device
	cfg   Config
	rnd   *rand.Rand
	rep   Reporter
	clock Clock
	state State
	sum   Summary
}

// NewSequencer returns a new Sequencer for dev. The random sweep draws from
// rnd, which the caller seeds: rand.New(rand.NewSource(DefaultSeed)) yields the
// reference sweep. rep may be nil.
//
func NewSequencer(dev Device, cfg Config, rnd *rand.Rand, rep Reporter) *Sequencer {
	if rep == nil {
		rep = nopReporter{}
	}
	return &Sequencer{
		dev:   dev,
		cfg:   cfg,
		rnd:   rnd,
		rep:   rep,
		clock: Clock{HalfPeriod: cfg.HalfPeriod},
	}
}

// State returns the current state of s. After a failed Run, it is the state
// in which the failure happened.
//
func (s *Sequencer) State() State { return s.state }

func (s *Sequencer) enter(st State) {
	s.state = st
	s.rep.StateChanged(st)
}

// Run starts the clock, resets the device and runs all phases. It returns at
// the first error: a *MismatchError for a failed check, an *EncodingError for
// an invalid vector, or the device error as returned by the device.
//
// A Sequencer runs only once.
//
func (s *Sequencer) Run(ctx context.Context) (Summary, error) {
	if s.state != Init {
		return Summary{}, errors.Errorf("sequencer already ran (state %s)", s.state)
	}
	if s.cfg.RandomCount < 0 {
		return Summary{}, errors.Errorf("invalid random sweep length %d", s.cfg.RandomCount)
	}
	digest := sha3.New256()
	codec := Codec{H: s.dev, Settle: s.cfg.Settle, Tap: digest}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := s.clock.Start(ctx, s.dev); err != nil {
		return Summary{}, err
	}

	s.enter(Resetting)
	if err := Reset(ctx, s.dev, s.cfg.ResetSettle); err != nil {
		return s.sum, err
	}

	phases := []struct {
		state State
		count *int
		gen   func() []Vector
	}{
		{DirectedSweepPhase, &s.sum.Directed, DirectedSweep},
		{RandomSweepPhase, &s.sum.Random, func() []Vector { return RandomSweep(s.rnd, s.cfg.RandomCount) }},
		{DirectedAssertPhase, &s.sum.Asserted, DirectedAssertions},
		{EncAssertPhase, &s.sum.Encrypted, EncAssertions},
	}
	for _, p := range phases {
		s.enter(p.state)
		vs := p.gen()
		if err := Validate(vs); err != nil {
			return s.sum, errors.Wrap(err, p.state.String())
		}
		for _, v := range vs {
			if err := codec.Apply(v); err != nil {
				return s.sum, err
			}
			o, err := codec.Sample(ctx)
			if err != nil {
				return s.sum, err
			}
			*p.count++
			s.rep.Observed(v, o)
			if v.Kind != Sweep && o.Result != v.Expected {
				return s.sum, &MismatchError{Vector: v, Observed: o.Result}
			}
		}
	}

	s.sum.Fingerprint = hex.EncodeToString(digest.Sum(nil))
	s.enter(Done)
	s.rep.Completed(s.sum)
	return s.sum, nil
}
