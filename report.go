// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alucheck

import (
	"log"
)

// A Reporter receives the progress of a Sequencer run.
//
type Reporter interface {
	// StateChanged is called on every state transition.
	StateChanged(s State)
	// Observed is called for every sampled vector, before it is checked.
	Observed(v Vector, o Observation)
	// Completed is called once all phases passed.
	Completed(s Summary)
}

// Summary sums up a successful run.
//
type Summary struct {
	Directed  int // directed sweep vectors
	Random    int // random sweep vectors
	Asserted  int // directed assertions
	Encrypted int // ENC assertions
	// Fingerprint is the hex encoded SHA3-256 of the (ui_in, uio_in) byte
	// pairs applied during the run, in order. Two runs with the same seed
	// have the same fingerprint.
	Fingerprint string
}

// Total returns the number of vectors applied.
//
func (s Summary) Total() int {
	return s.Directed + s.Random + s.Asserted + s.Encrypted
}

// LogReporter writes status lines to a log.Logger:
//
//	<label>: result = <uo_out>, uio_out = <uio_out>
//
// with values in binary.
//
type LogReporter struct {
	Log    *log.Logger
	Quiet  bool // no per vector lines
	States bool // log state transitions
}

// StateChanged implements Reporter.
//
func (r *LogReporter) StateChanged(s State) {
	if r.States {
		r.Log.Printf("-- %s", s)
	}
}

// Observed implements Reporter.
//
func (r *LogReporter) Observed(v Vector, o Observation) {
	if !r.Quiet {
		r.Log.Printf("%s: result = %08b, uio_out = %08b", v.Label, o.Result, o.Status)
	}
}

// Completed implements Reporter.
//
func (r *LogReporter) Completed(s Summary) {
	r.Log.Printf("All %d test cases completed successfully! (stimulus %s)", s.Total(), s.Fingerprint)
}

type nopReporter struct{}

func (nopReporter) StateChanged(State)           {}
func (nopReporter) Observed(Vector, Observation) {}
func (nopReporter) Completed(Summary)            {}
