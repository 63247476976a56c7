// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package sim provides simulated devices for the alucheck harness.
//
// A Device runs a Model on a Kernel timeline: the model is stepped once per
// unit of simulated time with the current state of all device lines.
//
package sim

import (
	"context"
	"sync"

	"github.com/db47h/alucheck"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Lines holds the state of every device line.
//
type Lines [alucheck.NumLines]uint8

// A Model is the behavior of a simulated device.
//
type Model interface {
	// Step advances the model by one unit of time. It reads input lines
	// and updates output lines in place.
	Step(l *Lines) error
	// Close releases resources held by the model.
	Close() error
}

// Device is a simulated alucheck.Device.
//
// The goroutine calling NewDevice owns the device: it is the main process on
// the device timeline and must call Close when done. Calling Advance from
// another goroutine is only valid within a process started by Fork.
//
type Device struct {
	mu    sync.Mutex
	lines Lines
	model Model
	k     *Kernel

	ctx    context.Context // cancelled by Close
	cancel context.CancelFunc
	procs  errgroup.Group
	once   sync.Once
}

// NewDevice returns a new Device running model m.
//
func NewDevice(m Model) *Device {
	d := &Device{model: m}
	d.k = NewKernel(d.step)
	d.ctx, d.cancel = context.WithCancel(context.Background())
	return d
}

func (d *Device) step(n alucheck.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := d.k.now
	for i := alucheck.Duration(0); i < n; i++ {
		if err := d.model.Step(&d.lines); err != nil {
			return errors.Wrapf(err, "device model failed at t=%d", t+i)
		}
	}
	return nil
}

// Set implements alucheck.Handle.
//
func (d *Device) Set(l alucheck.Line, v uint8) {
	d.mu.Lock()
	d.lines[l] = v
	d.mu.Unlock()
}

// Get implements alucheck.Handle.
//
func (d *Device) Get(l alucheck.Line) uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lines[l]
}

// Advance implements alucheck.Handle.
//
func (d *Device) Advance(ctx context.Context, n alucheck.Duration) error {
	return d.k.Wait(ctx, n)
}

// Now returns the current simulated time.
//
func (d *Device) Now() alucheck.Duration {
	return d.k.Now()
}

// Fork implements alucheck.Device. The process is also stopped by Close.
//
func (d *Device) Fork(ctx context.Context, fn func(ctx context.Context, h alucheck.Handle)) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(d.ctx, cancel)
	d.k.Enter()
	d.procs.Go(func() error {
		defer d.k.Exit()
		defer stop()
		defer cancel()
		fn(ctx, d)
		return nil
	})
}

// Close stops forked processes, waits for them to return and closes the
// model. The main process must not use the device afterwards.
//
func (d *Device) Close() error {
	err := errors.New("device already closed")
	d.once.Do(func() {
		d.cancel()
		d.k.Exit()
		err = d.procs.Wait()
		if cerr := d.model.Close(); err == nil {
			err = cerr
		}
	})
	return err
}
