// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sim

import (
	"container/heap"
	"context"
	"sync"

	"github.com/db47h/alucheck"
)

// A Kernel is a cooperative simulated timeline shared by a set of processes.
//
// Simulated time only moves forward when every live process is blocked in
// Wait. It then jumps to the earliest wake up time, calls the advance
// function with the elapsed time and wakes all processes due at that time.
// As a consequence, everything a process does between two calls to Wait
// happens at a single point of simulated time.
//
type Kernel struct {
	mu      sync.Mutex
	now     alucheck.Duration
	running int // live processes not blocked in Wait
	seq     uint64
	queue   waitQueue
	advance func(d alucheck.Duration) error
	err     error
}

// NewKernel returns a new Kernel. advance is called with the kernel lock held
// every time simulated time moves forward. If it returns an error, the kernel
// stops and all pending and future calls to Wait return that error.
//
// The calling goroutine is registered as the first live process.
//
func NewKernel(advance func(d alucheck.Duration) error) *Kernel {
	return &Kernel{running: 1, advance: advance}
}

// Now returns the current simulated time.
//
func (k *Kernel) Now() alucheck.Duration {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.now
}

// Enter registers a new live process. It must be called before the process
// goroutine is started.
//
func (k *Kernel) Enter() {
	k.mu.Lock()
	k.running++
	k.mu.Unlock()
}

// Exit unregisters a live process.
//
func (k *Kernel) Exit() {
	k.mu.Lock()
	k.running--
	k.schedule()
	k.mu.Unlock()
}

// Wait blocks the calling process for d units of simulated time.
//
// A process blocked in Wait is woken up at its due time even if ctx is done
// in the meantime; Wait then returns ctx.Err().
//
func (k *Kernel) Wait(ctx context.Context, d alucheck.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	k.mu.Lock()
	if k.err != nil {
		k.mu.Unlock()
		return k.err
	}
	w := &waiter{at: k.now + d, seq: k.seq, wake: make(chan struct{})}
	k.seq++
	heap.Push(&k.queue, w)
	k.running--
	k.schedule()
	k.mu.Unlock()

	<-w.wake

	k.mu.Lock()
	err := k.err
	k.mu.Unlock()
	if err != nil {
		return err
	}
	return ctx.Err()
}

// schedule moves time forward if all processes are waiting. Once the kernel
// has failed, all waiting processes are woken up. k.mu must be held.
func (k *Kernel) schedule() {
	if k.running > 0 || len(k.queue) == 0 {
		return
	}
	at := k.queue[0].at
	if at > k.now {
		if k.err == nil && k.advance != nil {
			k.err = k.advance(at - k.now)
		}
		k.now = at
	}
	for len(k.queue) > 0 && (k.err != nil || k.queue[0].at == at) {
		w := heap.Pop(&k.queue).(*waiter)
		k.running++
		close(w.wake)
	}
}

type waiter struct {
	at   alucheck.Duration
	seq  uint64
	wake chan struct{}
}

// waitQueue is a min heap of waiters ordered by wake up time then arrival.
type waitQueue []*waiter

func (q waitQueue) Len() int { return len(q) }
func (q waitQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}
func (q waitQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *waitQueue) Push(x interface{}) { *q = append(*q, x.(*waiter)) }
func (q *waitQueue) Pop() interface{} {
	old := *q
	n := len(old)
	w := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return w
}
