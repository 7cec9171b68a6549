// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package thinking

import (
	"context"
	"sync"
	"time"
)

// CompletionFunc is called once per step, from a timer goroutine, when the
// step at index completes.
type CompletionFunc func(index int)

// Run owns the timers of one thinking animation. Each send gets its own Run,
// and the Run is stopped when the send resolves or a new send begins.
//
// After Stop returns, onComplete is never called again. Stop waits for a
// callback that is already executing, so it must not be called while holding
// a lock that onComplete acquires.
type Run struct {
	mu      sync.Mutex
	steps   []Step
	timers  []*time.Timer
	pending int
	stopped bool

	// cbMu serializes callbacks against Stop.
	cbMu       sync.Mutex
	onComplete CompletionFunc

	done     chan struct{}
	doneOnce sync.Once
}

// Start schedules completion of every step and returns the running group.
// Cancelling ctx stops the run. steps is copied.
func Start(ctx context.Context, steps []Step, sched Schedule, onComplete CompletionFunc) *Run {
	r := &Run{
		steps:      CloneSteps(steps),
		pending:    len(steps),
		onComplete: onComplete,
		done:       make(chan struct{}),
	}

	if len(steps) == 0 {
		r.finish()
		return r
	}

	r.mu.Lock()
	for i, step := range r.steps {
		i := i
		r.timers = append(r.timers, time.AfterFunc(sched.Delay(i, step.Category), func() {
			r.complete(i)
		}))
	}
	r.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			r.Stop()
		case <-r.done:
		}
	}()

	return r
}

func (r *Run) complete(index int) {
	r.cbMu.Lock()
	defer r.cbMu.Unlock()

	r.mu.Lock()
	if r.stopped || r.steps[index].Completed {
		r.mu.Unlock()
		return
	}
	r.steps[index].Completed = true
	r.pending--
	last := r.pending == 0
	r.mu.Unlock()

	if r.onComplete != nil {
		r.onComplete(index)
	}
	if last {
		r.finish()
	}
}

// Stop cancels every pending timer. It is safe to call more than once.
func (r *Run) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	for _, t := range r.timers {
		t.Stop()
	}
	r.mu.Unlock()

	// Wait out a callback that started before stopped was set.
	r.cbMu.Lock()
	r.cbMu.Unlock()
	r.finish()
}

func (r *Run) finish() {
	r.doneOnce.Do(func() { close(r.done) })
}

// Done is closed when every step has completed or the run is stopped.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Stopped reports whether Stop has been called.
func (r *Run) Stopped() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopped
}

// Steps returns a snapshot of the run's steps.
func (r *Run) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	return CloneSteps(r.steps)
}
