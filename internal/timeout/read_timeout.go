// Package timeout closes connections that stop sending data.
package timeout

import (
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"

	"gophertunnel_proxy/internal/logger"
)

var log = logger.Logger("timeout")

// ReadTimeout closes its channel when nothing was read for the configured
// duration.
//
// Active, Inactive and the wake-ups run on the executor. Read may be called
// from any goroutine.
//
// One wake-up is outstanding while active. When it fires early because data
// was read in the meantime, it is scheduled again for the remaining time
// instead of ticking at a fixed period.
type ReadTimeout struct {
	timeout time.Duration
	exec    Executor
	clock   clock.Clock
	onError func(error)

	lastRead atomic.Int64

	// Owned by the executor.
	ch     Channel
	task   Task
	active bool
}

// Option configures a ReadTimeout.
type Option func(*ReadTimeout)

// WithClock sets the clock used for read timestamps.
func WithClock(c clock.Clock) Option {
	return func(r *ReadTimeout) {
		r.clock = c
	}
}

// WithErrorHandler sets the function receiving ErrReadTimeout before the
// channel is closed.
func WithErrorHandler(fn func(error)) Option {
	return func(r *ReadTimeout) {
		r.onError = fn
	}
}

// New returns an inactive ReadTimeout.
func New(timeout time.Duration, exec Executor, opts ...Option) *ReadTimeout {
	r := &ReadTimeout{
		timeout: timeout,
		exec:    exec,
		clock:   clock.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Timeout returns the configured duration.
func (r *ReadTimeout) Timeout() time.Duration { return r.timeout }

// Active starts guarding ch.
func (r *ReadTimeout) Active(ch Channel) {
	r.exec.Execute(func() {
		if r.active {
			return
		}
		r.ch = ch
		r.active = true
		r.lastRead.Store(r.clock.Now().UnixNano())
		r.task = r.exec.Schedule(r.timeout, r.wake)
	})
}

// Read records that data arrived. It does not reschedule the wake-up.
func (r *ReadTimeout) Read() {
	now := r.clock.Now().UnixNano()
	for {
		last := r.lastRead.Load()
		if now <= last || r.lastRead.CompareAndSwap(last, now) {
			return
		}
	}
}

// Inactive stops guarding the channel and cancels the pending wake-up.
func (r *ReadTimeout) Inactive() {
	r.exec.Execute(func() {
		r.active = false
		r.ch = nil
		if r.task != nil {
			r.task.Cancel()
			r.task = nil
		}
	})
}

func (r *ReadTimeout) wake() {
	if !r.active || !r.ch.Open() {
		return
	}
	idle := r.clock.Now().Sub(time.Unix(0, r.lastRead.Load()))
	remaining := r.timeout - idle
	if remaining > 0 {
		r.task = r.exec.Schedule(remaining, r.wake)
		return
	}

	ch := r.ch
	r.task = nil
	r.active = false
	r.ch = nil

	log.Debug("read timed out", "timeout", r.timeout, "idle", idle)
	if r.onError != nil {
		r.onError(ErrReadTimeout)
	}
	if err := ch.Close(); err != nil {
		log.Debug("close after read timeout", "err", err)
	}
}
