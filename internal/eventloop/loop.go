// Package eventloop runs the callbacks of one connection on a single
// goroutine.
package eventloop

import (
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"gophertunnel_proxy/internal/logger"
	"gophertunnel_proxy/internal/timeout"
)

var log = logger.Logger("eventloop")

// Loop executes submitted functions in order, one at a time. Delayed
// functions are queued when their timer fires.
type Loop struct {
	name  string
	clock clock.Clock

	mu     sync.Mutex
	queue  []func()
	closed bool

	wake chan struct{}
	done chan struct{}
	exit chan struct{}
}

var _ timeout.Executor = (*Loop)(nil)

// Option configures a Loop.
type Option func(*Loop)

// WithClock sets the clock used for Schedule.
func WithClock(c clock.Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

// WithName names the loop in logs.
func WithName(name string) Option {
	return func(l *Loop) {
		l.name = name
	}
}

// New starts a loop.
func New(opts ...Option) *Loop {
	l := &Loop{
		name:  "loop",
		clock: clock.New(),
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
		exit:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	go l.run()
	return l
}

// Execute queues fn. It never blocks, also when called from the loop.
// Functions submitted after Close are dropped.
func (l *Loop) Execute(fn func()) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Schedule queues fn after delay.
func (l *Loop) Schedule(delay time.Duration, fn func()) timeout.Task {
	return &task{timer: l.clock.AfterFunc(delay, func() { l.Execute(fn) })}
}

// Close stops the loop after the function currently running. Queued
// functions are discarded. Close does not wait when called from the loop.
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.queue = nil
	l.mu.Unlock()
	close(l.done)
}

// Done is closed once the loop goroutine has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.exit
}

func (l *Loop) run() {
	defer close(l.exit)
	for {
		select {
		case <-l.done:
			return
		case <-l.wake:
		}
		for {
			l.mu.Lock()
			batch := l.queue
			l.queue = nil
			closed := l.closed
			l.mu.Unlock()
			if closed || len(batch) == 0 {
				break
			}
			for _, fn := range batch {
				l.call(fn)
			}
		}
	}
}

func (l *Loop) call(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("task panicked", "loop", l.name, "panic", fmt.Sprint(r))
		}
	}()
	fn()
}

type task struct {
	timer *clock.Timer
}

func (t *task) Cancel() bool {
	return t.timer.Stop()
}
