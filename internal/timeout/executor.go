package timeout

import "time"

// Executor runs the callbacks of one connection, one at a time.
type Executor interface {
	// Execute runs fn on the executor.
	Execute(fn func())
	// Schedule runs fn on the executor after delay.
	Schedule(delay time.Duration, fn func()) Task
}

// Task is a scheduled callback.
type Task interface {
	// Cancel prevents the callback from running. It returns false if the
	// callback already ran or started.
	Cancel() bool
}

// Channel is the connection guarded by a ReadTimeout.
type Channel interface {
	Open() bool
	Close() error
}
