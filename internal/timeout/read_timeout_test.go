package timeout

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualExecutor runs tasks on the test goroutine. Scheduled tasks fire only
// from advance, in due order, with the mock clock set to their due time.
type manualExecutor struct {
	clock *clock.Mock
	tasks []*manualTask
	seq   int
}

type manualTask struct {
	due       time.Time
	seq       int
	fn        func()
	cancelled bool
	ran       bool
}

func (t *manualTask) Cancel() bool {
	if t.ran || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

func newManualExecutor() *manualExecutor {
	return &manualExecutor{clock: clock.NewMock()}
}

func (e *manualExecutor) Execute(fn func()) { fn() }

func (e *manualExecutor) Schedule(delay time.Duration, fn func()) Task {
	e.seq++
	t := &manualTask{due: e.clock.Now().Add(delay), seq: e.seq, fn: fn}
	e.tasks = append(e.tasks, t)
	return t
}

// pending returns the scheduled tasks that have neither run nor been cancelled.
func (e *manualExecutor) pending() []*manualTask {
	var out []*manualTask
	for _, t := range e.tasks {
		if !t.ran && !t.cancelled {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].due.Equal(out[j].due) {
			return out[i].seq < out[j].seq
		}
		return out[i].due.Before(out[j].due)
	})
	return out
}

func (e *manualExecutor) advance(d time.Duration) {
	end := e.clock.Now().Add(d)
	for {
		p := e.pending()
		if len(p) == 0 || p[0].due.After(end) {
			break
		}
		t := p[0]
		e.clock.Set(t.due)
		t.ran = true
		t.fn()
	}
	e.clock.Set(end)
}

type fakeChannel struct {
	closed int
}

func (c *fakeChannel) Open() bool { return c.closed == 0 }

func (c *fakeChannel) Close() error {
	c.closed++
	if c.closed > 1 {
		return errors.New("already closed")
	}
	return nil
}

type harness struct {
	exec   *manualExecutor
	ch     *fakeChannel
	rt     *ReadTimeout
	errors []error
}

func newHarness(timeout time.Duration) *harness {
	h := &harness{exec: newManualExecutor(), ch: &fakeChannel{}}
	h.rt = New(timeout, h.exec,
		WithClock(h.exec.clock),
		WithErrorHandler(func(err error) { h.errors = append(h.errors, err) }),
	)
	return h
}

func TestReadTimeout_ClosesIdleConnection(t *testing.T) {
	h := newHarness(10 * time.Second)
	h.rt.Active(h.ch)
	require.Len(t, h.exec.pending(), 1)

	h.exec.advance(9999 * time.Millisecond)
	assert.True(t, h.ch.Open(), "closed before the timeout")
	assert.Empty(t, h.errors)

	h.exec.advance(time.Millisecond)
	assert.False(t, h.ch.Open())
	require.Len(t, h.errors, 1)
	assert.ErrorIs(t, h.errors[0], ErrReadTimeout)

	h.exec.advance(time.Minute)
	assert.Len(t, h.errors, 1)
	assert.Equal(t, 1, h.ch.closed)
	assert.Empty(t, h.exec.pending())
}

func TestReadTimeout_ReadMovesDeadline(t *testing.T) {
	h := newHarness(10 * time.Second)
	h.rt.Active(h.ch)

	h.exec.advance(9 * time.Second)
	h.rt.Read()

	h.exec.advance(time.Second)
	assert.True(t, h.ch.Open(), "closed at the first deadline")
	assert.Empty(t, h.errors)

	// The wake-up at 10s rescheduled itself for the remaining 9s.
	p := h.exec.pending()
	require.Len(t, p, 1)
	assert.Equal(t, time.Unix(0, 0).Add(19*time.Second), p[0].due)

	h.exec.advance(8999 * time.Millisecond)
	assert.True(t, h.ch.Open())

	h.exec.advance(time.Millisecond)
	assert.False(t, h.ch.Open())
	assert.Len(t, h.errors, 1)
}

func TestReadTimeout_RegularReadsKeepConnectionOpen(t *testing.T) {
	h := newHarness(10 * time.Second)
	h.rt.Active(h.ch)

	for i := 0; i < 50; i++ {
		h.exec.advance(3 * time.Second)
		h.rt.Read()
		require.Len(t, h.exec.pending(), 1, "exactly one outstanding wake-up")
	}
	assert.True(t, h.ch.Open())
	assert.Empty(t, h.errors)
}

func TestReadTimeout_InactiveCancels(t *testing.T) {
	h := newHarness(10 * time.Second)
	h.rt.Active(h.ch)
	h.exec.advance(5 * time.Second)

	h.rt.Inactive()
	assert.Empty(t, h.exec.pending())

	h.exec.advance(time.Hour)
	assert.Empty(t, h.errors)
	assert.True(t, h.ch.Open())
}

func TestReadTimeout_InactiveAfterWakeupQueued(t *testing.T) {
	h := newHarness(10 * time.Second)
	h.rt.Active(h.ch)

	// A wake-up that already started cannot be cancelled; it must see the
	// handler inactive and do nothing.
	task := h.exec.pending()[0]
	h.rt.Inactive()
	task.ran = true
	task.fn()

	assert.Empty(t, h.errors)
	assert.True(t, h.ch.Open())
}

func TestReadTimeout_ClosedChannelIgnored(t *testing.T) {
	h := newHarness(10 * time.Second)
	h.rt.Active(h.ch)
	require.NoError(t, h.ch.Close())

	h.exec.advance(time.Minute)
	assert.Empty(t, h.errors)
	assert.Empty(t, h.exec.pending())
}

func TestReadTimeout_ActiveTwice(t *testing.T) {
	h := newHarness(time.Second)
	h.rt.Active(h.ch)
	h.rt.Active(h.ch)

	assert.Len(t, h.exec.pending(), 1)
	assert.Equal(t, time.Second, h.rt.Timeout())
}

func TestReadTimeout_ReadNeverMovesBackwards(t *testing.T) {
	h := newHarness(10 * time.Second)
	h.rt.Active(h.ch)
	h.exec.advance(5 * time.Second)
	h.rt.Read()

	h.exec.clock.Set(time.Unix(0, 0).Add(time.Second))
	h.rt.Read()

	assert.Equal(t, time.Unix(0, 0).Add(5*time.Second).UnixNano(), h.rt.lastRead.Load())
}
