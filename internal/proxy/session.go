package proxy

import (
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"gophertunnel_proxy/internal/eventloop"
	"gophertunnel_proxy/internal/metrics"
	"gophertunnel_proxy/internal/timeout"
)

// session relays one client. Its read timeout runs on the session's own
// event loop.
type session struct {
	addr    string
	client  *clientChannel
	loop    *eventloop.Loop
	guard   *timeout.ReadTimeout
	metrics *metrics.Metrics
}

func newSession(addr string, client *clientChannel, readTimeout time.Duration, m *metrics.Metrics, clk clock.Clock) *session {
	s := &session{
		addr:    addr,
		client:  client,
		loop:    eventloop.New(eventloop.WithClock(clk), eventloop.WithName(addr)),
		metrics: m,
	}
	s.guard = timeout.New(readTimeout, s.loop,
		timeout.WithClock(clk),
		timeout.WithErrorHandler(s.onError),
	)
	return s
}

// start arms the read timeout.
func (s *session) start() {
	s.metrics.ConnectionsTotal.Inc()
	s.metrics.ConnectionsActive.Inc()
	s.guard.Active(s.client)
}

// stop disarms the read timeout and closes the client. Safe to call after
// the timeout already closed it.
func (s *session) stop() {
	s.guard.Inactive()
	s.loop.Execute(s.loop.Close)
	if err := s.client.Close(); err != nil {
		log.Debug("close client", "addr", s.addr, "err", err)
	}
	s.metrics.ConnectionsActive.Dec()
}

func (s *session) onError(err error) {
	if errors.Is(err, timeout.ErrReadTimeout) {
		log.Info("client idle, closing", "addr", s.addr, "timeout", s.guard.Timeout())
		s.metrics.ReadTimeouts.Inc()
		s.client.markTimedOut()
		return
	}
	log.Warn("session error", "addr", s.addr, "err", err)
}

// timedOut reports whether the read timeout closed the client.
func (s *session) timedOut() bool {
	return s.client.timedOut.Load()
}

// relay copies packets both ways until either side fails, then closes both.
// The first failure is returned.
func (s *session) relay(server packetConn) error {
	server = &onceCloser{packetConn: server}

	var (
		once  sync.Once
		first error
	)
	stop := func(err error) {
		once.Do(func() { first = err })
		_ = s.client.Close()
		_ = server.Close()
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		stop(s.pump(s.client, server, "client", "server", s.guard.Read))
	}()
	go func() {
		defer wg.Done()
		stop(s.pump(server, s.client, "server", "client", nil))
	}()
	wg.Wait()
	return first
}

func (s *session) pump(src, dst packetConn, from, to string, onRead func()) error {
	for {
		pk, err := src.ReadPacket()
		if err != nil {
			return &relayError{side: from, err: err}
		}
		if onRead != nil {
			onRead()
		}
		if err := dst.WritePacket(pk); err != nil {
			return &relayError{side: to, err: err}
		}
	}
}

type relayError struct {
	side string
	err  error
}

func (e *relayError) Error() string { return e.side + ": " + e.err.Error() }

func (e *relayError) Unwrap() error { return e.err }
