package proxy

import (
	"sync"
	"sync/atomic"

	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// packetConn is the part of *minecraft.Conn the relay uses.
type packetConn interface {
	ReadPacket() (packet.Packet, error)
	WritePacket(pk packet.Packet) error
	Close() error
}

const timeoutMessage = "Timed out"

// clientChannel is the client side of a session as seen by the read
// timeout. Closing it more than once is a no-op.
type clientChannel struct {
	packetConn
	disconnect func(message string) error

	once     sync.Once
	closed   atomic.Bool
	timedOut atomic.Bool
	err      error
}

func newClientChannel(conn packetConn, disconnect func(message string) error) *clientChannel {
	return &clientChannel{packetConn: conn, disconnect: disconnect}
}

func (c *clientChannel) Open() bool {
	return !c.closed.Load()
}

// Close closes the connection, telling the client it timed out when the
// read timeout fired first.
func (c *clientChannel) Close() error {
	c.once.Do(func() {
		c.closed.Store(true)
		if c.timedOut.Load() && c.disconnect != nil {
			c.err = c.disconnect(timeoutMessage)
			return
		}
		c.err = c.packetConn.Close()
	})
	return c.err
}

func (c *clientChannel) markTimedOut() {
	c.timedOut.Store(true)
}

// onceCloser makes Close of the server connection idempotent.
type onceCloser struct {
	packetConn
	once sync.Once
	err  error
}

func (c *onceCloser) Close() error {
	c.once.Do(func() {
		c.err = c.packetConn.Close()
	})
	return c.err
}
