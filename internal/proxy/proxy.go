// Package proxy relays Bedrock clients to an upstream server, translating
// ids for the clients whose protocol it accepts.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sandertv/gophertunnel/minecraft"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	"gophertunnel_proxy/internal/config"
	"gophertunnel_proxy/internal/logger"
	"gophertunnel_proxy/internal/metrics"
	"gophertunnel_proxy/internal/status"
	"gophertunnel_proxy/internal/translate"
	"gophertunnel_proxy/internal/upstream"
)

var log = logger.Logger("proxy")

const pingTimeout = 10 * time.Second

// Proxy accepts clients and relays each to the upstream server.
type Proxy struct {
	cfg      *config.Config
	protocol *translate.Protocol
	metrics  *metrics.Metrics
	src      oauth2.TokenSource
	clock    clock.Clock

	remote   string
	listener *minecraft.Listener

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	sessions map[*session]struct{}
}

// New returns a proxy. src may be nil when cfg.Offline is set.
func New(cfg *config.Config, proto *translate.Protocol, m *metrics.Metrics, src oauth2.TokenSource) *Proxy {
	return &Proxy{
		cfg:      cfg,
		protocol: proto,
		metrics:  m,
		src:      src,
		clock:    clock.New(),
		sessions: make(map[*session]struct{}),
	}
}

// Start resolves the upstream server and begins accepting clients.
func (p *Proxy) Start(ctx context.Context) error {
	remote, err := upstream.Resolve(ctx, p.cfg.Remote, p.src)
	if err != nil {
		return fmt.Errorf("resolve upstream: %w", err)
	}
	p.remote = remote

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	start := time.Now()
	pong, err := status.Ping(pingCtx, remote)
	cancel()
	if err != nil {
		log.Warn("upstream did not answer ping", "address", remote, "err", err)
	} else {
		log.Info("upstream",
			"address", remote,
			"edition", pong.Edition,
			"motd", pong.MOTD,
			"protocol", pong.ProtocolID,
			"version", pong.ProtocolVersion,
			"players", fmt.Sprintf("%d/%d", pong.PlayerCount, pong.MaxPlayerCount),
			"ping", time.Since(start))
	}

	lc := minecraft.ListenConfig{
		AuthenticationDisabled: p.cfg.Offline,
		AcceptedProtocols:      []minecraft.Protocol{p.protocol},
	}
	if provider, err := minecraft.NewForeignStatusProvider(remote); err != nil {
		log.Warn("using local status", "err", err)
	} else {
		lc.StatusProvider = provider
	}
	listener, err := lc.Listen("raknet", p.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", p.cfg.Listen, err)
	}
	p.listener = listener
	p.ctx, p.cancel = context.WithCancel(context.Background())

	log.Info("listening",
		"address", listener.Addr(),
		"protocol", p.protocol.ID(),
		"version", p.protocol.Ver(),
		"read_timeout", p.cfg.ReadTimeout.Duration())

	p.wg.Add(1)
	go p.accept()
	return nil
}

// Stop closes the listener and every session, then waits for them.
func (p *Proxy) Stop(ctx context.Context) error {
	if p.listener == nil {
		return nil
	}
	p.cancel()
	err := p.listener.Close()

	p.mu.Lock()
	for s := range p.sessions {
		_ = s.client.Close()
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Remote returns the resolved upstream address.
func (p *Proxy) Remote() string {
	return p.remote
}

func (p *Proxy) accept() {
	defer p.wg.Done()
	for {
		c, err := p.listener.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) && p.ctx.Err() == nil {
				log.Error("accept", "err", err)
			}
			return
		}
		conn := c.(*minecraft.Conn)
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.handle(conn)
		}()
	}
}

func (p *Proxy) handle(conn *minecraft.Conn) {
	addr := conn.RemoteAddr().String()
	client := newClientChannel(conn, func(message string) error {
		return p.listener.Disconnect(conn, message)
	})
	s := newSession(addr, client, p.cfg.ReadTimeout.Duration(), p.metrics, p.clock)
	p.track(s)
	defer p.untrack(s)

	s.start()
	defer s.stop()

	identity := conn.IdentityData()
	log.Info("client connected", "addr", addr, "name", identity.DisplayName, "version", conn.ClientData().GameVersion)

	dialer := minecraft.Dialer{
		TokenSource:                p.src,
		ClientData:                 conn.ClientData(),
		DisconnectOnUnknownPackets: false,
		DisconnectOnInvalidPackets: false,
	}
	if p.src == nil {
		dialer.IdentityData = identity
	}
	server, err := dialer.DialContext(p.ctx, "raknet", p.remote)
	if err != nil {
		p.fail(s, "dial", err)
		_ = p.listener.Disconnect(conn, "Could not reach the server")
		return
	}
	defer server.Close()

	if err := spawn(conn, server); err != nil {
		p.fail(s, "spawn", err)
		return
	}
	log.Info("client spawned", "addr", addr, "name", identity.DisplayName)

	err = s.relay(server)
	switch {
	case s.timedOut():
		log.Info("client timed out", "addr", addr, "name", identity.DisplayName)
	case err != nil && p.ctx.Err() == nil:
		log.Info("client disconnected", "addr", addr, "name", identity.DisplayName, "reason", err)
	}
}

// spawn starts the game for the client with the upstream world while the
// upstream connection spawns.
func spawn(client, server *minecraft.Conn) error {
	var g errgroup.Group
	g.Go(func() error {
		return client.StartGame(server.GameData())
	})
	g.Go(server.DoSpawn)
	return g.Wait()
}

func (p *Proxy) fail(s *session, stage string, err error) {
	p.metrics.SessionErrors.WithLabelValues(stage).Inc()
	log.Warn("session failed", "addr", s.addr, "stage", stage, "err", err)
}

func (p *Proxy) track(s *session) {
	p.mu.Lock()
	p.sessions[s] = struct{}{}
	p.mu.Unlock()
}

func (p *Proxy) untrack(s *session) {
	p.mu.Lock()
	delete(p.sessions, s)
	p.mu.Unlock()
}

// Sessions returns the number of clients currently relayed.
func (p *Proxy) Sessions() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sessions)
}
