// Package app assembles the proxy with fx.
package app

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"gophertunnel_proxy/internal/catalog/pe"
	"gophertunnel_proxy/internal/config"
	"gophertunnel_proxy/internal/logger"
	"gophertunnel_proxy/internal/metrics"
	"gophertunnel_proxy/internal/proxy"
	"gophertunnel_proxy/internal/remap"
	"gophertunnel_proxy/internal/translate"
)

var log = logger.Logger("app")

// startTimeout covers resolving a Realm and pinging the upstream server.
const startTimeout = time.Minute

// Credentials carries the upstream token source. Source is nil when
// running offline.
type Credentials struct {
	Source oauth2.TokenSource
}

// New returns the application for cfg. Extra options are appended, which
// tests use to replace or populate components.
func New(cfg *config.Config, creds Credentials, opts ...fx.Option) *fx.App {
	configureLogging(cfg.Log)
	return fx.New(append([]fx.Option{Options(cfg, creds)}, opts...)...)
}

// Options is the full component graph.
func Options(cfg *config.Config, creds Credentials) fx.Option {
	return fx.Options(
		fx.Supply(cfg, creds),
		MetricsModule,
		CatalogModule,
		TranslateModule,
		ProxyModule,
		fx.StartTimeout(startTimeout),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: eventLogger(cfg.Debug)}
		}),
	)
}

func eventLogger(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func configureLogging(c config.LogConfig) {
	if c.Level == "" && c.Format == "" {
		return
	}
	logger.Configure(logger.ParseConfig(c.Level, c.Format))
}

// MetricsModule provides the collectors and serves them when configured.
var MetricsModule = fx.Module("metrics",
	fx.Provide(metrics.New),
	fx.Invoke(registerMetricsServer),
)

func registerMetricsServer(lc fx.Lifecycle, cfg *config.Config, m *metrics.Metrics) {
	if cfg.Metrics.Listen == "" {
		return
	}
	var srv *metrics.Server
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s, err := metrics.Listen(cfg.Metrics.Listen, cfg.Metrics.MaxConns, m)
			if err != nil {
				return err
			}
			srv = s
			go srv.Serve()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if srv == nil {
				return nil
			}
			return srv.Shutdown(ctx)
		},
	})
}

// CatalogModule builds the PE id tables.
var CatalogModule = fx.Module("catalog",
	fx.Provide(newTables),
)

func newTables(m *metrics.Metrics) (*pe.Tables, error) {
	tables, err := pe.Build(pe.WithObserver(func(o remap.Overwrite) {
		m.ObserveOverwrite(o)
		if o.Identical() {
			log.Debug("duplicate registration", "table", o.Table, "from", o.From, "to", o.Current)
			return
		}
		log.Warn("registration replaced",
			"table", o.Table, "from", o.From, "previous", o.Previous, "current", o.Current)
	}))
	if err != nil {
		return nil, err
	}
	simple, exact := tables.Item.Len()
	log.Info("id tables ready",
		"blocks", tables.Block.Registered(),
		"items", simple, "item_variants", exact,
		"living_entities", tables.LivingEntities.Len(),
		"object_entities", tables.ObjectEntities.Len())
	return tables, nil
}

// TranslateModule provides the client protocol.
var TranslateModule = fx.Module("translate",
	fx.Provide(translate.NewTranslator, newProtocol),
)

func newProtocol(cfg *config.Config, tr *translate.Translator) *translate.Protocol {
	p := translate.NewProtocol(cfg.ClientProtocol, cfg.ClientVersion, tr)
	p.FilterNoise = cfg.FilterNoise
	p.Debug = cfg.Debug
	return p
}

// ProxyModule runs the proxy for the lifetime of the application.
var ProxyModule = fx.Module("proxy",
	fx.Provide(newProxy),
	fx.Invoke(registerProxy),
)

func newProxy(cfg *config.Config, p *translate.Protocol, m *metrics.Metrics, creds Credentials) *proxy.Proxy {
	return proxy.New(cfg, p, m, creds.Source)
}

func registerProxy(lc fx.Lifecycle, p *proxy.Proxy) {
	lc.Append(fx.Hook{
		OnStart: p.Start,
		OnStop:  p.Stop,
	})
}
