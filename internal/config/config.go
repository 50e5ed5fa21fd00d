// Package config loads the proxy configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// Config is the proxy configuration file.
type Config struct {
	// Listen is the RakNet address clients connect to.
	Listen string `json:"listen"`
	// Remote is the upstream server, host:port or a Realm invite code.
	Remote string `json:"remote"`

	// ClientProtocol and ClientVersion identify the protocol accepted from
	// clients whose ids are remapped.
	ClientProtocol int32  `json:"client_protocol"`
	ClientVersion  string `json:"client_version"`

	// ReadTimeout closes a client connection that sent nothing for this long.
	ReadTimeout Duration `json:"read_timeout"`

	// TokenCache is where the Xbox Live token is kept between runs.
	TokenCache string `json:"token_cache"`
	// Offline disables Xbox Live authentication on both sides.
	Offline bool `json:"offline"`

	// FilterNoise drops high-volume packets the translator does not need
	// when debugging.
	FilterNoise bool `json:"filter_noise"`
	Debug       bool `json:"debug"`

	Log     LogConfig     `json:"log"`
	Metrics MetricsConfig `json:"metrics"`
}

// LogConfig selects log levels and format. Empty values leave the
// environment configuration in place.
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// MetricsConfig configures the Prometheus endpoint. An empty Listen
// disables it.
type MetricsConfig struct {
	Listen   string `json:"listen"`
	MaxConns int    `json:"max_conns"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Listen:         "0.0.0.0:19132",
		ClientProtocol: 113,
		ClientVersion:  "1.1.0",
		ReadTimeout:    Duration(30 * time.Second),
		TokenCache:     "./token_cache.json",
		Metrics: MetricsConfig{
			MaxConns: 8,
		},
	}
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	v := &validator{}
	v.require("listen", c.Listen)
	v.require("remote", c.Remote)
	v.require("client_version", c.ClientVersion)
	if c.ClientProtocol <= 0 {
		v.add("client_protocol", "must be positive")
	}
	if c.ClientProtocol == protocol.CurrentProtocol {
		v.add("client_protocol", fmt.Sprintf("must differ from the server protocol %d", protocol.CurrentProtocol))
	}
	if c.ReadTimeout.Duration() <= 0 {
		v.add("read_timeout", "must be positive")
	}
	if !c.Offline {
		v.require("token_cache", c.TokenCache)
	}
	if c.Metrics.MaxConns < 0 {
		v.add("metrics.max_conns", "must not be negative")
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		v.add("log.format", fmt.Sprintf("unknown format %q", c.Log.Format))
	}
	if len(v.errs) > 0 {
		return v.errs
	}
	return nil
}
