package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Format is the log output format.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// Config holds the level of every subsystem and the output format.
type Config struct {
	DefaultLevel    slog.Level
	SubsystemLevels map[string]slog.Level
	Format          Format
}

// LevelForSubsystem returns the configured level of subsystem.
func (c *Config) LevelForSubsystem(subsystem string) slog.Level {
	if level, ok := c.SubsystemLevels[subsystem]; ok {
		return level
	}
	return c.DefaultLevel
}

var (
	configMu sync.RWMutex
	config   *Config
)

// ConfigFromEnv returns the active configuration, reading it from the
// environment on first use:
//
//	PROXY_LOG_LEVEL=translate=debug,proxy=warn,info
//	PROXY_LOG_FORMAT=json
func ConfigFromEnv() *Config {
	configMu.RLock()
	cfg := config
	configMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	configMu.Lock()
	defer configMu.Unlock()
	if config == nil {
		config = ParseConfig(os.Getenv("PROXY_LOG_LEVEL"), os.Getenv("PROXY_LOG_FORMAT"))
	}
	return config
}

// ParseConfig parses a level string of the form
// "subsystem=level,subsystem=level,default" and a format name.
func ParseConfig(levels, format string) *Config {
	cfg := &Config{
		DefaultLevel:    slog.LevelInfo,
		SubsystemLevels: make(map[string]slog.Level),
		Format:          FormatText,
	}
	for _, part := range strings.Split(levels, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if subsystem, name, ok := strings.Cut(part, "="); ok {
			if level, ok := ParseLevel(strings.TrimSpace(name)); ok {
				cfg.SubsystemLevels[strings.TrimSpace(subsystem)] = level
			}
			continue
		}
		if level, ok := ParseLevel(part); ok {
			cfg.DefaultLevel = level
		}
	}
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		cfg.Format = FormatJSON
	}
	return cfg
}

// ParseLevel parses a level name.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
