package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "0.0.0.0:19132", cfg.Listen)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout.Duration())

	// Remote has no default.
	var errs ValidationErrors
	require.True(t, errors.As(cfg.Validate(), &errs))
	assert.True(t, errs.Has("remote"))
	assert.Len(t, errs, 1)

	cfg.Remote = "play.example.net:19132"
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"remote": "abcdefg",
		"read_timeout": "10s",
		"offline": true,
		"token_cache": "",
		"metrics": {"listen": "127.0.0.1:9100"},
		"log": {"level": "translate=debug,info", "format": "json"}
	}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "abcdefg", cfg.Remote)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout.Duration())
	assert.Equal(t, "0.0.0.0:19132", cfg.Listen, "defaults are kept")
	assert.Equal(t, 8, cfg.Metrics.MaxConns)
	assert.Equal(t, "127.0.0.1:9100", cfg.Metrics.Listen)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"read_timeout": "soon"}`), 0o600))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Remote = "host:1"
	cfg.ClientProtocol = protocol.CurrentProtocol
	cfg.ReadTimeout = 0
	cfg.TokenCache = " "
	cfg.Metrics.MaxConns = -1
	cfg.Log.Format = "xml"

	var errs ValidationErrors
	require.True(t, errors.As(cfg.Validate(), &errs))
	for _, field := range []string{"client_protocol", "read_timeout", "token_cache", "metrics.max_conns", "log.format"} {
		assert.True(t, errs.Has(field), field)
	}
	assert.Contains(t, errs.Error(), "config [read_timeout]: must be positive")
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"1m30s"`)))
	assert.Equal(t, 90*time.Second, d.Duration())

	require.NoError(t, d.UnmarshalJSON([]byte(`1000`)))
	assert.Equal(t, time.Microsecond, d.Duration())

	require.Error(t, d.UnmarshalJSON([]byte(`true`)))

	out, err := Duration(2 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(out))
}
