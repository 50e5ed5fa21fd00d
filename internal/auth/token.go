// Package auth obtains the Xbox Live token the proxy uses upstream.
package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sandertv/gophertunnel/minecraft/auth"
	"golang.org/x/oauth2"

	"gophertunnel_proxy/internal/logger"
)

var log = logger.Logger("auth")

// RequestFunc obtains a new live token, normally through the device code flow.
type RequestFunc func() (*oauth2.Token, error)

// TokenSource returns a refreshing token source. A token cached at
// cachePath is reused; otherwise a new one is requested and cached.
func TokenSource(cachePath string) (oauth2.TokenSource, error) {
	return tokenSource(cachePath, auth.RequestLiveToken)
}

func tokenSource(cachePath string, request RequestFunc) (oauth2.TokenSource, error) {
	if token, err := ReadCache(cachePath); err == nil {
		log.Debug("using cached token", "path", cachePath)
		return auth.RefreshTokenSource(token), nil
	} else if !os.IsNotExist(err) {
		log.Warn("ignoring token cache", "path", cachePath, "err", err)
	}

	token, err := request()
	if err != nil {
		return nil, fmt.Errorf("error getting live token: %w", err)
	}
	if err := WriteCache(cachePath, token); err != nil {
		return nil, err
	}
	return auth.RefreshTokenSource(token), nil
}

// ReadCache reads a token written by WriteCache.
func ReadCache(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("error parsing token cache: %w", err)
	}
	return &token, nil
}

// WriteCache stores token at path, readable by the owner only.
func WriteCache(path string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("error marshaling token: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing token cache: %w", err)
	}
	return nil
}
