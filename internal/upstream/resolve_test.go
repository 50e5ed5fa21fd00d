package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestIsRealmCode(t *testing.T) {
	assert.False(t, IsRealmCode("play.example.net:19132"))
	assert.False(t, IsRealmCode("[::1]:19132"))
	assert.True(t, IsRealmCode("AbCdEfGhIjK"))
}

func TestResolve_Address(t *testing.T) {
	addr, err := Resolve(context.Background(), "127.0.0.1:19132", nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:19132", addr)

	_, err = Resolve(context.Background(), "realmcode", nil)
	require.Error(t, err)
}

func TestAcceptInvite(t *testing.T) {
	var gotPath, gotAuth, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "xbl", TokenType: "Bearer"})
	require.NoError(t, AcceptInvite(context.Background(), srv.Client(), srv.URL, "code123", src))

	assert.Equal(t, "/invites/v1/link/accept/code123", gotPath)
	assert.Equal(t, "Bearer xbl", gotAuth)
	assert.Equal(t, "MCPE/UWP", gotAgent)
}

func TestAcceptInvite_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "xbl"})
	err := AcceptInvite(context.Background(), srv.Client(), srv.URL, "code", src)
	require.EqualError(t, err, "HTTP Error: 403")
}
