// Package upstream resolves the address of the server the proxy relays to.
package upstream

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/sandertv/gophertunnel/minecraft/realms"
	"golang.org/x/oauth2"

	"gophertunnel_proxy/internal/logger"
)

var log = logger.Logger("upstream")

var inviteHeaders = map[string]string{
	"Accept":           "*/*",
	"charset":          "utf-8",
	"client-ref":       "1dbf893ab5ebfb96af356e196cf516e0e4596fb0",
	"client-version":   "1.21.50",
	"user-agent":       "MCPE/UWP",
	"x-clientplatform": "Windows",
	"Accept-Language":  "en-CA",
	"Cache-Control":    "no-cache",
}

// IsRealmCode reports whether remote is a Realm invite code rather than a
// host:port address.
func IsRealmCode(remote string) bool {
	_, _, err := net.SplitHostPort(remote)
	return err != nil
}

// Resolve returns the RakNet address of remote. A Realm code is accepted as
// an invite on behalf of the token's account and resolved to its address.
func Resolve(ctx context.Context, remote string, src oauth2.TokenSource) (string, error) {
	if !IsRealmCode(remote) {
		return remote, nil
	}
	if src == nil {
		return "", fmt.Errorf("realm %s needs an authenticated account", remote)
	}

	client := realms.NewClient(src)
	realm, err := client.Realm(ctx, remote)
	if err != nil {
		return "", fmt.Errorf("error getting realm: %w", err)
	}
	if err := AcceptInvite(ctx, http.DefaultClient, realmsURL, remote, src); err != nil {
		return "", fmt.Errorf("error accepting invite: %w", err)
	}
	address, err := realm.Address(ctx)
	if err != nil {
		return "", fmt.Errorf("error getting realm address: %w", err)
	}
	log.Info("resolved realm", "code", remote, "name", realm.Name, "address", address)
	return address, nil
}

const realmsURL = "https://pocket.realms.minecraft.net"

// AcceptInvite accepts the Realm invite link code.
func AcceptInvite(ctx context.Context, client *http.Client, baseURL, code string, src oauth2.TokenSource) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/invites/v1/link/accept/%s", baseURL, code), nil)
	if err != nil {
		return err
	}
	for k, v := range inviteHeaders {
		req.Header.Set(k, v)
	}
	token, err := src.Token()
	if err != nil {
		return err
	}
	token.SetAuthHeader(req)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP Error: %d", resp.StatusCode)
	}
	return nil
}
