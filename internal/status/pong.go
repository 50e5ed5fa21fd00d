// Package status queries a Bedrock server's status over RakNet.
package status

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sandertv/go-raknet"
)

// Pong is the parsed unconnected pong of a server.
type Pong struct {
	Edition         string
	MOTD            string
	ProtocolID      int32
	ProtocolVersion string
	PlayerCount     int32
	MaxPlayerCount  int32
	ServerUUID      string
	SubMOTD         string
	GameMode        string
	GameModeID      int32
	IPv4Port        int32
	IPv6Port        int32
}

// Ping sends an unconnected ping to address and parses the pong.
func Ping(ctx context.Context, address string) (*Pong, error) {
	data, err := raknet.PingContext(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("ping %s: %w", address, err)
	}
	return ParsePong(data)
}

func splitPong(s string) []string {
	var runes []rune
	var tokens []string
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\\' && !inEscape:
			inEscape = true
		case r == ';' && !inEscape:
			tokens = append(tokens, string(runes))
			runes = runes[:0]
		default:
			inEscape = false
			runes = append(runes, r)
		}
	}
	return append(tokens, string(runes))
}

// ParsePong parses the semicolon separated pong payload.
func ParsePong(pong []byte) (*Pong, error) {
	data := splitPong(string(pong))
	if len(data) < 6 {
		return nil, fmt.Errorf("invalid pong: %d fields", len(data))
	}
	for len(data) < 12 {
		data = append(data, "")
	}
	if data[10] == "" {
		data[10] = "19132"
	}
	if data[11] == "" {
		data[11] = "19133"
	}

	protocolID, err := strconv.Atoi(data[2])
	if err != nil {
		return nil, fmt.Errorf("invalid protocol id: %s", data[2])
	}
	playerCount, err := strconv.Atoi(data[4])
	if err != nil {
		return nil, fmt.Errorf("invalid player count: %s", data[4])
	}
	maxPlayerCount, err := strconv.Atoi(data[5])
	if err != nil {
		return nil, fmt.Errorf("invalid max player count: %s", data[5])
	}
	gameModeID, err := strconv.Atoi(data[9])
	if err != nil {
		gameModeID = 0
	}
	ipv4Port, err := strconv.Atoi(data[10])
	if err != nil {
		return nil, fmt.Errorf("invalid ipv4 port: %s", data[10])
	}
	ipv6Port, err := strconv.Atoi(data[11])
	if err != nil {
		return nil, fmt.Errorf("invalid ipv6 port: %s", data[11])
	}
	return &Pong{
		Edition:         data[0],
		MOTD:            data[1],
		ProtocolID:      int32(protocolID),
		ProtocolVersion: data[3],
		PlayerCount:     int32(playerCount),
		MaxPlayerCount:  int32(maxPlayerCount),
		ServerUUID:      data[6],
		SubMOTD:         data[7],
		GameMode:        data[8],
		GameModeID:      int32(gameModeID),
		IPv4Port:        int32(ipv4Port),
		IPv6Port:        int32(ipv6Port),
	}, nil
}
