package translate

import (
	"fmt"
	"slices"

	"github.com/sandertv/gophertunnel/minecraft"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"

	"gophertunnel_proxy/internal/logger"
)

var log = logger.Logger("translate")

var (
	noisyPacketIDs = []uint32{
		packet.IDNetworkChunkPublisherUpdate,
		packet.IDMoveActorDelta,
		packet.IDSetActorData,
		packet.IDMovePlayer,
		packet.IDCurrentStructureFeature,
	}
	debugIgnoredPacketIDs = []uint32{
		packet.IDLevelChunk,
		packet.IDChunkRadiusUpdated,
		packet.IDServerToClientHandshake,
		packet.IDPlayerList,
		packet.IDBiomeDefinitionList,
		packet.IDCraftingData,
		packet.IDStartGame,
	}
)

// Protocol is the protocol accepted from clients whose identifiers differ
// from the server's. Encoding is shared with the latest protocol; only the
// identifiers in server packets are rewritten on the way to the client.
type Protocol struct {
	ProtocolVersion int32
	Version         string

	// FilterNoise drops high-volume movement and metadata packets.
	FilterNoise bool
	// Debug logs the packets passing through.
	Debug bool

	translator *Translator
}

var _ minecraft.Protocol = (*Protocol)(nil)

// NewProtocol returns the client protocol id/version backed by translator.
func NewProtocol(id int32, version string, translator *Translator) *Protocol {
	return &Protocol{ProtocolVersion: id, Version: version, translator: translator}
}

func (p *Protocol) ID() int32   { return p.ProtocolVersion }
func (p *Protocol) Ver() string { return p.Version }

func (p *Protocol) Packets(listener bool) packet.Pool {
	if listener {
		return packet.NewClientPool()
	}
	return packet.NewServerPool()
}

func (p *Protocol) NewReader(r minecraft.ByteReader, shieldID int32, enableLimits bool) protocol.IO {
	return protocol.NewReader(r, shieldID, enableLimits)
}

func (p *Protocol) NewWriter(w minecraft.ByteWriter, shieldID int32) protocol.IO {
	return protocol.NewWriter(w, shieldID)
}

// ConvertToLatest handles packets read from the client.
func (p *Protocol) ConvertToLatest(pk packet.Packet, _ *minecraft.Conn) []packet.Packet {
	if p.FilterNoise && slices.Contains(noisyPacketIDs, pk.ID()) {
		return nil
	}
	if p.Debug && !slices.Contains(debugIgnoredPacketIDs, pk.ID()) {
		log.Debug("client packet", "type", packetName(pk))
	}
	return []packet.Packet{pk}
}

// ConvertFromLatest handles packets written to the client.
func (p *Protocol) ConvertFromLatest(pk packet.Packet, _ *minecraft.Conn) []packet.Packet {
	if p.FilterNoise && slices.Contains(noisyPacketIDs, pk.ID()) {
		return nil
	}
	changed := p.translator.Packet(pk)
	if p.Debug && !slices.Contains(debugIgnoredPacketIDs, pk.ID()) {
		log.Debug("server packet", "type", packetName(pk), "remapped", changed)
	}

	if info, ok := pk.(*packet.ResourcePacksInfo); ok && len(info.TexturePacks) > 0 {
		// Packs are built for the server version and do not load on this one.
		return []packet.Packet{&packet.ResourcePacksInfo{}}
	}
	return []packet.Packet{pk}
}

func packetName(pk packet.Packet) string {
	return fmt.Sprintf("%T", pk)
}
