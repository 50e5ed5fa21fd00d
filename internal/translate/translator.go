// Package translate rewrites the identifiers carried by server packets into
// the ids a Pocket Edition client expects.
package translate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"

	"gophertunnel_proxy/internal/catalog/pe"
	"gophertunnel_proxy/internal/metrics"
)

// Translator applies the PE tables to packet fields. It is safe for
// concurrent use once the tables are frozen.
type Translator struct {
	tables *pe.Tables

	blocks prometheus.Counter
	items  prometheus.Counter
}

// NewTranslator returns a translator over tables. m may be nil.
func NewTranslator(tables *pe.Tables, m *metrics.Metrics) *Translator {
	t := &Translator{tables: tables}
	if m != nil {
		t.blocks = m.Remapped.WithLabelValues("block")
		t.items = m.Remapped.WithLabelValues("item")
	}
	return t
}

// Packet rewrites pk in place and reports whether any field changed.
func (t *Translator) Packet(pk packet.Packet) bool {
	switch pk := pk.(type) {
	case *packet.UpdateBlock:
		return t.blockRuntimeID(&pk.NewBlockRuntimeID)
	case *packet.UpdateBlockSynced:
		return t.blockRuntimeID(&pk.NewBlockRuntimeID)
	case *packet.InventorySlot:
		return t.item(&pk.NewItem)
	case *packet.InventoryContent:
		changed := false
		for i := range pk.Content {
			if t.item(&pk.Content[i]) {
				changed = true
			}
		}
		return changed
	case *packet.MobEquipment:
		return t.item(&pk.NewItem)
	case *packet.MobArmourEquipment:
		changed := t.item(&pk.Helmet)
		changed = t.item(&pk.Chestplate) || changed
		changed = t.item(&pk.Leggings) || changed
		changed = t.item(&pk.Boots) || changed
		return changed
	case *packet.AddItemActor:
		return t.item(&pk.Item)
	}
	return false
}

// blockRuntimeID treats rid as a legacy composite block state.
func (t *Translator) blockRuntimeID(rid *uint32) bool {
	state := int(*rid)
	to := t.tables.BlockState(state)
	if to == state {
		return false
	}
	*rid = uint32(to)
	inc(t.blocks)
	return true
}

func (t *Translator) item(it *protocol.ItemInstance) bool {
	return t.ItemStack(&it.Stack)
}

// ItemStack rewrites the item type and block runtime id of s.
func (t *Translator) ItemStack(s *protocol.ItemStack) bool {
	if s.NetworkID == 0 {
		// Air.
		return false
	}
	changed := false
	id, data := t.tables.ItemStack(s.NetworkID, int32(s.MetadataValue))
	if id != s.NetworkID || uint32(data) != s.MetadataValue {
		s.NetworkID, s.MetadataValue = id, uint32(data)
		inc(t.items)
		changed = true
	}
	if s.BlockRuntimeID > 0 {
		state := int(s.BlockRuntimeID)
		if to := t.tables.BlockState(state); to != state {
			s.BlockRuntimeID = int32(to)
			inc(t.blocks)
			changed = true
		}
	}
	return changed
}

func inc(c prometheus.Counter) {
	if c != nil {
		c.Inc()
	}
}
