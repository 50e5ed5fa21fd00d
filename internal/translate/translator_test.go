package translate

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gophertunnel_proxy/internal/catalog/pe"
	"gophertunnel_proxy/internal/mcdata"
	"gophertunnel_proxy/internal/metrics"
)

func newTranslator(t *testing.T) (*Translator, *metrics.Metrics) {
	t.Helper()
	tables, err := pe.Build()
	require.NoError(t, err)
	m := metrics.New()
	return NewTranslator(tables, m), m
}

func stack(id int32, data uint32) protocol.ItemInstance {
	return protocol.ItemInstance{Stack: protocol.ItemStack{
		ItemType: protocol.ItemType{NetworkID: id, MetadataValue: data},
		Count:    1,
	}}
}

func TestTranslator_UpdateBlock(t *testing.T) {
	tr, m := newTranslator(t)

	pk := &packet.UpdateBlock{NewBlockRuntimeID: uint32(mcdata.BlockState(252, 5))}
	assert.True(t, tr.Packet(pk))
	assert.Equal(t, uint32(mcdata.BlockState(237, 5)), pk.NewBlockRuntimeID)

	pk = &packet.UpdateBlock{NewBlockRuntimeID: uint32(mcdata.BlockState(1, 0))}
	assert.False(t, tr.Packet(pk))
	assert.Equal(t, uint32(mcdata.BlockState(1, 0)), pk.NewBlockRuntimeID)

	// Runtime ids outside the legacy space pass through.
	pk = &packet.UpdateBlock{NewBlockRuntimeID: 1 << 30}
	assert.False(t, tr.Packet(pk))
	assert.Equal(t, uint32(1<<30), pk.NewBlockRuntimeID)

	synced := &packet.UpdateBlockSynced{NewBlockRuntimeID: uint32(mcdata.BlockState(44, 7))}
	assert.True(t, tr.Packet(synced))
	assert.Equal(t, uint32(mcdata.BlockState(44, 6)), synced.NewBlockRuntimeID)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Remapped.WithLabelValues("block")))
}

func TestTranslator_Items(t *testing.T) {
	tr, m := newTranslator(t)

	slot := &packet.InventorySlot{NewItem: stack(416, 0)}
	assert.True(t, tr.Packet(slot))
	assert.Equal(t, int32(425), slot.NewItem.Stack.NetworkID)

	content := &packet.InventoryContent{Content: []protocol.ItemInstance{
		stack(0, 0),
		stack(44, 7),
		stack(1, 0),
		stack(225, 0),
	}}
	assert.True(t, tr.Packet(content))
	assert.Equal(t, int32(0), content.Content[0].Stack.NetworkID)
	assert.Equal(t, protocol.ItemType{NetworkID: 44, MetadataValue: 6}, content.Content[1].Stack.ItemType)
	assert.Equal(t, protocol.ItemType{NetworkID: 1, MetadataValue: 0}, content.Content[2].Stack.ItemType)
	assert.Equal(t, protocol.ItemType{NetworkID: 218, MetadataValue: 6}, content.Content[3].Stack.ItemType)

	equip := &packet.MobEquipment{NewItem: stack(2260, 0)}
	assert.True(t, tr.Packet(equip))
	assert.Equal(t, int32(504), equip.NewItem.Stack.NetworkID)

	armour := &packet.MobArmourEquipment{Helmet: stack(1, 0), Chestplate: stack(443, 0)}
	assert.True(t, tr.Packet(armour))
	assert.Equal(t, int32(1), armour.Helmet.Stack.NetworkID)
	assert.Equal(t, int32(444), armour.Chestplate.Stack.NetworkID)

	drop := &packet.AddItemActor{Item: stack(3, 2)}
	assert.True(t, tr.Packet(drop))
	assert.Equal(t, protocol.ItemType{NetworkID: 243, MetadataValue: 0}, drop.Item.Stack.ItemType)

	assert.Equal(t, 6.0, testutil.ToFloat64(m.Remapped.WithLabelValues("item")))
}

func TestTranslator_ItemBlockRuntimeID(t *testing.T) {
	tr, _ := newTranslator(t)

	s := protocol.ItemStack{
		ItemType:       protocol.ItemType{NetworkID: 1},
		BlockRuntimeID: int32(mcdata.BlockState(208, 0)),
	}
	assert.True(t, tr.ItemStack(&s))
	assert.Equal(t, int32(mcdata.BlockState(198, 0)), s.BlockRuntimeID)
	assert.Equal(t, int32(1), s.NetworkID)
}

func TestTranslator_UnrelatedPacket(t *testing.T) {
	tr, _ := newTranslator(t)
	assert.False(t, tr.Packet(&packet.Text{Message: "hi"}))
}

func TestTranslator_NilMetrics(t *testing.T) {
	tables, err := pe.Build()
	require.NoError(t, err)
	tr := NewTranslator(tables, nil)

	pk := &packet.UpdateBlock{NewBlockRuntimeID: uint32(mcdata.BlockState(95, 3))}
	assert.True(t, tr.Packet(pk))
	assert.Equal(t, uint32(mcdata.BlockState(241, 3)), pk.NewBlockRuntimeID)
}
