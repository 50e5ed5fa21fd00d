package pe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gophertunnel_proxy/internal/mcdata"
	"gophertunnel_proxy/internal/remap"
)

func build(t *testing.T) (*Tables, []remap.Overwrite) {
	t.Helper()
	var overwrites []remap.Overwrite
	tables, err := Build(WithObserver(func(o remap.Overwrite) {
		overwrites = append(overwrites, o)
	}))
	require.NoError(t, err)
	return tables, overwrites
}

func blockRemap(tables *Tables, id, data int) (int, int) {
	return mcdata.SplitBlockState(tables.BlockState(mcdata.BlockState(id, data)))
}

func TestBuild_Frozen(t *testing.T) {
	tables, _ := build(t)

	assert.True(t, tables.Block.Frozen())
	assert.True(t, tables.Item.Frozen())
	require.ErrorIs(t, tables.Block.SetRemap(0, 1), remap.ErrFrozen)
	assert.Equal(t, mcdata.BlockStateMax, tables.Block.Len())
}

func TestBuild_BlockRemapAllVariants(t *testing.T) {
	tables, _ := build(t)

	for data := 0; data < mcdata.BlockDataMax; data++ {
		id, got := blockRemap(tables, 252, data)
		assert.Equal(t, 237, id)
		assert.Equal(t, data, got)
	}
	assert.Equal(t, mcdata.BlockState(237, 5), tables.BlockState(mcdata.BlockState(252, 5)))
	assert.Equal(t, mcdata.BlockState(237, 0), tables.BlockState(mcdata.BlockState(252, 0)))

	// Single hop: 237 itself is remapped, the result of 252 is not remapped again.
	id, _ := blockRemap(tables, 237, 0)
	assert.Equal(t, 222, id)
}

func TestBuild_Unregistered(t *testing.T) {
	tables, _ := build(t)

	state := mcdata.BlockState(1, 3)
	assert.Equal(t, state, tables.BlockState(state))

	id, data := tables.ItemStack(1, 3)
	assert.Equal(t, int32(1), id)
	assert.Equal(t, int32(3), data)
}

func TestBuild_SlabSwap(t *testing.T) {
	tables, _ := build(t)

	for _, c := range []struct{ id, data, wantID, wantData int }{
		{44, 7, 44, 6},
		{44, 6, 44, 7},
		{44, 14, 44, 15},
		{44, 15, 44, 14},
		{43, 7, 44, 6},
		{43, 6, 44, 7},
		{168, 1, 168, 2},
		{168, 2, 168, 1},
		{3, 2, 243, 0},
	} {
		id, data := blockRemap(tables, c.id, c.data)
		assert.Equal(t, [2]int{c.wantID, c.wantData}, [2]int{id, data}, "block %d:%d", c.id, c.data)

		itemID, itemData := tables.ItemStack(int32(c.id), int32(c.data))
		assert.Equal(t, [2]int32{int32(c.wantID), int32(c.wantData)}, [2]int32{itemID, itemData}, "item %d:%d", c.id, c.data)
	}

	// Other slab and dirt variants are untouched.
	id, data := blockRemap(tables, 44, 1)
	assert.Equal(t, [2]int{44, 1}, [2]int{id, data})
	id, data = blockRemap(tables, 3, 1)
	assert.Equal(t, [2]int{3, 1}, [2]int{id, data})
}

func TestBuild_ForcedVariants(t *testing.T) {
	tables, _ := build(t)

	for data := 0; data < mcdata.BlockDataMax; data++ {
		id, got := blockRemap(tables, 192, data)
		assert.Equal(t, [2]int{85, 4}, [2]int{id, got})

		id, got = blockRemap(tables, 225, data)
		assert.Equal(t, [2]int{218, 6}, [2]int{id, got})
	}

	id, data := tables.ItemStack(234, 0)
	assert.Equal(t, [2]int32{218, 15}, [2]int32{id, data})
	id, data = tables.ItemStack(191, 9)
	assert.Equal(t, [2]int32{85, 5}, [2]int32{id, data})
}

func TestBuild_Items(t *testing.T) {
	tables, _ := build(t)

	id, data := tables.ItemStack(416, 3)
	assert.Equal(t, [2]int32{425, 3}, [2]int32{id, data})

	for i := int32(0); i < 12; i++ {
		id, _ := tables.ItemStack(2256+i, 0)
		assert.Equal(t, 500+i, id)
	}

	// Items only: no block remap for the shulker shell id.
	_, ok := tables.Block.Lookup(mcdata.BlockState(450, 0))
	assert.False(t, ok)
}

func TestBuild_Entities(t *testing.T) {
	tables, _ := build(t)

	id, err := tables.EntityID(mcdata.EntityGiant)
	require.NoError(t, err)
	assert.Equal(t, int32(32), id)

	id, err = tables.EntityID(mcdata.EntityArmorStandObject)
	require.NoError(t, err)
	assert.Equal(t, int32(61), id)

	// Registered twice; the later id wins.
	id, err = tables.EntityID(mcdata.EntityAreaEffectCloud)
	require.NoError(t, err)
	assert.Equal(t, int32(101), id)

	_, err = tables.EntityID(mcdata.EntityPlayer)
	require.ErrorIs(t, err, ErrUnmappedEntity)

	_, err = tables.LivingEntities.ID(mcdata.EntityArrow)
	require.ErrorIs(t, err, ErrUnmappedEntity)
}

func TestBuild_Overwrites(t *testing.T) {
	_, overwrites := build(t)

	var blocks, items, entities, differing int
	for _, o := range overwrites {
		switch o.Table {
		case "block":
			blocks++
			assert.Equal(t, int32(208), o.From.ID)
		case "item":
			items++
		case "object_entity":
			entities++
			assert.Equal(t, int32(95), o.Previous.ID)
			assert.Equal(t, int32(101), o.Current.ID)
		}
		if !o.Identical() {
			differing++
		}
	}
	assert.Equal(t, mcdata.BlockDataMax, blocks)
	assert.Equal(t, 1, items)
	assert.Equal(t, 1, entities)
	assert.Equal(t, 1, differing)
}

func TestEntityTable_Validate(t *testing.T) {
	table := newEntityTable(mcdata.KindObject)
	_, _, err := table.set(mcdata.EntityArrow, 80)
	require.NoError(t, err)

	err = table.validate()
	require.ErrorIs(t, err, ErrUnmappedEntity)

	_, _, err = table.set(mcdata.EntityZombie, 32)
	require.ErrorIs(t, err, ErrKindMismatch)
}

func TestRegistrar_StickyError(t *testing.T) {
	r := &registrar{
		tables: &Tables{
			Block: remap.NewArrayTable(4, 4),
			Item:  remap.NewComplexTable(),
		},
		observe: func(remap.Overwrite) {},
	}
	r.blockData(100, 0, 1, 0)
	require.ErrorIs(t, r.err, remap.ErrIndexOutOfRange)

	r.blockData(1, 0, 2, 0)
	assert.Zero(t, r.tables.Block.Registered())
}
