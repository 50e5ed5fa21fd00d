package pe

import (
	"fmt"

	"gophertunnel_proxy/internal/mcdata"
	"gophertunnel_proxy/internal/remap"
)

// registrar applies facts to the tables. The first error sticks and turns
// the remaining registrations into no-ops.
type registrar struct {
	tables  *Tables
	observe func(remap.Overwrite)
	err     error
}

func (r *registrar) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *registrar) setBlock(from, to int) {
	if r.err != nil {
		return
	}
	if err := r.tables.Block.SetRemap(from, to); err != nil {
		r.fail(fmt.Errorf("block fact: %w", err))
	}
}

// block remaps every data value of from to the same data value of to.
func (r *registrar) block(from, to int) {
	for data := 0; data < mcdata.BlockDataMax; data++ {
		r.setBlock(mcdata.BlockState(from, data), mcdata.BlockState(to, data))
	}
}

// blockData remaps one exact block state.
func (r *registrar) blockData(from, dataFrom, to, dataTo int) {
	r.setBlock(mcdata.BlockState(from, dataFrom), mcdata.BlockState(to, dataTo))
}

// blockForced remaps every data value of from to a single state of to.
func (r *registrar) blockForced(from, to, dataTo int) {
	for data := 0; data < mcdata.BlockDataMax; data++ {
		r.setBlock(mcdata.BlockState(from, data), mcdata.BlockState(to, dataTo))
	}
}

func (r *registrar) item(from, to int32) {
	r.itemForced(from, to, remap.KeepData)
}

func (r *registrar) itemForced(from, to, dataTo int32) {
	if r.err != nil {
		return
	}
	if err := r.tables.Item.SetSingleRemap(from, to, dataTo); err != nil {
		r.fail(fmt.Errorf("item fact %d -> %d: %w", from, to, err))
	}
}

func (r *registrar) itemData(from, dataFrom, to, dataTo int32) {
	if r.err != nil {
		return
	}
	if err := r.tables.Item.SetComplexRemap(from, dataFrom, to, dataTo); err != nil {
		r.fail(fmt.Errorf("item fact %d:%d -> %d:%d: %w", from, dataFrom, to, dataTo, err))
	}
}

func (r *registrar) blockAndItem(from, to int) {
	r.block(from, to)
	r.item(int32(from), int32(to))
}

func (r *registrar) blockAndItemData(from, dataFrom, to, dataTo int) {
	r.blockData(from, dataFrom, to, dataTo)
	r.itemData(int32(from), int32(dataFrom), int32(to), int32(dataTo))
}

func (r *registrar) blockAndItemForced(from, to, dataTo int) {
	r.blockForced(from, to, dataTo)
	r.itemForced(int32(from), int32(to), int32(dataTo))
}

func (r *registrar) entity(t mcdata.EntityType, id int32) {
	if r.err != nil {
		return
	}
	table := r.tables.LivingEntities
	if t.Kind() == mcdata.KindObject {
		table = r.tables.ObjectEntities
	}
	prev, replaced, err := table.set(t, id)
	if err != nil {
		r.fail(err)
		return
	}
	if replaced {
		r.observe(remap.Overwrite{
			Table:    t.Kind().String() + "_entity",
			From:     remap.Pair{ID: int32(t), Data: remap.KeepData},
			Previous: remap.Pair{ID: prev, Data: remap.KeepData},
			Current:  remap.Pair{ID: id, Data: remap.KeepData},
		})
	}
}
