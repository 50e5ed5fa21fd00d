// Package pe holds the identifier facts that differ between the server
// protocol and Pocket Edition clients, and builds the remapping tables from
// them.
package pe

import (
	"fmt"

	"gophertunnel_proxy/internal/mcdata"
	"gophertunnel_proxy/internal/remap"
)

// Tables is the frozen result of Build. It is shared read-only by every
// connection.
type Tables struct {
	Block          *remap.ArrayTable
	Item           *remap.ComplexTable
	LivingEntities *EntityTable
	ObjectEntities *EntityTable
}

// Option configures Build.
type Option func(*options)

type options struct {
	observer func(remap.Overwrite)
}

// WithObserver receives every registration that replaced an earlier one.
func WithObserver(fn func(remap.Overwrite)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// Build registers every PE fact and freezes the tables.
func Build(opts ...Option) (*Tables, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	observe := func(ov remap.Overwrite) {
		if o.observer != nil {
			o.observer(ov)
		}
	}

	r := &registrar{
		tables: &Tables{
			Block: remap.NewArrayTable(mcdata.BlockIDMax, mcdata.BlockDataMax,
				remap.WithName("block"), remap.WithOverwriteHook(observe)),
			Item: remap.NewComplexTable(
				remap.WithName("item"), remap.WithOverwriteHook(observe)),
			LivingEntities: newEntityTable(mcdata.KindLiving),
			ObjectEntities: newEntityTable(mcdata.KindObject),
		},
		observe: observe,
	}
	registerBlocks(r)
	registerItems(r)
	registerEntities(r)
	if r.err != nil {
		return nil, r.err
	}

	t := r.tables
	if err := t.LivingEntities.validate(); err != nil {
		return nil, err
	}
	if err := t.ObjectEntities.validate(); err != nil {
		return nil, err
	}
	t.Block.Freeze()
	t.Item.Freeze()
	return t, nil
}

// EntityID returns the PE id of t from the table of its spawn kind.
func (t *Tables) EntityID(et mcdata.EntityType) (int32, error) {
	switch et.Kind() {
	case mcdata.KindLiving:
		return t.LivingEntities.ID(et)
	case mcdata.KindObject:
		return t.ObjectEntities.ID(et)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnmappedEntity, et)
	}
}

// BlockState remaps a composite block state.
func (t *Tables) BlockState(state int) int {
	return t.Block.Remap(state)
}

// ItemStack remaps an item id and data value.
func (t *Tables) ItemStack(id, data int32) (int32, int32) {
	return t.Item.Remap(id, data)
}
