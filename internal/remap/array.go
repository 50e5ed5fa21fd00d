// Package remap implements the identifier remapping tables used to translate
// block and item ids between protocol versions.
//
// Tables are filled during startup and then frozen. A frozen table is never
// written again, so lookups take no locks and may run from any goroutine.
package remap

import "fmt"

const noRemap = -1

// ArrayTable remaps dense composite indices (id*dataMax + data) through a
// direct-indexed slice.
type ArrayTable struct {
	idMax   int
	dataMax int
	slots   []int32
	set     int
	frozen  bool
	opts    options
}

// NewArrayTable allocates a table for idMax ids with dataMax variants each.
// Every slot starts out unmapped.
func NewArrayTable(idMax, dataMax int, opts ...Option) *ArrayTable {
	if idMax <= 0 || dataMax <= 0 {
		panic(fmt.Sprintf("remap: invalid table dimensions %dx%d", idMax, dataMax))
	}
	t := &ArrayTable{
		idMax:   idMax,
		dataMax: dataMax,
		slots:   make([]int32, idMax*dataMax),
		opts:    defaultOptions(),
	}
	for _, opt := range opts {
		opt(&t.opts)
	}
	for i := range t.slots {
		t.slots[i] = noRemap
	}
	return t
}

// Index returns the composite index of id and data.
func (t *ArrayTable) Index(id, data int) int {
	return id*t.dataMax + data
}

// Split is the inverse of Index.
func (t *ArrayTable) Split(index int) (id, data int) {
	return index / t.dataMax, index % t.dataMax
}

// DataMax returns the number of variants per id.
func (t *ArrayTable) DataMax() int { return t.dataMax }

// Len returns the number of slots.
func (t *ArrayTable) Len() int { return len(t.slots) }

// Registered returns the number of slots holding a remap.
func (t *ArrayTable) Registered() int { return t.set }

// SetRemap records that from remaps to to. Both indices must lie inside the
// table. A later registration for the same from replaces the earlier one.
func (t *ArrayTable) SetRemap(from, to int) error {
	if t.frozen {
		return ErrFrozen
	}
	if !t.inRange(from) || !t.inRange(to) {
		return fmt.Errorf("%w: %s %d -> %d (size %d)", ErrIndexOutOfRange, t.opts.name, from, to, len(t.slots))
	}
	if prev := t.slots[from]; prev != noRemap {
		t.opts.overwrite(t.pair(from), t.pair(int(prev)), t.pair(to))
	} else {
		t.set++
	}
	t.slots[from] = int32(to)
	return nil
}

// Remap returns the target registered for index, or index itself when there
// is none. Indices outside the table are returned unchanged.
func (t *ArrayTable) Remap(index int) int {
	if uint(index) >= uint(len(t.slots)) {
		return index
	}
	if to := t.slots[index]; to != noRemap {
		return int(to)
	}
	return index
}

// Lookup is Remap with an explicit not-found result.
func (t *ArrayTable) Lookup(index int) (int, bool) {
	if !t.inRange(index) {
		return index, false
	}
	to := t.slots[index]
	if to == noRemap {
		return index, false
	}
	return int(to), true
}

// Freeze ends the registration phase.
func (t *ArrayTable) Freeze() { t.frozen = true }

// Frozen reports whether Freeze was called.
func (t *ArrayTable) Frozen() bool { return t.frozen }

func (t *ArrayTable) inRange(index int) bool {
	return index >= 0 && index < len(t.slots)
}

func (t *ArrayTable) pair(index int) Pair {
	id, data := t.Split(index)
	return Pair{ID: int32(id), Data: int32(data)}
}
