package remap

// KeepData as a forced data value keeps the variant of the remapped input.
const KeepData int32 = -1

type simpleRemap struct {
	id   int32
	data int32
}

// ComplexTable remaps sparse (id, data) pairs. An id may remap simply, to a
// new id with the data kept or forced, or per exact pair. Exact pairs take
// precedence over simple remaps of the same id.
type ComplexTable struct {
	simple map[int32]simpleRemap
	exact  map[Pair]Pair
	frozen bool
	opts   options
}

// NewComplexTable returns an empty table.
func NewComplexTable(opts ...Option) *ComplexTable {
	t := &ComplexTable{
		simple: make(map[int32]simpleRemap),
		exact:  make(map[Pair]Pair),
		opts:   defaultOptions(),
	}
	for _, opt := range opts {
		opt(&t.opts)
	}
	return t
}

// SetSingleRemap remaps every variant of fromID to toID. forcedData replaces
// the variant unless it is KeepData.
func (t *ComplexTable) SetSingleRemap(fromID, toID, forcedData int32) error {
	if t.frozen {
		return ErrFrozen
	}
	if forcedData < KeepData {
		return ErrInvalidData
	}
	if prev, ok := t.simple[fromID]; ok {
		t.opts.overwrite(Pair{ID: fromID, Data: KeepData}, Pair{ID: prev.id, Data: prev.data}, Pair{ID: toID, Data: forcedData})
	}
	t.simple[fromID] = simpleRemap{id: toID, data: forcedData}
	return nil
}

// SetComplexRemap remaps exactly (fromID, fromData) to (toID, toData).
func (t *ComplexTable) SetComplexRemap(fromID, fromData, toID, toData int32) error {
	if t.frozen {
		return ErrFrozen
	}
	if fromData < 0 || toData < 0 {
		return ErrInvalidData
	}
	from, to := Pair{ID: fromID, Data: fromData}, Pair{ID: toID, Data: toData}
	if prev, ok := t.exact[from]; ok {
		t.opts.overwrite(from, prev, to)
	}
	t.exact[from] = to
	return nil
}

// Remap translates (id, data). Unregistered pairs are returned unchanged.
func (t *ComplexTable) Remap(id, data int32) (int32, int32) {
	if to, ok := t.exact[Pair{ID: id, Data: data}]; ok {
		return to.ID, to.Data
	}
	if s, ok := t.simple[id]; ok {
		if s.data == KeepData {
			return s.id, data
		}
		return s.id, s.data
	}
	return id, data
}

// Lookup is Remap with an explicit not-found result.
func (t *ComplexTable) Lookup(id, data int32) (Pair, bool) {
	to := Pair{ID: id, Data: data}
	if e, ok := t.exact[to]; ok {
		return e, true
	}
	if s, ok := t.simple[id]; ok {
		to.ID = s.id
		if s.data != KeepData {
			to.Data = s.data
		}
		return to, true
	}
	return to, false
}

// Len returns the number of simple and exact registrations.
func (t *ComplexTable) Len() (simple, exact int) {
	return len(t.simple), len(t.exact)
}

// Freeze ends the registration phase.
func (t *ComplexTable) Freeze() { t.frozen = true }

// Frozen reports whether Freeze was called.
func (t *ComplexTable) Frozen() bool { return t.frozen }
