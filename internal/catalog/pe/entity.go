package pe

import (
	"fmt"

	"gophertunnel_proxy/internal/mcdata"
)

// EntityTable maps server entity types of one spawn kind to PE network ids.
type EntityTable struct {
	kind mcdata.EntityKind
	ids  map[mcdata.EntityType]int32
}

func newEntityTable(kind mcdata.EntityKind) *EntityTable {
	return &EntityTable{kind: kind, ids: make(map[mcdata.EntityType]int32)}
}

// ID returns the PE id of t, or ErrUnmappedEntity.
func (e *EntityTable) ID(t mcdata.EntityType) (int32, error) {
	id, ok := e.ids[t]
	if !ok {
		return 0, fmt.Errorf("%w: %s %s", ErrUnmappedEntity, e.kind, t)
	}
	return id, nil
}

// Len returns the number of mapped types.
func (e *EntityTable) Len() int { return len(e.ids) }

// Kind returns the spawn kind the table serves.
func (e *EntityTable) Kind() mcdata.EntityKind { return e.kind }

func (e *EntityTable) set(t mcdata.EntityType, id int32) (prev int32, replaced bool, err error) {
	if t.Kind() != e.kind {
		return 0, false, fmt.Errorf("%w: %s is %s, table is %s", ErrKindMismatch, t, t.Kind(), e.kind)
	}
	prev, replaced = e.ids[t]
	e.ids[t] = id
	return prev, replaced, nil
}

// validate checks that every type of the table's kind has an id.
func (e *EntityTable) validate() error {
	for _, t := range mcdata.EntityTypes() {
		if t.Kind() != e.kind {
			continue
		}
		if _, ok := e.ids[t]; !ok {
			return fmt.Errorf("%w: %s %s", ErrUnmappedEntity, e.kind, t)
		}
	}
	return nil
}
