package memory

import (
	"maps"
	"slices"

	"logistics/internal/core/domain/model/kernel"
)

type table[R any] struct {
	rows map[kernel.ID]R
	next kernel.ID
}

func newTable[R any]() *table[R] {
	return &table[R]{rows: make(map[kernel.ID]R)}
}

func (t *table[R]) stage() *stagedTable[R] {
	return &stagedTable[R]{
		base: t,
		rows: make(map[kernel.ID]R),
		next: t.next,
	}
}

type stagedTable[R any] struct {
	base *table[R]
	rows map[kernel.ID]R
	next kernel.ID
}

func (s *stagedTable[R]) nextID() kernel.ID {
	id := s.next
	s.next = s.next.Next()
	return id
}

func (s *stagedTable[R]) get(id kernel.ID) (R, bool) {
	if row, ok := s.rows[id]; ok {
		return row, true
	}
	row, ok := s.base.rows[id]
	return row, ok
}

func (s *stagedTable[R]) put(id kernel.ID, row R) {
	s.rows[id] = row
}

// all returns every row, staged or committed, ordered by id.
func (s *stagedTable[R]) all() []R {
	ids := make(map[kernel.ID]struct{}, len(s.base.rows)+len(s.rows))
	for id := range s.base.rows {
		ids[id] = struct{}{}
	}
	for id := range s.rows {
		ids[id] = struct{}{}
	}

	rows := make([]R, 0, len(ids))
	for _, id := range slices.Sorted(maps.Keys(ids)) {
		row, _ := s.get(id)
		rows = append(rows, row)
	}
	return rows
}

func (s *stagedTable[R]) apply() {
	maps.Copy(s.base.rows, s.rows)
	s.base.next = s.next
	clear(s.rows)
}
