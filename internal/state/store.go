package state

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// PositionStore owns Position objects, keyed by id. Registry entries
// reference positions by id and never duplicate them.
type PositionStore struct {
	positions map[uuid.UUID]*Position
}

func NewPositionStore() *PositionStore {
	return &PositionStore{
		positions: make(map[uuid.UUID]*Position),
	}
}

// Get returns the position or nil.
func (ps *PositionStore) Get(id uuid.UUID) *Position {
	return ps.positions[id]
}

// Put inserts or replaces a position.
func (ps *PositionStore) Put(p *Position) {
	ps.positions[p.ID] = p
}

// Delete removes a position. No-op if absent.
func (ps *PositionStore) Delete(id uuid.UUID) {
	delete(ps.positions, id)
}

// Len returns the number of stored positions.
func (ps *PositionStore) Len() int {
	return len(ps.positions)
}

// All returns positions sorted by id bytes for deterministic iteration.
func (ps *PositionStore) All() []*Position {
	out := make([]*Position, 0, len(ps.positions))
	for _, p := range ps.positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) < 0
	})
	return out
}
