package state

import (
	"bytes"
	"fmt"
	"sort"

	"RangeLiq/internal/event"

	"github.com/google/uuid"
)

// TickRegistry indexes active positions by their band boundary ticks plus a
// flat active-id set for full-range scans. The registry exclusively owns
// membership bookkeeping; position objects live in the PositionStore.
//
// Invariant: every active position appears in exactly the buckets for its two
// boundary ticks and in the active set. Not thread-safe — only the
// single-writer core touches it.
type TickRegistry struct {
	buckets map[int64][]uuid.UUID // boundary tick -> ids anchored there

	active    []uuid.UUID
	activeIdx map[uuid.UUID]int // id -> index in active, for O(1) swap-remove

	anchors map[uuid.UUID]anchor
}

type anchor struct {
	tickLower int64
	tickUpper int64
	dir       event.Direction
}

func NewTickRegistry() *TickRegistry {
	return &TickRegistry{
		buckets:   make(map[int64][]uuid.UUID),
		activeIdx: make(map[uuid.UUID]int),
		anchors:   make(map[uuid.UUID]anchor),
	}
}

// Insert registers a position under both boundary ticks and the active set.
func (tr *TickRegistry) Insert(id uuid.UUID, tickLower, tickUpper int64, dir event.Direction) error {
	if _, exists := tr.anchors[id]; exists {
		return fmt.Errorf("position %s already registered", id)
	}
	if tickLower >= tickUpper {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, tickLower, tickUpper)
	}

	tr.buckets[tickLower] = append(tr.buckets[tickLower], id)
	tr.buckets[tickUpper] = append(tr.buckets[tickUpper], id)

	tr.activeIdx[id] = len(tr.active)
	tr.active = append(tr.active, id)

	tr.anchors[id] = anchor{tickLower: tickLower, tickUpper: tickUpper, dir: dir}
	return nil
}

// Remove deregisters a position from both buckets and the active set.
// Swap-with-last removal, O(1) amortized.
func (tr *TickRegistry) Remove(id uuid.UUID) error {
	a, ok := tr.anchors[id]
	if !ok {
		return fmt.Errorf("position %s not registered", id)
	}

	if err := tr.removeFromBucket(a.tickLower, id); err != nil {
		return err
	}
	if err := tr.removeFromBucket(a.tickUpper, id); err != nil {
		return err
	}

	idx := tr.activeIdx[id]
	last := len(tr.active) - 1
	if idx != last {
		moved := tr.active[last]
		tr.active[idx] = moved
		tr.activeIdx[moved] = idx
	}
	tr.active = tr.active[:last]
	delete(tr.activeIdx, id)
	delete(tr.anchors, id)
	return nil
}

func (tr *TickRegistry) removeFromBucket(tick int64, id uuid.UUID) error {
	bucket := tr.buckets[tick]
	for i, cur := range bucket {
		if cur == id {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			if len(bucket) == 0 {
				delete(tr.buckets, tick)
			} else {
				tr.buckets[tick] = bucket
			}
			return nil
		}
	}
	return fmt.Errorf("position %s missing from bucket %d", id, tick)
}

// PositionsInRange returns ids of active positions whose direction matches
// and whose band contains tick, sorted by id bytes for deterministic
// processing order.
func (tr *TickRegistry) PositionsInRange(tick int64, dir event.Direction) []uuid.UUID {
	return tr.PositionsInSpan(tick, tick, dir)
}

// PositionsInSpan returns ids of active positions whose direction matches
// and whose band overlaps the inclusive tick span [lo, hi], sorted by id
// bytes. A single price update can gap across an entire band; the span query
// catches such crossings even when neither endpoint lands inside the band.
func (tr *TickRegistry) PositionsInSpan(lo, hi int64, dir event.Direction) []uuid.UUID {
	var out []uuid.UUID
	for _, id := range tr.active {
		a := tr.anchors[id]
		if a.dir != dir {
			continue
		}
		if hi >= a.tickLower && lo <= a.tickUpper {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i][:], out[j][:]) < 0
	})
	return out
}

// Contains reports whether the id is registered.
func (tr *TickRegistry) Contains(id uuid.UUID) bool {
	_, ok := tr.anchors[id]
	return ok
}

// ActiveCount returns the number of registered positions.
func (tr *TickRegistry) ActiveCount() int {
	return len(tr.active)
}

// CheckConsistency validates registry/store agreement: every registered id
// resolves to an active stored position with matching band, and every bucket
// entry is backed by an anchor. Desynchronization here means the market must
// halt rather than risk double-liquidation.
func (tr *TickRegistry) CheckConsistency(store *PositionStore) error {
	if len(tr.active) != len(tr.activeIdx) || len(tr.active) != len(tr.anchors) {
		return fmt.Errorf("registry internal mismatch: active=%d idx=%d anchors=%d",
			len(tr.active), len(tr.activeIdx), len(tr.anchors))
	}

	for id, a := range tr.anchors {
		p := store.Get(id)
		if p == nil {
			return fmt.Errorf("dangling registry id %s: not in store", id)
		}
		if !p.IsActive() {
			return fmt.Errorf("closed position %s still registered", id)
		}
		if p.TickLower != a.tickLower || p.TickUpper != a.tickUpper {
			return fmt.Errorf("band mismatch for %s: registry [%d, %d] vs position [%d, %d]",
				id, a.tickLower, a.tickUpper, p.TickLower, p.TickUpper)
		}
		if !tr.inBucket(a.tickLower, id) || !tr.inBucket(a.tickUpper, id) {
			return fmt.Errorf("position %s missing from a boundary bucket", id)
		}
	}

	for tick, bucket := range tr.buckets {
		for _, id := range bucket {
			a, ok := tr.anchors[id]
			if !ok {
				return fmt.Errorf("bucket %d holds unregistered id %s", tick, id)
			}
			if a.tickLower != tick && a.tickUpper != tick {
				return fmt.Errorf("bucket %d holds id %s anchored at [%d, %d]",
					tick, id, a.tickLower, a.tickUpper)
			}
		}
	}

	return nil
}

func (tr *TickRegistry) inBucket(tick int64, id uuid.UUID) bool {
	for _, cur := range tr.buckets[tick] {
		if cur == id {
			return true
		}
	}
	return false
}
