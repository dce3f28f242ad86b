// Package slottable implements a generational slot-table (a.k.a. arena):
// a dense slice of payloads addressed by (index, generation) handles that
// stay stable across insertions and deletions.
package slottable

import "github.com/cpmech/gosl/chk"

// InvalidIndex is the reserved slot index that never resolves to a live slot.
const InvalidIndex = 0xFFFF

// MaxCapacity is the hard cap on the number of slots a table may hold; the
// 16-bit handle index leaves room for exactly this many distinct slots.
const MaxCapacity = 0xFFFF

// growthFloor is the minimum number of slots added on an empty-free-list grow.
const growthFloor = 64

// Handle identifies a slot by its position and the generation that occupied
// it; a handle only matches a slot while that slot is alive and its
// generation has not moved on.
type Handle struct {
	Index      uint16
	Generation uint32
}

// Invalid is the reserved handle that never matches any slot, live or dead.
var Invalid = Handle{Index: InvalidIndex, Generation: 0}

// IsInvalid reports whether h is the reserved sentinel handle. This is a
// structural check only; it does not consult any table.
func (h Handle) IsInvalid() bool {
	return h == Invalid
}

// slot holds one table entry: bookkeeping plus the user payload.
type slot[T any] struct {
	generation uint32
	alive      bool
	nextFree   uint16
	payload    T
}

// Table is a generational arena over payloads of type T. The zero value is
// not ready to use; call NewTable.
type Table[T any] struct {
	slots      []slot[T]
	freeHead   uint16
	aliveCount int
}

// NewTable allocates a table with initialCapacity slots pre-linked onto the
// free-list. initialCapacity may be zero; the table grows lazily on first
// Create.
func NewTable[T any](initialCapacity int) *Table[T] {
	mustValidCapacity(initialCapacity)
	t := &Table[T]{freeHead: InvalidIndex}
	if initialCapacity > 0 {
		t.grow(clampGrowth(0, initialCapacity))
	}
	return t
}

// clampGrowth clamps a requested addition so cap+add never exceeds
// MaxCapacity, per the 16-bit index budget.
func clampGrowth(cap, add int) int {
	if add <= 0 {
		return 0
	}
	newCap := cap + add
	if newCap > MaxCapacity {
		newCap = MaxCapacity
	}
	if newCap <= cap {
		return 0
	}
	return newCap - cap
}

// grow appends `add` fresh dead slots and threads them onto the free-list
// head-first, so the most recently grown slots are handed out first.
func (t *Table[T]) grow(add int) {
	if add <= 0 {
		return
	}
	oldCap := len(t.slots)
	t.slots = append(t.slots, make([]slot[T], add)...)
	for i := oldCap; i < oldCap+add; i++ {
		t.slots[i].generation = 1
		t.slots[i].alive = false
		t.slots[i].nextFree = uint16(i + 1)
	}
	t.slots[oldCap+add-1].nextFree = t.freeHead
	t.freeHead = uint16(oldCap)
}

// Create allocates a slot for payload and returns its handle. It grows the
// table geometrically (by at least 64 slots, or half the current capacity,
// whichever is larger) when the free-list is empty. Returns Invalid if the
// table is already at MaxCapacity.
func (t *Table[T]) Create(payload T) Handle {
	if t.freeHead == InvalidIndex {
		add := len(t.slots) / 2
		if add < growthFloor {
			add = growthFloor
		}
		add = clampGrowth(len(t.slots), add)
		t.grow(add)
		if t.freeHead == InvalidIndex {
			return Invalid
		}
	}
	idx := t.freeHead
	s := &t.slots[idx]
	t.freeHead = s.nextFree
	s.alive = true
	s.payload = payload
	t.aliveCount++
	return Handle{Index: idx, Generation: s.generation}
}

// valid reports whether h.Index could possibly address a slot in t, without
// checking liveness or generation.
func (t *Table[T]) valid(h Handle) bool {
	return h.Index != InvalidIndex && int(h.Index) < len(t.slots)
}

// Alive reports whether h currently matches a live slot.
func (t *Table[T]) Alive(h Handle) bool {
	if !t.valid(h) {
		return false
	}
	s := &t.slots[h.Index]
	return s.alive && s.generation == h.Generation
}

// Get returns a mutable pointer to the payload addressed by h, or nil if h
// does not match a live slot.
func (t *Table[T]) Get(h Handle) *T {
	if !t.Alive(h) {
		return nil
	}
	return &t.slots[h.Index].payload
}

// GetConst returns a copy of the payload addressed by h and true, or the
// zero value and false if h does not match a live slot.
func (t *Table[T]) GetConst(h Handle) (T, bool) {
	if !t.Alive(h) {
		var zero T
		return zero, false
	}
	return t.slots[h.Index].payload, true
}

// Destroy invalidates the slot addressed by h: it bumps the slot's
// generation (so any copy of h permanently stops matching) and returns it
// to the free-list. Returns false if h did not match a live slot.
func (t *Table[T]) Destroy(h Handle) bool {
	if !t.Alive(h) {
		return false
	}
	s := &t.slots[h.Index]
	s.alive = false
	s.generation++
	var zero T
	s.payload = zero
	s.nextFree = t.freeHead
	t.freeHead = h.Index
	if t.aliveCount > 0 {
		t.aliveCount--
	}
	return true
}

// AliveCount returns the number of currently live slots.
func (t *Table[T]) AliveCount() int {
	return t.aliveCount
}

// Capacity returns the total number of slots allocated so far.
func (t *Table[T]) Capacity() int {
	return len(t.slots)
}

// Each walks every live slot in table-index order, calling fn with each
// slot's handle and a pointer to its payload. This is the traversal order
// the linker relies on (spec §4.4) to keep Jacobian rows/columns stable for
// the duration of one solve. Mutating the table's shape (Create/Destroy)
// from inside fn is not supported.
func (t *Table[T]) Each(fn func(h Handle, payload *T)) {
	for i := range t.slots {
		s := &t.slots[i]
		if !s.alive {
			continue
		}
		fn(Handle{Index: uint16(i), Generation: s.generation}, &s.payload)
	}
}

// mustValidCapacity panics if n is negative; used to guard user-supplied
// initial capacities before they reach grow.
func mustValidCapacity(n int) {
	if n < 0 {
		chk.Panic("slottable: initial capacity must not be negative: %d", n)
	}
}
