package core

// Pool is a fixed-capacity, unordered collection of values with an active
// count. Slots [0, Len()) are active; everything past Len() is stale.
//
// Destroy is O(1) swap-remove: the last active value is copied into the
// freed slot. Destroy therefore reorders the pool, and a loop that destroys
// the element under its cursor must not advance the cursor (or must walk
// from the end).
type Pool[T any] struct {
	items []T
	count int
}

// NewPool creates a pool that holds at most capacity values.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{items: make([]T, capacity)}
}

// Spawn appends v to the pool. When the pool is full it changes nothing and
// returns false.
func (p *Pool[T]) Spawn(v T) bool {
	if p.count >= len(p.items) {
		return false
	}
	p.items[p.count] = v
	p.count++
	return true
}

// Destroy removes the value at index i by overwriting it with the last active
// value and shrinking the count. Indexes outside [0, Len()) are ignored.
func (p *Pool[T]) Destroy(i int) {
	if i < 0 || i >= p.count {
		return
	}
	p.items[i] = p.items[p.count-1]
	p.count--
}

// At returns a pointer to the active slot i, or nil if i is out of range.
// The pointer refers to the slot, not the value: after Destroy the slot may
// hold a different value.
func (p *Pool[T]) At(i int) *T {
	if i < 0 || i >= p.count {
		return nil
	}
	return &p.items[i]
}

// Len returns the number of active values.
func (p *Pool[T]) Len() int {
	return p.count
}

// Cap returns the fixed capacity.
func (p *Pool[T]) Cap() int {
	return len(p.items)
}

// Full reports whether Spawn would fail.
func (p *Pool[T]) Full() bool {
	return p.count >= len(p.items)
}

// Clear drops every active value.
func (p *Pool[T]) Clear() {
	p.count = 0
}

// Items returns the active values. The slice aliases pool storage and is
// only valid until the next mutation.
func (p *Pool[T]) Items() []T {
	return p.items[:p.count]
}
