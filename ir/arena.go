package ir

// Handle is a dense, zero-based reference into an Arena. Handles are
// stable for the lifetime of the arena and only meaningful together
// with the arena that issued them.
type Handle uint32

// Index returns the handle's position in its arena.
func (h Handle) Index() int {
	return int(h)
}

// Arena is an append-only collection mapping each Handle to a T.
// Iteration order equals insertion order equals handle order.
//
// The zero value is an empty arena ready for use.
type Arena[T any] struct {
	items []T
}

// Append adds a value and returns its handle.
func (a *Arena[T]) Append(v T) Handle {
	h := Handle(len(a.items))
	a.items = append(a.items, v)
	return h
}

// Get returns the value for a handle. The handle must have been issued
// by this arena; anything else is a programmer error and panics.
func (a *Arena[T]) Get(h Handle) *T {
	return &a.items[h.Index()]
}

// Len returns the number of values in the arena.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// Each calls fn for every (handle, value) pair in insertion order.
// It stops early if fn returns false.
func (a *Arena[T]) Each(fn func(Handle, *T) bool) {
	for i := range a.items {
		if !fn(Handle(i), &a.items[i]) {
			return
		}
	}
}
