package retained

import "iter"

// ItemRange is a lazily-iterated view over display items of type T
// produced by an upstream display-list decoder. Nothing is decoded until
// the range is iterated, and iteration may be repeated: each call to All
// replays the range from the start.
//
// The zero value is an empty range.
type ItemRange[T any] struct {
	seq iter.Seq[T]
}

// NewItemRange creates an ItemRange over seq. The sequence must be
// replayable: it may be iterated more than once.
func NewItemRange[T any](seq iter.Seq[T]) ItemRange[T] {
	return ItemRange[T]{seq: seq}
}

// SliceRange returns an ItemRange backed by items without copying.
// The caller must not mutate items while the range is in use.
func SliceRange[T any](items []T) ItemRange[T] {
	return ItemRange[T]{seq: func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}}
}

// All returns the item sequence for range-over-func iteration.
func (r ItemRange[T]) All() iter.Seq[T] {
	if r.seq == nil {
		return func(func(T) bool) {}
	}
	return r.seq
}

// Collect decodes the whole range into an owned slice, preserving order.
func (r ItemRange[T]) Collect() []T {
	var items []T
	for item := range r.All() {
		items = append(items, item)
	}
	return items
}
