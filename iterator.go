// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intervalheap

import "iter"

// Iterator is a bidirectional cursor over a heap's buffer order: node 0's
// low, node 0's high, node 1's low and so on. The traversal order is not
// sorted order.
//
// Iterators hold positions, never storage, so they stay safe across heap
// mutation; a mutation can change which element a held position refers to
// and a position past the new end yields the zero value until the cursor
// is repositioned. A step that reaches a boundary parks on the boundary
// element, raises the matching flag and returns true; a step attempted
// with its flag already raised returns false without moving. An empty
// heap reports both flags raised.
type Iterator[V any] struct {
	target *T[V]
	cursor int
	start  bool
	end    bool
}

// Iterator returns a cursor positioned at the start of the heap.
func (h *T[V]) Iterator() Iterator[V] {
	var it Iterator[V]
	it.Init(h)
	return it
}

// Init binds the iterator to h and positions it at the start. An iterator
// may be rebound to a different heap at any time.
func (it *Iterator[V]) Init(h *T[V]) {
	it.target = h
	it.cursor = 0
	it.start = true
	it.end = h.Len() == 0
}

// AtStart returns true when the cursor sits on the start boundary, and
// always for an empty heap.
func (it *Iterator[V]) AtStart() bool {
	return it.target.Len() == 0 || it.start
}

// AtEnd returns true when the cursor sits on the end boundary, and always
// for an empty heap.
func (it *Iterator[V]) AtEnd() bool {
	return it.target.Len() == 0 || it.end
}

// ToStart repositions the cursor on the first element. It is a no-op on
// an empty heap.
func (it *Iterator[V]) ToStart() {
	if it.target.Len() == 0 {
		return
	}
	it.cursor = 0
	it.start = true
	it.end = false
}

// ToEnd repositions the cursor on the last element. It is a no-op on an
// empty heap.
func (it *Iterator[V]) ToEnd() {
	if it.target.Len() == 0 {
		return
	}
	it.cursor = it.target.Len() - 1
	it.start = false
	it.end = true
}

// Next moves the cursor one position forward and returns true. Stepping
// from the last element stays on it, raises the end flag and returns
// true; with the flag already raised Next returns false without moving.
func (it *Iterator[V]) Next() bool {
	if it.end {
		return false
	}
	if it.cursor+1 >= it.target.Len() {
		it.start = it.target.Len() == 0
		it.end = true
		return true
	}
	it.start = false
	it.cursor++
	return true
}

// Prev moves the cursor one position backward and returns true, mirroring
// Next at the start boundary.
func (it *Iterator[V]) Prev() bool {
	if it.start {
		return false
	}
	if it.cursor == 0 {
		it.end = it.target.Len() == 0
		it.start = true
		return true
	}
	it.end = false
	it.cursor--
	return true
}

// Advance moves the cursor steps positions forward. It returns false
// without moving when steps is not positive, when the end flag is already
// raised, or when the move would pass the last element.
func (it *Iterator[V]) Advance(steps int) bool {
	if it.end || steps <= 0 || it.cursor+steps >= it.target.Len() {
		return false
	}
	it.start = false
	it.cursor += steps
	return true
}

// Rewind moves the cursor steps positions backward, with the failure
// conditions of Advance mirrored at the start.
func (it *Iterator[V]) Rewind(steps int) bool {
	if it.start || steps <= 0 || steps > it.cursor {
		return false
	}
	it.end = false
	it.cursor -= steps
	return true
}

// Seek positions the cursor on index, dispatching to Advance or Rewind by
// the distance from the current position. It returns false when index is
// outside of [0, Len()).
func (it *Iterator[V]) Seek(index int) bool {
	if index < 0 || index >= it.target.Len() {
		return false
	}
	switch {
	case index < it.cursor:
		return it.Rewind(it.cursor - index)
	case index > it.cursor:
		return it.Advance(index - it.cursor)
	}
	return true
}

// Value returns the element under the cursor, or the zero value when the
// heap is empty or the position is no longer within bounds.
func (it *Iterator[V]) Value() V {
	if it.cursor >= it.target.Len() {
		var zero V
		return zero
	}
	return it.target.at(it.cursor)
}

// Index returns the cursor's position in buffer order.
func (it *Iterator[V]) Index() int {
	return it.cursor
}

// Forward returns an iterator over the heap's elements in buffer order.
func (h *T[V]) Forward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < h.count; i++ {
			if !yield(h.at(i)) {
				return
			}
		}
	}
}

// Reverse returns an iterator over the heap's elements in reverse buffer
// order.
func (h *T[V]) Reverse() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := h.count - 1; i >= 0; i-- {
			if !yield(h.at(i)) {
				return
			}
		}
	}
}
