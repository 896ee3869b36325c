// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intervalheap

import (
	"cmp"
	"fmt"
	"math"
	"strings"

	"cloudeng.io/errors"
)

// Funcs defines how a heap works with its element type. Compare must
// return a negative number when a sorts before b, zero when they are
// equivalent and a positive number when a sorts after b; it is the only
// mandatory field.
type Funcs[V any] struct {
	// Compare orders elements.
	Compare func(a, b V) int
	// Clone duplicates an element and is used by Copy. When nil, elements
	// are copied by assignment.
	Clone func(v V) V
	// Destroy releases an element's resources and is called by Clear and
	// Free for every stored element.
	Destroy func(v V)
	// Format renders an element and is used by String.
	Format func(v V) string
	// Hash returns a hash of an element. The heap never calls it; it
	// completes the bundle for callers that index elements externally.
	Hash func(v V) uint64
}

// Ordered returns a Funcs bundle for an ordered element type, with Compare
// set to cmp.Compare and the optional fields left nil.
func Ordered[V cmp.Ordered]() Funcs[V] {
	return Funcs[V]{Compare: cmp.Compare[V]}
}

// Node is a single position in the heap's array-backed tree, holding the
// min-side and max-side occupant of that position. When both slots are
// occupied Low sorts no later than High. Only the last occupied node may
// hold Low alone, and only while the element count is odd.
type Node[V any] struct {
	Low  V
	High V
}

// T represents an interval heap: a double-ended priority queue with O(1)
// access to both its minimum and maximum element and O(log n) insertion,
// removal and replacement at either end. Elements are stored two to a
// node and the node lows and highs form interleaved min and max heaps
// over the same array. A heap is owned by a single goroutine; none of its
// methods are safe for concurrent use. The zero value is not usable, use
// New or NewOrdered.
type T[V any] struct {
	buffer    []Node[V]
	size      int // nodes in use
	count     int // elements stored
	funcs     Funcs[V]
	alloc     Allocator[V]
	callbacks Callbacks[V]
}

// New creates a heap with storage for capacity elements, rounded up to a
// whole node. Capacities outside of (0, math.MaxInt) and a nil Compare
// fail with ErrInvalidArgument; an allocator failure is ErrAllocation.
func New[V any](capacity int, funcs Funcs[V], opts ...Option[V]) (*T[V], error) {
	errs := errors.M{}
	if capacity <= 0 || capacity == math.MaxInt {
		errs.Append(fmt.Errorf("capacity %v: %w", capacity, ErrInvalidArgument))
	}
	if funcs.Compare == nil {
		errs.Append(fmt.Errorf("nil compare function: %w", ErrInvalidArgument))
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	var o options[V]
	for _, fn := range opts {
		fn(&o)
	}
	h := &T[V]{
		funcs:     funcs,
		alloc:     o.alloc,
		callbacks: o.callbacks,
	}
	n := (capacity + 1) / 2
	buf, err := h.makeNodes(n)
	if err != nil {
		return nil, fmt.Errorf("allocate %v nodes: %w: %w", n, ErrAllocation, err)
	}
	h.buffer = buf
	return h, nil
}

// NewOrdered creates a heap for an ordered element type, ordered by
// cmp.Compare.
func NewOrdered[V cmp.Ordered](capacity int, opts ...Option[V]) (*T[V], error) {
	return New(capacity, Ordered[V](), opts...)
}

// Len returns the number of elements stored in the heap.
func (h *T[V]) Len() int {
	return h.count
}

// Cap returns the number of elements the heap can hold before growing.
// Storage is whole nodes, so Cap reports one more than an odd capacity
// passed to New or Resize.
func (h *T[V]) Cap() int {
	return 2 * len(h.buffer)
}

// full reports whether no free slot remains, ie. every node is in use and
// the last one is complete.
func (h *T[V]) full() bool {
	return h.size >= len(h.buffer) && h.count%2 == 0
}

// at returns the element at position i in buffer order.
func (h *T[V]) at(i int) V {
	if i%2 == 0 {
		return h.buffer[i/2].Low
	}
	return h.buffer[i/2].High
}

// At returns the element at position i in buffer order: node 0's low,
// node 0's high, node 1's low and so on, which is not sorted order.
// Positions outside of [0, Len()) fail with ErrOutOfRange.
func (h *T[V]) At(i int) (V, error) {
	if i < 0 || i >= h.count {
		var zero V
		return zero, fmt.Errorf("position %v of %v: %w", i, h.count, ErrOutOfRange)
	}
	return h.at(i), nil
}

// Insert adds an element to the heap, growing storage to four times the
// current capacity when no free slot remains. A failed grow leaves the
// heap unchanged.
func (h *T[V]) Insert(v V) error {
	if h.full() {
		if err := h.Resize(h.Cap() * 4); err != nil {
			return err
		}
	}
	if h.count%2 == 0 {
		// Open a new node with only the low slot occupied.
		h.buffer[h.size] = Node[V]{Low: v}
		h.size++
	} else {
		// Complete the trailing node, keeping low <= high.
		nd := &h.buffer[h.size-1]
		if h.funcs.Compare(nd.Low, v) > 0 {
			nd.High = nd.Low
			nd.Low = v
		} else {
			nd.High = v
		}
	}
	h.count++
	if h.count <= 2 {
		return nil
	}
	// At most one float pass runs: a new minimum moves up the low slots,
	// a new maximum up the high slots.
	parent := &h.buffer[(h.size-2)/2]
	if h.funcs.Compare(parent.Low, v) > 0 {
		h.floatUpMin()
	} else if h.funcs.Compare(parent.High, v) < 0 {
		h.floatUpMax()
	}
	return nil
}

// RemoveMin removes and returns the smallest element in the heap.
func (h *T[V]) RemoveMin() (V, error) {
	var zero V
	if h.count == 0 {
		return zero, fmt.Errorf("remove min: %w", ErrEmpty)
	}
	out := h.buffer[0].Low
	if h.count == 1 {
		h.buffer[0] = Node[V]{}
		h.size, h.count = 0, 0
		return out, nil
	}
	last := &h.buffer[h.size-1]
	h.buffer[0].Low = last.Low
	if h.count%2 != 0 {
		// The trailing node held only its low; the node goes away.
		*last = Node[V]{}
		h.size--
	} else {
		last.Low = last.High
		last.High = zero
	}
	h.count--
	h.floatDownMin()
	return out, nil
}

// RemoveMax removes and returns the largest element in the heap.
func (h *T[V]) RemoveMax() (V, error) {
	var zero V
	if h.count == 0 {
		return zero, fmt.Errorf("remove max: %w", ErrEmpty)
	}
	if h.count == 1 {
		// A single element lives in the low slot.
		out := h.buffer[0].Low
		h.buffer[0] = Node[V]{}
		h.size, h.count = 0, 0
		return out, nil
	}
	out := h.buffer[0].High
	last := &h.buffer[h.size-1]
	if h.count%2 != 0 {
		h.buffer[0].High = last.Low
		*last = Node[V]{}
		h.size--
	} else {
		h.buffer[0].High = last.High
		last.High = zero
	}
	h.count--
	h.floatDownMax()
	return out, nil
}

// UpdateMin replaces the current minimum with v and restores order. On a
// single-element heap the sole element is replaced. When v sorts after
// the current maximum the root pair is swapped before the float pass so
// that the root node stays ordered.
func (h *T[V]) UpdateMin(v V) error {
	if h.count == 0 {
		return fmt.Errorf("update min: %w", ErrEmpty)
	}
	if h.count == 1 {
		h.buffer[0].Low = v
		return nil
	}
	if h.funcs.Compare(v, h.buffer[0].High) > 0 {
		h.buffer[0].Low = h.buffer[0].High
		h.buffer[0].High = v
	} else {
		h.buffer[0].Low = v
	}
	h.floatDownMin()
	return nil
}

// UpdateMax replaces the current maximum with v and restores order,
// mirroring UpdateMin.
func (h *T[V]) UpdateMax(v V) error {
	if h.count == 0 {
		return fmt.Errorf("update max: %w", ErrEmpty)
	}
	if h.count == 1 {
		h.buffer[0].Low = v
		return nil
	}
	if h.funcs.Compare(v, h.buffer[0].Low) < 0 {
		h.buffer[0].High = h.buffer[0].Low
		h.buffer[0].Low = v
	} else {
		h.buffer[0].High = v
	}
	h.floatDownMax()
	return nil
}

// Min returns the smallest element without removing it.
func (h *T[V]) Min() (V, error) {
	if h.count == 0 {
		var zero V
		return zero, fmt.Errorf("min: %w", ErrEmpty)
	}
	return h.buffer[0].Low, nil
}

// Max returns the largest element without removing it. On a
// single-element heap the low slot doubles as both extremes.
func (h *T[V]) Max() (V, error) {
	if h.count == 0 {
		var zero V
		return zero, fmt.Errorf("max: %w", ErrEmpty)
	}
	if h.count == 1 {
		return h.buffer[0].Low, nil
	}
	return h.buffer[0].High, nil
}

// Contains returns true if any stored element compares equal to v, using
// a linear scan over buffer order.
func (h *T[V]) Contains(v V) bool {
	for i := 0; i < h.count; i++ {
		if h.funcs.Compare(h.at(i), v) == 0 {
			return true
		}
	}
	return false
}

// Resize changes the heap's capacity, in elements. Shrinking below the
// current element count, a capacity that is not positive and math.MaxInt
// all fail with ErrInvalidArgument; an allocator failure is
// ErrAllocation. Failures leave the heap unchanged and resizing to the
// current capacity is a no-op.
func (h *T[V]) Resize(capacity int) error {
	switch {
	case capacity <= 0 || capacity == math.MaxInt:
		return fmt.Errorf("capacity %v: %w", capacity, ErrInvalidArgument)
	case capacity < h.count:
		return fmt.Errorf("capacity %v below element count %v: %w", capacity, h.count, ErrInvalidArgument)
	}
	n := (capacity + 1) / 2
	if n == len(h.buffer) {
		return nil
	}
	buf, err := h.resizeNodes(h.buffer, n)
	if err != nil {
		return fmt.Errorf("resize to %v nodes: %w: %w", n, ErrAllocation, err)
	}
	h.buffer = buf
	return nil
}

// Copy returns an independent duplicate of the heap with the same
// function bundle, allocator and callbacks. Elements are duplicated with
// Clone when supplied and copied by assignment otherwise. The receiver is
// left untouched on failure.
func (h *T[V]) Copy() (*T[V], error) {
	nh := &T[V]{
		funcs:     h.funcs,
		alloc:     h.alloc,
		callbacks: h.callbacks,
	}
	buf, err := nh.makeNodes(len(h.buffer))
	if err != nil {
		return nil, fmt.Errorf("copy %v nodes: %w: %w", len(h.buffer), ErrAllocation, err)
	}
	if h.funcs.Clone != nil {
		for i := 0; i < h.count; i++ {
			if i%2 == 0 {
				buf[i/2].Low = h.funcs.Clone(h.at(i))
			} else {
				buf[i/2].High = h.funcs.Clone(h.at(i))
			}
		}
	} else {
		copy(buf, h.buffer[:h.size])
	}
	nh.buffer = buf
	nh.size, nh.count = h.size, h.count
	return nh, nil
}

// Equal returns true when both heaps hold the same number of elements and
// every buffer position compares equal under the receiver's compare
// function. The comparison is positional: two heaps holding the same
// elements in different node layouts are not equal. Two empty heaps are
// equal and a nil other never is.
func (h *T[V]) Equal(o *T[V]) bool {
	if o == nil || h.count != o.count {
		return false
	}
	for i := 0; i < h.count; i++ {
		if h.funcs.Compare(h.at(i), o.at(i)) != 0 {
			return false
		}
	}
	return true
}

// Clear removes every element, calling Destroy on each one when supplied,
// and keeps the storage for reuse. The BeforeClear and AfterClear
// callbacks run around the removal.
func (h *T[V]) Clear() {
	if h.callbacks.BeforeClear != nil {
		h.callbacks.BeforeClear(h)
	}
	h.destroyAll()
	clear(h.buffer)
	h.size, h.count = 0, 0
	if h.callbacks.AfterClear != nil {
		h.callbacks.AfterClear(h)
	}
}

// Free destroys every element as Clear does and releases the node storage
// through the allocator. The heap is not usable afterwards: Insert fails
// and the peek and remove operations report an empty heap. The BeforeFree
// and AfterFree callbacks run around the release.
func (h *T[V]) Free() {
	if h.callbacks.BeforeFree != nil {
		h.callbacks.BeforeFree(h)
	}
	h.destroyAll()
	h.releaseNodes(h.buffer)
	h.buffer = nil
	h.size, h.count = 0, 0
	if h.callbacks.AfterFree != nil {
		h.callbacks.AfterFree(h)
	}
}

func (h *T[V]) destroyAll() {
	if h.funcs.Destroy == nil {
		return
	}
	for i := 0; i < h.count; i++ {
		h.funcs.Destroy(h.at(i))
	}
}

// String returns a single-line summary of the heap. The current extremes
// are included when a Format function is supplied.
func (h *T[V]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "intervalheap[count:%v nodes:%v cap:%v]", h.count, h.size, h.Cap())
	if h.funcs.Format != nil && h.count > 0 {
		mn, _ := h.Min()
		mx, _ := h.Max()
		fmt.Fprintf(&sb, " min:%v max:%v", h.funcs.Format(mn), h.funcs.Format(mx))
	}
	return sb.String()
}
