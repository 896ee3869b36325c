// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intervalheap

// Allocator provides control over how a heap obtains, regrows and releases
// its node storage. Any nil field falls back to the Go runtime, ie. make
// and copy. A custom allocator reports exhaustion by returning an error,
// which the heap surfaces as ErrAllocation while leaving its own state
// unchanged.
type Allocator[V any] struct {
	// Make returns zeroed storage for n nodes.
	Make func(n int) ([]Node[V], error)
	// Resize returns storage for n nodes holding the first
	// min(n, len(buf)) nodes of buf, with any added nodes zeroed.
	Resize func(buf []Node[V], n int) ([]Node[V], error)
	// Release returns storage obtained from Make or Resize.
	Release func(buf []Node[V])
}

func (h *T[V]) makeNodes(n int) ([]Node[V], error) {
	if h.alloc.Make != nil {
		return h.alloc.Make(n)
	}
	return make([]Node[V], n), nil
}

func (h *T[V]) resizeNodes(buf []Node[V], n int) ([]Node[V], error) {
	if h.alloc.Resize != nil {
		return h.alloc.Resize(buf, n)
	}
	nb := make([]Node[V], n)
	copy(nb, buf)
	return nb, nil
}

func (h *T[V]) releaseNodes(buf []Node[V]) {
	if h.alloc.Release != nil {
		h.alloc.Release(buf)
	}
}
