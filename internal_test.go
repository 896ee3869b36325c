// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intervalheap //nolint:revive // intentional shadowing

import "testing"

// Verify checks every structural invariant: the node and element counts
// agree, every complete node's low sorts no later than its high, the lows
// form a min heap and the highs a max heap, with the trailing lone low
// standing in for the high it does not have.
func (h *T[V]) Verify(t *testing.T) {
	t.Helper()
	if h.count < 2*h.size-1 || h.count > 2*h.size {
		t.Errorf("heap inconsistent: %v elements cannot occupy %v nodes", h.count, h.size)
		return
	}
	if h.size > len(h.buffer) {
		t.Errorf("heap inconsistent: %v nodes in use with storage for %v", h.size, len(h.buffer))
		return
	}
	h.verify(t, 0)
}

func (h *T[V]) incomplete(i int) bool {
	return i == h.size-1 && h.count%2 != 0
}

// maxSide returns the value on node i's max side, ie. its high or, for
// the incomplete trailing node, its lone low.
func (h *T[V]) maxSide(i int) V {
	if h.incomplete(i) {
		return h.buffer[i].Low
	}
	return h.buffer[i].High
}

func (h *T[V]) verify(t *testing.T, p int) {
	t.Helper()
	if p >= h.size {
		return
	}
	if !h.incomplete(p) && h.funcs.Compare(h.buffer[p].Low, h.buffer[p].High) > 0 {
		t.Errorf("heap inconsistent: node %v inverted (low %v, high %v)", p, h.buffer[p].Low, h.buffer[p].High)
		return
	}
	for c := 2*p + 1; c <= 2*p+2 && c < h.size; c++ {
		if h.funcs.Compare(h.buffer[p].Low, h.buffer[c].Low) > 0 {
			t.Errorf("min heap inconsistent: node %v low %v after node %v low %v", p, h.buffer[p].Low, c, h.buffer[c].Low)
			return
		}
		if h.funcs.Compare(h.buffer[p].High, h.maxSide(c)) < 0 {
			t.Errorf("max heap inconsistent: node %v high %v before node %v high %v", p, h.buffer[p].High, c, h.maxSide(c))
			return
		}
		h.verify(t, c)
	}
}

func NodesInUseForTesting[V any](h *T[V]) int {
	return h.size
}

func IncompleteNodesForTesting[V any](h *T[V]) int {
	n := 0
	for i := 0; i < h.size; i++ {
		if h.incomplete(i) {
			n++
		}
	}
	return n
}
