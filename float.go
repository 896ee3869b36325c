// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intervalheap

// The float passes restore the two heap orders after a mutation: lows
// form a min heap and highs a max heap over the same node array. The node
// holding a lone low (odd element count, always the last occupied node)
// is the edge case throughout, since its low stands in for the high it
// does not have.

// floatUpMin moves the low of the last occupied node toward the root
// until its parent's low is no larger.
func (h *T[V]) floatUpMin() {
	i := h.size - 1
	for i > 0 {
		p := (i - 1) / 2
		if h.funcs.Compare(h.buffer[i].Low, h.buffer[p].Low) >= 0 {
			break
		}
		h.buffer[i].Low, h.buffer[p].Low = h.buffer[p].Low, h.buffer[i].Low
		i = p
	}
}

// floatUpMax moves the high of the last occupied node toward the root
// until its parent's high is no smaller. When that node is incomplete its
// low takes the high's place and the first swap crosses slots.
func (h *T[V]) floatUpMax() {
	i := h.size - 1
	for i > 0 {
		p := (i - 1) / 2
		if i == h.size-1 && h.count%2 != 0 {
			if h.funcs.Compare(h.buffer[i].Low, h.buffer[p].High) < 0 {
				break
			}
			h.buffer[i].Low, h.buffer[p].High = h.buffer[p].High, h.buffer[i].Low
		} else {
			if h.funcs.Compare(h.buffer[i].High, h.buffer[p].High) < 0 {
				break
			}
			h.buffer[i].High, h.buffer[p].High = h.buffer[p].High, h.buffer[i].High
		}
		i = p
	}
}

// floatDownMin moves the root's low toward the leaves, descending into
// the child with the smaller low, until no child's low is smaller. A swap
// can invert the child's own pair, which is repaired in place unless the
// child is the incomplete trailing node.
func (h *T[V]) floatDownMin() {
	i := 0
	for {
		l := 2*i + 1
		if l >= h.size {
			break
		}
		c := l
		if r := l + 1; r < h.size && h.funcs.Compare(h.buffer[l].Low, h.buffer[r].Low) >= 0 {
			c = r
		}
		if h.funcs.Compare(h.buffer[i].Low, h.buffer[c].Low) < 0 {
			break
		}
		h.buffer[i].Low, h.buffer[c].Low = h.buffer[c].Low, h.buffer[i].Low
		if c != h.size-1 || h.count%2 == 0 {
			if h.funcs.Compare(h.buffer[c].Low, h.buffer[c].High) > 0 {
				h.buffer[c].Low, h.buffer[c].High = h.buffer[c].High, h.buffer[c].Low
			}
		}
		i = c
	}
}

// floatDownMax moves the root's high toward the leaves, descending into
// the child with the larger high, until no child's high is larger. The
// incomplete trailing node competes with its low and swaps across slots.
func (h *T[V]) floatDownMax() {
	i := 0
	for {
		l := 2*i + 1
		if l >= h.size {
			break
		}
		c := l
		if r := l + 1; r < h.size {
			rHigh := h.buffer[r].High
			if r == h.size-1 && h.count%2 != 0 {
				rHigh = h.buffer[r].Low
			}
			if h.funcs.Compare(h.buffer[l].High, rHigh) <= 0 {
				c = r
			}
		}
		if c == h.size-1 && h.count%2 != 0 {
			if h.funcs.Compare(h.buffer[i].High, h.buffer[c].Low) >= 0 {
				break
			}
			h.buffer[i].High, h.buffer[c].Low = h.buffer[c].Low, h.buffer[i].High
		} else {
			if h.funcs.Compare(h.buffer[i].High, h.buffer[c].High) >= 0 {
				break
			}
			h.buffer[i].High, h.buffer[c].High = h.buffer[c].High, h.buffer[i].High
			if h.funcs.Compare(h.buffer[c].Low, h.buffer[c].High) > 0 {
				h.buffer[c].Low, h.buffer[c].High = h.buffer[c].High, h.buffer[c].Low
			}
		}
		i = c
	}
}
