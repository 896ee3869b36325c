// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package intervalheap provides a generic, array-backed double-ended
// priority queue with O(1) access to both the minimum and the maximum
// element and O(log n) insertion, removal and replacement at either end.
//
// Elements are stored two to a node, a low side and a high side, and the
// lows and highs form interleaved min and max heaps over one array, as
// described in J. van Leeuwen and D. Wood, "Interval Heaps", The Computer
// Journal, 36(3), 1993. When the element count is odd the last occupied
// node holds only its low, and that lone element stands in for the
// missing high wherever the max side needs one.
//
// Heaps are parameterized by a Funcs bundle supplying the element
// ordering and optional clone, destroy and format hooks; NewOrdered
// covers the common case of a naturally ordered element type. Storage
// management can be taken over with an Allocator and heap lifecycle
// observed with Callbacks, both supplied as options to New.
//
// Heaps are single-owner data structures and perform no locking.
package intervalheap
