// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intervalheap

type options[V any] struct {
	alloc     Allocator[V]
	callbacks Callbacks[V]
}

// Option represents the options that can be passed to New and NewOrdered.
type Option[V any] func(*options[V])

// WithAllocator supplies a custom allocator for the heap's node storage.
func WithAllocator[V any](a Allocator[V]) Option[V] {
	return func(o *options[V]) {
		o.alloc = a
	}
}

// WithCallbacks supplies lifecycle hooks for the heap.
func WithCallbacks[V any](cb Callbacks[V]) Option[V] {
	return func(o *options[V]) {
		o.callbacks = cb
	}
}

// Callbacks are optional hooks invoked around the clearing and freeing of
// a heap, with the heap as argument. Nil hooks are skipped.
type Callbacks[V any] struct {
	BeforeClear func(h *T[V])
	AfterClear  func(h *T[V])
	BeforeFree  func(h *T[V])
	AfterFree   func(h *T[V])
}
