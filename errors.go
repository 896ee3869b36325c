// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intervalheap

import "cloudeng.io/errors"

var (
	// ErrInvalidArgument is returned for a capacity that cannot be
	// satisfied, a missing compare function or a resize below the current
	// element count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAllocation is returned when the allocator fails to provide node
	// storage.
	ErrAllocation = errors.New("allocation failed")

	// ErrEmpty is returned by operations that need at least one stored
	// element.
	ErrEmpty = errors.New("empty heap")

	// ErrOutOfRange is returned by At for positions outside of the heap's
	// current element range.
	ErrOutOfRange = errors.New("out of range")
)
