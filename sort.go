// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intervalheap

import "cloudeng.io/errors"

// Sort sorts values in place into ascending order under compare, by
// inserting every value into an interval heap and draining it from the
// min end. It uses O(len(values)) extra storage and is not stable.
func Sort[V any](values []V, compare func(a, b V) int) error {
	if len(values) == 0 {
		return nil
	}
	h, err := New(len(values), Funcs[V]{Compare: compare})
	if err != nil {
		return err
	}
	errs := errors.M{}
	for _, v := range values {
		errs.Append(h.Insert(v))
	}
	if err := errs.Err(); err != nil {
		return err
	}
	for i := range values {
		v, err := h.RemoveMin()
		errs.Append(err)
		values[i] = v
	}
	return errs.Err()
}
