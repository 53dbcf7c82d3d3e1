// Copyright 2026 The Parlim Authors
// SPDX-License-Identifier: Apache-2.0

package parlim

import (
	"slices"

	"parlim.dev/parlim/par"
)

// Filter returns a deferred sequence of the elements for which op
// reports true, with at most limit invocations of op in flight.
// Surviving elements keep their relative order.
func Filter[T any](limit int, it *par.Iter[T], op func(T) bool) *par.Iter[T] {
	return filterChunked(limit, it, func(v T) (T, bool) { return v, op(v) })
}

// FilterMap returns a deferred sequence of the mapped values for which
// op reports true, with at most limit invocations of op in flight.
// Surviving values keep the input's relative order.
func FilterMap[T, R any](limit int, it *par.Iter[T], op func(T) (R, bool)) *par.Iter[R] {
	return filterChunked(limit, it, op)
}

// filterChunked runs the sequential filter pass per chunk, parking
// each chunk's survivors in its own slot, then concatenates the slots
// in chunk order.
func filterChunked[T, R any](limit int, it *par.Iter[T], op func(T) (R, bool)) *par.Iter[R] {
	checkLimit(limit)
	return par.Lazy(it.Pool(), -1, func() []R {
		chunks := Subdivide(limit, it)
		slots := make([][]R, chunks.Len())
		par.ForEachIndexed(chunks, func(ci int, chunk []T) {
			var kept []R
			for _, v := range chunk {
				if r, ok := op(v); ok {
					kept = append(kept, r)
				}
			}
			slots[ci] = kept
		})
		return slices.Concat(slots...)
	})
}
