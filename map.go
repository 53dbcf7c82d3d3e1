// Copyright 2026 The Parlim Authors
// SPDX-License-Identifier: Apache-2.0

package parlim

import (
	"slices"

	"parlim.dev/parlim/par"
	"parlim.dev/parlim/split"
)

// Map returns a deferred sequence that applies op to every element
// with at most limit invocations in flight. The Nth output is op
// applied to the Nth input whatever the limit and whichever chunk
// finishes first. A limit of zero subdivides into single-element
// chunks, giving the engine full fan-out.
//
// Evaluation happens on first use of the returned handle.
func Map[T, R any](limit int, it *par.Iter[T], op func(T) R) *par.Iter[R] {
	checkLimit(limit)
	return par.Lazy(it.Pool(), hintOf(it), func() []R {
		in := it.Collect()
		out := make([]R, len(in))
		if len(in) == 0 {
			return out
		}
		// Chunk c owns out[c*size : c*size+len(chunk)). The regions are
		// disjoint by construction, so chunks write concurrently
		// without coordination.
		regions := split.New(out).Even(chunkSizeFor(limit, len(in)))
		par.ForEachIndexed(Subdivide(limit, it), func(ci int, chunk []T) {
			region := regions[ci]
			for j, v := range chunk {
				region[j] = op(v)
			}
		})
		return out
	})
}

// Update returns a deferred sequence in which op has mutated every
// element in place, with at most limit invocations in flight. The
// input sequence is left untouched; op runs against a clone of its
// slab, and elements are re-emitted in their original positions.
func Update[T any](limit int, it *par.Iter[T], op func(*T)) *par.Iter[T] {
	checkLimit(limit)
	return par.Lazy(it.Pool(), hintOf(it), func() []T {
		out := slices.Clone(it.Collect())
		if len(out) == 0 {
			return out
		}
		// Chunk views alias out, so mutating through them is the
		// in-place pass.
		par.ForEach(Subdivide(limit, par.FromSlice(it.Pool(), out)), func(chunk []T) {
			for j := range chunk {
				op(&chunk[j])
			}
		})
		return out
	})
}
