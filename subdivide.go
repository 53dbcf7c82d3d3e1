// Copyright 2026 The Parlim Authors
// SPDX-License-Identifier: Apache-2.0

package parlim

import "parlim.dev/parlim/par"

// Subdivide reshapes a sized parallel sequence into at most numChunks
// contiguous chunks, each of which is itself an ordered sub-sequence.
// The chunk size is ceil(len/numChunks), never less than one, so
// integer rounding can make the realized chunk count fall slightly
// short of numChunks; the bound is "at most numChunks concurrently
// active chunks", never "exactly".
//
// A numChunks of zero is the degenerate request for one chunk per
// element, used when full concurrency should still flow through the
// chunked code path. A negative numChunks panics. An empty sequence
// yields zero chunks.
//
// Chunk boundaries depend only on the sequence length and numChunks,
// so identical inputs subdivide identically.
func Subdivide[T any](numChunks int, it *par.Iter[T]) *par.Iter[[]T] {
	if numChunks < 0 {
		panic("parlim: chunk count must not be negative")
	}
	return par.Chunks(it, chunkSizeFor(numChunks, it.Len()))
}

// chunkSizeFor converts a concurrency limit into a chunk size.
func chunkSizeFor(numChunks, length int) int {
	if numChunks == 0 {
		return 1
	}
	return max(1, (length+numChunks-1)/numChunks)
}

// checkLimit rejects negative limits before any work is scheduled.
func checkLimit(limit int) {
	if limit < 0 {
		panic("parlim: concurrency limit must not be negative")
	}
}

// hintOf propagates a known input length to a length-preserving
// deferred output without forcing evaluation.
func hintOf[T any](it *par.Iter[T]) int {
	if n, ok := it.LenHint(); ok {
		return n
	}
	return -1
}
